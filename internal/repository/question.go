package repository

import (
	"database/sql"

	"gorm.io/gorm"

	"surveyhub/internal/database"
	"surveyhub/internal/models"
)

// AddQuestion appends one question to a survey. A position of 0 auto-assigns
// max(existing)+1 (1 for the first question). Options are only accepted on
// choice-type questions.
func AddQuestion(surveyID int, text string, qType models.QuestionType, required bool, options models.OptionList, position int) (int, error) {
	if err := models.ValidateTypeOptions(qType, options); err != nil {
		return 0, err
	}

	var questionID int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := touchSurvey(tx, surveyID); err != nil {
			return err
		}

		pos := position
		if pos <= 0 {
			next, err := nextPosition(tx, surveyID)
			if err != nil {
				return err
			}
			pos = next
		}

		question := models.Question{
			SurveyID:     surveyID,
			QuestionText: text,
			QuestionType: qType,
			Required:     required,
			Options:      options,
			Position:     pos,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		questionID = question.ID
		return nil
	})
	return questionID, err
}

// GetQuestions returns a survey's questions ordered by position ascending,
// options decoded back into ordered lists.
func GetQuestions(surveyID int) ([]models.Question, error) {
	var questions []models.Question
	err := database.DB.Where("survey_id = ?", surveyID).Order("position").Find(&questions).Error
	return questions, err
}

// CreateSurveyFromTemplate creates a survey and its full question batch in
// one transaction. Questions take positions 1..N in template order.
func CreateSurveyFromTemplate(tmpl *models.SurveyTemplate, creatorUsername string) (int, error) {
	creatorID, err := GetUserID(creatorUsername)
	if err != nil {
		return 0, err
	}

	var surveyID int
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		survey := models.Survey{
			Title:       tmpl.Title,
			Description: tmpl.Description,
			CreatorID:   creatorID,
			IsActive:    true,
		}
		if err := tx.Create(&survey).Error; err != nil {
			return err
		}
		surveyID = survey.ID

		for i, qt := range tmpl.Questions {
			if err := models.ValidateTypeOptions(qt.Type, models.OptionList(qt.Options)); err != nil {
				return err
			}
			question := models.Question{
				SurveyID:     survey.ID,
				QuestionText: qt.Text,
				QuestionType: qt.Type,
				Required:     qt.Required,
				Options:      models.OptionList(qt.Options),
				Position:     i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return surveyID, nil
}

func nextPosition(tx *gorm.DB, surveyID int) (int, error) {
	var maxPos sql.NullInt64
	row := tx.Raw("SELECT MAX(position) FROM questions WHERE survey_id = ?", surveyID).Row()
	if err := row.Scan(&maxPos); err != nil {
		return 0, err
	}
	if !maxPos.Valid {
		return 1, nil
	}
	return int(maxPos.Int64) + 1, nil
}
