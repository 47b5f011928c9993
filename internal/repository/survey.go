package repository

import (
	"errors"

	"gorm.io/gorm"

	"surveyhub/internal/database"
	"surveyhub/internal/models"
)

// CreateSurvey creates an active survey owned by creatorUsername.
// Fails with ErrNotFound if the creator is unknown.
func CreateSurvey(title, description, creatorUsername string) (int, error) {
	creatorID, err := GetUserID(creatorUsername)
	if err != nil {
		return 0, err
	}

	survey := models.Survey{
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		IsActive:    true,
	}
	if err := database.DB.Create(&survey).Error; err != nil {
		return 0, err
	}
	return survey.ID, nil
}

// GetSurvey fetches one survey by id.
func GetSurvey(id int) (*models.Survey, error) {
	var survey models.Survey
	err := database.DB.First(&survey, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// ListSurveys returns all surveys ordered by id, restricted to active ones
// when activeOnly is set.
func ListSurveys(activeOnly bool) ([]models.Survey, error) {
	var surveys []models.Survey
	q := database.DB.Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&surveys).Error
	return surveys, err
}

// ListSurveysByCreator returns the surveys authored by the named user.
// An unknown user simply has no surveys.
func ListSurveysByCreator(username string) ([]models.Survey, error) {
	creatorID, err := GetUserID(username)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var surveys []models.Survey
	err = database.DB.Where("creator_id = ?", creatorID).Order("id").Find(&surveys).Error
	return surveys, err
}

// ToggleSurveyStatus flips the survey's active flag and returns the new
// status. A missing survey reports ErrNotFound instead of silently
// defaulting.
func ToggleSurveyStatus(id int) (bool, error) {
	var newStatus bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var survey models.Survey
		if err := tx.First(&survey, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		newStatus = !survey.IsActive
		return tx.Model(&survey).Update("is_active", newStatus).Error
	})
	return newStatus, err
}

// touchSurvey verifies a survey exists inside a transaction.
func touchSurvey(tx *gorm.DB, surveyID int) error {
	var survey models.Survey
	if err := tx.First(&survey, surveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
