package repository

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"surveyhub/internal/database"
	"surveyhub/internal/models"
)

// AnswerDetail is one answer within a reconstructed response, carrying the
// question's text and type for analytics consumers.
type AnswerDetail struct {
	QuestionText string
	QuestionType models.QuestionType
	AnswerText   string
}

// ResponseDetail is one respondent's reconstructed answer set.
type ResponseDetail struct {
	Respondent  string
	CompletedAt time.Time
	Answers     map[int]AnswerDetail
}

// SaveResponse records one completed submission: a Response row plus one
// Answer row per entry of answersByQuestion, all in a single transaction.
// Every answered question must belong to the survey; a foreign question id
// rejects the whole submission. Unanswered questions get no Answer row.
func SaveResponse(surveyID int, respondentUsername string, answersByQuestion map[int]string) error {
	respondentID, err := GetUserID(respondentUsername)
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := touchSurvey(tx, surveyID); err != nil {
			return err
		}

		var questionIDs []int
		if err := tx.Model(&models.Question{}).Where("survey_id = ?", surveyID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		known := make(map[int]bool, len(questionIDs))
		for _, id := range questionIDs {
			known[id] = true
		}
		for questionID := range answersByQuestion {
			if !known[questionID] {
				return ErrForeignQuestion
			}
		}

		// Answers are captured synchronously by the caller, so the
		// response starts and completes at the same instant.
		now := time.Now()
		response := models.Response{
			SurveyID:     surveyID,
			RespondentID: respondentID,
			StartedAt:    now,
			CompletedAt:  now,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		// Insert in question-id order to keep row order deterministic.
		ordered := make([]int, 0, len(answersByQuestion))
		for questionID := range answersByQuestion {
			ordered = append(ordered, questionID)
		}
		sort.Ints(ordered)

		for _, questionID := range ordered {
			answer := models.Answer{
				ResponseID: response.ID,
				QuestionID: questionID,
				AnswerText: answersByQuestion[questionID],
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// surveyResponseRow is the flat shape of the reconstruction join.
type surveyResponseRow struct {
	ResponseID   int
	CompletedAt  time.Time
	Username     string
	QuestionID   int
	QuestionText string
	QuestionType models.QuestionType
	AnswerText   string
}

// GetSurveyResponses reconstructs every submission to a survey, grouped by
// response id. Rows come back ordered by response id then question position,
// the order the analytics screens have always consumed them in.
func GetSurveyResponses(surveyID int) (map[int]ResponseDetail, error) {
	var rows []surveyResponseRow
	err := database.DB.Raw(`
		SELECT r.id AS response_id, r.completed_at, u.username,
		       q.id AS question_id, q.question_text, q.question_type,
		       a.answer_text
		FROM responses r
		JOIN users u ON r.respondent_id = u.id
		JOIN answers a ON a.response_id = r.id
		JOIN questions q ON a.question_id = q.id
		WHERE r.survey_id = ?
		ORDER BY r.id, q.position
	`, surveyID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make(map[int]ResponseDetail, len(rows))
	for _, row := range rows {
		detail, ok := responses[row.ResponseID]
		if !ok {
			detail = ResponseDetail{
				Respondent:  row.Username,
				CompletedAt: row.CompletedAt,
				Answers:     make(map[int]AnswerDetail),
			}
		}
		detail.Answers[row.QuestionID] = AnswerDetail{
			QuestionText: row.QuestionText,
			QuestionType: row.QuestionType,
			AnswerText:   row.AnswerText,
		}
		responses[row.ResponseID] = detail
	}
	return responses, nil
}
