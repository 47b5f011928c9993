package models

import (
	"strings"
	"time"
)

// Response is one respondent's single completed submission to one survey.
// StartedAt equals CompletedAt because answers are captured synchronously.
type Response struct {
	ID           int `gorm:"primaryKey"`
	SurveyID     int
	Survey       Survey `gorm:"foreignKey:SurveyID"`
	RespondentID int
	Respondent   User `gorm:"foreignKey:RespondentID"`
	StartedAt    time.Time
	CompletedAt  time.Time
}

func (Response) TableName() string { return "responses" }

// Answer is one respondent's value for one question. For multi-choice
// questions AnswerText is the selected labels joined by ChoiceDelimiter.
type Answer struct {
	ID         int `gorm:"primaryKey"`
	ResponseID int
	Response   Response `gorm:"foreignKey:ResponseID"`
	QuestionID int
	Question   Question `gorm:"foreignKey:QuestionID"`
	AnswerText string
}

func (Answer) TableName() string { return "answers" }

// ChoiceDelimiter joins multi-choice selections at write time. Analytics
// consumers split on it; changing it breaks every stored checkbox answer.
const ChoiceDelimiter = ", "

// JoinChoices serializes selected option labels into one answer string.
func JoinChoices(selected []string) string {
	return strings.Join(selected, ChoiceDelimiter)
}

// SplitChoices recovers the individual selections from a stored multi-choice
// answer. Splitting on the bare comma and trimming mirrors how answers have
// always been read back, so labels themselves must not contain commas.
func SplitChoices(answerText string) []string {
	if answerText == "" {
		return nil
	}
	parts := strings.Split(answerText, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
