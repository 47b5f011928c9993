package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// QuestionType is the closed set of question variants. The string values are
// the tags the original data files use, so rows stay readable by both sides.
type QuestionType string

const (
	SingleChoice QuestionType = "radio"
	MultiChoice  QuestionType = "checkbox"
	FreeText     QuestionType = "text"
	Numeric      QuestionType = "number"
)

// Valid reports whether t is one of the known variants.
func (t QuestionType) Valid() bool {
	switch t {
	case SingleChoice, MultiChoice, FreeText, Numeric:
		return true
	}
	return false
}

// IsChoice reports whether the variant carries an options list.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultiChoice
}

var (
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrOptionsRequired     = errors.New("choice questions require at least one option")
	ErrOptionsForbidden    = errors.New("options are only valid on choice questions")
)

// ValidateTypeOptions enforces the variant rules at construction time:
// choice variants need a non-empty options list, the others must carry none.
func ValidateTypeOptions(t QuestionType, options OptionList) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, t)
	}
	if t.IsChoice() && len(options) == 0 {
		return ErrOptionsRequired
	}
	if !t.IsChoice() && len(options) > 0 {
		return ErrOptionsForbidden
	}
	return nil
}

// OptionList is an ordered list of choice labels, persisted as a JSON array
// in a text column. The raw encoding never leaves the store boundary.
type OptionList []string

// Value serializes the list for storage. Empty lists store as NULL,
// matching the original data files.
func (o OptionList) Value() (driver.Value, error) {
	if len(o) == 0 {
		return nil, nil
	}
	data, err := json.Marshal([]string(o))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan deserializes the stored JSON array back into an ordered list.
func (o *OptionList) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into OptionList", value)
	}
	if len(data) == 0 {
		*o = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(o))
}

// Survey is an authored collection of ordered questions. IsActive only
// controls inclusion in default listings; inactive surveys still accept
// responses.
type Survey struct {
	ID          int `gorm:"primaryKey"`
	Title       string
	Description string
	CreatorID   int
	Creator     User `gorm:"foreignKey:CreatorID"`
	CreatedAt   time.Time
	IsActive    bool `gorm:"default:true"`
}

func (Survey) TableName() string { return "surveys" }

// Question is one prompt within a survey. Position defines display order and
// is unique per survey; immutable once created.
type Question struct {
	ID           int `gorm:"primaryKey"`
	SurveyID     int
	Survey       Survey `gorm:"foreignKey:SurveyID"`
	QuestionText string
	QuestionType QuestionType `gorm:"type:text"`
	Required     bool         `gorm:"default:true"`
	Options      OptionList   `gorm:"type:text"`
	Position     int
}

func (Question) TableName() string { return "questions" }
