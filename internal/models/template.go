package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// QuestionTemplate describes one question of a survey authored as YAML.
type QuestionTemplate struct {
	Text     string       `yaml:"text"`
	Type     QuestionType `yaml:"type"`
	Required bool         `yaml:"required"`
	Options  []string     `yaml:"options,omitempty"`
}

// SurveyTemplate is a survey plus its ordered questions, authored as a YAML
// document and imported in one batch.
type SurveyTemplate struct {
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Questions   []QuestionTemplate `yaml:"questions"`
}

// LoadSurveyTemplate reads and parses a survey template file.
func LoadSurveyTemplate(path string) (*SurveyTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey template: %w", err)
	}
	return ParseSurveyTemplate(data)
}

// ParseSurveyTemplate parses and validates a YAML survey template.
func ParseSurveyTemplate(data []byte) (*SurveyTemplate, error) {
	var tmpl SurveyTemplate
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal survey template YAML: %w", err)
	}

	if tmpl.Title == "" {
		return nil, fmt.Errorf("survey template has no title")
	}
	if len(tmpl.Questions) == 0 {
		return nil, fmt.Errorf("survey template %q has no questions", tmpl.Title)
	}
	for i, q := range tmpl.Questions {
		if q.Text == "" {
			return nil, fmt.Errorf("question %d has no text", i+1)
		}
		if err := ValidateTypeOptions(q.Type, OptionList(q.Options)); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &tmpl, nil
}
