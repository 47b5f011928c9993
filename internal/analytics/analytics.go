// Package analytics aggregates stored survey responses for the reporting
// screens. The store hands it raw answer text; nothing here writes back.
package analytics

import (
	"errors"
	"sort"
	"strconv"

	"surveyhub/internal/models"
	"surveyhub/internal/repository"
)

// ErrNoNumericAnswers is reported when a numeric question has answers but
// none of them parse as numbers.
var ErrNoNumericAnswers = errors.New("no parseable numeric answers")

// CollectAnswers pulls every stored answer to one question out of the
// reconstructed response set, in ascending response-id order. Responses that
// skipped the question contribute nothing.
func CollectAnswers(responses map[int]repository.ResponseDetail, questionID int) []string {
	ids := make([]int, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var answers []string
	for _, id := range ids {
		if a, ok := responses[id].Answers[questionID]; ok {
			answers = append(answers, a.AnswerText)
		}
	}
	return answers
}

// ChoiceTally counts answer frequency for a choice question by exact string
// match. Multi-choice answers are split back into individual selections
// before counting, undoing the join applied at write time.
func ChoiceTally(questionType models.QuestionType, answers []string) map[string]int {
	counts := make(map[string]int)
	for _, answer := range answers {
		if questionType == models.MultiChoice {
			for _, selection := range models.SplitChoices(answer) {
				counts[selection]++
			}
		} else {
			counts[answer]++
		}
	}
	return counts
}

// TextStats describes free-text answers by length.
type TextStats struct {
	Count     int
	MinLength int
	MaxLength int
	AvgLength float64
}

// TextStatsFor computes length statistics over raw answer text.
func TextStatsFor(answers []string) TextStats {
	if len(answers) == 0 {
		return TextStats{}
	}
	stats := TextStats{
		Count:     len(answers),
		MinLength: len(answers[0]),
		MaxLength: len(answers[0]),
	}
	total := 0
	for _, a := range answers {
		n := len(a)
		total += n
		if n < stats.MinLength {
			stats.MinLength = n
		}
		if n > stats.MaxLength {
			stats.MaxLength = n
		}
	}
	stats.AvgLength = float64(total) / float64(len(answers))
	return stats
}

// NumericStats describes numeric answers. Count covers only the answers that
// parsed; the rest are skipped, as the original reporting did.
type NumericStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// NumericStatsFor parses answers as floats and computes min/max/mean.
func NumericStatsFor(answers []string) (NumericStats, error) {
	var values []float64
	for _, a := range answers {
		if v, err := strconv.ParseFloat(a, 64); err == nil {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		if len(answers) == 0 {
			return NumericStats{}, nil
		}
		return NumericStats{}, ErrNoNumericAnswers
	}

	stats := NumericStats{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	total := 0.0
	for _, v := range values {
		total += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = total / float64(len(values))
	return stats, nil
}
