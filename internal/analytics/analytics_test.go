package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyhub/internal/models"
	"surveyhub/internal/repository"
)

func responseSet() map[int]repository.ResponseDetail {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
	}
	return map[int]repository.ResponseDetail{
		1: {
			Respondent:  "bob",
			CompletedAt: day(1, 9),
			Answers: map[int]repository.AnswerDetail{
				10: {QuestionType: models.SingleChoice, AnswerText: "Yes"},
				11: {QuestionType: models.MultiChoice, AnswerText: "Red, Blue"},
				12: {QuestionType: models.FreeText, AnswerText: "fine"},
			},
		},
		2: {
			Respondent:  "carol",
			CompletedAt: day(1, 17),
			Answers: map[int]repository.AnswerDetail{
				10: {QuestionType: models.SingleChoice, AnswerText: "No"},
				11: {QuestionType: models.MultiChoice, AnswerText: "Blue"},
			},
		},
		3: {
			Respondent:  "bob",
			CompletedAt: day(2, 8),
			Answers: map[int]repository.AnswerDetail{
				10: {QuestionType: models.SingleChoice, AnswerText: "Yes"},
				12: {QuestionType: models.FreeText, AnswerText: "could be better"},
			},
		},
	}
}

func TestCollectAnswers(t *testing.T) {
	responses := responseSet()

	// Ascending response-id order; skipped questions contribute nothing.
	assert.Equal(t, []string{"Yes", "No", "Yes"}, CollectAnswers(responses, 10))
	assert.Equal(t, []string{"Red, Blue", "Blue"}, CollectAnswers(responses, 11))
	assert.Empty(t, CollectAnswers(responses, 99))
}

func TestChoiceTally_SingleChoice(t *testing.T) {
	answers := CollectAnswers(responseSet(), 10)
	tally := ChoiceTally(models.SingleChoice, answers)
	assert.Equal(t, map[string]int{"Yes": 2, "No": 1}, tally)
}

func TestChoiceTally_MultiChoiceSplits(t *testing.T) {
	answers := CollectAnswers(responseSet(), 11)
	tally := ChoiceTally(models.MultiChoice, answers)
	// "Red, Blue" counts as two independent selections.
	assert.Equal(t, map[string]int{"Red": 1, "Blue": 2}, tally)
}

func TestTextStatsFor(t *testing.T) {
	stats := TextStatsFor([]string{"fine", "could be better"})
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 4, stats.MinLength)
	assert.Equal(t, 15, stats.MaxLength)
	assert.InDelta(t, 9.5, stats.AvgLength, 0.001)

	assert.Equal(t, TextStats{}, TextStatsFor(nil))
}

func TestNumericStatsFor(t *testing.T) {
	stats, err := NumericStatsFor([]string{"3", "7.5", "not a number", "1"})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count) // unparseable answers are skipped
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 7.5, stats.Max)
	assert.InDelta(t, 3.8333, stats.Mean, 0.001)
}

func TestNumericStatsFor_NothingParses(t *testing.T) {
	_, err := NumericStatsFor([]string{"abc", "xyz"})
	assert.ErrorIs(t, err, ErrNoNumericAnswers)

	stats, err := NumericStatsFor(nil)
	require.NoError(t, err)
	assert.Equal(t, NumericStats{}, stats)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(responseSet())

	assert.Equal(t, 3, summary.TotalResponses)
	assert.Equal(t, 2, summary.UniqueRespondents) // bob answered twice
	assert.Equal(t, "2026-03-01", summary.FirstCompleted.Format("2006-01-02"))
	assert.Equal(t, "2026-03-02", summary.LastCompleted.Format("2006-01-02"))
	assert.Equal(t, map[string]int{"2026-03-01": 2, "2026-03-02": 1}, summary.PerDay)
	assert.Equal(t, "2026-03-01", summary.BusiestDay)
	assert.Equal(t, 2, summary.BusiestCount)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.TotalResponses)
	assert.Empty(t, summary.PerDay)
	assert.Empty(t, summary.BusiestDay)
}
