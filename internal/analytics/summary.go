package analytics

import (
	"sort"
	"time"

	"surveyhub/internal/repository"
)

// Summary is the survey-level overview shown above the per-question charts.
type Summary struct {
	TotalResponses    int
	UniqueRespondents int
	FirstCompleted    time.Time
	LastCompleted     time.Time
	PerDay            map[string]int // "2006-01-02" -> responses that day
	BusiestDay        string
	BusiestCount      int
}

// Summarize computes the overview for one survey's response set.
func Summarize(responses map[int]repository.ResponseDetail) Summary {
	summary := Summary{PerDay: make(map[string]int)}
	if len(responses) == 0 {
		return summary
	}

	respondents := make(map[string]bool)
	for _, detail := range responses {
		summary.TotalResponses++
		respondents[detail.Respondent] = true

		if summary.FirstCompleted.IsZero() || detail.CompletedAt.Before(summary.FirstCompleted) {
			summary.FirstCompleted = detail.CompletedAt
		}
		if detail.CompletedAt.After(summary.LastCompleted) {
			summary.LastCompleted = detail.CompletedAt
		}

		day := detail.CompletedAt.Format("2006-01-02")
		summary.PerDay[day]++
	}
	summary.UniqueRespondents = len(respondents)

	// Deterministic pick on ties: earliest day wins.
	days := make([]string, 0, len(summary.PerDay))
	for day := range summary.PerDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if summary.PerDay[day] > summary.BusiestCount {
			summary.BusiestDay = day
			summary.BusiestCount = summary.PerDay[day]
		}
	}
	return summary
}
