package analytics

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"surveyhub/internal/models"
	"surveyhub/internal/repository"
)

// ExportCSV writes one row per response: id, respondent, completion time,
// then one column per question in position order. Skipped questions leave
// their cell blank.
func ExportCSV(w io.Writer, questions []models.Question, responses map[int]repository.ResponseDetail) error {
	cw := csv.NewWriter(w)

	header := []string{"response_id", "respondent", "completed_at"}
	for _, q := range questions {
		header = append(header, q.QuestionText)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	ids := make([]int, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		detail := responses[id]
		row := []string{
			strconv.Itoa(id),
			detail.Respondent,
			detail.CompletedAt.Format("2006-01-02 15:04:05"),
		}
		for _, q := range questions {
			if a, ok := detail.Answers[q.ID]; ok {
				row = append(row, a.AnswerText)
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
