package tasks

import (
	"strings"

	"tasknav/internal/model"
)

// Filter returns the records whose text contains query (case-folded substring)
// and whose completion state equals wantCompleted, preserving input order.
//
// An empty (or all-whitespace) query yields no results: the overlay shows
// nothing until the user types, which is distinct from "no filter".
func Filter(records []*model.Task, query string, wantCompleted bool) []*model.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []*model.Task
	for _, t := range records {
		if t.Completed != wantCompleted {
			continue
		}
		if !strings.Contains(strings.ToLower(t.Text), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}
