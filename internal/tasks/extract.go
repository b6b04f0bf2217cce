package tasks

import (
	"strings"

	"tasknav/internal/model"
)

// Checkbox markers are matched literally. This is a deliberately narrow match:
// `* [ ]`, `-[ ]`, or a checkbox that is not the first token on the line are
// not tasks. Extraction is not a Markdown parser.
const (
	markerOpen     = "- [ ]"
	markerDone     = "- [x]"
	markerStateOff = len("- [") // byte offset of the state char within a marker
)

func marker(completed bool) string {
	if completed {
		return markerDone
	}
	return markerOpen
}

// Extract lifts every checklist line out of a document's text, in line order.
// Line numbers are 1-based.
func Extract(doc model.Document, content string) []*model.Task {
	var out []*model.Task
	for i, line := range strings.Split(content, "\n") {
		body := strings.TrimLeft(line, " \t")
		var completed bool
		switch {
		case strings.HasPrefix(body, markerOpen):
			completed = false
		case strings.HasPrefix(body, markerDone):
			completed = true
		default:
			continue
		}
		out = append(out, &model.Task{
			Text:       strings.TrimSpace(body[len(markerOpen):]),
			Completed:  completed,
			DocumentID: doc.ID,
			LineNumber: i + 1,
		})
	}
	return out
}
