package tasks

import (
	"errors"
	"fmt"
	"strings"

	"tasknav/internal/model"
	"tasknav/internal/store"
)

var (
	// ErrMissingDocument: the record's document no longer resolves.
	ErrMissingDocument = errors.New("task document is gone")
	// ErrStaleLocator: the target line no longer carries the marker the record
	// expects (the document changed underneath the index).
	ErrStaleLocator = errors.New("task moved or changed in document")
)

// ApplyCompletion rewrites the checkbox token of the record's line to match
// completed, leaving every other byte of the document intact, then flips the
// in-memory record. Ordering matters: the record only changes after the write
// succeeds, so any failure leaves both the document and the index untouched.
//
// The line is validated against the record's prior state before rewriting; a
// mismatch aborts with ErrStaleLocator rather than touching a line the record
// no longer describes. The corpus is deliberately not rebuilt on that path:
// reshuffling the result list mid-interaction would be worse than asking the
// user to re-search.
func ApplyCompletion(st store.Store, rec *model.Task, completed bool) error {
	doc, err := st.Resolve(rec.DocumentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrMissingDocument, rec.DocumentID)
		}
		return err
	}

	content, err := st.ReadText(doc)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrMissingDocument, rec.DocumentID)
		}
		return err
	}

	lines := strings.Split(content, "\n")
	idx := rec.LineNumber - 1
	if idx < 0 || idx >= len(lines) {
		return fmt.Errorf("%w: %s:%d", ErrStaleLocator, rec.DocumentID, rec.LineNumber)
	}

	line := lines[idx]
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	if !strings.HasPrefix(line[indent:], marker(rec.Completed)) {
		return fmt.Errorf("%w: %s:%d", ErrStaleLocator, rec.DocumentID, rec.LineNumber)
	}

	if rec.Completed == completed {
		// Already in the target state; the document matches, nothing to write.
		return nil
	}

	// Flip exactly the state byte inside `- [?]`. Everything else on the line
	// (indentation, text, trailing whitespace, CR) is carried through.
	state := byte(' ')
	if completed {
		state = 'x'
	}
	b := []byte(line)
	b[indent+markerStateOff] = state
	lines[idx] = string(b)

	if err := st.WriteText(doc, strings.Join(lines, "\n")); err != nil {
		return err
	}

	rec.Completed = completed
	return nil
}
