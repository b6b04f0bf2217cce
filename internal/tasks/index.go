package tasks

import (
	"tasknav/internal/model"
	"tasknav/internal/store"
)

// Index is the in-memory corpus of every task across the vault.
//
// Rebuild is the only bulk mutator; completion toggles (ApplyCompletion) flip
// a single record's Completed field in place. The record slice is replaced
// wholesale on rebuild, so a view holding records from a previous rebuild
// keeps a consistent (if stale) snapshot.
type Index struct {
	store   store.Store
	records []*model.Task
	skipped int
}

func NewIndex(st store.Store) *Index {
	return &Index{store: st}
}

// Rebuild re-extracts tasks from every document in the vault and swaps in the
// new record set. A document that cannot be read contributes zero tasks; the
// rebuild carries on with the rest. Safe to call repeatedly.
func (ix *Index) Rebuild() error {
	docs, err := ix.store.ListDocuments()
	if err != nil {
		return err
	}

	records := make([]*model.Task, 0, len(ix.records))
	skipped := 0
	for _, doc := range docs {
		content, err := ix.store.ReadText(doc)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, Extract(doc, content)...)
	}

	ix.records = records
	ix.skipped = skipped
	return nil
}

// Records returns the current corpus in document/line order. Callers must not
// append; records themselves are shared so a completion toggle is visible to
// every live view.
func (ix *Index) Records() []*model.Task { return ix.records }

func (ix *Index) Len() int { return len(ix.records) }

// SkippedDocuments reports how many documents failed to read during the last
// rebuild (surfaced as a notice, never fatal).
func (ix *Index) SkippedDocuments() int { return ix.skipped }
