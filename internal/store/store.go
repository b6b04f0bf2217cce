package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tasknav/internal/model"
)

// ErrNotFound is returned when a document handle no longer resolves to a file
// in the vault.
var ErrNotFound = errors.New("document not found")

const markerDirName = ".tasknav"

// Store is a directory of markdown documents ("the vault"). All document IDs
// are slash-separated paths relative to Dir.
type Store struct {
	Dir string
}

// DiscoverDir walks upward from start looking for a directory containing a
// .tasknav marker dir. Any directory of markdown files works as a vault; the
// marker only pins the root when running from a subdirectory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, markerDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return cwd, nil
}

func isDocumentName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// ListDocuments enumerates every markdown document under the vault root in
// stable (path-sorted) order. Hidden directories are skipped.
func (s Store) ListDocuments() ([]model.Document, error) {
	root, err := filepath.Abs(s.Dir)
	if err != nil {
		return nil, err
	}

	var docs []model.Document
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: contribute zero documents, keep walking.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !isDocumentName(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		docs = append(docs, model.Document{
			ID:   filepath.ToSlash(rel),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Resolve maps a document id back to a handle, failing with ErrNotFound when
// the file is gone (or the id escapes the vault root).
func (s Store) Resolve(id string) (model.Document, error) {
	root, err := filepath.Abs(s.Dir)
	if err != nil {
		return model.Document{}, err
	}
	path := filepath.Join(root, filepath.FromSlash(id))
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return model.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return model.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return model.Document{ID: filepath.ToSlash(rel), Path: path}, nil
}

func (s Store) ReadText(doc model.Document) (string, error) {
	b, err := os.ReadFile(doc.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, doc.ID)
		}
		return "", err
	}
	return string(b), nil
}

// WriteText replaces the document's content. Write-then-rename so readers
// never observe a half-written document.
func (s Store) WriteText(doc model.Document, content string) error {
	perm := os.FileMode(0o644)
	if st, err := os.Stat(doc.Path); err == nil {
		perm = st.Mode().Perm()
	}
	tmp := doc.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), perm); err != nil {
		return err
	}
	return os.Rename(tmp, doc.Path)
}
