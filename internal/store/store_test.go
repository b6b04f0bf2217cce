package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.md", "two")
	write(t, dir, "a.md", "one")
	write(t, dir, "sub/c.markdown", "three")
	write(t, dir, "ignore.txt", "not a document")
	write(t, dir, ".hidden/d.md", "hidden dirs are skipped")

	docs, err := Store{Dir: dir}.ListDocuments()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var ids []string
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	want := []string{"a.md", "b.md", "sub/c.markdown"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestResolveAndReadWrite(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "sub/a.md", "hello\n")
	st := Store{Dir: dir}

	doc, err := st.Resolve("sub/a.md")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if doc.ID != "sub/a.md" {
		t.Fatalf("expected id to round-trip, got %q", doc.ID)
	}

	content, err := st.ReadText(doc)
	if err != nil || content != "hello\n" {
		t.Fatalf("read: %q, %v", content, err)
	}

	if err := st.WriteText(doc, "rewritten\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	content, err = st.ReadText(doc)
	if err != nil || content != "rewritten\n" {
		t.Fatalf("read after write: %q, %v", content, err)
	}
}

func TestResolveNotFound(t *testing.T) {
	st := Store{Dir: t.TempDir()}
	if _, err := st.Resolve("missing.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// Ids must not escape the vault root.
	if _, err := st.Resolve("../outside.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for escaping id, got %v", err)
	}
}

func TestReadTextGoneDocument(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.md", "x")
	st := Store{Dir: dir}

	doc, err := st.Resolve("a.md")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := os.Remove(doc.Path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := st.ReadText(doc); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestDiscoverDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, markerDirName), 0o755); err != nil {
		t.Fatalf("mkdir marker: %v", err)
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	found, ok := DiscoverDir(nested)
	if !ok || found != dir {
		t.Fatalf("expected to discover %q from %q, got %q ok=%v", dir, nested, found, ok)
	}
}
