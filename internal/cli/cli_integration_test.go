package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasknav/internal/model"
)

func writeVault(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "- [ ] buy milk\n- [x] pay rent #bills\nplain text\n"
	if err := os.WriteFile(filepath.Join(dir, "today.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTasksList_DefaultPartition(t *testing.T) {
	dir := writeVault(t)

	out, err := runCLI(t, "tasks", "list", "--dir", dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var got []model.Task
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Text != "buy milk" || got[0].Completed {
		t.Fatalf("expected the incomplete task, got %+v", got)
	}
	if got[0].DocumentID != "today.md" || got[0].LineNumber != 1 {
		t.Fatalf("unexpected locator: %+v", got[0])
	}
}

func TestTasksList_QueryAndCompleted(t *testing.T) {
	dir := writeVault(t)

	out, err := runCLI(t, "tasks", "list", "--dir", dir, "--query", "pay", "--completed")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []model.Task
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Text != "pay rent #bills" {
		t.Fatalf("expected the completed rent task, got %+v", got)
	}

	// Query that matches nothing in the chosen partition.
	out, err = runCLI(t, "tasks", "list", "--dir", dir, "--query", "pay")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty list, got %q", out)
	}
}

func TestTasksList_EDNFormat(t *testing.T) {
	dir := writeVault(t)

	out, err := runCLI(t, "tasks", "list", "--dir", dir, "--format", "edn")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, `:text "buy milk"`) {
		t.Fatalf("expected EDN output, got %q", out)
	}
}

func TestTasksToggle(t *testing.T) {
	dir := writeVault(t)

	if _, err := runCLI(t, "tasks", "toggle", "today.md", "1", "--dir", dir); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "today.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "- [x] buy milk\n- [x] pay rent #bills\nplain text\n"
	if string(b) != want {
		t.Fatalf("document content:\n got %q\nwant %q", string(b), want)
	}

	// Toggling back restores the original bytes.
	if _, err := runCLI(t, "tasks", "toggle", "today.md", "1", "--dir", dir); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	b, _ = os.ReadFile(filepath.Join(dir, "today.md"))
	if !strings.HasPrefix(string(b), "- [ ] buy milk\n") {
		t.Fatalf("expected the checkbox restored, got %q", string(b))
	}
}

func TestTasksToggle_NotAChecklistLine(t *testing.T) {
	dir := writeVault(t)
	if _, err := runCLI(t, "tasks", "toggle", "today.md", "3", "--dir", dir); err == nil {
		t.Fatalf("expected an error for a plain text line")
	}
}
