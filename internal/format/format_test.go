package format

import (
	"bytes"
	"strings"
	"testing"
)

type payload struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Line      int    `json:"line"`
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []payload{{Text: "a", Line: 3}}, "json", false)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `[{"text":"a","completed":false,"line":3}]`
	if got != want {
		t.Fatalf("json output:\n got %s\nwant %s", got, want)
	}
}

func TestWriteEDN(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, payload{Text: "a", Completed: true, Line: 3}, "edn", false)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	// Map keys are sorted for deterministic output.
	want := `{:completed true, :line 3, :text "a"}`
	if got != want {
		t.Fatalf("edn output:\n got %s\nwant %s", got, want)
	}
}

func TestWriteEDNVector(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, []any{"a", 1, nil, true}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if got != `["a" 1 nil true]` {
		t.Fatalf("edn vector output: %s", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
