package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tasknav/internal/model"
	"tasknav/internal/store"
	"tasknav/internal/tasks"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// queryDebounce is the quiet period between the last query keystroke and the
// re-filter pass. Each keystroke cancels and restarts the pending timer.
const queryDebounce = 300 * time.Millisecond

// resultsTop is the screen row of the first result (header, query input,
// blank line above it). Mouse hit-testing and View must agree on this.
const resultsTop = 3

type searchModel struct {
	st    store.Store
	index *tasks.Index

	input         textinput.Model
	wantCompleted bool

	// results is the current filtered view: always replaced wholesale by a
	// filter pass, never patched.
	results []*model.Task
	cur     cursor
	scroll  int

	// refilterSeq tags the pending debounce tick; bumping it cancels whatever
	// tick is in flight (stale ticks are ignored in Update).
	refilterSeq int

	width  int
	height int

	showPreview bool
	previewMD   string

	minibufferText string
}

func newSearchModel(st store.Store, index *tasks.Index) searchModel {
	input := textinput.New()
	input.Placeholder = "Search tasks"
	input.Prompt = "> "
	input.PromptStyle = lipgloss.NewStyle().Foreground(colorAccent)
	input.Focus()

	m := searchModel{
		st:    st,
		index: index,
		input: input,
	}
	m.cur.reset(0)
	return m
}

func (m *searchModel) showMinibuffer(text string) {
	m.minibufferText = text
}

// applyFilter recomputes the filtered view from the corpus and resets the
// selection to the top (or to "none" when the view is empty).
func (m *searchModel) applyFilter() {
	m.results = tasks.Filter(m.index.Records(), m.input.Value(), m.wantCompleted)
	m.cur.reset(len(m.results))
	m.scroll = 0
	m.updatePreview()
}

// scheduleRefilter arms the single debounce slot. Only the tick carrying the
// latest sequence number survives; earlier ticks arrive and are dropped.
func (m *searchModel) scheduleRefilter() tea.Cmd {
	m.refilterSeq++
	seq := m.refilterSeq
	return tea.Tick(queryDebounce, func(time.Time) tea.Msg {
		return refilterMsg{seq: seq}
	})
}

// rebuildCorpus is the explicit user re-search: full index rebuild plus an
// immediate (non-debounced) re-filter.
func (m *searchModel) rebuildCorpus() {
	m.refilterSeq++ // drop any pending debounce tick
	if err := m.index.Rebuild(); err != nil {
		m.showMinibuffer("Re-search failed: " + err.Error())
		return
	}
	m.applyFilter()
	if n := m.index.SkippedDocuments(); n > 0 {
		m.showMinibuffer(fmt.Sprintf("Skipped %d unreadable document(s)", n))
	}
}

func (m searchModel) selectedTask() *model.Task {
	if !m.cur.active() || m.cur.index >= len(m.results) {
		return nil
	}
	return m.results[m.cur.index]
}

// visibleRows is how many result rows fit between the query input and the
// footer, leaving room for the preview pane when it is open.
func (m searchModel) visibleRows() int {
	h := m.height
	if h <= 0 {
		h = 24
	}
	rows := h - resultsTop - 2 // footer + spacer
	if m.showPreview {
		rows -= m.previewHeight() + 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m searchModel) previewHeight() int {
	h := m.height / 3
	if h < 4 {
		h = 4
	}
	return h
}

func (m *searchModel) ensureCursorVisible() {
	if !m.cur.active() {
		m.scroll = 0
		return
	}
	rows := m.visibleRows()
	if m.cur.index < m.scroll {
		m.scroll = m.cur.index
	}
	if m.cur.index >= m.scroll+rows {
		m.scroll = m.cur.index - rows + 1
	}
}

// updatePreview re-reads the selected task's document and keeps a small
// excerpt around its line for the preview pane. Best effort: any read problem
// just blanks the pane.
func (m *searchModel) updatePreview() {
	m.previewMD = ""
	if !m.showPreview {
		return
	}
	t := m.selectedTask()
	if t == nil {
		return
	}
	doc, err := m.st.Resolve(t.DocumentID)
	if err != nil {
		return
	}
	content, err := m.st.ReadText(doc)
	if err != nil {
		return
	}

	lines := strings.Split(content, "\n")
	start := t.LineNumber - 1 - 2
	if start < 0 {
		start = 0
	}
	end := t.LineNumber - 1 + 6
	if end > len(lines) {
		end = len(lines)
	}
	m.previewMD = strings.Join(lines[start:end], "\n")
}

func noticeForMutation(err error) string {
	switch {
	case errors.Is(err, tasks.ErrMissingDocument):
		return "Document is gone; re-search (ctrl+r) to refresh"
	case errors.Is(err, tasks.ErrStaleLocator):
		return "Line changed on disk; re-search (ctrl+r) to refresh"
	default:
		return "Toggle failed: " + err.Error()
	}
}
