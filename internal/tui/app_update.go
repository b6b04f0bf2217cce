package tui

import (
	"tasknav/internal/tasks"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// refilterMsg is the debounce tick. Only a tick whose seq matches the model's
// current refilterSeq triggers a filter pass; anything older was superseded
// by a later keystroke.
type refilterMsg struct {
	seq int
}

func (m searchModel) Init() tea.Cmd { return textinput.Blink }

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case refilterMsg:
		if msg.seq != m.refilterSeq {
			return m, nil
		}
		m.applyFilter()
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			m.showMinibuffer("Editor failed: " + msg.err.Error())
			return m, nil
		}
		// Task opened and the editor session is over: the overlay is done.
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m searchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keystroke clears a lingering notice.
	m.minibufferText = ""

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.commitSelection()

	case "down", "ctrl+n":
		m.cur.next()
		m.ensureCursorVisible()
		m.updatePreview()
		return m, nil

	case "up", "ctrl+p":
		m.cur.prev()
		m.ensureCursorVisible()
		m.updatePreview()
		return m, nil

	case "tab", "ctrl+t":
		// Completed/incomplete is a strict partition toggle and re-filters
		// immediately, not on the debounce timer.
		m.wantCompleted = !m.wantCompleted
		m.refilterSeq++ // a pending debounced pass would now be stale
		m.applyFilter()
		return m, nil

	case "ctrl+r":
		m.rebuildCorpus()
		return m, nil

	case "ctrl+v":
		m.showPreview = !m.showPreview
		m.ensureCursorVisible()
		m.updatePreview()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.scheduleRefilter())
	}
	return m, cmd
}

func (m searchModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cur.prev()
		m.ensureCursorVisible()
		m.updatePreview()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.cur.next()
		m.ensureCursorVisible()
		m.updatePreview()
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row := msg.Y - resultsTop
	if row < 0 || row >= m.visibleRows() {
		return m, nil
	}
	idx := m.scroll + row
	if idx < 0 || idx >= len(m.results) {
		return m, nil
	}

	if msg.X >= checkboxColMin && msg.X <= checkboxColMax {
		// Click on the row's checkbox: toggle that task only, selection stays.
		rec := m.results[idx]
		if err := tasks.ApplyCompletion(m.st, rec, !rec.Completed); err != nil {
			m.showMinibuffer(noticeForMutation(err))
		}
		return m, nil
	}

	// Click anywhere else on the row selects it and opens it.
	if m.cur.selectAt(idx) {
		m.ensureCursorVisible()
		m.updatePreview()
		return m.commitSelection()
	}
	return m, nil
}

// commitSelection opens the selected task at its source line. No-op when the
// view is empty.
func (m searchModel) commitSelection() (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil {
		return m, nil
	}
	doc, err := m.st.Resolve(t.DocumentID)
	if err != nil {
		m.showMinibuffer("Document is gone; re-search (ctrl+r) to refresh")
		return m, nil
	}
	return m, openInEditor(doc.Path, t.LineNumber)
}
