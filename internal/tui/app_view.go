package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tasknav/internal/model"

	xansi "github.com/charmbracelet/x/ansi"
)

// Column layout of a result row: one cell of left margin, then the checkbox.
// handleMouse uses these to tell a checkbox click from a row click.
const (
	checkboxColMin = 1
	checkboxColMax = 3
)

// tagPattern matches inline #tags. Tags are stripped from the displayed text
// only; filtering always runs against the raw extracted text.
var tagPattern = regexp.MustCompile(`#[\p{L}\p{N}_][\p{L}\p{N}_/-]*`)

func displayText(text string) string {
	stripped := tagPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(stripped), " ")
}

func (m searchModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	mode := "incomplete"
	if m.wantCompleted {
		mode = "completed"
	}
	b.WriteString(styleHeader().Render("tasknav"))
	b.WriteString("  ")
	b.WriteString(styleMuted().Render(m.st.Dir))
	b.WriteString("  ")
	b.WriteString(styleNotice().Render("[" + mode + "]"))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewResults(width))

	if m.showPreview {
		b.WriteString("\n")
		b.WriteString(m.viewPreview(width))
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter(width))
	return b.String()
}

func (m searchModel) viewResults(width int) string {
	rows := m.visibleRows()

	if len(m.results) == 0 {
		hint := "Type to search tasks"
		if strings.TrimSpace(m.input.Value()) != "" {
			hint = "No matching tasks"
		}
		return styleMuted().Render("  "+hint) + strings.Repeat("\n", rows-1)
	}

	end := m.scroll + rows
	if end > len(m.results) {
		end = len(m.results)
	}

	var b strings.Builder
	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderRow(i, m.results[i], width))
		if i != end-1 {
			b.WriteString("\n")
		}
	}
	// Keep the frame height stable so the footer does not jump around.
	for i := end - m.scroll; i < rows; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m searchModel) renderRow(i int, t *model.Task, width int) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	text := displayText(t.Text)
	loc := t.DocumentID + ":" + strconv.Itoa(t.LineNumber)

	// Right-align the locator; drop it entirely on very narrow terminals.
	avail := width - xansi.StringWidth(loc) - 2
	if avail < 12 {
		avail = width
		loc = ""
	}
	// " [x] " is 5 cells of margin+checkbox.
	maxText := avail - 5
	if maxText < 1 {
		maxText = 1
	}
	if xansi.StringWidth(text) > maxText {
		text = xansi.Cut(text, 0, maxText)
	}

	left := " " + box + " " + text
	gap := width - xansi.StringWidth(left) - xansi.StringWidth(loc) - 1
	if gap < 1 {
		gap = 1
	}

	if i == m.cur.index {
		return styleSelectedRow().Render(left + strings.Repeat(" ", gap) + loc + " ")
	}

	if t.Completed {
		left = " " + styleDoneBox().Render(box) + " " + styleMuted().Render(text)
	}
	out := left + strings.Repeat(" ", gap)
	if loc != "" {
		out += styleMuted().Render(loc)
	}
	return out
}

func (m searchModel) viewPreview(width int) string {
	if strings.TrimSpace(m.previewMD) == "" {
		return styleMuted().Render("  (no preview)")
	}
	body := renderMarkdown(m.previewMD, width-4)

	// Clamp to the reserved pane height.
	lines := strings.Split(body, "\n")
	if limit := m.previewHeight(); len(lines) > limit {
		lines = lines[:limit]
	}
	return strings.Join(lines, "\n")
}

func (m searchModel) viewFooter(width int) string {
	if m.minibufferText != "" {
		return styleNotice().Render(xansi.Cut(m.minibufferText, 0, width))
	}

	count := fmt.Sprintf("%d task(s)", len(m.results))
	help := "tab: completed  enter: open  ctrl+v: preview  ctrl+r: re-search  esc: quit"
	return styleMuted().Render(count + "   " + help)
}
