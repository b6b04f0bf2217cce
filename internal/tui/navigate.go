package tui

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type editorDoneMsg struct {
	err error
}

func editorName() string {
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return "vi"
}

// openInEditor opens the document at the task's line in $VISUAL/$EDITOR.
// The `+N` line argument is understood by vi/vim/nano/micro and friends;
// editors that ignore it still open the right file.
func openInEditor(path string, line int) tea.Cmd {
	args := strings.Fields(editorName())
	if len(args) == 0 {
		args = []string{"vi"}
	}
	args = append(args, "+"+strconv.Itoa(line), path)

	cmd := exec.Command(args[0], args[1:]...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	})
}
