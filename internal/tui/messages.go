package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/roster/internal/nav"
)

// StatusMsg sets the one-line status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// NavigatedMsg is emitted by the home screen after the gate fired.
type NavigatedMsg struct {
	Transition nav.Transition
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func navigatedCmd(tr nav.Transition) tea.Cmd {
	return func() tea.Msg { return NavigatedMsg{Transition: tr} }
}
