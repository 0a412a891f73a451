package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/roster/internal/config"
)

type homeKeys struct {
	Add      key.Binding
	Navigate key.Binding
	Quit     key.Binding
}

func newHomeKeys(labels config.LabelsConfig) homeKeys {
	return homeKeys{
		Add:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", labels.ButtonClick)),
		Navigate: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", labels.ButtonNavigate)),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k homeKeys) bindings() []key.Binding {
	return []key.Binding{k.Add, k.Navigate, k.Quit}
}

type resultKeys struct {
	Quit key.Binding
}

func newResultKeys() resultKeys {
	return resultKeys{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k resultKeys) bindings() []key.Binding {
	return []key.Binding{k.Quit}
}
