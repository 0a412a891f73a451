// Package tui is the Bubble Tea front end: a form screen that builds the
// roster and a read-only result screen reached through the navigation gate.
package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/roster/internal/config"
	"github.com/jask/roster/internal/nav"
)

// Screen is one full-window view. Update may return a different Screen to
// replace itself.
type Screen interface {
	Title() string
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Help() []key.Binding
}

// App ties together the screens and the navigation gate.
type App struct {
	cfg    config.Config
	logger *slog.Logger
	gate   *nav.Gate
	screen Screen
	help   help.Model

	width  int
	height int
	status string
	isErr  bool
}

func New(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = discardLogger()
	}
	gate := nav.NewGate(logger)
	return &App{
		cfg:    cfg,
		logger: logger,
		gate:   gate,
		screen: NewHomeScreen(cfg, gate, logger),
		help:   help.New(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("roster"), textinput.Blink)
}

// State reports where the navigation gate is.
func (a *App) State() nav.State { return a.gate.State() }

// Screen returns the active screen.
func (a *App) Screen() Screen { return a.screen }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case StatusMsg:
		a.status, a.isErr = m.Text, m.IsErr
		return a, nil
	case NavigatedMsg:
		return a, a.openResult(m.Transition)
	case tea.KeyMsg:
		a.status, a.isErr = "", false
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if _, home := a.screen.(*HomeScreen); home && m.Type == tea.KeyEsc {
			return a, tea.Quit
		}
	}
	var cmd tea.Cmd
	a.screen, cmd = a.screen.Update(msg)
	return a, cmd
}

func (a *App) openResult(tr nav.Transition) tea.Cmd {
	route, ok := a.gate.Consume()
	if !ok {
		a.logger.Warn("transition already consumed", "transition", tr.ID)
		return nil
	}
	a.screen = NewResultScreen(a.cfg, route, a.logger)
	a.logger.Debug("result screen opened", "transition", tr.ID, "route_bytes", len(route))
	return nil
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.screen.Title()))
	b.WriteString("\n\n")
	b.WriteString(a.screen.View(a.width, a.height))
	b.WriteString("\n\n")
	if a.status != "" {
		style := statusStyle
		if a.isErr {
			style = statusErrStyle
		}
		b.WriteString(style.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(a.help.ShortHelpView(a.screen.Help())))
	return appStyle.Render(b.String())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
