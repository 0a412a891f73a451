package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/roster/internal/codec"
	"github.com/jask/roster/internal/config"
	"github.com/jask/roster/internal/nav"
	"github.com/jask/roster/internal/roster"
)

// ResultScreen shows the roster handed over through the route. It is
// read-only and has no way back to the form.
type ResultScreen struct {
	title   string
	view    string
	token   string
	records []roster.Record
	keys    resultKeys
}

// NewResultScreen decodes the listData argument of route. A bad route or
// token shows an empty list.
func NewResultScreen(cfg config.Config, route string, logger *slog.Logger) *ResultScreen {
	if logger == nil {
		logger = discardLogger()
	}
	token, err := nav.ParseResultRoute(route)
	if err != nil {
		logger.Warn("result route rejected", "err", err)
	}
	return &ResultScreen{
		title:   cfg.Labels.ResultTitle,
		view:    cfg.UI.ResultView,
		token:   token,
		records: codec.Decode(token),
		keys:    newResultKeys(),
	}
}

func (r *ResultScreen) Title() string { return r.title }

func (r *ResultScreen) Records() []roster.Record { return r.records }

func (r *ResultScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, r.keys.Quit) {
		return r, tea.Quit
	}
	return r, nil
}

func (r *ResultScreen) Help() []key.Binding { return r.keys.bindings() }

func (r *ResultScreen) View(width, height int) string {
	if r.view == config.ResultViewRaw {
		return renderRaw(r.token, width)
	}
	return renderResult(r.records)
}

func renderResult(records []roster.Record) string {
	var b strings.Builder
	b.WriteString(countStyle.Render(fmt.Sprintf("%d received", len(records))))
	b.WriteString("\n\n")
	b.WriteString(renderRecords(records))
	return b.String()
}

func renderRaw(token string, width int) string {
	if token == "" {
		return emptyStyle.Render("no data")
	}
	style := rawStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(token)
}
