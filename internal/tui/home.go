package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/roster/internal/config"
	"github.com/jask/roster/internal/nav"
	"github.com/jask/roster/internal/roster"
)

// HomeScreen is the input form. It owns the roster for as long as it lives;
// a new HomeScreen starts again from the seed.
type HomeScreen struct {
	store   *roster.Store
	gate    *nav.Gate
	input   textinput.Model
	keys    homeKeys
	labels  config.LabelsConfig
	similar int
	logger  *slog.Logger
}

func NewHomeScreen(cfg config.Config, gate *nav.Gate, logger *slog.Logger) *HomeScreen {
	if logger == nil {
		logger = discardLogger()
	}
	inp := textinput.New()
	inp.Prompt = "> "
	inp.Placeholder = cfg.Labels.EnterItem
	inp.CharLimit = 64
	inp.Focus()
	return &HomeScreen{
		store:   roster.NewStore(cfg.Seed.Names...),
		gate:    gate,
		input:   inp,
		keys:    newHomeKeys(cfg.Labels),
		labels:  cfg.Labels,
		similar: cfg.UI.SimilarDistance,
		logger:  logger,
	}
}

func (h *HomeScreen) Title() string { return h.labels.EnterItem }

func (h *HomeScreen) Store() *roster.Store { return h.store }

func (h *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, h.keys.Add):
			return h, h.commit()
		case key.Matches(km, h.keys.Navigate):
			return h, h.navigate()
		}
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	h.store.SetPending(h.input.Value())
	return h, cmd
}

func (h *HomeScreen) commit() tea.Cmd {
	name := h.store.Pending().Name
	if !h.store.Commit() {
		h.logger.Debug("blank name ignored")
		return nil
	}
	h.input.Reset()
	h.logger.Debug("record added", "name", name, "records", h.store.Len())
	return statusCmd(fmt.Sprintf("added %q", name))
}

func (h *HomeScreen) navigate() tea.Cmd {
	tr, ok := h.gate.Navigate(h.store)
	if !ok {
		return statusCmd("add a name first")
	}
	return navigatedCmd(tr)
}

func (h *HomeScreen) Help() []key.Binding { return h.keys.bindings() }

func (h *HomeScreen) View(width, height int) string {
	if width > 8 {
		h.input.Width = width - 8
	}
	var hint []roster.Record
	if pending := h.store.Pending().Name; pending != "" {
		hint = h.store.Similar(pending, h.similar)
	}
	return renderHome(h.labels, h.input.View(), h.store.Snapshot(), hint)
}

func renderHome(labels config.LabelsConfig, input string, records, similar []roster.Record) string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(labels.EnterItem))
	b.WriteString("\n")
	b.WriteString(inputBox.Render(input))
	b.WriteString("\n")
	if len(similar) > 0 {
		names := make([]string, len(similar))
		for i, r := range similar {
			names[i] = r.Name
		}
		b.WriteString(hintStyle.Render("similar to: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderRecords(records))
	return b.String()
}

func renderRecords(records []roster.Record) string {
	if len(records) == 0 {
		return emptyStyle.Render("no students")
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = indexStyle.Render(fmt.Sprintf("%2d.", i+1)) + " " + itemStyle.Render(r.Name)
	}
	return strings.Join(lines, "\n")
}
