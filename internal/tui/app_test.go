package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/roster/internal/config"
	"github.com/jask/roster/internal/nav"
	"github.com/jask/roster/internal/roster"
)

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	for _, fn := range mutate {
		fn(&cfg)
	}
	return New(cfg, nil)
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// press sends a key and feeds back the message of any app-level command it
// returns (status and navigation); textinput commands are dropped.
func press(t *testing.T, a *App, k tea.KeyType) tea.Msg {
	t.Helper()
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg.(type) {
	case StatusMsg, NavigatedMsg:
		a.Update(msg)
	}
	return msg
}

func homeOf(t *testing.T, a *App) *HomeScreen {
	t.Helper()
	h, ok := a.Screen().(*HomeScreen)
	if !ok {
		t.Fatalf("active screen = %T, want *HomeScreen", a.Screen())
	}
	return h
}

func resultOf(t *testing.T, a *App) *ResultScreen {
	t.Helper()
	r, ok := a.Screen().(*ResultScreen)
	if !ok {
		t.Fatalf("active screen = %T, want *ResultScreen", a.Screen())
	}
	return r
}

func TestHomeStartsFromSeed(t *testing.T) {
	a := newTestApp(t)
	h := homeOf(t, a)
	if h.Store().Len() != 3 {
		t.Fatalf("seeded records = %d, want 3", h.Store().Len())
	}
	view := a.View()
	for _, name := range roster.DefaultSeed() {
		if !strings.Contains(view, name) {
			t.Errorf("view missing seed %q:\n%s", name, view)
		}
	}
	if !strings.Contains(view, "Enter a student name") {
		t.Errorf("view missing prompt label:\n%s", view)
	}
}

func TestTypingTracksPendingRecord(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "Bud")
	if got := homeOf(t, a).Store().Pending().Name; got != "Bud" {
		t.Fatalf("pending = %q, want %q", got, "Bud")
	}
}

func TestEnterAppendsAndClearsInput(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "Budi")
	msg := press(t, a, tea.KeyEnter)

	h := homeOf(t, a)
	snap := h.Store().Snapshot()
	if len(snap) != 4 || snap[3].Name != "Budi" {
		t.Fatalf("snapshot = %v, want Budi appended", snap)
	}
	if h.input.Value() != "" || h.Store().Pending().Name != "" {
		t.Fatalf("input not cleared: field=%q pending=%q", h.input.Value(), h.Store().Pending().Name)
	}
	if st, ok := msg.(StatusMsg); !ok || !strings.Contains(st.Text, "Budi") {
		t.Fatalf("status = %#v", msg)
	}
}

func TestEnterIgnoresBlankAndKeepsField(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "   ")
	if msg := press(t, a, tea.KeyEnter); msg != nil {
		t.Fatalf("blank enter produced %#v", msg)
	}
	h := homeOf(t, a)
	if h.Store().Len() != 3 {
		t.Fatalf("records = %d, want 3", h.Store().Len())
	}
	if h.input.Value() != "   " {
		t.Fatalf("field = %q, want it kept", h.input.Value())
	}
}

func TestNavigateWithEmptyStoreDoesNothing(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.Seed.Names = nil })
	msg := press(t, a, tea.KeyCtrlN)

	if _, ok := msg.(NavigatedMsg); ok {
		t.Fatalf("navigation fired on empty store")
	}
	if a.State() != nav.StateHome {
		t.Fatalf("state = %v, want home", a.State())
	}
	homeOf(t, a)
	if !strings.Contains(a.View(), "add a name first") {
		t.Fatalf("missing empty-store hint:\n%s", a.View())
	}
}

func TestEndToEndHomeToResult(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "Budi")
	press(t, a, tea.KeyEnter)
	msg := press(t, a, tea.KeyCtrlN)

	nm, ok := msg.(NavigatedMsg)
	if !ok {
		t.Fatalf("ctrl+n produced %#v, want NavigatedMsg", msg)
	}
	want := `[{"name":"Tanu"},{"name":"Tina"},{"name":"Tono"},{"name":"Budi"}]`
	if nm.Transition.Token != want {
		t.Fatalf("token = %s, want %s", nm.Transition.Token, want)
	}
	if a.State() != nav.StateResult {
		t.Fatalf("state = %v, want result", a.State())
	}

	r := resultOf(t, a)
	got := r.Records()
	names := make([]string, len(got))
	for i, rec := range got {
		names[i] = rec.Name
	}
	if strings.Join(names, ",") != "Tanu,Tina,Tono,Budi" {
		t.Fatalf("result records = %v", names)
	}
	view := a.View()
	if !strings.Contains(view, "Students") || !strings.Contains(view, "4 received") {
		t.Fatalf("result view:\n%s", view)
	}
}

func TestResultConsumesTokenOnce(t *testing.T) {
	a := newTestApp(t)
	msg := press(t, a, tea.KeyCtrlN)
	first := resultOf(t, a)

	a.Update(msg)
	if resultOf(t, a) != first {
		t.Fatalf("second NavigatedMsg replaced the result screen")
	}
}

func TestResultHasNoWayBack(t *testing.T) {
	a := newTestApp(t)
	press(t, a, tea.KeyCtrlN)

	for _, k := range []tea.KeyType{tea.KeyCtrlN, tea.KeyEnter, tea.KeyBackspace} {
		a.Update(tea.KeyMsg{Type: k})
		resultOf(t, a)
	}
	if a.State() != nav.StateResult {
		t.Fatalf("state = %v, want result", a.State())
	}
}

func TestResultQuit(t *testing.T) {
	a := newTestApp(t)
	press(t, a, tea.KeyCtrlN)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestHomeTypesQInsteadOfQuitting(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "q")
	if got := homeOf(t, a).Store().Pending().Name; got != "q" {
		t.Fatalf("pending = %q, want q", got)
	}
}

func TestEscQuitsHome(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc did not quit")
	}
}

func TestRawResultView(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.UI.ResultView = config.ResultViewRaw })
	press(t, a, tea.KeyCtrlN)

	view := a.View()
	if !strings.Contains(view, `[{"name":"Tanu"},{"name":"Tina"},{"name":"Tono"}]`) {
		t.Fatalf("raw view missing token:\n%s", view)
	}
}

func TestSimilarNameHint(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "Tini")
	if view := a.View(); !strings.Contains(view, "similar to: Tina") {
		t.Fatalf("missing similar hint:\n%s", view)
	}

	b := newTestApp(t, func(c *config.Config) { c.UI.SimilarDistance = 0 })
	typeText(b, "Tini")
	if view := b.View(); strings.Contains(view, "similar to") {
		t.Fatalf("hint shown with distance 0:\n%s", view)
	}
}

func TestNewHomeScreenReseeds(t *testing.T) {
	cfg := config.Default()
	gate := nav.NewGate(nil)
	first := NewHomeScreen(cfg, gate, nil)
	first.Store().Append("Budi")

	second := NewHomeScreen(cfg, gate, nil)
	if second.Store().Len() != 3 {
		t.Fatalf("rebuilt screen has %d records, want 3", second.Store().Len())
	}
}

func TestResultScreenBadRoute(t *testing.T) {
	cfg := config.Default()
	r := NewResultScreen(cfg, "home", discardLogger())
	if len(r.Records()) != 0 {
		t.Fatalf("records = %v, want none", r.Records())
	}
	r = NewResultScreen(cfg, nav.BuildResultRoute("not json"), discardLogger())
	if len(r.Records()) != 0 {
		t.Fatalf("records = %v, want none", r.Records())
	}
	if !strings.Contains(r.View(80, 24), "0 received") {
		t.Fatalf("view:\n%s", r.View(80, 24))
	}
}
