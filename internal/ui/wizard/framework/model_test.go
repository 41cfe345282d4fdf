package framework

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/stepper/internal/wizard"
)

// keyMsg creates a tea.KeyPressMsg from a string key.
func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		// Single character key
		if len(key) == 1 {
			r := rune(key[0])
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

// mockPage handles the keys in its handles set and records what it got.
type mockPage struct {
	name    string
	handles map[string]func(ctx context.Context) tea.Cmd
	keys    []string
}

func newMockPage(name string) *mockPage {
	return &mockPage{name: name, handles: make(map[string]func(ctx context.Context) tea.Cmd)}
}

func (p *mockPage) on(key string, fn func(ctx context.Context) tea.Cmd) *mockPage {
	p.handles[key] = fn
	return p
}

func (p *mockPage) Init() tea.Cmd { return nil }

func (p *mockPage) Update(ctx context.Context, msg tea.KeyPressMsg) (tea.Cmd, bool) {
	p.keys = append(p.keys, msg.String())
	fn, ok := p.handles[msg.String()]
	if !ok {
		return nil, false
	}
	return fn(ctx), true
}

func (p *mockPage) View(ctx context.Context) string {
	wc := wizard.Use(ctx)
	return p.name + " view " + wc.StepID
}

func (p *mockPage) Help() string { return "" }

func goNext(ctx context.Context) tea.Cmd {
	wizard.Use(ctx).GoToNextStep()
	return nil
}

func goPrev(ctx context.Context) tea.Cmd {
	wizard.Use(ctx).GoToPreviousStep()
	return nil
}

func submitState(ctx context.Context) tea.Cmd {
	return RequestSubmit(wizard.Use(ctx).FormState)
}

type fixture struct {
	ctrl   *wizard.Controller[Page]
	footer *mockPage
	mounts map[string]int
	pages  map[string]*mockPage
}

// newFixture builds a three-step wizard whose step pages go forward on
// "n", submit on "s" and record how often each step was mounted.
func newFixture() *fixture {
	f := &fixture{
		mounts: make(map[string]int),
		pages:  make(map[string]*mockPage),
	}
	f.footer = newMockPage("footer").on("pgdown", goNext).on("pgup", goPrev)

	render := func(wc wizard.Context) Page {
		f.mounts[wc.StepID]++
		p := newMockPage("page").on("n", goNext).on("s", submitState).on("x", func(context.Context) tea.Cmd { return nil })
		f.pages[wc.StepID] = p
		return p
	}
	f.ctrl = wizard.New[Page](wizard.Config[Page]{
		Steps: []wizard.Step[Page]{
			{ID: "one", Title: "One", Render: render},
			{ID: "two", Title: "Two", Render: render},
			{ID: "three", Title: "Three", Render: render},
		},
		Footer: func(wizard.Context) Page { return f.footer },
	}, wizard.WithInitialState(wizard.State{"name": "Ada"}))
	return f
}

func (f *fixture) model(opts ...ModelOption) *Model {
	m := NewModel(context.Background(), "Test", f.ctrl, opts...)
	m.Init()
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		_, cmd = m.Update(keyMsg(key))
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_InitMountsFirstStep(t *testing.T) {
	t.Parallel()

	f := newFixture()
	m := f.model()

	if got := m.CurrentStepKey(); got != "one" {
		t.Errorf("CurrentStepKey() = %q, want one", got)
	}
	if got := f.mounts["one"]; got != 1 {
		t.Errorf("mounts[one] = %d, want 1", got)
	}
}

func TestModel_KeyRouting(t *testing.T) {
	t.Parallel()

	f := newFixture()
	m := f.model()

	// Handled by the page: footer never sees it.
	press(m, "x")
	if len(f.footer.keys) != 0 {
		t.Errorf("footer got %v, want no keys", f.footer.keys)
	}

	// Unhandled by the page: offered to the footer.
	press(m, "pgdown")
	if got := f.footer.keys; len(got) != 1 || got[0] != "pgdown" {
		t.Errorf("footer keys = %v, want [pgdown]", got)
	}
	if got := m.CurrentStepKey(); got != "two" {
		t.Errorf("CurrentStepKey() = %q, want two", got)
	}
}

func TestModel_RemountsOnStepChange(t *testing.T) {
	t.Parallel()

	f := newFixture()
	m := f.model()

	press(m, "n", "n")
	if got := m.CurrentStepKey(); got != "three" {
		t.Fatalf("CurrentStepKey() = %q, want three", got)
	}

	// Clamped navigation keeps the mounted page.
	press(m, "n")
	if got := f.mounts["three"]; got != 1 {
		t.Errorf("mounts[three] = %d, want 1", got)
	}

	// Going back mounts a fresh page.
	press(m, "pgup")
	if got := f.mounts["two"]; got != 2 {
		t.Errorf("mounts[two] = %d, want 2", got)
	}
}

func TestModel_StepTabsMarkVisited(t *testing.T) {
	t.Parallel()

	f := newFixture()
	m := f.model()

	press(m, "n")
	if !m.visited["one"] {
		t.Error("visited[one] = false, want true")
	}
	if m.visited["two"] {
		t.Error("visited[two] = true, want false")
	}

	tabs := m.renderStepTabs()
	for _, label := range []string{"1. One", "2. Two", "3. Three", "✓"} {
		if !strings.Contains(tabs, label) {
			t.Errorf("renderStepTabs() missing %q:\n%s", label, tabs)
		}
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	f := newFixture()
	m := f.model(WithHeader(Text("fallback header")))
	view := m.render()

	for _, want := range []string{"Test", "fallback header", "page view one", "footer view one"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_FooterFallback(t *testing.T) {
	t.Parallel()

	render := func(wc wizard.Context) Page { return newMockPage("page") }
	ctrl := wizard.New[Page](wizard.Steps[Page]{
		{ID: "one", Render: render},
		{ID: "two", Render: render},
	})
	fallback := newMockPage("fallback footer").on("pgdown", goNext)

	m := NewModel(context.Background(), "Test", ctrl, WithFooter(fallback))
	m.Init()

	if view := m.render(); !strings.Contains(view, "fallback footer view one") {
		t.Errorf("View() missing fallback footer:\n%s", view)
	}
	press(m, "pgdown")
	if got := ctrl.Index(); got != 1 {
		t.Errorf("Index() after fallback footer pgdown = %d, want 1", got)
	}
}

func TestModel_ConfigHeaderFooterWinOverFallbacks(t *testing.T) {
	t.Parallel()

	f := newFixture()
	header := newMockPage("config header")
	f.ctrl.Reconfigure(wizard.Config[Page]{
		Header: func(wizard.Context) Page { return header },
		Steps:  f.ctrl.Steps(),
		Footer: func(wizard.Context) Page { return f.footer },
	})
	fallbackFooter := newMockPage("fallback footer").on("pgdown", goPrev)

	m := f.model(WithHeader(Text("fallback header")), WithFooter(fallbackFooter))
	view := m.render()

	for _, want := range []string{"config header view one", "footer view one"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	for _, unwanted := range []string{"fallback header", "fallback footer"} {
		if strings.Contains(view, unwanted) {
			t.Errorf("View() contains %q:\n%s", unwanted, view)
		}
	}

	press(m, "pgdown")
	if got := f.ctrl.Index(); got != 1 {
		t.Errorf("Index() after pgdown = %d, want 1 (config footer)", got)
	}
	if len(fallbackFooter.keys) != 0 {
		t.Errorf("fallback footer got %v, want no keys", fallbackFooter.keys)
	}
}

func TestModel_Cancel(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			m := newFixture().model()
			cmd := press(m, key)
			if !isQuit(cmd) {
				t.Errorf("Update(%s) cmd is not tea.Quit", key)
			}
			r := m.Result()
			if !r.Cancelled || r.Submitted {
				t.Errorf("Result() = %+v, want Cancelled", r)
			}
			if got := r.State.String("name"); got != "Ada" {
				t.Errorf("Result().State[name] = %q, want Ada", got)
			}
		})
	}
}

func TestModel_SubmitWithoutSubmitter(t *testing.T) {
	t.Parallel()

	m := newFixture().model()
	_, cmd := m.Update(SubmitRequest{State: wizard.State{"name": "Ada"}})

	if !isQuit(cmd) {
		t.Error("SubmitRequest cmd is not tea.Quit")
	}
	if r := m.Result(); !r.Submitted {
		t.Errorf("Result().Submitted = false, want true")
	}
}

func TestModel_SubmitSuccess(t *testing.T) {
	t.Parallel()

	var got wizard.State
	submit := func(_ context.Context, state wizard.State) error {
		got = state
		return nil
	}
	m := newFixture().model(WithSubmit(submit))

	// The page's "s" key yields the request command.
	cmd := press(m, "s")
	if cmd == nil {
		t.Fatal("press(s) cmd = nil, want request")
	}
	var req SubmitRequest
	for _, msg := range collect(cmd) {
		if r, ok := msg.(SubmitRequest); ok {
			req = r
		}
	}
	m.Update(req)
	if !m.busy {
		t.Fatal("busy = false after SubmitRequest, want true")
	}

	done := m.runSubmit(req.State)()
	_, cmd = m.Update(done)
	if !isQuit(cmd) {
		t.Error("successful submit cmd is not tea.Quit")
	}
	if got.String("name") != "Ada" {
		t.Errorf("submitted name = %q, want Ada", got.String("name"))
	}
	if r := m.Result(); !r.Submitted || r.SubmitErr != nil {
		t.Errorf("Result() = %+v, want Submitted without error", r)
	}
}

func TestModel_SubmitFailureKeepsState(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	f := newFixture()
	m := f.model(WithSubmit(func(context.Context, wizard.State) error { return errBoom }))
	press(m, "n", "n")

	m.Update(SubmitRequest{State: f.ctrl.Snapshot().FormState})

	// Input is ignored while the submission runs.
	press(m, "pgup")
	if got := f.ctrl.Index(); got != 2 {
		t.Errorf("Index() while busy = %d, want 2", got)
	}

	m.Update(submitDoneMsg{err: errBoom})
	if m.busy {
		t.Error("busy = true after failure, want false")
	}
	if got := f.ctrl.Index(); got != 2 {
		t.Errorf("Index() after failure = %d, want 2", got)
	}
	if got := f.ctrl.Snapshot().FormState.String("name"); got != "Ada" {
		t.Errorf("FormState[name] = %q, want Ada", got)
	}
	if view := m.render(); !strings.Contains(view, "Submission failed: boom") {
		t.Errorf("View() missing failure:\n%s", view)
	}
	r := m.Result()
	if r.Submitted || !errors.Is(r.SubmitErr, errBoom) {
		t.Errorf("Result() = %+v, want SubmitErr boom", r)
	}
}

func TestModel_RunWithoutSteps(t *testing.T) {
	t.Parallel()

	ctrl := wizard.New[Page](wizard.Steps[Page]{})
	m := NewModel(context.Background(), "Empty", ctrl)
	if _, err := m.Run(); err == nil {
		t.Error("Run() error = nil, want error for empty wizard")
	}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}
