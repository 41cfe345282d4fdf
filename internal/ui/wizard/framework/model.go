// Package framework renders a wizard.Controller as a BubbleTea program.
//
// The controller decides which step is active and holds the form state;
// this package mounts the matching pages, routes key presses to them,
// draws the step tabs and runs the final submission.
package framework

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/stepper/internal/wizard"
)

// SubmitFunc delivers the final form state. It runs outside the update
// loop; its error is shown to the user and never changes the form state.
type SubmitFunc func(ctx context.Context, state wizard.State) error

// Result is the outcome of running a wizard.
type Result struct {
	State     wizard.State
	Submitted bool
	Cancelled bool
	// SubmitErr is the last submission error if the user quit without a
	// successful submission.
	SubmitErr error
}

// submitDoneMsg carries the outcome of an asynchronous submission.
type submitDoneMsg struct {
	err error
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithHeader sets the header page used when the wizard definition has no
// header of its own.
func WithHeader(p Page) ModelOption {
	return func(m *Model) { m.fallbackHeader = p }
}

// WithFooter sets the footer page used when the wizard definition has no
// footer of its own.
func WithFooter(p Page) ModelOption {
	return func(m *Model) { m.fallbackFooter = p }
}

// WithSubmit sets the function called when a page requests submission.
func WithSubmit(fn SubmitFunc) ModelOption {
	return func(m *Model) { m.submit = fn }
}

// Model hosts a wizard controller inside a BubbleTea program.
type Model struct {
	ctx   context.Context
	title string
	ctrl  *wizard.Controller[Page]

	fallbackHeader Page
	fallbackFooter Page
	header         Page
	footer         Page

	page    Page   // mounted page of the active step
	pageKey string // key of the mounted step
	index   int    // index the mounted step was at
	mounted bool
	visited map[string]bool // steps the user has moved forward past
	submit  SubmitFunc
	spinner spinner.Model
	busy    bool
	lastErr error
	done    bool
	result  Result
	width   int
	height  int
}

// NewModel creates a model for ctrl. The controller is provided to every
// page through the context passed to Update and View.
func NewModel(ctx context.Context, title string, ctrl *wizard.Controller[Page], opts ...ModelOption) *Model {
	m := &Model{
		ctx:     wizard.Provide(ctx, ctrl),
		title:   title,
		ctrl:    ctrl,
		visited: make(map[string]bool),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   60,
		height:  20,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Context returns the context pages receive, with the wizard in scope.
func (m *Model) Context() context.Context {
	return m.ctx
}

// Controller returns the wizard controller.
func (m *Model) Controller() *wizard.Controller[Page] {
	return m.ctrl
}

// Result returns the outcome so far.
func (m *Model) Result() Result {
	r := m.result
	r.State = m.ctrl.Snapshot().FormState
	if !r.Submitted {
		r.SubmitErr = m.lastErr
	}
	return r
}

// CurrentStepKey returns the key of the mounted step page.
func (m *Model) CurrentStepKey() string {
	return m.pageKey
}

// Run executes the wizard and returns when it is submitted or cancelled.
// The TUI renders to stderr so stdout remains available for the
// submitted data.
func (m *Model) Run() (Result, error) {
	if m.ctrl.Len() == 0 {
		return Result{}, fmt.Errorf("wizard has no steps")
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(m,
		tea.WithContext(m.ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return m.Result(), err
	}
	return finalModel.(*Model).Result(), nil
}

// BubbleTea Model interface

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	wc := m.ctrl.Snapshot()

	m.header = m.fallbackHeader
	if render, ok := m.ctrl.Header(); ok {
		m.header = render(wc)
	}
	m.footer = m.fallbackFooter
	if render, ok := m.ctrl.Footer(); ok {
		m.footer = render(wc)
	}
	if m.header != nil {
		cmds = append(cmds, m.header.Init())
	}
	if m.footer != nil {
		cmds = append(cmds, m.footer.Init())
	}
	cmds = append(cmds, m.sync())
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SubmitRequest:
		if m.busy {
			return m, nil
		}
		// Without a submitter the state is handed back through Result.
		if m.submit == nil {
			m.finish(Result{Submitted: true})
			return m, tea.Quit
		}
		m.busy = true
		m.lastErr = nil
		return m, tea.Batch(m.spinner.Tick, m.runSubmit(msg.State))

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.finish(Result{Submitted: true})
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.finish(Result{Cancelled: true})
		return m, tea.Quit
	}
	// Input is frozen while the submission is in flight.
	if m.busy {
		return m, nil
	}

	var (
		cmd     tea.Cmd
		handled bool
	)
	if m.page != nil {
		cmd, handled = m.page.Update(m.ctx, msg)
	}
	if !handled && m.footer != nil {
		cmd, handled = m.footer.Update(m.ctx, msg)
	}
	if !handled && m.header != nil {
		cmd, handled = m.header.Update(m.ctx, msg)
	}
	if !handled && msg.String() == "esc" {
		m.finish(Result{Cancelled: true})
		return m, tea.Quit
	}

	return m, tea.Batch(cmd, m.sync())
}

// sync remounts the step page when the controller's active step changed
// identity. A step that keeps its key keeps its page and input state.
func (m *Model) sync() tea.Cmd {
	step, ok := m.ctrl.Current()
	if !ok {
		m.page, m.pageKey, m.mounted = nil, "", false
		return nil
	}
	idx := m.ctrl.Index()
	key := step.Key()
	if m.mounted && key == m.pageKey {
		m.index = idx
		return nil
	}
	if m.mounted && idx > m.index {
		m.visited[m.pageKey] = true
	}

	m.page = nil
	if step.Render != nil {
		m.page = step.Render(m.ctrl.Snapshot())
	}
	m.pageKey = key
	m.index = idx
	m.mounted = true
	if m.page == nil {
		return nil
	}
	return m.page.Init()
}

func (m *Model) runSubmit(state wizard.State) tea.Cmd {
	ctx, submit := m.ctx, m.submit
	return func() tea.Msg {
		return submitDoneMsg{err: submit(ctx, state)}
	}
}

func (m *Model) finish(r Result) {
	m.done = true
	m.result = r
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	// Title
	if m.title != "" {
		b.WriteString(TitleStyle().Render(m.title))
		b.WriteString("\n\n")
	}

	if m.header != nil {
		if v := m.header.View(m.ctx); v != "" {
			b.WriteString(v)
			b.WriteString("\n\n")
		}
	}

	if m.ctrl.Len() > 1 {
		b.WriteString(m.renderStepTabs())
		b.WriteString("\n\n")
	}

	if step, ok := m.ctrl.Current(); ok && step.DisplayID() != "" {
		b.WriteString(StepHeadingStyle().Render(step.DisplayID()))
		b.WriteString("\n\n")
	}
	if m.page != nil {
		b.WriteString(m.page.View(m.ctx))
		b.WriteString("\n")
	}

	if m.footer != nil {
		if v := m.footer.View(m.ctx); v != "" {
			b.WriteString("\n")
			b.WriteString(v)
			b.WriteString("\n")
		}
	}

	switch {
	case m.busy:
		b.WriteString("\n" + m.spinner.View() + " Submitting...\n")
	case m.lastErr != nil:
		b.WriteString("\n" + ErrorStyle().Render("Submission failed: "+m.lastErr.Error()) + "\n")
	}

	// Help text
	help := "esc cancel"
	if m.page != nil && m.page.Help() != "" {
		help = m.page.Help()
	}
	b.WriteString(HelpStyle().Render(help))

	return BorderStyle().Render(b.String())
}

func (m *Model) renderStepTabs() string {
	steps := m.ctrl.Steps()
	current := m.ctrl.Index()
	tabs := make([]string, 0, len(steps))

	for i, step := range steps {
		isActive := i == current
		isConfirmed := m.visited[step.Key()]
		label := fmt.Sprintf("%d. %s", i+1, step.DisplayID())

		var tabText string
		switch {
		case isActive && isConfirmed:
			// Current step that's also confirmed (went back to edit)
			tabText = StepCheckStyle().Render("✓ ") + StepActiveStyle().Render(label)
		case isActive:
			tabText = "  " + StepActiveStyle().Render(label)
		case isConfirmed:
			tabText = StepCheckStyle().Render("✓ ") + StepCompletedStyle().Render(label)
		default:
			tabText = "  " + StepInactiveStyle().Render(label)
		}

		tabs = append(tabs, tabText)
	}

	return strings.Join(tabs, StepArrowStyle().Render(" → "))
}
