package framework

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/stepper/internal/wizard"
)

// Page is the renderable unit of a wizard: the header, each step body and
// the footer are all pages.
//
// Pages read the wizard through the context they are given (see
// [wizard.Use]) and change it only through the snapshot's operations.
type Page interface {
	// Init returns an initial command when the page is mounted.
	Init() tea.Cmd

	// Update handles a key press. handled reports whether the page
	// consumed the key; unhandled keys are offered to the footer and then
	// to the wizard itself.
	Update(ctx context.Context, msg tea.KeyPressMsg) (cmd tea.Cmd, handled bool)

	// View renders the page.
	View(ctx context.Context) string

	// Help returns the key help for this page, or "".
	Help() string
}

// Option represents a selectable item in list-based fields.
type Option struct {
	Label       string // Display text
	Value       any    // Actual value
	Description string // Optional description (for disabled reason)
	Disabled    bool   // Whether option is disabled/unselectable
}

// SubmitRequest asks the wizard to hand State to its submitter.
type SubmitRequest struct {
	State wizard.State
}

// RequestSubmit returns a command that asks the running wizard to submit
// state. Pages return it from Update on their final action.
func RequestSubmit(state wizard.State) tea.Cmd {
	return func() tea.Msg {
		return SubmitRequest{State: state.Clone()}
	}
}

type textPage struct {
	text string
}

// Text returns a page that renders fixed text and ignores input.
func Text(text string) Page {
	return textPage{text: text}
}

func (p textPage) Init() tea.Cmd { return nil }

func (p textPage) Update(context.Context, tea.KeyPressMsg) (tea.Cmd, bool) {
	return nil, false
}

func (p textPage) View(context.Context) string {
	return InfoStyle().Render(p.text)
}

func (p textPage) Help() string { return "" }
