package flows

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/stepper/internal/ui/wizard/framework"
	"github.com/raphi011/stepper/internal/ui/wizard/steps"
	"github.com/raphi011/stepper/internal/wizard"
)

// Form state keys written by the sign-up flow.
const (
	KeyEmail      = "email"
	KeyPassword   = "password"
	KeyFirstName  = "firstName"
	KeySurname    = "surName"
	KeyJob        = "job"
	KeyUniversity = "university"
	KeyEmployed   = "isEmployed"
)

// MinPasswordLength is the shortest password the credentials step accepts.
const MinPasswordLength = 8

// DefaultUniversities is offered when no list is configured.
var DefaultUniversities = []string{
	"Harvard University",
	"Stanford University",
	"MIT",
	"University of Oxford",
	"University of Cambridge",
}

// SignupParams configures the sign-up flow.
type SignupParams struct {
	Universities []string     // options for the university select; DefaultUniversities if empty
	Initial      wizard.State // optional pre-filled values
}

// SignupDefinition returns the structured wizard definition: a header
// showing progress, the three steps and a footer with unvalidated
// previous/next keys.
func SignupDefinition(params SignupParams) wizard.Config[framework.Page] {
	universities := params.Universities
	if len(universities) == 0 {
		universities = DefaultUniversities
	}

	return wizard.Config[framework.Page]{
		Header: func(wizard.Context) framework.Page { return headerPage{} },
		Steps: []wizard.Step[framework.Page]{
			{
				ID:     "credentials",
				Title:  "Account",
				Render: credentialsStep,
			},
			{
				ID:     "name",
				Title:  "Name",
				Render: nameStep,
			},
			{
				ID:    "employment",
				Title: "Employment",
				Render: func(wc wizard.Context) framework.Page {
					return employmentStep(wc, universities)
				},
			},
		},
		Footer: func(wizard.Context) framework.Page { return footerPage{} },
	}
}

// NewSignup creates the controller for the sign-up flow.
func NewSignup(params SignupParams) *wizard.Controller[framework.Page] {
	var opts []wizard.Option
	if len(params.Initial) > 0 {
		opts = append(opts, wizard.WithInitialState(params.Initial))
	}
	return wizard.New[framework.Page](SignupDefinition(params), opts...)
}

// SignupInteractive runs the sign-up wizard for ctrl and returns its
// outcome. submit receives the merged form state on the last step.
func SignupInteractive(ctx context.Context, ctrl *wizard.Controller[framework.Page], submit framework.SubmitFunc) (framework.Result, error) {
	model := framework.NewModel(ctx, "Sign up", ctrl, framework.WithSubmit(submit))
	return model.Run()
}

func credentialsStep(wc wizard.Context) framework.Page {
	email := steps.NewTextField(KeyEmail, "Email", "you@example.com").
		Required().
		WithRuneFilter(steps.RuneFilterNoSpaces).
		WithValidate(validateEmail)
	password := steps.NewTextField(KeyPassword, "Password", "").
		Required().
		Password().
		WithValidate(validatePassword)
	return steps.NewForm(wc, email, password)
}

func nameStep(wc wizard.Context) framework.Page {
	first := steps.NewTextField(KeyFirstName, "First name", "").Required()
	sur := steps.NewTextField(KeySurname, "Surname", "").Required()
	return steps.NewForm(wc, first, sur)
}

func employmentStep(wc wizard.Context, universities []string) framework.Page {
	options := make([]framework.Option, len(universities))
	for i, u := range universities {
		options[i] = framework.Option{Label: u, Value: u}
	}
	job := steps.NewTextField(KeyJob, "Job", "").Required()
	university := steps.NewSelect(KeyUniversity, "University", options).Required()
	employed := steps.NewCheckbox(KeyEmployed, "Employed")
	return steps.NewForm(wc, job, university, employed).
		WithIntro("Last step: enter on the final field submits.").
		SubmitOnLastStep()
}

func validateEmail(value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return fmt.Errorf("%q is not a valid email address", value)
	}
	return nil
}

var errPasswordTooShort = errors.New("password too short")

func validatePassword(value string) error {
	if len([]rune(value)) < MinPasswordLength {
		return fmt.Errorf("%w: need at least %d characters", errPasswordTooShort, MinPasswordLength)
	}
	return nil
}

// headerPage shows where the user is in the flow.
type headerPage struct{}

func (headerPage) Init() tea.Cmd { return nil }

func (headerPage) Update(context.Context, tea.KeyPressMsg) (tea.Cmd, bool) {
	return nil, false
}

func (headerPage) View(ctx context.Context) string {
	wc := wizard.Use(ctx)
	return framework.InfoStyle().Render(fmt.Sprintf("Step: %d/%d • %s",
		wc.CurrentStepIndex+1, wc.StepCount, wc.StepTitle))
}

func (headerPage) Help() string { return "" }

// footerPage moves between steps without validating them.
type footerPage struct{}

func (footerPage) Init() tea.Cmd { return nil }

func (footerPage) Update(ctx context.Context, msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "pgup":
		wizard.Use(ctx).GoToPreviousStep()
		return nil, true
	case "pgdown":
		wizard.Use(ctx).GoToNextStep()
		return nil, true
	}
	return nil, false
}

func (footerPage) View(ctx context.Context) string {
	wc := wizard.Use(ctx)
	var nav []string
	if !wc.IsFirstStep {
		nav = append(nav, "pgup previous")
	}
	if !wc.IsLastStep {
		nav = append(nav, "pgdown next")
	}
	line := framework.WarningStyle().Render("pgup/pgdown only move between steps; they don't validate.")
	if len(nav) == 0 {
		return line
	}
	return line + "\n" + framework.InfoStyle().Render(strings.Join(nav, " | "))
}

func (footerPage) Help() string { return "" }
