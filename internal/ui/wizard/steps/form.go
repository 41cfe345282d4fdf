package steps

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/stepper/internal/ui/wizard/framework"
	"github.com/raphi011/stepper/internal/wizard"
)

// Form is a step page made of fields. Pressing enter on the last field
// validates every field, writes their values to the form state and moves
// to the next step. On the wizard's last step it requests submission
// instead, if enabled with SubmitOnLastStep.
type Form struct {
	intro  string
	fields []Field
	focus  int
	errs   map[string]error
	submit bool
}

// NewForm creates a form and preloads its fields from the snapshot, so
// values entered earlier survive leaving and re-entering the step.
func NewForm(wc wizard.Context, fields ...Field) *Form {
	for _, field := range fields {
		if v, ok := wc.FormState[field.Key()]; ok {
			field.Load(v)
		}
	}
	return &Form{
		fields: fields,
		errs:   make(map[string]error),
	}
}

// WithIntro sets a line of text shown above the fields.
func (f *Form) WithIntro(intro string) *Form {
	f.intro = intro
	return f
}

// SubmitOnLastStep makes the form request submission when it completes
// on the wizard's last step.
func (f *Form) SubmitOnLastStep() *Form {
	f.submit = true
	return f
}

func (f *Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.focus = 0
	return f.fields[0].Focus()
}

func (f *Form) Update(ctx context.Context, msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if len(f.fields) > 0 {
		field := f.fields[f.focus]
		if msg.String() == "esc" && field.HasClearableInput() {
			field.ClearInput()
			return nil, true
		}
		if cmd, handled := field.Update(msg); handled {
			delete(f.errs, field.Key())
			return cmd, true
		}
	}

	switch msg.String() {
	case "tab", "down":
		return f.moveFocus(1), true
	case "shift+tab", "up":
		return f.moveFocus(-1), true
	case "enter":
		if f.focus < len(f.fields)-1 {
			return f.moveFocus(1), true
		}
		return f.complete(ctx), true
	case "ctrl+b":
		wc := wizard.Use(ctx)
		if wc.IsFirstStep {
			return nil, false
		}
		wc.GoToPreviousStep()
		return nil, true
	}
	return nil, false
}

func (f *Form) View(ctx context.Context) string {
	var b strings.Builder
	if f.intro != "" {
		b.WriteString(f.intro + "\n\n")
	}
	for i, field := range f.fields {
		b.WriteString(field.View(i == f.focus))
		b.WriteString("\n")
		if err, ok := f.errs[field.Key()]; ok {
			b.WriteString(framework.ErrorStyle().Render("  "+fieldErrorText(field, err)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Form) Help() string {
	return "tab/↑↓ move • enter continue • ctrl+b back • esc cancel"
}

// Values validates every field and returns their values keyed by field
// key. Every invalid field is reported in the joined error.
func (f *Form) Values() (wizard.State, error) {
	values := make(wizard.State, len(f.fields))
	var errs []error
	for _, field := range f.fields {
		if err := field.Validate(); err != nil {
			errs = append(errs, &FieldError{Field: field.Key(), Err: err})
			continue
		}
		values[field.Key()] = field.Value()
	}
	return values, errors.Join(errs...)
}

// Focused returns the focused field.
func (f *Form) Focused() Field {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus]
}

// Err returns the validation error shown for key, if any.
func (f *Form) Err(key string) error {
	return f.errs[key]
}

func (f *Form) complete(ctx context.Context) tea.Cmd {
	wc := wizard.Use(ctx)

	values, err := f.Values()
	clear(f.errs)
	if err != nil {
		first := -1
		for i, field := range f.fields {
			var fe *FieldError
			for _, e := range unwrapJoined(err) {
				if errors.As(e, &fe) && fe.Field == field.Key() {
					f.errs[field.Key()] = fe.Err
					if first < 0 {
						first = i
					}
				}
			}
		}
		if first >= 0 {
			return f.focusField(first)
		}
		return nil
	}

	wc.UpdateFormState(values)
	if !wc.IsLastStep {
		wc.GoToNextStep()
		return nil
	}
	if f.submit {
		return framework.RequestSubmit(wc.Refresh().FormState)
	}
	return nil
}

func (f *Form) moveFocus(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	next := (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.focusField(next)
}

func (f *Form) focusField(i int) tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = i
	return f.fields[i].Focus()
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func fieldErrorText(field Field, err error) string {
	if errors.Is(err, ErrRequired) {
		return field.Label() + " is required"
	}
	return err.Error()
}
