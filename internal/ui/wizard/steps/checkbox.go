package steps

import (
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/stepper/internal/ui/wizard/framework"
)

// CheckboxField is a boolean toggle.
type CheckboxField struct {
	key     string
	label   string
	checked bool
}

// NewCheckbox creates a checkbox writing a bool to key.
func NewCheckbox(key, label string) *CheckboxField {
	return &CheckboxField{key: key, label: label}
}

func (f *CheckboxField) Key() string   { return f.key }
func (f *CheckboxField) Label() string { return f.label }

func (f *CheckboxField) Focus() tea.Cmd { return nil }
func (f *CheckboxField) Blur()          {}

func (f *CheckboxField) Update(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "space", " ", "x":
		f.checked = !f.checked
		return nil, true
	case "y":
		f.checked = true
		return nil, true
	case "n":
		f.checked = false
		return nil, true
	}
	return nil, false
}

func (f *CheckboxField) View(focused bool) string {
	box := "[ ] "
	if f.checked {
		box = "[" + framework.SuccessStyle().Render("✓") + "] "
	}
	style := framework.FieldLabelStyle()
	prefix := "  "
	if focused {
		style = framework.FocusedLabelStyle()
		prefix = "> "
	}
	return style.Render(prefix) + box + style.Render(f.label)
}

func (f *CheckboxField) Value() any { return f.checked }

func (f *CheckboxField) Load(v any) {
	if b, ok := v.(bool); ok {
		f.checked = b
	}
}

func (f *CheckboxField) Validate() error { return nil }

func (f *CheckboxField) HasClearableInput() bool { return false }
func (f *CheckboxField) ClearInput()             {}

// Checked reports the current state.
func (f *CheckboxField) Checked() bool { return f.checked }
