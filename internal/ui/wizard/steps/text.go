package steps

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/stepper/internal/ui/wizard/framework"
)

// TextField is a single-line text input.
type TextField struct {
	key        string
	label      string
	input      textinput.Model
	required   bool
	validate   func(string) error
	runeFilter RuneFilter // nil = allow all printable
}

// NewTextField creates a text field writing to key.
// By default, uses a blinking bar cursor for better visibility.
func NewTextField(key, label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 156
	ti.SetWidth(40)

	styles := ti.Styles()
	styles.Cursor.Shape = tea.CursorBar
	styles.Cursor.Blink = true
	ti.SetStyles(styles)

	return &TextField{
		key:   key,
		label: label,
		input: ti,
	}
}

// Required rejects empty (or whitespace-only) input.
func (f *TextField) Required() *TextField {
	f.required = true
	return f
}

// Password masks the input.
func (f *TextField) Password() *TextField {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// WithValidate sets an extra validation function, run after the
// required check.
func (f *TextField) WithValidate(fn func(string) error) *TextField {
	f.validate = fn
	return f
}

// WithRuneFilter sets a filter for allowed input characters.
func (f *TextField) WithRuneFilter(filter RuneFilter) *TextField {
	f.runeFilter = filter
	return f
}

func (f *TextField) Key() string   { return f.key }
func (f *TextField) Label() string { return f.label }

func (f *TextField) Focus() tea.Cmd {
	f.input.Focus()
	return textinput.Blink
}

func (f *TextField) Blur() {
	f.input.Blur()
}

func (f *TextField) Update(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter", "tab", "shift+tab", "up", "down", "pgup", "pgdown", "esc", "ctrl+b":
		return nil, false
	}

	if msg.Text != "" && FilterRunes([]rune(msg.Text), f.runeFilter) != msg.Text {
		// Swallow disallowed characters.
		return nil, true
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, true
}

func (f *TextField) View(focused bool) string {
	label := FieldLabel(f.label, focused)
	return label + "\n" + f.input.View()
}

func (f *TextField) Value() any {
	return strings.TrimSpace(f.input.Value())
}

func (f *TextField) Load(v any) {
	if s, ok := v.(string); ok {
		f.input.SetValue(s)
	}
}

func (f *TextField) Validate() error {
	value := strings.TrimSpace(f.input.Value())
	if f.required && value == "" {
		return ErrRequired
	}
	if f.validate != nil && value != "" {
		return f.validate(value)
	}
	return nil
}

func (f *TextField) HasClearableInput() bool {
	return f.input.Value() != ""
}

func (f *TextField) ClearInput() {
	f.input.SetValue("")
}

// SetValue sets the current input value.
func (f *TextField) SetValue(value string) {
	f.input.SetValue(value)
}

// Focused returns true if the input is focused.
func (f *TextField) Focused() bool {
	return f.input.Focused()
}

// String implements fmt.Stringer for debugging.
func (f *TextField) String() string {
	return fmt.Sprintf("TextField{key=%s, value=%q}", f.key, f.input.Value())
}

// FieldLabel renders a field label, highlighted when focused.
func FieldLabel(label string, focused bool) string {
	if focused {
		return framework.FocusedLabelStyle().Render("> " + label)
	}
	return framework.FieldLabelStyle().Render("  " + label)
}
