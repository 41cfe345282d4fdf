package steps

import (
	"errors"

	tea "charm.land/bubbletea/v2"
)

// ErrRequired is returned by Validate when a required field is empty.
var ErrRequired = errors.New("required")

// Field is one input inside a Form.
type Field interface {
	// Key is the form state key the field reads and writes.
	Key() string
	Label() string

	Focus() tea.Cmd
	Blur()

	// Update handles a key press while the field is focused. handled is
	// false for keys the form should act on (enter, tab, ...).
	Update(msg tea.KeyPressMsg) (cmd tea.Cmd, handled bool)
	View(focused bool) string

	// Value returns the value written to the form state.
	Value() any
	// Load fills the field from a previously stored value.
	Load(v any)
	Validate() error

	// HasClearableInput returns true if the field has input that can be
	// cleared. Used to decide ESC behavior: clear input first, then cancel.
	HasClearableInput() bool
	ClearInput()
}

// FieldError ties a validation error to the field that produced it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
