package steps

import (
	"errors"
	"testing"
)

func TestTextField_Typing(t *testing.T) {
	t.Parallel()

	f := NewTextField("name", "Name", "")
	f.Focus()
	typeText(f.Update, "Ada")

	if got := f.Value(); got != "Ada" {
		t.Errorf("Value() = %v, want Ada", got)
	}
}

func TestTextField_PassthroughKeys(t *testing.T) {
	t.Parallel()

	keys := []string{"enter", "tab", "shift+tab", "up", "down", "pgup", "pgdown", "esc", "ctrl+b"}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			f := NewTextField("name", "Name", "")
			f.Focus()
			if _, handled := f.Update(keyMsg(key)); handled {
				t.Errorf("Update(%q) handled = true, want false", key)
			}
		})
	}
}

func TestTextField_RuneFilter(t *testing.T) {
	t.Parallel()

	f := NewTextField("email", "Email", "").WithRuneFilter(RuneFilterNoSpaces)
	f.Focus()
	typeText(f.Update, "a b")

	if got := f.Value(); got != "ab" {
		t.Errorf("Value() = %q, want %q", got, "ab")
	}
}

func TestTextField_Validate(t *testing.T) {
	t.Parallel()

	errShort := errors.New("too short")
	minLen3 := func(s string) error {
		if len(s) < 3 {
			return errShort
		}
		return nil
	}

	tests := []struct {
		name    string
		field   *TextField
		value   string
		wantErr error
	}{
		{name: "optional empty", field: NewTextField("k", "K", ""), value: "", wantErr: nil},
		{name: "required empty", field: NewTextField("k", "K", "").Required(), value: "", wantErr: ErrRequired},
		{name: "required whitespace", field: NewTextField("k", "K", "").Required(), value: "   ", wantErr: ErrRequired},
		{name: "required set", field: NewTextField("k", "K", "").Required(), value: "x", wantErr: nil},
		{name: "custom fails", field: NewTextField("k", "K", "").WithValidate(minLen3), value: "ab", wantErr: errShort},
		{name: "custom passes", field: NewTextField("k", "K", "").WithValidate(minLen3), value: "abc", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.field.SetValue(tt.value)
			err := tt.field.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTextField_LoadAndClear(t *testing.T) {
	t.Parallel()

	f := NewTextField("name", "Name", "")
	f.Load("Grace")
	if got := f.Value(); got != "Grace" {
		t.Errorf("Value() after Load = %v, want Grace", got)
	}
	if !f.HasClearableInput() {
		t.Error("HasClearableInput() = false, want true")
	}

	f.ClearInput()
	if got := f.Value(); got != "" {
		t.Errorf("Value() after ClearInput = %q, want empty", got)
	}

	// Non-string values are ignored.
	f.Load(42)
	if got := f.Value(); got != "" {
		t.Errorf("Value() after Load(42) = %q, want empty", got)
	}
}
