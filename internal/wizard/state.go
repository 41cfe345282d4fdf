package wizard

import (
	"maps"
	"slices"
)

// State is the accumulated form data, keyed by field name.
// Its shape is owned by the steps; the controller only merges it.
type State map[string]any

// Clone returns a shallow copy of s. A nil State clones to an empty one.
func (s State) Clone() State {
	out := make(State, len(s))
	maps.Copy(out, s)
	return out
}

// Merge returns a copy of s with every key of partial written over it.
// Keys absent from partial are left untouched.
func (s State) Merge(partial State) State {
	out := s.Clone()
	maps.Copy(out, partial)
	return out
}

// Keys returns the field names in sorted order.
func (s State) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Has reports whether key has been set.
func (s State) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// String returns the value for key as a string, or "" if unset or not a string.
func (s State) String(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns the value for key as a bool.
func (s State) Bool(key string) bool {
	if b, ok := s[key].(bool); ok {
		return b
	}
	return false
}

// Strings returns the value for key as a string slice.
func (s State) Strings(key string) []string {
	switch v := s[key].(type) {
	case []string:
		return v
	case []any:
		strs := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				strs = append(strs, str)
			}
		}
		return strs
	}
	return nil
}
