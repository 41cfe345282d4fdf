package steps

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/stepper/internal/ui/wizard/framework"
)

// SelectField picks one option from a list narrowed by typing.
// Uses the sahilm/fuzzy library for ranking matches.
type SelectField struct {
	key        string
	label      string
	options    []framework.Option
	filtered   []fuzzy.Match // matches with scores and indices
	cursor     int           // position in filtered list
	selected   int           // index into options, -1 if none
	filter     string
	required   bool
	maxVisible int
}

// optionSource implements fuzzy.Source for our options.
type optionSource []framework.Option

func (s optionSource) String(i int) string { return s[i].Label }
func (s optionSource) Len() int            { return len(s) }

// NewSelect creates a select field writing the chosen option's Value to key.
func NewSelect(key, label string, options []framework.Option) *SelectField {
	f := &SelectField{
		key:        key,
		label:      label,
		options:    options,
		selected:   -1,
		maxVisible: 6,
	}
	f.applyFilter()
	return f
}

// Required rejects submitting without a selection.
func (f *SelectField) Required() *SelectField {
	f.required = true
	return f
}

func (f *SelectField) Key() string   { return f.key }
func (f *SelectField) Label() string { return f.label }

func (f *SelectField) Focus() tea.Cmd { return nil }
func (f *SelectField) Blur()          {}

func (f *SelectField) Update(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up":
		f.moveCursor(-1)
		return nil, true
	case "down":
		f.moveCursor(1)
		return nil, true
	case "enter":
		// Select and let the form move on.
		f.selectCursor()
		return nil, false
	case "backspace":
		if f.filter != "" {
			runes := []rune(f.filter)
			f.filter = string(runes[:len(runes)-1])
			f.applyFilter()
		}
		return nil, true
	case "tab", "shift+tab", "pgup", "pgdown", "esc", "ctrl+b":
		return nil, false
	}

	if msg.Text != "" {
		if text := FilterRunes([]rune(msg.Text), nil); text != "" {
			f.filter += text
			f.applyFilter()
			return nil, true
		}
	}
	return nil, false
}

func (f *SelectField) View(focused bool) string {
	var b strings.Builder
	b.WriteString(FieldLabel(f.label, focused))
	if f.selected >= 0 {
		b.WriteString(": " + framework.OptionSelectedStyle().Render(f.options[f.selected].Label))
	}
	b.WriteString("\n")

	if !focused {
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString("  " + framework.FilterLabelStyle().Render("Filter: ") + framework.FilterStyle().Render(f.filter) + "\n")

	start := 0
	if f.cursor >= f.maxVisible {
		start = f.cursor - f.maxVisible + 1
	}
	end := min(start+f.maxVisible, len(f.filtered))

	if start > 0 {
		b.WriteString(framework.OptionNormalStyle().Render("    ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		match := f.filtered[i]
		opt := f.options[match.Index]

		if opt.Disabled {
			label := opt.Label
			if opt.Description != "" {
				label += " (" + opt.Description + ")"
			}
			b.WriteString("    " + framework.OptionDisabledStyle().Render(label) + "\n")
			continue
		}

		cursor := "    "
		style := framework.OptionNormalStyle()
		if i == f.cursor {
			cursor = "  > "
			style = framework.OptionSelectedStyle()
		}

		label := style.Render(opt.Label)
		if f.filter != "" && len(match.MatchedIndexes) > 0 {
			label = highlightMatches(opt.Label, match.MatchedIndexes, i == f.cursor)
		}
		b.WriteString(cursor + label + "\n")
	}

	if end < len(f.filtered) {
		b.WriteString(framework.OptionNormalStyle().Render("    ↓ more below") + "\n")
	}
	if len(f.filtered) == 0 {
		b.WriteString(framework.OptionNormalStyle().Render("    No matching items") + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *SelectField) Value() any {
	if f.selected < 0 {
		return nil
	}
	return f.options[f.selected].Value
}

func (f *SelectField) Load(v any) {
	if v == nil {
		return
	}
	for i, opt := range f.options {
		if opt.Value == v && !opt.Disabled {
			f.selected = i
			f.filter = ""
			f.applyFilter()
			f.cursor = i
			return
		}
	}
}

func (f *SelectField) Validate() error {
	if f.required && f.selected < 0 {
		return ErrRequired
	}
	return nil
}

func (f *SelectField) HasClearableInput() bool {
	return f.filter != ""
}

func (f *SelectField) ClearInput() {
	f.filter = ""
	f.applyFilter()
}

// Selected returns the chosen option, if any.
func (f *SelectField) Selected() (framework.Option, bool) {
	if f.selected < 0 {
		return framework.Option{}, false
	}
	return f.options[f.selected], true
}

// Cursor returns the highlighted option, if any.
func (f *SelectField) Cursor() (framework.Option, bool) {
	if f.cursor < 0 || f.cursor >= len(f.filtered) {
		return framework.Option{}, false
	}
	return f.options[f.filtered[f.cursor].Index], true
}

// String implements fmt.Stringer for debugging.
func (f *SelectField) String() string {
	return fmt.Sprintf("SelectField{key=%s, cursor=%d, selected=%d, filter=%q}",
		f.key, f.cursor, f.selected, f.filter)
}

func (f *SelectField) selectCursor() {
	if f.cursor < 0 || f.cursor >= len(f.filtered) {
		return
	}
	idx := f.filtered[f.cursor].Index
	if f.options[idx].Disabled {
		return
	}
	f.selected = idx
}

func (f *SelectField) moveCursor(delta int) {
	for i := f.cursor + delta; i >= 0 && i < len(f.filtered); i += delta {
		if !f.options[f.filtered[i].Index].Disabled {
			f.cursor = i
			return
		}
	}
}

func (f *SelectField) applyFilter() {
	if f.filter == "" {
		// No filter - show all options in original order
		f.filtered = make([]fuzzy.Match, len(f.options))
		for i := range f.options {
			f.filtered[i] = fuzzy.Match{
				Str:   f.options[i].Label,
				Index: i,
			}
		}
	} else {
		// Apply fuzzy search - results are sorted by score (best first)
		f.filtered = fuzzy.FindFrom(f.filter, optionSource(f.options))
	}

	f.cursor = 0
	if len(f.filtered) > 0 && f.options[f.filtered[0].Index].Disabled {
		f.moveCursor(1)
	}
}

// highlightMatches renders the label with matched characters highlighted.
func highlightMatches(label string, matchedIndexes []int, isSelected bool) string {
	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var result strings.Builder
	for i, r := range label {
		char := string(r)
		switch {
		case matchSet[i]:
			result.WriteString(framework.MatchHighlightStyle().Render(char))
		case isSelected:
			result.WriteString(framework.OptionSelectedStyle().Render(char))
		default:
			result.WriteString(framework.OptionNormalStyle().Render(char))
		}
	}
	return result.String()
}
