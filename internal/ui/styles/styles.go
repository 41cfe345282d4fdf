// Package styles holds the active color palette shared by the static,
// prompt and wizard packages.
//
// The palette is package state set once by [Init] after config is
// loaded. Components read the color variables at render time, so they
// pick up the configured theme without being rebuilt.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme.
var (
	Primary color.Color // borders, titles
	Accent  color.Color // focused fields, the active step, the select cursor
	Success color.Color // check marks
	Error   color.Color // validation and submission errors
	Muted   color.Color // inactive tabs, hints, table keys
	Normal  color.Color // labels and values
	Info    color.Color // header and footer notes
	Warning color.Color // notices the user should not miss
)

// MutedStyle renders hints such as "[y/N]" and the summary table keys.
var MutedStyle lipgloss.Style

func init() {
	defaultDark.apply()
}

// apply makes t the active palette.
func (t Theme) apply() {
	current = t
	Primary, Accent, Success, Error = t.Primary, t.Accent, t.Success, t.Error
	Muted, Normal, Info, Warning = t.Muted, t.Normal, t.Info, t.Warning
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}
