package framework

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/stepper/internal/ui/styles"
)

// The style functions below read the palette on every call, so pages
// follow the theme chosen by styles.Init even if they were built first.

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// BorderStyle frames the whole wizard with a left rule.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary).
		Margin(1, 0).
		Padding(0, 2)
}

func TitleStyle() lipgloss.Style       { return fg(styles.Primary).Bold(true) }
func StepHeadingStyle() lipgloss.Style { return fg(styles.Normal).Bold(true).Underline(true) }
func HelpStyle() lipgloss.Style        { return fg(styles.Muted).MarginTop(1) }

// Step tabs.
func StepActiveStyle() lipgloss.Style    { return fg(styles.Accent).Bold(true) }
func StepCompletedStyle() lipgloss.Style { return fg(styles.Normal) }
func StepCheckStyle() lipgloss.Style     { return fg(styles.Success) }
func StepInactiveStyle() lipgloss.Style  { return fg(styles.Muted) }
func StepArrowStyle() lipgloss.Style     { return fg(styles.Muted) }

// Field labels and select options.
func FieldLabelStyle() lipgloss.Style     { return fg(styles.Normal) }
func FocusedLabelStyle() lipgloss.Style   { return fg(styles.Accent).Bold(true) }
func OptionSelectedStyle() lipgloss.Style { return fg(styles.Accent).Bold(true) }
func OptionNormalStyle() lipgloss.Style   { return fg(styles.Normal) }
func OptionDisabledStyle() lipgloss.Style { return fg(styles.Muted) }

// Select filter line and fuzzy match highlights.
func FilterStyle() lipgloss.Style         { return fg(styles.Accent).Bold(true) }
func FilterLabelStyle() lipgloss.Style    { return fg(styles.Muted) }
func MatchHighlightStyle() lipgloss.Style { return fg(styles.Accent).Bold(true).Underline(true) }

// Notes and outcomes.
func InfoStyle() lipgloss.Style    { return fg(styles.Info).Italic(true) }
func WarningStyle() lipgloss.Style { return fg(styles.Warning) }
func ErrorStyle() lipgloss.Style   { return fg(styles.Error) }
func SuccessStyle() lipgloss.Style { return fg(styles.Success) }
