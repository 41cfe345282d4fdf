// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the summary table of
// a submitted record.
package static

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/stepper/internal/ui/styles"
	"github.com/raphi011/stepper/internal/wizard"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			if col == 0 {
				return styles.MutedStyle.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// Mask replaces secret values in record tables.
const Mask = "********"

// RecordRows returns one FIELD/VALUE row per key of state, sorted by key.
// Values of the masked keys are replaced with Mask.
func RecordRows(state wizard.State, masked ...string) [][]string {
	keys := state.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		value := FormatValue(state[key])
		if slices.Contains(masked, key) && value != "" {
			value = Mask
		}
		rows = append(rows, []string{key, value})
	}
	return rows
}

// RenderRecord renders state as a two-column summary table.
func RenderRecord(state wizard.State, masked ...string) string {
	return RenderTable([]string{"FIELD", "VALUE"}, RecordRows(state, masked...))
}

// FormatValue renders a form value for display.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}
