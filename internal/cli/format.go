// Package cli provides the CLI presentation layer for the hours application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xolan/hours/internal/record"
	"github.com/xolan/hours/internal/storage"
)

// SeparatorWidth is the width of the dashed lines between output sections
const SeparatorWidth = 60

// EntryColumns are the listing column titles
var EntryColumns = []string{"Entry #", "Project Name", "Hours Worked", "Date", "Employee Name"}

// Separator returns a dashed line
func Separator() string {
	return strings.Repeat("-", SeparatorWidth)
}

// FormatEntryRow formats one record in listing column order
// Example: "3 | Alpha | 3.5 | 01/15/2021 | John Smith"
func FormatEntryRow(r record.Record) string {
	return fmt.Sprintf("%d | %s | %s | %s | %s",
		r.Seq, r.Project, r.HoursString(), r.DateString(), r.Employee)
}

// FormatEntryTable formats the entries listing, one line per element.
// Entries are expected in display order.
func FormatEntryTable(entries []record.Record) []string {
	lines := []string{"----    Current entries are:    ----"}
	if len(entries) == 0 {
		lines = append(lines, "There are no entries in the list.")
		return append(lines, Separator())
	}

	lines = append(lines, strings.Join(EntryColumns, " | "))
	total := decimal.Zero
	for _, r := range entries {
		lines = append(lines, FormatEntryRow(r))
		total = total.Add(r.Hours)
	}
	lines = append(lines, FormatTotal(total, len(entries)))
	return append(lines, Separator())
}

// FormatTotal formats the hours footer of a listing
// Example: "Total: 5.5 hours in 2 entries"
func FormatTotal(total decimal.Decimal, entries int) string {
	return fmt.Sprintf("Total: %s %s in %d %s",
		FormatHours(total), Pluralize("hour", hoursCount(total)),
		entries, Pluralize("entry", entries))
}

// FormatProjectList formats the projects listing, one line per element
func FormatProjectList(projects []string) []string {
	lines := []string{"----    Current projects are:    ----"}
	if len(projects) == 0 {
		lines = append(lines, "There are no projects in the list.",
			"Before adding new entries, add projects first.")
		return append(lines, Separator())
	}
	lines = append(lines, projects...)
	return append(lines, Separator())
}

// FormatHours formats an hours amount without trailing zeros
// Examples: "3.5", "8", "0.25"
func FormatHours(h decimal.Decimal) string {
	return h.String()
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

// hoursCount maps a total to the count used for pluralizing "hour"
func hoursCount(total decimal.Decimal) int {
	if total.Equal(decimal.NewFromInt(1)) {
		return 1
	}
	return 2
}
