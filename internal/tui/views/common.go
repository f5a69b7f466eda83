// Package views holds the screens of the interactive hours shell.
package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/record"
	"github.com/xolan/hours/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryTable renders entries as aligned columns under the listing header
func RenderEntryTable(entries []record.Record, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	type row struct {
		seq, project, hours, date, employee string
	}
	rows := make([]row, len(entries))
	widths := make([]int, len(cli.EntryColumns))
	for i, title := range cli.EntryColumns {
		widths[i] = lipgloss.Width(title)
	}

	for i, r := range entries {
		rows[i] = row{
			seq:      fmt.Sprintf("%d", r.Seq),
			project:  r.Project,
			hours:    r.HoursString(),
			date:     r.DateString(),
			employee: r.Employee,
		}
		for j, cell := range []string{rows[i].seq, rows[i].project, rows[i].hours, rows[i].date, rows[i].employee} {
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	// Long project names give way first on narrow terminals
	fixed := widths[0] + widths[2] + widths[3] + widths[4] + 4*3
	if opts.Width > 0 && fixed+widths[1] > opts.Width {
		widths[1] = max(len(cli.EntryColumns[1]), opts.Width-fixed)
	}

	var b strings.Builder
	header := make([]string, len(cli.EntryColumns))
	for i, title := range cli.EntryColumns {
		header[i] = pad(title, widths[i])
	}
	b.WriteString(styles.EntryHeader.Render(strings.Join(header, " | ")))
	b.WriteString("\n")

	for i, r := range rows {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}
		line := strings.Join([]string{
			styles.EntryIndex.Render(padLeft(r.seq, widths[0])),
			styles.EntryProject.Render(pad(truncate(r.project, widths[1]), widths[1])),
			styles.EntryHours.Render(padLeft(r.hours, widths[2])),
			styles.EntryDate.Render(pad(r.date, widths[3])),
			styles.EntryEmployee.Render(r.employee),
		}, " | ")
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderEntryRow renders a single entry in listing order
func RenderEntryRow(r record.Record, styles ui.Styles) string {
	return styles.Value.Render(cli.FormatEntryRow(r))
}

// statusCmd emits a status line message
func statusCmd(text string, kind ui.StatusKind) tea.Cmd {
	return func() tea.Msg {
		return ui.StatusMsg{Text: text, Kind: kind}
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 2 {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
