package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style
	Dirty      lipgloss.Style

	// Menu
	MenuNumber lipgloss.Style
	MenuItem   lipgloss.Style

	// Entry table
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryHeader   lipgloss.Style
	EntryIndex    lipgloss.Style
	EntryProject  lipgloss.Style
	EntryHours    lipgloss.Style
	EntryDate     lipgloss.Style
	EntryEmployee lipgloss.Style

	// Labels and values
	Label lipgloss.Style
	Value lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Theme colors map to UI elements as follows:
// - Primary: Purple (tabs, titles, projects)
// - Secondary: Cyan (dates, keys, menu numbers)
// - Accent: BrightPurple (hours)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),
		Dirty: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),

		MenuNumber: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		MenuItem: lipgloss.NewStyle().
			Foreground(fg),

		EntrySelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryHeader: lipgloss.NewStyle().
			Foreground(muted).
			Underline(true),
		EntryIndex: lipgloss.NewStyle().
			Foreground(muted),
		EntryProject: lipgloss.NewStyle().
			Foreground(primary),
		EntryHours: lipgloss.NewStyle().
			Foreground(accent).
			Align(lipgloss.Right),
		EntryDate: lipgloss.NewStyle().
			Foreground(secondary),
		EntryEmployee: lipgloss.NewStyle().
			Foreground(fg),

		Label: lipgloss.NewStyle().
			Foreground(muted),
		Value: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(60),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
