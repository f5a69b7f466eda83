package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/hours/internal/tui/ui"
)

// Menu choices, numbered as shown
const (
	ChoiceAddEntry = iota + 1
	ChoiceDeleteEntry
	ChoiceSave
	ChoiceReload
	ChoiceShowEntries
	ChoiceProjects
	ChoiceExit
)

// MenuOptions are the menu labels in choice order
var MenuOptions = []string{
	"Add a new entry",
	"Delete an existing entry",
	"Save data to CSV File",
	"Reload data from CSV File",
	"Show list of all entries",
	"Show & add to project list",
	"Exit program",
}

// Intro is the explanation shown above the menu
const Intro = `This program keeps track of number of hours each employee has worked on a specific project.
Employee and project names should only contain letters.
Dates should be entered as 01/01/2021 and hours worked per project as decimals,
for example 3.5 represents 3 and a half hours.
Add a new project name to the project list before adding it as a new entry.`

// MenuModel is the numbered menu of options
type MenuModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	width  int
	height int
	cursor int
}

// NewMenuModel creates a new menu model
func NewMenuModel(styles ui.Styles, keys ui.KeyMap) MenuModel {
	return MenuModel{styles: styles, keys: keys}
}

// Init implements tea.Model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(MenuOptions)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m, choose(m.cursor + 1)
		}

		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '0'+byte(len(MenuOptions)) {
			m.cursor = int(s[0] - '1')
			return m, choose(m.cursor + 1)
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render(Intro))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ViewTitle.Render("Menu of Options"))
	b.WriteString("\n")

	for i, option := range MenuOptions {
		number := m.styles.MenuNumber.Render(fmt.Sprintf("%d)", i+1))
		line := fmt.Sprintf("%s %s", number, m.styles.MenuItem.Render(option))
		if i == m.cursor {
			line = m.styles.EntrySelected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("Which option would you like to perform? [1 to %d]", len(MenuOptions))))
	return b.String()
}

// SetSize sets the view dimensions
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the highlighted option index
func (m MenuModel) Cursor() int {
	return m.cursor
}

func choose(choice int) tea.Cmd {
	return func() tea.Msg {
		return ui.MenuChoiceMsg{Choice: choice}
	}
}
