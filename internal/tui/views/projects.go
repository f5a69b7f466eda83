package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/hours/internal/project"
	"github.com/xolan/hours/internal/service"
	"github.com/xolan/hours/internal/tui/ui"
)

// Status texts shown by the projects view
const (
	MsgProjectCancelled = "Adding New Project Cancelled!"
	MsgNoProjects       = "There are no projects in the list. Please enter a project name before starting to track employee work hours on a project."
)

// ProjectsModel lists the known projects and adds new ones
type ProjectsModel struct {
	session *service.Session
	styles  ui.Styles
	keys    ui.KeyMap

	width    int
	height   int
	projects []string

	adding bool
	notice string
	input  textinput.Model
}

// NewProjectsModel creates a new projects view model
func NewProjectsModel(session *service.Session, styles ui.Styles, keys ui.KeyMap) ProjectsModel {
	input := textinput.New()
	input.Placeholder = "Project name"
	input.CharLimit = 60
	input.Width = 40

	return ProjectsModel{
		session:  session,
		styles:   styles,
		keys:     keys,
		projects: session.Projects(),
		input:    input,
	}
}

// Init implements tea.Model
func (m ProjectsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ProjectsModel) Update(msg tea.Msg) (ProjectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.handleInputMode(msg)
		}
		if key.Matches(msg, m.keys.AddProject) || key.Matches(msg, m.keys.New) {
			return m.StartAdd("")
		}

	case ui.SessionChangedMsg:
		m.adding = false
		m.input.Blur()
		m.projects = m.session.Projects()
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// StartAdd opens the project name prompt, with an optional notice above it
func (m ProjectsModel) StartAdd(notice string) (ProjectsModel, tea.Cmd) {
	m.adding = true
	m.notice = notice
	m.input.SetValue("")
	m.input.Focus()
	return m, textinput.Blink
}

func (m ProjectsModel) handleInputMode(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.adding = false
		m.notice = ""
		m.input.Blur()
		return m, statusCmd(MsgProjectCancelled, ui.StatusWarning)

	case key.Matches(msg, m.keys.Select):
		result := m.session.AddProject(m.input.Value())
		if result.Result == project.Rejected {
			return m, statusCmd(result.Message, ui.StatusError)
		}
		m.adding = false
		m.notice = ""
		m.input.Blur()
		m.projects = m.session.Projects()
		if result.Result == project.AlreadyPresent {
			return m, statusCmd(result.Message, ui.StatusWarning)
		}
		return m, statusCmd(result.Message, ui.StatusSuccess)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ProjectsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Current projects"))
	b.WriteString("\n")

	if len(m.projects) == 0 {
		b.WriteString(m.styles.Label.Render("There are no projects in the list."))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Before adding new entries, add projects first."))
		b.WriteString("\n")
	}
	for _, name := range m.projects {
		b.WriteString(m.styles.EntryProject.Render(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !m.adding {
		b.WriteString(m.styles.Label.Render("Press 'a' to add a project"))
		return b.String()
	}

	if m.notice != "" {
		b.WriteString(m.styles.Warning.Render(m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Label.Render("What is the name of the new project?"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Enter to add, Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ProjectsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m ProjectsModel) IsInputMode() bool {
	return m.adding
}

// Projects returns the projects currently shown
func (m ProjectsModel) Projects() []string {
	return m.projects
}
