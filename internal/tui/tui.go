// Package tui provides the interactive menu shell for the hours application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/service"
	"github.com/xolan/hours/internal/storage"
	"github.com/xolan/hours/internal/tui/ui"
	"github.com/xolan/hours/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabMenu Tab = iota
	TabEntries
	TabProjects
	TabConfig
)

var tabNames = []string{"Menu", "Entries", "Projects", "Config"}

// dialog is a pending y/n question owned by the root model
type dialog int

const (
	dialogNone dialog = iota
	dialogSave
	dialogReload
	dialogExit
)

// Status texts shown by the shell
const (
	MsgSaveCancelled   = "Save Cancelled!"
	MsgReloadCancelled = "File Reload Cancelled!"
	MsgInvalidChoice   = "Please choose from menu options"
	MsgUnsavedWarning  = "Warning: Unsaved Data Will Be Lost!"
)

// sessionLoadedMsg is sent when the hours file has been read
type sessionLoadedMsg struct {
	result service.LoadResult
	err    error
}

// sessionSavedMsg is sent when the hours file has been written
type sessionSavedMsg struct {
	result service.SaveResult
	err    error
}

// Model is the root TUI model
type Model struct {
	services *service.Services
	confirm  bool

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	dialog    dialog
	status    ui.StatusMsg

	// View models
	menuView     views.MenuModel
	entriesView  views.EntriesModel
	projectsView views.ProjectsModel
	configView   views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	cfg := services.Config.Get()
	themeProvider := ui.NewThemeProvider(cfg.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		confirm:       cfg.Confirm,
		activeTab:     TabMenu,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		menuView:      views.NewMenuModel(styles, keys),
		entriesView:   views.NewEntriesModel(services.Session, styles, keys, cfg.Confirm),
		projectsView:  views.NewProjectsModel(services.Session, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadSession()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.dialog != dialogNone {
			return m.handleDialog(msg)
		}

		// Views in input mode receive every key except force quit
		if !m.isInputMode() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m.requestExit()

			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil

			case key.Matches(msg, m.keys.NextTab):
				m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
				return m, m.initCurrentView()

			case key.Matches(msg, m.keys.PrevTab):
				m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
				return m, m.initCurrentView()

			case key.Matches(msg, m.keys.Save):
				return m.requestSave()

			case key.Matches(msg, m.keys.Reload):
				return m.requestReload()
			}
		}

	case ui.MenuChoiceMsg:
		return m.handleChoice(msg.Choice)

	case ui.StatusMsg:
		m.status = msg
		return m, nil

	case sessionLoadedMsg:
		return m.handleLoaded(msg)

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = ui.StatusMsg{Text: fmt.Sprintf("Error: %v", msg.err), Kind: ui.StatusError}
			return m, nil
		}
		kind := ui.StatusSuccess
		if msg.result.Status == storage.StatusNothingToWrite {
			kind = ui.StatusWarning
		}
		m.status = ui.StatusMsg{Text: msg.result.Message, Kind: kind}
		// Saving renumbers the entries
		m.broadcast(ui.SessionChangedMsg{})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 5 // tabs, status line and status bar
		m.menuView.SetSize(m.width, contentHeight)
		m.entriesView.SetSize(m.width, contentHeight)
		m.projectsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		m.broadcast(ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		})
		return m, m.saveThemeConfig(newTheme)
	}

	switch m.activeTab {
	case TabMenu:
		m.menuView, cmd = m.menuView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabProjects:
		m.projectsView, cmd = m.projectsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// handleChoice runs a numbered menu option
func (m Model) handleChoice(choice int) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch choice {
	case views.ChoiceAddEntry:
		if !m.services.Session.HasProjects() {
			return m.forceProjects()
		}
		m.activeTab = TabEntries
		m.entriesView, cmd = m.entriesView.StartAdd()
		return m, cmd

	case views.ChoiceDeleteEntry:
		if len(m.services.Session.Entries()) == 0 {
			m.status = ui.StatusMsg{Text: service.MsgNoEntries, Kind: ui.StatusWarning}
			return m, nil
		}
		m.activeTab = TabEntries
		m.entriesView, cmd = m.entriesView.StartDelete()
		return m, cmd

	case views.ChoiceSave:
		return m.requestSave()

	case views.ChoiceReload:
		return m.requestReload()

	case views.ChoiceShowEntries:
		m.activeTab = TabEntries
		return m, nil

	case views.ChoiceProjects:
		m.activeTab = TabProjects
		m.projectsView, cmd = m.projectsView.StartAdd("")
		return m, cmd

	case views.ChoiceExit:
		return m.requestExit()
	}

	m.status = ui.StatusMsg{Text: MsgInvalidChoice, Kind: ui.StatusError}
	return m, nil
}

// forceProjects sends the user to add a project before anything else
func (m Model) forceProjects() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.activeTab = TabProjects
	m.projectsView, cmd = m.projectsView.StartAdd(views.MsgNoProjects)
	return m, cmd
}

func (m Model) handleLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = ui.StatusMsg{Text: fmt.Sprintf("Error: %v", msg.err), Kind: ui.StatusError}
		return m, nil
	}

	m.status = ui.StatusMsg{Text: msg.result.Message, Kind: ui.StatusSuccess}
	if n := len(msg.result.Warnings); n > 0 {
		m.status.Text += fmt.Sprintf(" Skipped %d malformed %s.", n, cli.Pluralize("row", n))
		m.status.Kind = ui.StatusWarning
	}
	if n := len(msg.result.Irregular); n > 0 {
		m.status.Text += fmt.Sprintf(" Kept %d irregular %s as written.", n, cli.Pluralize("row", n))
		m.status.Kind = ui.StatusWarning
	}
	m.broadcast(ui.SessionChangedMsg{})

	if !m.services.Session.HasProjects() {
		return m.forceProjects()
	}
	return m, nil
}

func (m Model) requestSave() (tea.Model, tea.Cmd) {
	if m.confirm {
		m.dialog = dialogSave
		return m, nil
	}
	return m, m.saveSession()
}

func (m Model) requestReload() (tea.Model, tea.Cmd) {
	if m.confirm {
		m.dialog = dialogReload
		return m, nil
	}
	return m, m.loadSession()
}

func (m Model) requestExit() (tea.Model, tea.Cmd) {
	if m.confirm && m.services.Session.Dirty() {
		m.dialog = dialogExit
		return m, nil
	}
	return m, tea.Quit
}

// handleDialog answers the pending y/n question
func (m Model) handleDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		d := m.dialog
		m.dialog = dialogNone
		switch d {
		case dialogSave:
			return m, m.saveSession()
		case dialogReload:
			m.activeTab = TabEntries
			return m, m.loadSession()
		case dialogExit:
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.No):
		switch m.dialog {
		case dialogSave:
			m.status = ui.StatusMsg{Text: MsgSaveCancelled, Kind: ui.StatusWarning}
		case dialogReload:
			m.status = ui.StatusMsg{Text: MsgReloadCancelled, Kind: ui.StatusWarning}
		}
		m.dialog = dialogNone
	}
	return m, nil
}

// broadcast delivers msg to every view
func (m *Model) broadcast(msg tea.Msg) {
	m.menuView, _ = m.menuView.Update(msg)
	m.entriesView, _ = m.entriesView.Update(msg)
	m.projectsView, _ = m.projectsView.Update(msg)
	m.configView, _ = m.configView.Update(msg)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.dialog != dialogNone {
		b.WriteString(m.renderDialog())
	} else {
		switch m.activeTab {
		case TabMenu:
			b.WriteString(m.menuView.View())
		case TabEntries:
			b.WriteString(m.entriesView.View())
		case TabProjects:
			b.WriteString(m.projectsView.View())
		case TabConfig:
			b.WriteString(m.configView.View())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderDialog renders the pending y/n question
func (m Model) renderDialog() string {
	var title, question string
	switch m.dialog {
	case dialogSave:
		title = "Save"
		question = "Save this data to file?"
	case dialogReload:
		title = MsgUnsavedWarning
		question = "Are you sure you want to reload data from file?"
	case dialogExit:
		title = "Unsaved changes"
		question = "Exit without saving?"
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Press Y to confirm, N or Esc to cancel"))
	return m.styles.Dialog.Render(b.String())
}

// renderStatusLine renders the outcome of the last operation
func (m Model) renderStatusLine() string {
	switch m.status.Kind {
	case ui.StatusSuccess:
		return m.styles.Success.Render(m.status.Text)
	case ui.StatusWarning:
		return m.styles.Warning.Render(m.status.Text)
	case ui.StatusError:
		return m.styles.Error.Render(m.status.Text)
	}
	return m.styles.Value.Render(m.status.Text)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.services.Session.Dirty() {
		parts = append(parts, m.styles.Dirty.Render("● unsaved"))
	}

	switch {
	case m.dialog != dialogNone:
		parts = append(parts, m.renderKeyHelp("y", "yes"))
		parts = append(parts, m.renderKeyHelp("n/Esc", "no"))
	case m.isInputMode():
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	default:
		switch m.activeTab {
		case TabMenu:
			parts = append(parts, m.renderKeyHelp("1-7", "choose"))
		case TabEntries:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
		case TabProjects:
			parts = append(parts, m.renderKeyHelp("a", "add"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("s", "save"))
		parts = append(parts, m.renderKeyHelp("r", "reload"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode checks if the active view is capturing keyboard input
func (m Model) isInputMode() bool {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.IsInputMode()
	case TabProjects:
		return m.projectsView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView refreshes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	if m.activeTab == TabConfig {
		return m.configView.Init()
	}
	return nil
}

// loadSession creates a command that reads the hours file
func (m Model) loadSession() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		result, err := session.Load()
		return sessionLoadedMsg{result: result, err: err}
	}
}

// saveSession creates a command that writes the hours file
func (m Model) saveSession() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		result, err := session.Save()
		return sessionSavedMsg{result: result, err: err}
	}
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		if err := m.services.Config.Update(cfg); err != nil {
			return ui.StatusMsg{Text: fmt.Sprintf("Error: %v", err), Kind: ui.StatusError}
		}
		return nil
	}
}

// ActiveTab returns the tab currently shown
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

// Status returns the last status message
func (m Model) Status() ui.StatusMsg {
	return m.status
}

// renderHelpOverlay renders the keyboard shortcuts
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.Label.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab        Switch views\n")
	help.WriteString("  s          Save data to file\n")
	help.WriteString("  r          Reload data from file\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("  Ctrl+C     Quit without saving\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabMenu:
		help.WriteString(m.styles.Label.Render("Menu:"))
		help.WriteString("\n")
		help.WriteString("  1-7        Choose an option\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  Enter      Choose highlighted option\n")
	case TabEntries:
		help.WriteString(m.styles.Label.Render("Entries:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  n          New entry\n")
		help.WriteString("  d          Delete selected entry\n")
	case TabProjects:
		help.WriteString(m.styles.Label.Render("Projects:"))
		help.WriteString("\n")
		help.WriteString("  a          Add a project\n")
	case TabConfig:
		help.WriteString(m.styles.Label.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Label.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the interactive shell
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
