package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/config"
	"github.com/xolan/hours/internal/service"
	"github.com/xolan/hours/internal/storage"
	"github.com/xolan/hours/internal/tui/ui"
)

// themeRows is how many theme names the picker shows at once
const themeRows = 10

// settings is a snapshot of the configuration and the files it points at
type settings struct {
	config        config.Config
	configPath    string
	configExists  bool
	dataPath      string
	backupsOnDisk int
	entries       int
	projects      int
}

// settingsLoadedMsg carries a fresh settings snapshot
type settingsLoadedMsg struct {
	settings settings
}

// settingRow is one labelled line of the settings screen
type settingRow struct {
	label string
	value string
	note  string
	warn  bool
}

// ConfigModel shows where hours keeps its data and how the shell behaves,
// and lets the user pick a theme.
type ConfigModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	width    int
	height   int

	current  settings
	dataPath string

	themeName   string
	themes      []string
	themeCursor int
	picking     bool
}

// NewConfigModel creates the settings view with the cursor on the active theme
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		themes:    themeProvider.AvailableThemes(),
		themeName: themeProvider.CurrentName(),
	}
	m.themeCursor = m.themeIndex(m.themeName)
	return m
}

// Init loads the settings snapshot
func (m ConfigModel) Init() tea.Cmd {
	services := m.services
	return func() tea.Msg {
		return settingsLoadedMsg{settings: snapshot(services)}
	}
}

func snapshot(services *service.Services) settings {
	session := services.Session
	s := settings{
		config:       services.Config.Get(),
		configPath:   services.Config.GetPath(),
		configExists: services.Config.Exists(),
		dataPath:     session.Path(),
		entries:      len(session.Entries()),
		projects:     len(session.Projects()),
	}
	if backups, err := storage.ListBackups(s.dataPath); err == nil {
		s.backupsOnDisk = len(backups)
	}
	return s
}

// Update handles settings snapshots, theme broadcasts and picker keys
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Theme) {
			m.picking = true
		}

	case settingsLoadedMsg:
		m.current = msg.settings
		m.dataPath = msg.settings.dataPath
		if msg.settings.config.Theme != "" {
			m.themeName = msg.settings.config.Theme
		}
		m.themeCursor = m.themeIndex(m.themeName)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.current.config.Theme = msg.ThemeName
		m.current.configExists = m.services.Config.Exists()
	}

	return m, nil
}

func (m ConfigModel) updatePicker(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.themeCursor = max(m.themeCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.themeCursor = min(m.themeCursor+1, len(m.themes)-1)
	case key.Matches(msg, m.keys.Select):
		m.picking = false
		if len(m.themes) == 0 {
			return m, nil
		}
		name := m.themes[m.themeCursor]
		return m, func() tea.Msg { return ui.ThemeChangeRequestMsg{ThemeName: name} }
	case key.Matches(msg, m.keys.Back):
		m.picking = false
		m.themeCursor = m.themeIndex(m.themeName)
	}
	return m, nil
}

// themeIndex returns the position of name in the theme list, or 0
func (m ConfigModel) themeIndex(name string) int {
	for i, t := range m.themes {
		if t == name {
			return i
		}
	}
	return 0
}

// rows builds the settings lines from the current snapshot
func (m ConfigModel) rows() []settingRow {
	s := m.current
	cfg := s.config

	configNote := "loaded"
	if !s.configExists {
		configNote = "using defaults, run 'hours config init' to create it"
	}

	backups := "off"
	if cfg.Backups > 0 {
		backups = fmt.Sprintf("keep %d", cfg.Backups)
	}

	confirm := "no prompts"
	if cfg.Confirm {
		confirm = "ask before changing the hours file"
	}

	return []settingRow{
		{label: "Config file", value: s.configPath, note: configNote, warn: !s.configExists},
		{label: "Hours file", value: m.dataPath, note: fmt.Sprintf("%d %s, %d %s",
			s.entries, cli.Pluralize("entry", s.entries), s.projects, cli.Pluralize("project", s.projects))},
		{label: "data_file", value: cfg.DataFile},
		{label: "backups", value: backups, note: fmt.Sprintf("%d on disk", s.backupsOnDisk)},
		{label: "confirm", value: confirm},
		{label: "theme", value: m.themeName},
	}
}

// View renders the settings and, while picking, the theme list
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n\n")

	rows := m.rows()
	width := 0
	for _, r := range rows {
		width = max(width, len(r.label))
	}
	for _, r := range rows {
		b.WriteString(m.styles.Label.Render(pad(r.label+":", width+1)))
		b.WriteString(" ")
		b.WriteString(m.styles.Value.Render(r.value))
		if r.note != "" {
			note := m.styles.Label
			if r.warn {
				note = m.styles.Warning
			}
			b.WriteString(" ")
			b.WriteString(note.Render("(" + r.note + ")"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.picking {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(m.styles.Label.Render("Press Enter or 't' to change theme"))
	}

	return b.String()
}

func (m ConfigModel) renderPicker() string {
	var b strings.Builder

	start, end := listWindow(m.themeCursor, len(m.themes), themeRows)
	if start > 0 {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		name := m.themes[i]
		if name == m.themeName {
			name += " (current)"
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.EntrySelected.Render("▸ " + name))
		} else {
			b.WriteString(m.styles.Value.Render("  " + name))
		}
		b.WriteString("\n")
	}
	if rest := len(m.themes) - end; rest > 0 {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("  ↓ %d more", rest)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// listWindow returns the [start, end) slice of a list of total items that
// shows at most size items and keeps cursor roughly centred.
func listWindow(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := min(max(cursor-size/2, 0), total-size)
	return start, start + size
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true while the theme picker is open
func (m ConfigModel) IsInputMode() bool {
	return m.picking
}
