package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/hours/internal/cli"
	"github.com/xolan/hours/internal/record"
	"github.com/xolan/hours/internal/service"
	"github.com/xolan/hours/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModePick
	entryModeDelete
)

// Form field order
const (
	fieldEmployee = iota
	fieldProject
	fieldDate
	fieldHours
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Employee name:",
	"Project name:",
	"Date (01/01/2021):",
	"Hours worked:",
}

// Status texts shown by the entries view
const (
	MsgDeleteDeclined = "Entry Was Not Removed!"
	MsgAddCancelled   = "Adding New Entry Cancelled!"
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	session *service.Session
	styles  ui.Styles
	keys    ui.KeyMap
	confirm bool

	// UI state
	width   int
	height  int
	cursor  int
	entries []record.Record

	// Input mode state
	mode         entryMode
	inputs       [fieldCount]textinput.Model
	focusedInput int
	formErr      string
	projectErr   string

	// Delete state
	seqInput textinput.Model
	target   record.Record
}

// NewEntriesModel creates a new entries view model.
// When confirm is false deletions happen without a y/n prompt.
func NewEntriesModel(session *service.Session, styles ui.Styles, keys ui.KeyMap, confirm bool) EntriesModel {
	placeholders := [fieldCount]string{"John Smith", "Alpha", "01/15/2021", "3.5"}
	limits := [fieldCount]int{60, 60, 10, 8}

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.Width = 40
		inputs[i] = in
	}

	seqInput := textinput.New()
	seqInput.Placeholder = "Entry #"
	seqInput.CharLimit = 6
	seqInput.Width = 10

	m := EntriesModel{
		session:  session,
		styles:   styles,
		keys:     keys,
		confirm:  confirm,
		inputs:   inputs,
		seqInput: seqInput,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd:
			return m.handleInputMode(msg)
		case entryModePick:
			return m.handlePickMode(msg)
		case entryModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.New):
			return m.StartAdd()
		case key.Matches(msg, m.keys.Delete):
			if len(m.entries) == 0 {
				return m, statusCmd(service.MsgNoEntries, ui.StatusWarning)
			}
			return m.confirmDelete(m.entries[m.cursor])
		}

	case ui.SessionChangedMsg:
		m.mode = entryModeNormal
		m.blurAll()
		m.refresh()
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// StartAdd opens the new entry form
func (m EntriesModel) StartAdd() (EntriesModel, tea.Cmd) {
	m.mode = entryModeAdd
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.formErr = ""
	m.projectErr = ""
	m.focusedInput = fieldEmployee
	m.inputs[fieldEmployee].Focus()
	return m, textinput.Blink
}

// StartDelete asks which entry to remove, starting from the selected one
func (m EntriesModel) StartDelete() (EntriesModel, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, statusCmd(service.MsgNoEntries, ui.StatusWarning)
	}
	m.mode = entryModePick
	m.seqInput.SetValue(strconv.Itoa(m.entries[m.cursor].Seq))
	m.seqInput.CursorEnd()
	m.seqInput.Focus()
	return m, textinput.Blink
}

// handleInputMode handles key events when the add form is open
func (m EntriesModel) handleInputMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.blurAll()
		return m, statusCmd(MsgAddCancelled, ui.StatusWarning)
	case msg.String() == "tab", msg.String() == "down":
		return m.focus((m.focusedInput + 1) % fieldCount), textinput.Blink
	case msg.String() == "shift+tab", msg.String() == "up":
		return m.focus((m.focusedInput + fieldCount - 1) % fieldCount), textinput.Blink
	case key.Matches(msg, m.keys.Select):
		if m.focusedInput < fieldHours {
			return m.focus(m.focusedInput + 1), textinput.Blink
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// submit validates the form and adds the entry
func (m EntriesModel) submit() (EntriesModel, tea.Cmd) {
	result, err := m.session.TryAddEntry(
		m.inputs[fieldEmployee].Value(),
		m.inputs[fieldProject].Value(),
		m.inputs[fieldDate].Value(),
		m.inputs[fieldHours].Value(),
	)
	if err != nil {
		m.formErr = result.Message
		m.projectErr = result.ProjectMessage
		return m, statusCmd(result.Message, ui.StatusError)
	}

	m.mode = entryModeNormal
	m.blurAll()
	m.refresh()
	for i, r := range m.entries {
		if r.Seq == result.Record.Seq {
			m.cursor = i
			break
		}
	}
	return m, statusCmd(result.Message, ui.StatusSuccess)
}

// handlePickMode handles key events while asking for the entry number
func (m EntriesModel) handlePickMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.seqInput.Blur()
		return m, statusCmd(MsgDeleteDeclined, ui.StatusWarning)
	case key.Matches(msg, m.keys.Select):
		m.seqInput.Blur()
		r, err := m.session.FindEntry(m.seqInput.Value())
		if err != nil {
			m.mode = entryModeNormal
			return m, statusCmd(service.MsgEntryNotFound, ui.StatusError)
		}
		return m.confirmDelete(r)
	}

	var cmd tea.Cmd
	m.seqInput, cmd = m.seqInput.Update(msg)
	return m, cmd
}

// confirmDelete asks for confirmation, or removes right away when disabled
func (m EntriesModel) confirmDelete(r record.Record) (EntriesModel, tea.Cmd) {
	m.target = r
	if !m.confirm {
		return m.remove()
	}
	m.mode = entryModeDelete
	return m, nil
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		return m.remove()
	case key.Matches(msg, m.keys.No):
		m.mode = entryModeNormal
		return m, statusCmd(MsgDeleteDeclined, ui.StatusWarning)
	}
	return m, nil
}

func (m EntriesModel) remove() (EntriesModel, tea.Cmd) {
	m.mode = entryModeNormal
	result, err := m.session.RemoveEntry(strconv.Itoa(m.target.Seq))
	m.target = record.Record{}
	if err != nil {
		return m, statusCmd(result.Message, ui.StatusError)
	}
	m.refresh()
	return m, statusCmd(result.Message, ui.StatusSuccess)
}

// View implements tea.Model
func (m EntriesModel) View() string {
	switch m.mode {
	case entryModeAdd:
		return m.renderAddForm()
	case entryModePick:
		return m.renderPick()
	case entryModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Current entries"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Label.Render("There are no entries in the list."))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Label.Render("Press 'n' to add a new entry"))
		return b.String()
	}

	b.WriteString(RenderEntryTable(m.entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	b.WriteString(strings.Repeat("─", min(cli.SeparatorWidth, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(cli.FormatTotal(m.session.TotalHours(), len(m.entries)))

	return b.String()
}

// renderAddForm renders the add entry form
func (m EntriesModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New Entry"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := fieldLabels[i]
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.projectErr != "" {
		b.WriteString(m.styles.Warning.Render(m.projectErr))
		b.WriteString("\n")
	}
	if m.formErr != "" {
		b.WriteString(m.styles.Error.Render(m.formErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Label.Render("Tab to switch fields, Enter to continue, Esc to cancel"))
	return b.String()
}

// renderPick renders the entry number prompt
func (m EntriesModel) renderPick() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Which entry would you like to remove?"))
	b.WriteString("\n")
	b.WriteString(m.seqInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Enter to continue, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("The entry you chose to remove is:"))
	b.WriteString("\n")
	b.WriteString(RenderEntryRow(m.target, m.styles))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	return m.mode != entryModeNormal
}

// Entries returns the entries currently shown
func (m EntriesModel) Entries() []record.Record {
	return m.entries
}

func (m *EntriesModel) refresh() {
	m.entries = m.session.Entries()
	if m.cursor >= len(m.entries) {
		m.cursor = max(0, len(m.entries)-1)
	}
}

func (m EntriesModel) focus(field int) EntriesModel {
	m.inputs[m.focusedInput].Blur()
	m.focusedInput = field
	m.inputs[field].Focus()
	return m
}

func (m *EntriesModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.seqInput.Blur()
}
