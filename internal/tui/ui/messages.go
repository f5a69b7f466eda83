package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// StatusKind selects how a status message is rendered.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// StatusMsg carries feedback text for the status line.
type StatusMsg struct {
	Text string
	Kind StatusKind
}

// SessionChangedMsg tells views to refresh from the session.
type SessionChangedMsg struct{}

// MenuChoiceMsg is sent when a numbered menu option is chosen.
type MenuChoiceMsg struct {
	Choice int
}
