package tui

// StatusMsg carries a transient status line to the app frame.
type StatusMsg string

// SwitchViewMsg asks the app to activate another view.
type SwitchViewMsg struct {
	view     sessionState
	estimate string // estimate filename for the editor view
	status   string
}
