package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles inline confirmation prompts. It also
// backs the editor's synchronous confirm callback: the answer is
// delivered through onConfirm/onCancel commands.
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
	viewWidth   int
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given message
func (m *ConfirmationModel) Show(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// ViewWithWidth renders the confirmation centered in the given width
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

// View renders the confirmation line
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	yes := "y"
	no := "n"
	if m.destructive {
		yes = ErrorStyle.Render("y")
		no = StatusStyle.Render("n")
	}
	message := fmt.Sprintf("%s (%s/%s)", m.message, yes, no)

	if m.viewWidth > 0 && lipgloss.Width(message) < m.viewWidth {
		return lipgloss.NewStyle().
			Width(m.viewWidth).
			Align(lipgloss.Center).
			Render(message)
	}

	return message
}
