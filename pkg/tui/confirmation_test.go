package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestConfirmationConfirm(t *testing.T) {
	m := NewConfirmation()
	confirmed, cancelled := false, false

	m.Show("Delete?", true,
		func() tea.Cmd { confirmed = true; return nil },
		func() tea.Cmd { cancelled = true; return nil },
	)

	if !m.Active() {
		t.Fatal("confirmation not active after Show")
	}

	m.Update(keyMsg("y"))

	if !confirmed || cancelled {
		t.Errorf("confirmed=%v cancelled=%v, want true false", confirmed, cancelled)
	}
	if m.Active() {
		t.Error("confirmation still active after answer")
	}
}

func TestConfirmationCancel(t *testing.T) {
	for _, key := range []string{"n", "N", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := NewConfirmation()
			confirmed, cancelled := false, false
			m.Show("Delete?", true,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil },
			)

			m.Update(keyMsg(key))

			if confirmed || !cancelled {
				t.Errorf("confirmed=%v cancelled=%v, want false true", confirmed, cancelled)
			}
		})
	}
}

func TestConfirmationIgnoresOtherKeys(t *testing.T) {
	m := NewConfirmation()
	m.Show("Delete?", false, nil, nil)

	m.Update(keyMsg("x"))

	if !m.Active() {
		t.Error("unrelated key dismissed the confirmation")
	}
}

func TestConfirmationView(t *testing.T) {
	m := NewConfirmation()
	if m.View() != "" {
		t.Error("inactive confirmation rendered content")
	}

	m.Show("Delete cabinet?", false, nil, nil)
	if !strings.Contains(m.View(), "Delete cabinet?") {
		t.Errorf("view missing message: %q", m.View())
	}
}
