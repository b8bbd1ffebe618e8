package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

type estimateItem struct {
	name     string
	filename string
	rows     int
}

// EstimateListModel is the opening view: the project's estimates with
// create/open/delete actions.
type EstimateListModel struct {
	estimates []estimateItem
	cursor    int
	err       error

	creating  bool
	nameInput textinput.Model

	deleteConfirm *ConfirmationModel

	width  int
	height int
}

func NewEstimateListModel() *EstimateListModel {
	input := textinput.New()
	input.Placeholder = "Estimate name"
	input.CharLimit = 80

	m := &EstimateListModel{
		nameInput:     input,
		deleteConfirm: NewConfirmation(),
	}
	m.loadEstimates()
	return m
}

func (m *EstimateListModel) Init() tea.Cmd {
	return nil
}

func (m *EstimateListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *EstimateListModel) loadEstimates() {
	m.estimates = nil
	names, err := files.ListEstimates()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	for _, name := range names {
		est, err := files.ReadEstimate(name)
		if err != nil {
			continue
		}
		m.estimates = append(m.estimates, estimateItem{
			name:     est.Name,
			filename: name,
			rows:     len(est.Rows),
		})
	}
	if m.cursor >= len(m.estimates) {
		m.cursor = len(m.estimates) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// estimateDeletedMsg reports the outcome of a delete command so the
// model can refresh its listing inside Update.
type estimateDeletedMsg struct {
	name string
	err  error
}

func (m *EstimateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if del, ok := msg.(estimateDeletedMsg); ok {
		if del.err != nil {
			return m, func() tea.Msg {
				return StatusMsg(fmt.Sprintf("Failed to delete estimate '%s': %v", del.name, del.err))
			}
		}
		m.loadEstimates()
		return m, func() tea.Msg {
			return StatusMsg(fmt.Sprintf("✓ Deleted estimate: %s", del.name))
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.deleteConfirm.Active() {
		return m, m.deleteConfirm.Update(keyMsg)
	}

	if m.creating {
		switch keyMsg.String() {
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			m.creating = false
			if name == "" {
				return m, nil
			}
			return m, m.createEstimate(name)
		case "esc":
			m.creating = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.estimates)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.estimates) {
			return m, func() tea.Msg {
				return SwitchViewMsg{view: estimateEditorView, estimate: m.estimates[m.cursor].filename}
			}
		}
	case "n":
		m.creating = true
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()
	case "d":
		if m.cursor < len(m.estimates) {
			item := m.estimates[m.cursor]
			m.deleteConfirm.Show(
				fmt.Sprintf("Delete estimate '%s'?", item.name),
				true,
				func() tea.Cmd { return m.deleteEstimate(item) },
				nil,
			)
		}
	}
	return m, nil
}

func (m *EstimateListModel) createEstimate(name string) tea.Cmd {
	return func() tea.Msg {
		est := &models.Estimate{
			Name: name,
			Rows: []models.Row{models.NewPlaceholderRow()},
		}
		if err := files.WriteEstimate(est); err != nil {
			return StatusMsg(fmt.Sprintf("Failed to create estimate: %v", err))
		}
		return SwitchViewMsg{
			view:     estimateEditorView,
			estimate: est.Path,
			status:   fmt.Sprintf("✓ Created estimate: %s", name),
		}
	}
}

// deleteEstimate runs the file removal off the update loop and reports
// back with a message; the model itself is only touched in Update.
func (m *EstimateListModel) deleteEstimate(item estimateItem) tea.Cmd {
	return func() tea.Msg {
		return estimateDeletedMsg{name: item.name, err: files.DeleteEstimate(item.filename)}
	}
}

func (m *EstimateListModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("BIDGRID · Estimates"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.estimates) == 0 {
		b.WriteString(DimStyle.Render("No estimates yet. Press 'n' to create one."))
		b.WriteString("\n")
	}

	for i, item := range m.estimates {
		line := fmt.Sprintf("%-40s %d rows", item.name, item.rows)
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.creating {
		b.WriteString("\nName: " + m.nameInput.View() + "\n")
	}

	if m.deleteConfirm.Active() {
		b.WriteString("\n" + m.deleteConfirm.ViewWithWidth(m.width) + "\n")
	}

	b.WriteString("\n" + HelpStyle.Render("↑/↓ navigate · enter open · n new · d delete · q quit"))
	return b.String()
}
