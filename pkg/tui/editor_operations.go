package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidgrid/bidgrid-cli/pkg/estimate"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// saveResultMsg reports the outcome of a save command so the model
// can clear its dirty flag inside Update.
type saveResultMsg struct {
	name string
	err  error
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(saveResultMsg); ok {
		if saved.err != nil {
			return m, func() tea.Msg {
				return StatusMsg(fmt.Sprintf("× Failed to save estimate: %v", saved.err))
			}
		}
		m.dirty = false
		return m, func() tea.Msg {
			return StatusMsg(fmt.Sprintf("✓ Saved estimate: %s", saved.name))
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm.Active() {
		return m, m.confirm.Update(keyMsg)
	}

	if m.editing {
		return m, m.updateFieldEditor(keyMsg, msg)
	}

	if m.pickingType {
		return m, m.updateTypePicker(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "esc":
		return m, m.leave()
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "K", "shift+up":
		m.moveGroup(-1)
	case "J", "shift+down":
		m.moveGroup(1)
	case "enter", "e":
		m.startEditing()
	case "tab":
		m.fieldIdx = (m.fieldIdx + 1) % len(editorFields)
	case "shift+tab":
		m.fieldIdx = (m.fieldIdx + len(editorFields) - 1) % len(editorFields)
	case "i":
		if m.editor.InsertRow(m.cursor) {
			m.afterMutation()
		}
	case "d":
		m.requestDelete()
	case "t":
		m.pickingType = true
		m.typeCursor = 0
	case "T":
		if m.editor.ResetProductType(m.cursor) {
			m.afterMutation()
		}
	case "a":
		m.toggleAssembly()
	case "[":
		if m.assemblyIdx > 0 {
			m.assemblyIdx--
		}
	case "]":
		m.assemblyIdx++
	case "p":
		m.showPreview = !m.showPreview
		m.updatePreview()
	case "ctrl+s":
		return m, m.save()
	}
	return m, nil
}

func (m *EditorModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n := len(m.rows()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// moveGroup relocates the group under the cursor one group up or down
// through the drag-reorder engine: the gesture starts on the current
// row and drops onto the neighboring group's main row.
func (m *EditorModel) moveGroup(direction int) {
	rows := m.rows()
	if len(rows) == 0 {
		return
	}
	start := estimate.FindGroupStart(m.cursor, rows)
	if start < 0 {
		return
	}

	var targetIndex int
	if direction < 0 {
		targetIndex = estimate.FindGroupStart(start-1, rows)
	} else {
		end := estimate.FindGroupEnd(m.cursor, rows)
		if end < 0 || end+1 >= len(rows) {
			return
		}
		targetIndex = estimate.FindGroupStart(end+1, rows)
	}
	if targetIndex < 0 || targetIndex == start {
		return
	}

	dragged := rows[start].ID
	target := rows[targetIndex].ID
	if !m.editor.OnDragStart(dragged) {
		return
	}
	if m.editor.OnDragEnd(dragged, target) {
		// Follow the moved group with the cursor.
		if i := models.IndexByID(m.rows(), dragged); i >= 0 {
			m.cursor = i
		}
		m.afterMutation()
	}
}

func (m *EditorModel) startEditing() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	m.editing = true
	m.input.SetValue(m.currentFieldValue())
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *EditorModel) currentFieldValue() string {
	row := m.rows()[m.cursor]
	field := editorFields[m.fieldIdx]
	switch field {
	case models.FieldQty, models.FieldQuantity:
		return row.Data.Quantity
	case models.FieldCost:
		return row.Data.Cost
	case models.FieldTextContent:
		return row.TextContent
	default:
		if n, ok := models.ParseItemField(field); ok {
			return row.Data.Items[n-1]
		}
		return row.Data.Extra[field]
	}
}

func (m *EditorModel) updateFieldEditor(keyMsg tea.KeyMsg, msg tea.Msg) tea.Cmd {
	switch keyMsg.String() {
	case "enter":
		// Commit on the blur boundary, then validate just this row.
		m.editing = false
		m.input.Blur()
		if m.editor.CommitField(m.cursor, editorFields[m.fieldIdx], m.input.Value()) {
			m.validateRow(m.cursor)
			m.updatePreview()
		}
		return nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

func (m *EditorModel) updateTypePicker(keyMsg tea.KeyMsg) tea.Cmd {
	types := m.catalog.Types
	switch keyMsg.String() {
	case "up", "k":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "down", "j":
		if m.typeCursor < len(types)-1 {
			m.typeCursor++
		}
	case "enter":
		m.pickingType = false
		if m.typeCursor < len(types) {
			if m.editor.SelectProductType(m.cursor, types[m.typeCursor].ID) {
				m.afterMutation()
			}
		}
	case "esc":
		m.pickingType = false
	}
	return nil
}

func (m *EditorModel) requestDelete() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	start := estimate.FindGroupStart(m.cursor, rows)
	if start < 0 || !rows[start].IsMainRow {
		return
	}
	name := rows[start].ProductTypeName
	if name == "" {
		name = "this row"
	}
	index := start
	if !m.settings.UI.ConfirmDelete {
		if m.editor.DeleteRow(index) {
			m.afterDelete()
		}
		return
	}
	m.confirm.Show(
		fmt.Sprintf("Delete %s and all of its sub-items?", name),
		true,
		func() tea.Cmd {
			if m.editor.DeleteRow(index) {
				m.afterDelete()
			}
			return nil
		},
		nil,
	)
}

func (m *EditorModel) afterDelete() {
	if n := len(m.rows()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	m.afterMutation()
}

// toggleAssembly adds the current row to the active assembly slot, or
// removes it when it is already a member.
func (m *EditorModel) toggleAssembly() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	row := rows[m.cursor]
	selected := row.Data.AssemblyGroup == nil
	if m.editor.ToggleAssemblyMembership(m.assemblyIdx, row.ID, selected) {
		m.afterMutation()
	}
}

func (m *EditorModel) afterMutation() {
	m.validateAll()
	m.updatePreview()
}

func (m *EditorModel) save() tea.Cmd {
	est := m.est
	return func() tea.Msg {
		return saveResultMsg{name: est.Name, err: files.WriteEstimate(est)}
	}
}

func (m *EditorModel) leave() tea.Cmd {
	if !m.dirty {
		return func() tea.Msg {
			return SwitchViewMsg{view: estimateListView}
		}
	}
	m.confirm.Show(
		"Save changes before leaving?",
		false,
		func() tea.Cmd {
			if err := files.WriteEstimate(m.est); err != nil {
				return func() tea.Msg {
					return StatusMsg(fmt.Sprintf("× Failed to save estimate: %v", err))
				}
			}
			return func() tea.Msg {
				return SwitchViewMsg{view: estimateListView, status: fmt.Sprintf("✓ Saved estimate: %s", m.est.Name)}
			}
		},
		func() tea.Cmd {
			return func() tea.Msg {
				return SwitchViewMsg{view: estimateListView}
			}
		},
	)
	return nil
}
