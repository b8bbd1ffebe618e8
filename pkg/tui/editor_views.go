package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

func (m *EditorModel) View() string {
	var b strings.Builder

	title := m.est.Name
	if m.dirty {
		title += " *"
	}
	b.WriteString(TitleStyle.Render("BIDGRID · " + title))
	b.WriteString("\n\n")

	grid := m.renderGrid()
	if m.showPreview {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.preview.View())
	}
	b.WriteString(grid)
	b.WriteString("\n")

	if m.editing {
		b.WriteString(fmt.Sprintf("\nEdit %s: %s\n", editorFields[m.fieldIdx], m.input.View()))
	}

	if m.pickingType {
		b.WriteString("\n" + m.renderTypePicker())
	}

	if m.confirm.Active() {
		b.WriteString("\n" + m.confirm.ViewWithWidth(m.width) + "\n")
	}

	b.WriteString("\n" + HelpStyle.Render(
		"↑/↓ row · J/K move group · tab field · enter edit · i insert · d delete · "+
			"t type · a assembly ([/] slot "+strconv.Itoa(m.assemblyIdx)+") · p preview · ctrl+s save · esc back"))
	return b.String()
}

func (m *EditorModel) renderGrid() string {
	rows := m.rows()
	if len(rows) == 0 {
		return DimStyle.Render("Empty estimate. Press 'i' to insert a row.")
	}

	numbers := models.LogicalNumbers(rows)
	var b strings.Builder

	header := fmt.Sprintf("  %3s  %-18s %8s %10s  %-10s %s", "#", "TYPE", "QTY", "COST", "ASSEMBLY", "REFS")
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")

	field := editorFields[m.fieldIdx]
	for i, row := range rows {
		line := m.renderRow(row, numbers)
		switch {
		case i == m.cursor:
			b.WriteString(SelectedStyle.Render("> " + line))
			b.WriteString(DimStyle.Render("  [" + field + "]"))
		default:
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
		if errs, ok := m.errors[row.ID]; ok {
			for f, msgs := range errs {
				for _, msg := range msgs {
					b.WriteString(ErrorStyle.Render(fmt.Sprintf("       ! %s: %s", f, msg)))
					b.WriteString("\n")
				}
			}
		}
	}
	return b.String()
}

func (m *EditorModel) renderRow(row models.Row, numbers map[string]int) string {
	num := ""
	if n, ok := numbers[row.ID]; ok {
		num = strconv.Itoa(n)
	}

	name := row.ProductTypeName
	switch {
	case !row.IsMainRow:
		name = "└─ " + firstNonEmpty(row.TextContent, "sub-item")
	case name == "":
		name = "(unconfigured)"
	}

	assemblyCol := ""
	if g := row.Data.AssemblyGroup; g != nil {
		color := assembly.ColorOf(*g)
		assemblyCol = AssemblyStyle(color.Code).Render(fmt.Sprintf("● %s", color.Name))
	}

	var refs []string
	for slot, ref := range row.Data.Items {
		if ref != "" {
			refs = append(refs, fmt.Sprintf("%s→%s", models.ItemField(slot+1), ref))
		}
	}

	return fmt.Sprintf("%3s  %-18s %8s %10s  %-10s %s",
		num,
		truncate(name, 18),
		row.Data.Quantity,
		row.Data.Cost,
		assemblyCol,
		strings.Join(refs, " "),
	)
}

func (m *EditorModel) renderTypePicker() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Select product type"))
	b.WriteString("\n")
	for i, pt := range m.catalog.Types {
		line := fmt.Sprintf("%-15s (%s)", pt.Name, pt.Unit)
		if i == m.typeCursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// updatePreview rerenders the assembly preview pane from the current
// collection. The projection is display-only.
func (m *EditorModel) updatePreview() {
	if !m.showPreview {
		return
	}
	preview := assembly.TransformToPreview(m.rows(), m.est.Assemblies)
	symbol := m.settings.Output.CurrencySymbol

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("ASSEMBLY PREVIEW"))
	b.WriteString("\n\n")
	for _, group := range preview.Groups {
		name := group.Name
		if name == "" {
			name = fmt.Sprintf("Assembly %d", group.Index)
		}
		b.WriteString(AssemblyStyle(group.Color.Code).Render("● " + name))
		b.WriteString("\n")
		for _, item := range group.Items {
			b.WriteString(fmt.Sprintf("  %d %s  %s%.2f\n", item.LogicalNumber, item.Name, symbol, item.Extended))
		}
		b.WriteString(fmt.Sprintf("  Subtotal: %s%.2f\n\n", symbol, group.Subtotal))
	}
	if len(preview.Ungrouped) > 0 {
		b.WriteString(DimStyle.Render("Ungrouped"))
		b.WriteString("\n")
		for _, item := range preview.Ungrouped {
			b.WriteString(fmt.Sprintf("  %d %s  %s%.2f\n", item.LogicalNumber, item.Name, symbol, item.Extended))
		}
	}

	width := m.preview.Width
	if width <= 0 {
		width = 40
	}
	m.preview.SetContent(wordwrap.String(b.String(), width))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
