package estimate

import (
	"fmt"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// CommitField writes a single field value into the row at rowIndex.
// Field-name-specific placement: "qty" lands in quantity,
// "text_content" is a row-level field rather than part of the data
// bag, item_N names address the reference slots, and any unreserved
// name goes into the open extension map. Returns false without
// mutating anything when rowIndex is out of range.
func (e *Editor) CommitField(rowIndex int, field, value string) bool {
	return e.commitFields(rowIndex, []fieldWrite{{field, value}})
}

// CommitFields writes several fields of one row in a single commit, so
// downstream consumers see one ReplaceRows instead of one per field.
// Observably equivalent to committing each field individually.
func (e *Editor) CommitFields(rowIndex int, fields map[string]string) bool {
	writes := make([]fieldWrite, 0, len(fields))
	for f, v := range fields {
		writes = append(writes, fieldWrite{f, v})
	}
	return e.commitFields(rowIndex, writes)
}

type fieldWrite struct {
	field string
	value string
}

func (e *Editor) commitFields(rowIndex int, writes []fieldWrite) bool {
	if rowIndex < 0 || rowIndex >= len(e.rows) || len(writes) == 0 {
		return false
	}
	row := e.rows[rowIndex].Clone()
	for _, w := range writes {
		applyField(&row, w.field, w.value)
	}
	next := append([]models.Row(nil), e.rows...)
	next[rowIndex] = row
	e.replace(next)
	return true
}

func applyField(row *models.Row, field, value string) {
	switch field {
	case models.FieldQty, models.FieldQuantity:
		row.Data.Quantity = value
	case models.FieldCost:
		row.Data.Cost = value
	case models.FieldTextContent:
		row.TextContent = value
	default:
		if n, ok := models.ParseItemField(field); ok {
			row.Data.Items[n-1] = value
			return
		}
		if row.Data.Extra == nil {
			row.Data.Extra = make(map[string]string)
		}
		row.Data.Extra[field] = value
	}
}

// InsertRow creates an empty placeholder main row immediately after
// the group that contains afterIndex, so an insert never lands inside
// an existing group. An out-of-range index appends at the end.
func (e *Editor) InsertRow(afterIndex int) bool {
	at := len(e.rows)
	if end := FindGroupEnd(afterIndex, e.rows); end >= 0 {
		at = end + 1
	}
	next := make([]models.Row, 0, len(e.rows)+1)
	next = append(next, e.rows[:at]...)
	next = append(next, models.NewPlaceholderRow())
	next = append(next, e.rows[at:]...)
	e.replace(RecomputeAssemblyReferences(next))
	return true
}

// DeleteRow removes the whole contiguous group headed by the main row
// at rowIndex, after confirmation. Deleting a non-main row is not
// supported and is a no-op.
func (e *Editor) DeleteRow(rowIndex int) bool {
	if rowIndex < 0 || rowIndex >= len(e.rows) {
		return false
	}
	row := e.rows[rowIndex]
	if !row.IsMainRow {
		return false
	}
	name := row.ProductTypeName
	if name == "" {
		name = "this row"
	}
	if !e.confirm(fmt.Sprintf("Delete %s and all of its sub-items?", name)) {
		return false
	}
	end := FindGroupEnd(rowIndex, e.rows)
	next := make([]models.Row, 0, len(e.rows)-(end-rowIndex+1))
	next = append(next, e.rows[:rowIndex]...)
	next = append(next, e.rows[end+1:]...)
	e.replace(RecomputeAssemblyReferences(next))
	return true
}

// SelectProductType converts the row at rowIndex into a main row of
// the given classification. A pre-existing assembly membership is
// preserved; everything else in the data bag is cleared.
func (e *Editor) SelectProductType(rowIndex int, typeID string) bool {
	if rowIndex < 0 || rowIndex >= len(e.rows) {
		return false
	}
	if e.cb.LookupProductType == nil {
		return false
	}
	pt, ok := e.cb.LookupProductType(typeID)
	if !ok {
		return false
	}
	row := e.rows[rowIndex]
	converted := models.Row{
		ID:              row.ID,
		IsMainRow:       true,
		ProductTypeID:   pt.ID,
		ProductTypeName: pt.Name,
	}
	if g := row.Data.AssemblyGroup; g != nil {
		v := *g
		converted.Data.AssemblyGroup = &v
	}
	next := append([]models.Row(nil), e.rows...)
	next[rowIndex] = converted
	e.replace(RecomputeAssemblyReferences(next))
	return true
}

// ResetProductType removes every row of the group except the main row,
// which is reset to an empty placeholder. Assembly membership survives
// the reset.
func (e *Editor) ResetProductType(rowIndex int) bool {
	start := FindGroupStart(rowIndex, e.rows)
	if start < 0 {
		return false
	}
	end := FindGroupEnd(start, e.rows)
	row := e.rows[start]
	reset := models.Row{
		ID:        row.ID,
		IsMainRow: true,
	}
	if g := row.Data.AssemblyGroup; g != nil {
		v := *g
		reset.Data.AssemblyGroup = &v
	}
	next := make([]models.Row, 0, len(e.rows)-(end-start))
	next = append(next, e.rows[:start]...)
	next = append(next, reset)
	next = append(next, e.rows[end+1:]...)
	e.replace(RecomputeAssemblyReferences(next))
	return true
}
