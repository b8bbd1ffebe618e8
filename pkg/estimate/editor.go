package estimate

import (
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// Callbacks are the external collaborators the editor drives. The
// editor owns no persistence and renders nothing; it mutates its row
// collection and hands the result to ReplaceRows, exactly once per
// operation.
type Callbacks struct {
	// ReplaceRows commits a new row collection to the caller's state.
	ReplaceRows func(rows []models.Row)
	// MarkChanged signals that the estimate is dirty.
	MarkChanged func()
	// Confirm asks the user before a destructive operation. A nil
	// Confirm auto-approves.
	Confirm func(message string) bool
	// LookupProductType resolves a product-type id to its metadata.
	LookupProductType func(id string) (models.ProductType, bool)
	// AssembliesShifted reports the old→new assembly index map when a
	// reorder repositions assemblies, so callers can move per-assembly
	// metadata along. Optional.
	AssembliesShifted func(remap map[int]int)
}

// Editor holds the working row collection and applies every mutating
// operation to it. All operations are synchronous; each one that
// changes anything ends with a single ReplaceRows followed by
// MarkChanged, never exposing an intermediate collection.
type Editor struct {
	rows []models.Row
	cb   Callbacks

	dragging    bool
	draggedID   string
	calculating bool
}

// NewEditor creates an editor over the given collection. The slice is
// adopted as-is; operations never mutate it in place.
func NewEditor(rows []models.Row, cb Callbacks) *Editor {
	return &Editor{rows: rows, cb: cb}
}

// Rows returns the current collection. Callers must treat it as
// read-only.
func (e *Editor) Rows() []models.Row {
	return e.rows
}

// SetRows replaces the working collection without signaling a change,
// for callers that load a new estimate into an existing editor.
func (e *Editor) SetRows(rows []models.Row) {
	e.rows = rows
}

// Calculating reports whether a drag gesture is in flight. Downstream
// consumers (validation, expensive per-row work) check this and skip
// work while it is set.
func (e *Editor) Calculating() bool {
	return e.calculating
}

// replace is the single commit point: every mutation funnels through
// here so ReplaceRows and MarkChanged fire exactly once per operation.
func (e *Editor) replace(rows []models.Row) {
	e.rows = rows
	if e.cb.ReplaceRows != nil {
		e.cb.ReplaceRows(rows)
	}
	if e.cb.MarkChanged != nil {
		e.cb.MarkChanged()
	}
}

func (e *Editor) confirm(message string) bool {
	if e.cb.Confirm == nil {
		return true
	}
	return e.cb.Confirm(message)
}
