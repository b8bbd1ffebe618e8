package estimate

import (
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// Drag gesture states. A gesture starts in idle, raises the
// calculating flag while dragging, commits (or cancels) atomically,
// and returns to idle.
type DragState int

const (
	DragIdle DragState = iota
	DragActive
	DragCommitting
)

// DragState returns the current gesture state.
func (e *Editor) DragState() DragState {
	if e.dragging {
		return DragActive
	}
	return DragIdle
}

// OnDragStart begins a drag gesture for the row with rowID and raises
// the calculating flag. Starting a drag for an unknown row is a no-op.
func (e *Editor) OnDragStart(rowID string) bool {
	if models.IndexByID(e.rows, rowID) < 0 {
		return false
	}
	e.dragging = true
	e.draggedID = rowID
	e.calculating = true
	return true
}

// CancelDrag ends the gesture without touching the collection.
func (e *Editor) CancelDrag() {
	e.dragging = false
	e.draggedID = ""
	e.calculating = false
}

// OnDragEnd commits the gesture: the dragged row's whole group is
// relocated relative to the target row's group, logical-number
// references and assembly indices are remapped, and the result is
// published in a single replace. A drop on the moving group itself, an
// unresolvable id, or a structurally invalid target cancels with the
// collection untouched. The calculating flag is lowered either way.
func (e *Editor) OnDragEnd(draggedID, targetID string) bool {
	defer e.CancelDrag()

	next, shifted, ok := Reorder(e.rows, draggedID, targetID)
	if !ok {
		return false
	}
	if len(shifted) > 0 && e.cb.AssembliesShifted != nil {
		e.cb.AssembliesShifted(shifted)
	}
	e.replace(next)
	return true
}

// Reorder relocates the group owning draggedID so that it sits next to
// the group owning targetID, then remaps logical-number references and
// assembly indices against the new order. It returns the new
// collection, the assembly index remap (empty when assemblies did not
// shift), and whether anything moved. On any validation failure the
// input collection is returned unchanged with ok == false.
func Reorder(rows []models.Row, draggedID, targetID string) (out []models.Row, shifted map[int]int, ok bool) {
	if draggedID == targetID {
		return rows, nil, false
	}
	srcIndex := models.IndexByID(rows, draggedID)
	dstIndex := models.IndexByID(rows, targetID)
	if srcIndex < 0 || dstIndex < 0 {
		return rows, nil, false
	}

	moving := DraggedRows(draggedID, rows)
	if len(moving) == 0 {
		return rows, nil, false
	}
	movingIDs := make(map[string]bool, len(moving))
	for _, r := range moving {
		movingIDs[r.ID] = true
	}
	if movingIDs[targetID] {
		// Dropping a group onto itself is a cancel, not a move.
		return rows, nil, false
	}

	// Moving forward inserts after the destination group, moving
	// backward inserts before it, so a group never lands inside
	// another group's interior.
	forward := dstIndex > srcIndex

	reduced := make([]models.Row, 0, len(rows)-len(moving))
	for _, r := range rows {
		if !movingIDs[r.ID] {
			reduced = append(reduced, r)
		}
	}

	// The pre-removal destination indices are invalidated by the
	// removal; resolve the drop point again on the reduced collection.
	dstIndex = models.IndexByID(reduced, targetID)
	if dstIndex < 0 {
		return rows, nil, false
	}
	insertAt := FindGroupStart(dstIndex, reduced)
	if forward {
		insertAt = FindGroupEnd(dstIndex, reduced) + 1
	}
	if insertAt < 0 {
		return rows, nil, false
	}

	lead := moving[0]
	if !lead.IsMainRow && lead.ParentProductID == "" && insertAt == 0 {
		// A legacy sub-item at the top of the collection would have no
		// possible parent above it.
		return rows, nil, false
	}

	next := make([]models.Row, 0, len(rows))
	next = append(next, reduced[:insertAt]...)
	next = append(next, moving...)
	next = append(next, reduced[insertAt:]...)

	next = RewriteItemRefs(next, RenumberMap(rows, next))
	shifted = AssemblyIndexRemap(rows, next)
	next = RewriteAssemblyIndices(next, shifted)
	return next, shifted, true
}
