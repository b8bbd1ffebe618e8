package estimate

import (
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// FindGroupStart resolves the index of the main row that heads the
// group containing the row at index. A main row heads its own group.
// A child row is resolved through its parent back-reference when it
// has one, otherwise by the nearest preceding main row. Returns index
// itself when no owner can be found (a degenerate single-row group),
// or -1 when index is out of range.
func FindGroupStart(index int, rows []models.Row) int {
	if index < 0 || index >= len(rows) {
		return -1
	}
	row := rows[index]
	if row.IsMainRow {
		return index
	}
	if row.ParentProductID != "" {
		for i := index - 1; i >= 0; i-- {
			if rows[i].ID == row.ParentProductID {
				return i
			}
		}
		return index
	}
	// Legacy sub-item without a back-reference: nearest preceding main row.
	for i := index - 1; i >= 0; i-- {
		if rows[i].IsMainRow {
			return i
		}
	}
	return index
}

// FindGroupEnd resolves the group containing the row at index and
// returns the index of its last contiguous row. The scan runs forward
// from the group start while rows carry the owner's ID as their
// parent, stopping at the next main row.
func FindGroupEnd(index int, rows []models.Row) int {
	start := FindGroupStart(index, rows)
	if start < 0 {
		return -1
	}
	owner := rows[start]
	end := start
	for i := start + 1; i < len(rows); i++ {
		if rows[i].IsMainRow || rows[i].ParentProductID != owner.ID {
			break
		}
		end = i
	}
	return end
}

// DraggedRows computes the full set of rows that move together when
// the row with rowID is dragged: the owning main row followed by all
// of its children in their original relative order. Children are
// matched by parent back-reference, or for legacy rows lacking one, by
// nearest preceding main row, so the set can include rows that are not
// contiguous with the group. A single forward pass builds the
// ownership map. Returns nil when the row cannot be resolved.
func DraggedRows(rowID string, rows []models.Row) []models.Row {
	mains := make(map[string]models.Row)
	children := make(map[string][]models.Row)
	owner := make(map[string]string)
	lastMain := ""

	for _, r := range rows {
		if r.IsMainRow {
			mains[r.ID] = r
			owner[r.ID] = r.ID
			lastMain = r.ID
			continue
		}
		parent := r.ParentProductID
		if parent == "" {
			parent = lastMain
		}
		if parent != "" {
			children[parent] = append(children[parent], r)
		}
		owner[r.ID] = parent
	}

	own, ok := owner[rowID]
	if !ok {
		return nil
	}
	if own == "" {
		// Scattered sub-item with no main row anywhere above it moves alone.
		if i := models.IndexByID(rows, rowID); i >= 0 {
			return []models.Row{rows[i]}
		}
		return nil
	}
	main, ok := mains[own]
	if !ok {
		// Dangling parent reference; nothing safe to move.
		return nil
	}
	return append([]models.Row{main}, children[own]...)
}
