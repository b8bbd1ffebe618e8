package assembly

import (
	"fmt"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// FindRowIndexByLogicalNumber resolves a logical number to a
// collection index with a single counting scan. Returns -1 when n
// exceeds the number of qualifying rows (or is not positive).
func FindRowIndexByLogicalNumber(n int, rows []models.Row) int {
	if n < 1 {
		return -1
	}
	count := 0
	for i, r := range rows {
		if r.IsTopLevelMain() {
			count++
			if count == n {
				return i
			}
		}
	}
	return -1
}

// ToggleMembership sets or clears the assembly membership of the row
// with rowID and returns the new collection. The input collection is
// never mutated; an unknown rowID returns it unchanged with ok ==
// false.
func ToggleMembership(rows []models.Row, assemblyIndex int, rowID string, selected bool) ([]models.Row, bool) {
	i := models.IndexByID(rows, rowID)
	if i < 0 {
		return rows, false
	}
	row := rows[i].Clone()
	if selected {
		v := assemblyIndex
		row.Data.AssemblyGroup = &v
	} else {
		row.Data.AssemblyGroup = nil
	}
	next := append([]models.Row(nil), rows...)
	next[i] = row
	return next, true
}

// Item is one assembly-eligible row: a configured top-level main row.
type Item struct {
	ID            string
	LogicalNumber int
	Name          string
}

// AvailableItems lists every row that can be an assembly member. When
// includeAssigned is false, rows already belonging to an assembly are
// left out.
func AvailableItems(rows []models.Row, includeAssigned bool) []Item {
	var out []Item
	n := 0
	for _, r := range rows {
		if !r.IsTopLevelMain() {
			continue
		}
		n++
		if r.ProductTypeID == "" {
			continue
		}
		if !includeAssigned && r.Data.AssemblyGroup != nil {
			continue
		}
		out = append(out, Item{ID: r.ID, LogicalNumber: n, Name: r.ProductTypeName})
	}
	return out
}

// Option is a dropdown entry for picking an assembly member by
// logical number.
type Option struct {
	Value string
	Label string
}

// DeselectLabel is the label of the leading sentinel option that
// clears a selection.
const DeselectLabel = "(none)"

// DropdownOptions formats the unassigned eligible rows as dropdown
// options, preceded by a deselect sentinel with an empty value.
func DropdownOptions(rows []models.Row) []Option {
	items := AvailableItems(rows, false)
	out := make([]Option, 0, len(items)+1)
	out = append(out, Option{Value: "", Label: DeselectLabel})
	for _, it := range items {
		out = append(out, Option{
			Value: fmt.Sprintf("%d", it.LogicalNumber),
			Label: fmt.Sprintf("%d - %s", it.LogicalNumber, it.Name),
		})
	}
	return out
}
