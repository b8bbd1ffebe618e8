package models

// Logical numbers are positional: the 1-based rank of a top-level main
// row counted from the start of the collection. They are never stored
// on a row; any edit that changes row order or count can change them,
// so callers recompute on demand.

// LogicalNumbers returns a map from row ID to logical number for every
// qualifying row in one pass.
func LogicalNumbers(rows []Row) map[string]int {
	out := make(map[string]int)
	n := 0
	for _, r := range rows {
		if r.IsTopLevelMain() {
			n++
			out[r.ID] = n
		}
	}
	return out
}

// LogicalNumberOf returns the logical number of the row with the given
// ID, or -1 if the row is absent or does not qualify.
func LogicalNumberOf(rowID string, rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.IsTopLevelMain() {
			n++
			if r.ID == rowID {
				return n
			}
		}
	}
	return -1
}

// IndexByID returns the collection index of the row with the given ID,
// or -1 if no such row exists.
func IndexByID(rows []Row, id string) int {
	for i, r := range rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
