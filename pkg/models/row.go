package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewRowID returns a fresh opaque row identifier. IDs are assigned
// once at creation and never reused.
func NewRowID() string {
	return uuid.NewString()
}

// NewPlaceholderRow creates an empty main row with no classification.
func NewPlaceholderRow() Row {
	return Row{
		ID:        NewRowID(),
		IsMainRow: true,
	}
}

// Clone returns a deep copy of the row. Mutating operations clone the
// row they change so previously published collections stay intact.
func (r Row) Clone() Row {
	c := r
	c.Data = r.Data.Clone()
	return c
}

// IsTopLevelMain reports whether the row participates in logical
// numbering: a main row that is not owned by another product.
func (r Row) IsTopLevelMain() bool {
	return r.IsMainRow && r.ParentProductID == ""
}

// Clone returns a deep copy of the data bag.
func (d RowData) Clone() RowData {
	c := d
	if d.AssemblyGroup != nil {
		v := *d.AssemblyGroup
		c.AssemblyGroup = &v
	}
	if d.Extra != nil {
		c.Extra = make(map[string]string, len(d.Extra))
		for k, v := range d.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// ItemField returns the field name for the nth (1-based) item
// reference slot, e.g. ItemField(3) == "item_3".
func ItemField(n int) string {
	return fmt.Sprintf("item_%d", n)
}

// ParseItemField reports whether name is an item reference field and,
// if so, its 1-based slot number.
func ParseItemField(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "item_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > MaxItemRefs {
		return 0, false
	}
	return n, true
}

// CloneRows returns a new slice with every row deep-copied.
func CloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
