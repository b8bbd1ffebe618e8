package assembly

import (
	"strconv"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// Validation messages surfaced on reference fields.
const (
	ErrNotANumber  = "Must be a number"
	ErrAlreadyUsed = "Already used in another assembly"
	ErrNoSuchItem  = "No item with that number"
)

// Occurrence records where a reference value is used: which assembly
// row holds it and in which item field.
type Occurrence struct {
	AssemblyID string
	Field      string
}

// UsageMap indexes every non-empty item reference by its value, so a
// duplicate check is a map lookup rather than a collection scan.
type UsageMap map[string][]Occurrence

// BuildUsageMap indexes all item references in one linear pass.
func BuildUsageMap(rows []models.Row) UsageMap {
	m := make(UsageMap)
	for _, r := range rows {
		for slot, ref := range r.Data.Items {
			if ref == "" {
				continue
			}
			m[ref] = append(m[ref], Occurrence{
				AssemblyID: r.ID,
				Field:      models.ItemField(slot + 1),
			})
		}
	}
	return m
}

// ValidateField checks one reference value against the usage map. An
// empty value is always valid; a non-numeric value is rejected. A
// duplicated value flags every holder except the first writer:
// occurrences are recorded in collection order, and only the caller
// whose own slot is the earliest occurrence keeps the value
// error-free. O(1) once the map is built.
func (m UsageMap) ValidateField(value, selfAssemblyID, selfField string) []string {
	if value == "" {
		return nil
	}
	if _, err := strconv.Atoi(value); err != nil {
		return []string{ErrNotANumber}
	}
	occs := m[value]
	if len(occs) == 0 {
		return nil
	}
	if first := occs[0]; first.AssemblyID == selfAssemblyID && first.Field == selfField {
		return nil
	}
	return []string{ErrAlreadyUsed}
}

// ValidateFieldAgainstRows runs ValidateField and additionally checks
// that the referenced logical number resolves to an existing row.
func (m UsageMap) ValidateFieldAgainstRows(value, selfAssemblyID, selfField string, rows []models.Row) []string {
	errs := m.ValidateField(value, selfAssemblyID, selfField)
	if len(errs) > 0 || value == "" {
		return errs
	}
	n, _ := strconv.Atoi(value)
	if FindRowIndexByLogicalNumber(n, rows) < 0 {
		return []string{ErrNoSuchItem}
	}
	return nil
}
