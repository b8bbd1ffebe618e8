package estimate

import (
	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
)

// ToggleAssemblyMembership sets or clears the assembly membership of
// the row with rowID and publishes the result.
func (e *Editor) ToggleAssemblyMembership(assemblyIndex int, rowID string, selected bool) bool {
	next, ok := assembly.ToggleMembership(e.rows, assemblyIndex, rowID, selected)
	if !ok {
		return false
	}
	e.replace(next)
	return true
}
