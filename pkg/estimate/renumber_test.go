package estimate

import (
	"testing"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

func TestRenumberMap(t *testing.T) {
	before := []models.Row{mainRow("a"), mainRow("b"), mainRow("c")}
	after := []models.Row{mainRow("c"), mainRow("a"), mainRow("b")}

	got := RenumberMap(before, after)

	want := map[string]string{"1": "2", "2": "3", "3": "1"}
	if len(got) != len(want) {
		t.Fatalf("RenumberMap returned %d entries, want %d: %v", len(got), len(want), got)
	}
	for old, next := range want {
		if got[old] != next {
			t.Errorf("RenumberMap[%s] = %s, want %s", old, got[old], next)
		}
	}
}

func TestRenumberMapOmitsUnchanged(t *testing.T) {
	before := []models.Row{mainRow("a"), mainRow("b"), mainRow("c")}
	after := []models.Row{mainRow("a"), mainRow("c"), mainRow("b")}

	got := RenumberMap(before, after)

	if _, ok := got["1"]; ok {
		t.Errorf("RenumberMap included unchanged number 1: %v", got)
	}
	if got["2"] != "3" || got["3"] != "2" {
		t.Errorf("RenumberMap = %v, want 2→3 and 3→2", got)
	}
}

func TestRewriteItemRefs(t *testing.T) {
	holder := mainRow("h")
	holder.Data.Items[0] = "3"
	holder.Data.Items[4] = "2"
	bystander := mainRow("b")
	bystander.Data.Items[0] = "9"
	rows := []models.Row{holder, bystander}

	got := RewriteItemRefs(rows, map[string]string{"3": "1"})

	if got[0].Data.Items[0] != "1" {
		t.Errorf("remapped reference = %q, want %q", got[0].Data.Items[0], "1")
	}
	if got[0].Data.Items[4] != "2" {
		t.Errorf("untouched slot changed: %q", got[0].Data.Items[4])
	}
	if got[1].Data.Items[0] != "9" {
		t.Errorf("bystander reference changed: %q", got[1].Data.Items[0])
	}

	// The input collection must not be mutated.
	if rows[0].Data.Items[0] != "3" {
		t.Errorf("RewriteItemRefs mutated its input: %q", rows[0].Data.Items[0])
	}
}

func TestRewriteItemRefsEmptyRemap(t *testing.T) {
	rows := []models.Row{mainRow("a")}
	got := RewriteItemRefs(rows, nil)
	if &got[0] != &rows[0] {
		t.Error("empty remap should return the input collection unchanged")
	}
}

func TestAssemblyIndexRemap(t *testing.T) {
	withGroup := func(id string, g int) models.Row {
		r := mainRow(id)
		r.Data.AssemblyGroup = &g
		return r
	}

	// Assembly 1's first member precedes assembly 0's after the move,
	// so the two swap position ranks.
	before := []models.Row{withGroup("a", 0), withGroup("b", 1)}
	after := []models.Row{withGroup("b", 1), withGroup("a", 0)}

	got := AssemblyIndexRemap(before, after)

	if got[1] != 0 || got[0] != 1 {
		t.Errorf("AssemblyIndexRemap = %v, want 1→0 and 0→1", got)
	}

	rewritten := RewriteAssemblyIndices(after, got)
	if *rewritten[0].Data.AssemblyGroup != 0 {
		t.Errorf("first assembly after rewrite = %d, want 0", *rewritten[0].Data.AssemblyGroup)
	}
	if *rewritten[1].Data.AssemblyGroup != 1 {
		t.Errorf("second assembly after rewrite = %d, want 1", *rewritten[1].Data.AssemblyGroup)
	}
	if *after[0].Data.AssemblyGroup != 1 {
		t.Error("RewriteAssemblyIndices mutated its input")
	}
}

func TestAssemblyIndexRemapStableOrder(t *testing.T) {
	withGroup := func(id string, g int) models.Row {
		r := mainRow(id)
		r.Data.AssemblyGroup = &g
		return r
	}

	rows := []models.Row{withGroup("a", 0), mainRow("x"), withGroup("b", 1)}
	moved := []models.Row{withGroup("a", 0), withGroup("b", 1), mainRow("x")}

	if got := AssemblyIndexRemap(rows, moved); len(got) != 0 {
		t.Errorf("unshifted assemblies produced a remap: %v", got)
	}
}
