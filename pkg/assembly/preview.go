package assembly

import (
	"sort"
	"strconv"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// PreviewItem is a single main row as the preview displays it.
// Extended is quantity times unit cost; an empty quantity counts as 1
// and an unparsable cost as 0.
type PreviewItem struct {
	RowID         string
	LogicalNumber int
	Name          string
	Quantity      float64
	Cost          float64
	Extended      float64
}

// PreviewGroup is one assembly in the preview: its members in row
// order, the assembly's own cost, and the subtotal of member extended
// prices plus that cost.
type PreviewGroup struct {
	Index    int
	Name     string
	Color    Color
	Items    []PreviewItem
	Cost     float64
	Subtotal float64
}

// Preview is a read-only projection of the collection grouped by
// assembly. It is display data only and never a source of truth for
// mutation.
type Preview struct {
	Groups    []PreviewGroup
	Ungrouped []PreviewItem
}

// TransformToPreview groups the collection's main rows by assembly
// membership. Per-assembly metadata (display name, own cost) comes
// from infos, matched by index; assemblies without metadata get a zero
// own cost. Groups are ordered by assembly index.
func TransformToPreview(rows []models.Row, infos []models.AssemblyInfo) Preview {
	meta := make(map[int]models.AssemblyInfo, len(infos))
	for _, info := range infos {
		meta[info.Index] = info
	}

	groups := make(map[int]*PreviewGroup)
	var p Preview
	n := 0
	for _, r := range rows {
		if !r.IsTopLevelMain() {
			continue
		}
		n++
		if r.ProductTypeID == "" {
			continue
		}
		item := previewItem(r, n)
		g := r.Data.AssemblyGroup
		if g == nil {
			p.Ungrouped = append(p.Ungrouped, item)
			continue
		}
		grp, ok := groups[*g]
		if !ok {
			info := meta[*g]
			grp = &PreviewGroup{
				Index: *g,
				Name:  info.Name,
				Color: ColorOf(*g),
				Cost:  info.Cost,
			}
			groups[*g] = grp
		}
		grp.Items = append(grp.Items, item)
	}

	indices := make([]int, 0, len(groups))
	for idx := range groups {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		grp := groups[idx]
		grp.Subtotal = grp.Cost
		for _, it := range grp.Items {
			grp.Subtotal += it.Extended
		}
		p.Groups = append(p.Groups, *grp)
	}
	return p
}

// RemapInfos moves per-assembly metadata through an old→new index
// map, as produced when a reorder shifts assembly positions.
func RemapInfos(infos []models.AssemblyInfo, remap map[int]int) []models.AssemblyInfo {
	if len(remap) == 0 {
		return infos
	}
	out := make([]models.AssemblyInfo, len(infos))
	for i, info := range infos {
		if next, ok := remap[info.Index]; ok {
			info.Index = next
		}
		out[i] = info
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func previewItem(r models.Row, logical int) PreviewItem {
	name := r.ProductTypeName
	if name == "" {
		name = "(untitled)"
	}
	cost := parseAmount(r.Data.Cost, 0)
	qty := parseAmount(r.Data.Quantity, 1)
	return PreviewItem{
		RowID:         r.ID,
		LogicalNumber: logical,
		Name:          name,
		Quantity:      qty,
		Cost:          cost,
		Extended:      cost * qty,
	}
}

func parseAmount(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
