package cli

import (
	"fmt"
	"strings"

	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
)

// RenderPreview renders the assembly preview projection as plain
// text, for the preview and export commands.
func RenderPreview(p assembly.Preview, symbol string) string {
	var b strings.Builder

	for _, group := range p.Groups {
		name := group.Name
		if name == "" {
			name = fmt.Sprintf("Assembly %d", group.Index)
		}
		fmt.Fprintf(&b, "%s [%s]\n", name, group.Color.Name)
		for _, item := range group.Items {
			writePreviewItem(&b, item, symbol)
		}
		if group.Cost != 0 {
			fmt.Fprintf(&b, "  Assembly cost: %s\n", FormatMoney(symbol, group.Cost))
		}
		fmt.Fprintf(&b, "  Subtotal: %s\n\n", FormatMoney(symbol, group.Subtotal))
	}

	if len(p.Ungrouped) > 0 {
		fmt.Fprintln(&b, "Ungrouped items")
		for _, item := range p.Ungrouped {
			writePreviewItem(&b, item, symbol)
		}
	}

	if b.Len() == 0 {
		return "Nothing to preview: no configured rows.\n"
	}
	return b.String()
}

func writePreviewItem(b *strings.Builder, item assembly.PreviewItem, symbol string) {
	fmt.Fprintf(b, "  %2d  %-30s %6g x %10s = %s\n",
		item.LogicalNumber,
		TruncateString(item.Name, 30),
		item.Quantity,
		FormatMoney(symbol, item.Cost),
		FormatMoney(symbol, item.Extended),
	)
}
