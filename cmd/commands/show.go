package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <estimate>",
		Short: "Show an estimate's rows",
		Long: `Show every row of an estimate with its logical number, group
structure, assembly membership, and committed field values.

Examples:
  # Show an estimate
  bidgrid show kitchen-remodel

  # Show with YAML output
  bidgrid show kitchen-remodel -o yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat := outputFormat(cmd)

	est, err := files.ReadEstimate(cli.NormalizeEstimateFilename(args[0]))
	if err != nil {
		return err
	}

	if outputFormat != "text" {
		return cli.OutputResults(os.Stdout, outputFormat, est)
	}

	fmt.Printf("Estimate: %s\n\n", est.Name)

	numbers := models.LogicalNumbers(est.Rows)
	table := cli.NewTableFormatter(os.Stdout)
	table.Header("#", "TYPE", "QTY", "COST", "ASSEMBLY", "NOTES")
	for _, row := range est.Rows {
		table.Row(
			logicalColumn(row, numbers),
			rowTypeColumn(row),
			row.Data.Quantity,
			row.Data.Cost,
			assemblyColumn(row),
			cli.TruncateString(row.TextContent, 40),
		)
	}
	table.Flush()

	return nil
}

func logicalColumn(row models.Row, numbers map[string]int) string {
	if n, ok := numbers[row.ID]; ok {
		return strconv.Itoa(n)
	}
	return ""
}

func rowTypeColumn(row models.Row) string {
	if !row.IsMainRow {
		return "  └─ sub-item"
	}
	if row.ProductTypeName == "" {
		return "(unconfigured)"
	}
	return row.ProductTypeName
}

func assemblyColumn(row models.Row) string {
	g := row.Data.AssemblyGroup
	if g == nil {
		return ""
	}
	return fmt.Sprintf("%d (%s)", *g, assembly.ColorOf(*g).Name)
}
