package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <estimate>",
		Short: "Show the grouped assembly preview",
		Long: `Show an estimate's read-only assembly preview: configured rows
grouped by assembly with per-group subtotals, followed by ungrouped
items.

Examples:
  # Preview an estimate
  bidgrid preview kitchen-remodel

  # Preview with JSON output
  bidgrid preview kitchen-remodel -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runPreview,
	}

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	outputFormat := outputFormat(cmd)

	est, err := files.ReadEstimate(cli.NormalizeEstimateFilename(args[0]))
	if err != nil {
		return err
	}

	preview := assembly.TransformToPreview(est.Rows, est.Assemblies)

	if outputFormat != "text" {
		return cli.OutputResults(os.Stdout, outputFormat, preview)
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Preview: %s\n\n", est.Name)
	fmt.Print(cli.RenderPreview(preview, settings.Output.CurrencySymbol))

	return nil
}
