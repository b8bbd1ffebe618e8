package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
)

var (
	exportOut  string
	exportCopy bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <estimate>",
		Short: "Export an estimate's preview as text",
		Long: `Render an estimate's assembly preview as plain text and write it
to stdout, a file, or the system clipboard.

Examples:
  # Print to stdout
  bidgrid export kitchen-remodel

  # Write to a file
  bidgrid export kitchen-remodel --out estimate.txt

  # Copy to the clipboard
  bidgrid export kitchen-remodel --copy`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportOut, "out", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy output to the system clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	est, err := files.ReadEstimate(cli.NormalizeEstimateFilename(args[0]))
	if err != nil {
		return err
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	preview := assembly.TransformToPreview(est.Rows, est.Assemblies)
	content := fmt.Sprintf("Estimate: %s\n\n%s", est.Name, cli.RenderPreview(preview, settings.Output.CurrencySymbol))

	if exportCopy {
		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied estimate '%s' to clipboard", est.Name)
		return nil
	}

	if exportOut != "" {
		dir := filepath.Dir(exportOut)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
			}
		}
		if err := os.WriteFile(exportOut, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write output file '%s': %w", exportOut, err)
		}
		cli.PrintSuccess("Exported estimate '%s' → %s", est.Name, exportOut)
		return nil
	}

	fmt.Print(content)
	return nil
}
