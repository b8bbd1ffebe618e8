package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

var (
	createRows   int
	createSample bool
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new estimate",
		Long: `Create a new empty estimate. The name is used for display;
the filename is derived from it.

Examples:
  # Create an empty estimate
  bidgrid create "Kitchen Remodel"

  # Create with five placeholder rows
  bidgrid create "Kitchen Remodel" --rows 5

  # Create a seeded demo estimate to explore the tool
  bidgrid create "Demo" --sample`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.RequireProject(); err != nil {
				return err
			}
			return cli.ValidateEstimateName(args[0])
		},
		RunE: runCreate,
	}

	cmd.Flags().IntVar(&createRows, "rows", 1, "Number of placeholder rows to start with")
	cmd.Flags().BoolVar(&createSample, "sample", false, "Seed the estimate with demo content")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	filename := files.SanitizeFileName(name) + ".yaml"

	existing, err := files.ListEstimates()
	if err != nil {
		return fmt.Errorf("failed to check existing estimates: %w", err)
	}
	if cli.Contains(existing, filename) {
		return fmt.Errorf("estimate '%s' already exists", name)
	}

	var est *models.Estimate
	if createSample {
		est = files.SampleEstimate(name)
		est.Path = filename
	} else {
		est = &models.Estimate{Name: name, Path: filename}
		for i := 0; i < createRows; i++ {
			est.Rows = append(est.Rows, models.NewPlaceholderRow())
		}
	}

	if err := files.WriteEstimate(est); err != nil {
		return err
	}

	cli.PrintSuccess("Created estimate: %s (%s)", name, filename)
	return nil
}
