package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <estimate>",
		Short: "Delete an estimate",
		Long: `Delete a stored estimate after confirmation.

Examples:
  # Delete an estimate
  bidgrid delete kitchen-remodel

  # Delete without a confirmation prompt
  bidgrid delete kitchen-remodel --yes`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	filename := cli.NormalizeEstimateFilename(args[0])

	est, err := files.ReadEstimate(filename)
	if err != nil {
		return err
	}

	ok, err := cli.Confirm(fmt.Sprintf("Delete estimate '%s' (%d rows)?", est.Name, len(est.Rows)), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := files.DeleteEstimate(filename); err != nil {
		return err
	}

	cli.PrintSuccess("Deleted estimate: %s", est.Name)
	return nil
}
