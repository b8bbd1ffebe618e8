package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single estimate in the list
type ListItem struct {
	Name       string `json:"name" yaml:"name"`
	Filename   string `json:"filename" yaml:"filename"`
	Rows       int    `json:"rows" yaml:"rows"`
	Assemblies int    `json:"assemblies" yaml:"assemblies"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List estimates",
		Long: `List all estimates in the current project.

Examples:
  # List all estimates
  bidgrid list

  # List with JSON output
  bidgrid list -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	outputFormat := outputFormat(cmd)

	names, err := files.ListEstimates()
	if err != nil {
		return fmt.Errorf("failed to list estimates: %w", err)
	}

	var result ListResult
	for _, name := range names {
		est, err := files.ReadEstimate(name)
		if err != nil {
			// Skip estimates that can't be read
			continue
		}
		result.Items = append(result.Items, ListItem{
			Name:       est.Name,
			Filename:   name,
			Rows:       len(est.Rows),
			Assemblies: len(est.Assemblies),
		})
	}
	result.Count = len(result.Items)

	if outputFormat != "text" {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	if result.Count == 0 {
		fmt.Println("No estimates found. Create one with 'bidgrid create <name>'.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "FILE", "ROWS", "ASSEMBLIES")
	for _, item := range result.Items {
		table.Row(
			item.Name,
			item.Filename,
			fmt.Sprintf("%d", item.Rows),
			fmt.Sprintf("%d", item.Assemblies),
		)
	}
	table.Flush()
	fmt.Printf("\n%d estimate%s\n", result.Count, plural(result.Count))

	return nil
}
