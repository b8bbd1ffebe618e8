package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/cmd/commands"
	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput string
	flagQuiet  bool
	flagYes    bool
)

var rootCmd = &cobra.Command{
	Use:   "bidgrid",
	Short: "Terminal-based tool for building job estimates",
	Long:  `Bidgrid is a terminal-based tool for building job estimates: ordered line-item rows with product groups, assembly cross-references, and a grouped cost preview. Estimates are stored as plain YAML files and edited through a TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateOutputFormat(flagOutput); err != nil {
			return err
		}
		cli.SetGlobalFlags(flagQuiet, flagYes)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .bidgrid directory exists
		if _, err := os.Stat(files.BidgridDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.BidgridDir)
			fmt.Fprintf(os.Stderr, "Please run 'bidgrid init' first to initialize a new project.\n")
			os.Exit(1)
		}

		// Launch TUI
		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Bidgrid project",
	Long:  `Creates the .bidgrid folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Bidgrid project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .bidgrid folder structure")
		fmt.Println("✓ You can now create estimates!")
		fmt.Println("\nRun 'bidgrid' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Bidgrid",
	Long:  `Display the current version of the Bidgrid CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Bidgrid version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress success messages")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
