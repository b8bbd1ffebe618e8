package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bidgrid/bidgrid-cli/pkg/files"
)

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Print(prompt + suffix)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// RequireProject ensures the .bidgrid directory exists before a
// command runs against it.
func RequireProject() error {
	if _, err := os.Stat(files.BidgridDir); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'bidgrid init' first", files.BidgridDir)
	}
	return nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Global flags (set from the cmd package)
var (
	quiet       bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, sc bool) {
	quiet = q
	skipConfirm = sc
}
