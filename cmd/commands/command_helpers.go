package commands

import (
	"github.com/spf13/cobra"
)

// outputFormat reads the root command's persistent output flag,
// defaulting to text when the flag is absent or unset.
func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return "text"
	}
	return format
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
