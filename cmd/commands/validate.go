package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
	"github.com/bidgrid/bidgrid-cli/pkg/validation"
)

// ValidateResult is the output structure for the validate command
type ValidateResult struct {
	Estimate string          `json:"estimate" yaml:"estimate"`
	Errors   []ValidateError `json:"errors" yaml:"errors"`
	Valid    bool            `json:"valid" yaml:"valid"`
}

// ValidateError is one field-level validation failure
type ValidateError struct {
	LogicalNumber int    `json:"logical_number,omitempty" yaml:"logical_number,omitempty"`
	RowID         string `json:"row_id" yaml:"row_id"`
	Field         string `json:"field" yaml:"field"`
	Message       string `json:"message" yaml:"message"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <estimate>",
		Short: "Validate an estimate's fields and references",
		Long: `Run field validation and assembly reference checks over a stored
estimate and report every failure. Exits non-zero when errors exist.

Examples:
  # Validate an estimate
  bidgrid validate kitchen-remodel

  # Machine-readable report
  bidgrid validate kitchen-remodel -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	outputFormat := outputFormat(cmd)

	est, err := files.ReadEstimate(cli.NormalizeEstimateFilename(args[0]))
	if err != nil {
		return err
	}

	result := ValidateResult{Estimate: est.Name}
	numbers := models.LogicalNumbers(est.Rows)

	// Field rules
	fieldErrors := validation.ValidateAll(validation.Context{}, est.Rows, validation.DefaultRules())
	for rowID, fields := range fieldErrors {
		for field, msgs := range fields {
			for _, msg := range msgs {
				result.Errors = append(result.Errors, ValidateError{
					LogicalNumber: numbers[rowID],
					RowID:         rowID,
					Field:         field,
					Message:       msg,
				})
			}
		}
	}

	// Assembly reference integrity
	usage := assembly.BuildUsageMap(est.Rows)
	for _, row := range est.Rows {
		for slot, ref := range row.Data.Items {
			if ref == "" {
				continue
			}
			field := models.ItemField(slot + 1)
			for _, msg := range usage.ValidateFieldAgainstRows(ref, row.ID, field, est.Rows) {
				result.Errors = append(result.Errors, ValidateError{
					LogicalNumber: numbers[row.ID],
					RowID:         row.ID,
					Field:         field,
					Message:       msg,
				})
			}
		}
	}

	sort.Slice(result.Errors, func(i, j int) bool {
		if result.Errors[i].LogicalNumber != result.Errors[j].LogicalNumber {
			return result.Errors[i].LogicalNumber < result.Errors[j].LogicalNumber
		}
		return result.Errors[i].Field < result.Errors[j].Field
	})
	result.Valid = len(result.Errors) == 0

	if outputFormat != "text" {
		if err := cli.OutputResults(os.Stdout, outputFormat, result); err != nil {
			return err
		}
	} else if result.Valid {
		cli.PrintSuccess("%s: no validation errors", est.Name)
	} else {
		fmt.Printf("%s: %d validation error%s\n\n", est.Name, len(result.Errors), plural(len(result.Errors)))
		table := cli.NewTableFormatter(os.Stdout)
		table.Header("#", "FIELD", "ERROR")
		for _, e := range result.Errors {
			n := ""
			if e.LogicalNumber > 0 {
				n = fmt.Sprintf("%d", e.LogicalNumber)
			}
			table.Row(n, e.Field, e.Message)
		}
		table.Flush()
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}
