package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormat names one of the machine-readable or text renderings a
// command can emit.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter renders aligned column output for list-style
// commands. Rows are buffered until Flush.
type TableFormatter struct {
	writer *tabwriter.Writer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Header writes the column names followed by a dashed rule under each
// column.
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	rules := make([]string, len(columns))
	for i, c := range columns {
		rules[i] = strings.Repeat("-", len(c)+4)
	}
	fmt.Fprintln(t.writer, strings.Join(rules, "\t"))
}

func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults emits data in the requested format. Text output is a
// plain %v rendering, so callers wanting readable text should format
// it themselves and reserve this for json and yaml.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatText:
		fmt.Fprintf(w, "%v\n", data)
		return nil
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// FormatMoney renders a dollar amount with the given currency symbol.
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", symbol, -amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// TruncateString shortens s to at most maxLen characters, marking the
// cut with an ellipsis when there is room for one. Counts runes, not
// bytes, so multibyte text is never split mid-character.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
