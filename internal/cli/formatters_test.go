package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{19.5, "$19.50"},
		{1234.567, "$1234.57"},
		{-50, "-$50.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney("$", tt.amount); got != tt.expected {
			t.Errorf("FormatMoney(%g) = %q, want %q", tt.amount, got, tt.expected)
		}
	}

	if got := FormatMoney("€", 10); got != "€10.00" {
		t.Errorf("FormatMoney with euro symbol = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 2, "ab"},
		{"köksrenovering åt Öberg", 10, "köksren..."},
		{"日本語のテキスト", 5, "日本..."},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"name": "kitchen"}

	if err := OutputResults(&buf, "json", data); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "kitchen" {
		t.Errorf("decoded name = %q, want kitchen", decoded["name"])
	}
}

func TestOutputResultsYAML(t *testing.T) {
	var buf bytes.Buffer

	if err := OutputResults(&buf, "yaml", map[string]string{"name": "kitchen"}); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}
	if !strings.Contains(buf.String(), "name: kitchen") {
		t.Errorf("yaml output = %q", buf.String())
	}
}

func TestOutputResultsUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputResults(&buf, "xml", nil); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("NAME", "ROWS")
	table.Row("kitchen", "4")
	table.Flush()

	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "kitchen") {
		t.Errorf("table output missing content: %q", out)
	}
}

func TestRenderPreview(t *testing.T) {
	p := assembly.Preview{
		Groups: []assembly.PreviewGroup{
			{
				Index: 0,
				Name:  "Base",
				Color: assembly.ColorOf(0),
				Items: []assembly.PreviewItem{
					{LogicalNumber: 1, Name: "Cabinet", Quantity: 2, Cost: 100, Extended: 200},
				},
				Cost:     75,
				Subtotal: 275,
			},
		},
		Ungrouped: []assembly.PreviewItem{
			{LogicalNumber: 2, Name: "Labor", Quantity: 8, Cost: 65, Extended: 520},
		},
	}

	out := RenderPreview(p, "$")

	for _, want := range []string{"Base [Blue]", "Cabinet", "Assembly cost: $75.00", "Subtotal: $275.00", "Ungrouped items", "Labor"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPreviewEmpty(t *testing.T) {
	out := RenderPreview(assembly.Preview{}, "$")
	if !strings.Contains(out, "Nothing to preview") {
		t.Errorf("empty preview output = %q", out)
	}
}

func TestRenderPreviewUnnamedGroup(t *testing.T) {
	p := assembly.Preview{
		Groups: []assembly.PreviewGroup{
			{Index: 2, Color: assembly.ColorOf(2)},
		},
	}
	if !strings.Contains(RenderPreview(p, "$"), "Assembly 2") {
		t.Error("unnamed group did not fall back to its index")
	}
}
