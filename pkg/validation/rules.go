package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// Context carries the shared state validation consumers check. It is
// threaded explicitly rather than held in a global: while a drag
// gesture's calculating flag is raised, row validation is suppressed.
type Context struct {
	Calculating bool
}

// Rule checks a single field value. An empty return means the value
// passed.
type Rule func(value string) string

// RuleSet maps a field name to the rules evaluated for it.
type RuleSet map[string][]Rule

// Required rejects an empty value.
func Required() Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "Required"
		}
		return ""
	}
}

// Numeric accepts plain decimal numbers. Scientific notation is
// rejected explicitly, as is any character outside digits, a leading
// sign, and one decimal point. Optional bounds are inclusive.
func Numeric(min, max *float64) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if strings.ContainsAny(value, "eE") {
			return "Must be a plain number"
		}
		if !wellFormedNumber(value) {
			return "Must be a number"
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "Must be a number"
		}
		if min != nil && v < *min {
			return fmt.Sprintf("Must be at least %g", *min)
		}
		if max != nil && v > *max {
			return fmt.Sprintf("Must be at most %g", *max)
		}
		return ""
	}
}

// PositiveInt rejects anything that is not a whole number greater
// than zero. Quantities use this.
func PositiveInt() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return "Must be a positive whole number"
		}
		return ""
	}
}

// MaxLength rejects text longer than n characters.
func MaxLength(n int) Rule {
	return func(value string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("Must be %d characters or fewer", n)
		}
		return ""
	}
}

// OneOf rejects values outside the supplied option list. An empty
// value passes; pair with Required when the field is mandatory.
func OneOf(options []string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		for _, opt := range options {
			if value == opt {
				return ""
			}
		}
		return "Not a valid option"
	}
}

func wellFormedNumber(s string) bool {
	rest := strings.TrimPrefix(s, "-")
	if rest == "" {
		return false
	}
	dots := 0
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return rest != "."
}

// ValidateField runs every rule for a value and collects the
// failures.
func ValidateField(value string, rules []Rule) []string {
	var errs []string
	for _, rule := range rules {
		if msg := rule(value); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// ValidateRow evaluates the rule set against one row and returns a
// field → errors map. Fields with no errors are absent from the map.
// Validation runs on a focus-loss boundary, not per keystroke, and is
// suppressed entirely while a drag gesture is in flight.
func ValidateRow(ctx Context, row models.Row, rules RuleSet) map[string][]string {
	if ctx.Calculating {
		return nil
	}
	out := make(map[string][]string)
	for field, fieldRules := range rules {
		if errs := ValidateField(fieldValue(row, field), fieldRules); len(errs) > 0 {
			out[field] = errs
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ValidateAll validates every row, keyed by row ID.
func ValidateAll(ctx Context, rows []models.Row, rules RuleSet) map[string]map[string][]string {
	if ctx.Calculating {
		return nil
	}
	out := make(map[string]map[string][]string)
	for _, row := range rows {
		if errs := ValidateRow(ctx, row, rules); len(errs) > 0 {
			out[row.ID] = errs
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func fieldValue(row models.Row, field string) string {
	switch field {
	case models.FieldCost:
		return row.Data.Cost
	case models.FieldQty, models.FieldQuantity:
		return row.Data.Quantity
	case models.FieldTextContent:
		return row.TextContent
	default:
		if n, ok := models.ParseItemField(field); ok {
			return row.Data.Items[n-1]
		}
		return row.Data.Extra[field]
	}
}

// DefaultRules is the rule set applied to configured main rows.
func DefaultRules() RuleSet {
	zero := 0.0
	return RuleSet{
		models.FieldCost:        {Numeric(&zero, nil)},
		models.FieldQuantity:    {PositiveInt()},
		models.FieldTextContent: {MaxLength(500)},
	}
}
