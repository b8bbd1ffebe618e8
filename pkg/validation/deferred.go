package validation

import (
	"time"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

// DefaultLoadDelay is the debounce before the post-load validation
// pass runs. Not safety-critical, just avoids validating mid-load.
const DefaultLoadDelay = 50 * time.Millisecond

// ValidateAfterLoad schedules a single deferred validation pass over a
// freshly loaded collection and delivers the result to report. The
// returned timer can stop the pass if the collection is replaced
// before it fires.
func ValidateAfterLoad(rows []models.Row, rules RuleSet, delay time.Duration, report func(map[string]map[string][]string)) *time.Timer {
	if delay <= 0 {
		delay = DefaultLoadDelay
	}
	return time.AfterFunc(delay, func() {
		report(ValidateAll(Context{}, rows, rules))
	})
}
