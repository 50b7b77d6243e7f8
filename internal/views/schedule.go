package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/splitbeam/internal/models"
)

// NextRuns previews the next n run times of a rule, starting with its
// NextRun. Weekly rules advance by seven days, monthly rules by one calendar
// month, and custom rules follow their cron expression in UTC.
func NextRuns(rule models.RecurringRule, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}

	var next func(time.Time) time.Time
	switch rule.Cadence {
	case models.CadenceWeekly:
		next = func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }
	case models.CadenceMonthly:
		next = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	case models.CadenceCustom:
		schedule, err := cron.ParseStandard(inUTC(rule.CustomCron))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cron expression %q: %w", rule.CustomCron, err)
		}
		next = schedule.Next
	default:
		return nil, fmt.Errorf("unknown cadence %q", rule.Cadence)
	}

	runs := make([]time.Time, 0, n)
	t := rule.NextRun.UTC()
	for range n {
		runs = append(runs, t)
		t = next(t)
	}
	return runs, nil
}

// inUTC pins an expression without an explicit zone to UTC.
func inUTC(spec string) string {
	if strings.HasPrefix(spec, "TZ=") || strings.HasPrefix(spec, "CRON_TZ=") {
		return spec
	}
	return "CRON_TZ=UTC " + spec
}
