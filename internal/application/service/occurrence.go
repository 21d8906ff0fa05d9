package service

import (
	"fmt"
	"time"

	"rudereminder/internal/domain/constant"
	appErrors "rudereminder/internal/pkg/errors"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [...]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// nextWeekdayOccurrences returns, for each distinct day name, the first
// time at or after notBefore that falls on that weekday at base's time of day.
// Results keep the order of days.
func nextWeekdayOccurrences(days []string, base, notBefore time.Time) ([]time.Time, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: multi-day reminders need at least one selected day", appErrors.ErrValidation)
	}

	loc := base.Location()
	today := notBefore.In(loc)
	dtstart := time.Date(today.Year(), today.Month(), today.Day(), base.Hour(), base.Minute(), base.Second(), 0, loc)

	seen := make(map[time.Weekday]bool, len(days))
	var out []time.Time
	for _, name := range days {
		wd, ok := constant.ParseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", appErrors.ErrValidation, name)
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[wd]},
			Dtstart:   dtstart,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
		}
		next := rule.After(notBefore, true)
		if next.IsZero() {
			return nil, fmt.Errorf("%w: no occurrence for %s", appErrors.ErrScheduling, name)
		}
		out = append(out, next)
	}
	return out, nil
}
