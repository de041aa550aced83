package scheduler

import (
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
)

const dateLayout = "2006-01-02"

// Calendar answers working-day questions for one scheduling run: a set of
// holiday dates plus optional weekend skipping (enabled by default).
type Calendar struct {
	holidays     map[string]bool
	skipWeekends bool
}

// NewCalendar builds a calendar from the holiday records visible to a
// project. Dates are compared at day granularity; time-of-day is ignored.
func NewCalendar(holidays []domain.Holiday, skipWeekends bool) *Calendar {
	c := &Calendar{
		holidays:     make(map[string]bool, len(holidays)),
		skipWeekends: skipWeekends,
	}
	for _, h := range holidays {
		c.holidays[h.Date.Format(dateLayout)] = true
	}
	return c
}

// IsWorkingDay reports whether t is neither a holiday nor (when weekend
// skipping is on) a Saturday or Sunday.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	if c.skipWeekends {
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return false
		}
	}
	return !c.holidays[t.Format(dateLayout)]
}

// NextWorkingDay rolls t forward to the first working day at or after t.
func (c *Calendar) NextWorkingDay(t time.Time) time.Time {
	t = truncate(t)
	for !c.IsWorkingDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// PrevWorkingDay rolls t backward to the first working day at or before t.
func (c *Calendar) PrevWorkingDay(t time.Time) time.Time {
	t = truncate(t)
	for !c.IsWorkingDay(t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// AddWorkingDays steps n working days forward from t (n >= 0). The start is
// aligned to a working day first; n == 0 returns the aligned start.
func (c *Calendar) AddWorkingDays(t time.Time, n int) time.Time {
	t = c.NextWorkingDay(t)
	for i := 0; i < n; i++ {
		t = c.NextWorkingDay(t.AddDate(0, 0, 1))
	}
	return t
}

// SubWorkingDays steps n working days backward from t (n >= 0), aligning the
// start to a working day first.
func (c *Calendar) SubWorkingDays(t time.Time, n int) time.Time {
	t = c.PrevWorkingDay(t)
	for i := 0; i < n; i++ {
		t = c.PrevWorkingDay(t.AddDate(0, 0, -1))
	}
	return t
}

// WorkingDaysBetween counts working days in the half-open interval (from, to].
// It is 0 when the dates are equal and negative-free: callers pass from <= to.
func (c *Calendar) WorkingDaysBetween(from, to time.Time) int {
	from, to = truncate(from), truncate(to)
	n := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			n++
		}
	}
	return n
}

// CountWorkingDays counts working days in the closed interval [from, to],
// used by progress metrics.
func (c *Calendar) CountWorkingDays(from, to time.Time) int {
	from, to = truncate(from), truncate(to)
	n := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			n++
		}
	}
	return n
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
