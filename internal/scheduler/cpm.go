// Package scheduler derives schedule attributes for a project snapshot:
// forward/backward critical-path passes over the dependency graph with
// holiday-aware working-day arithmetic. Everything here is a pure function
// of its inputs; persisting the results is the caller's job.
package scheduler

import (
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/graph"
)

// Config carries the project-level scheduling knobs for one run.
type Config struct {
	ProjectStart time.Time
	RequiredEnd  *time.Time
	SkipWeekends bool
}

// TaskSchedule is the computed result for one task.
type TaskSchedule struct {
	TaskID        string
	ComputedStart time.Time
	ComputedEnd   time.Time
	TotalFloat    int
	IsCritical    bool
}

// Compute runs the forward and backward passes and returns one entry per
// task, in topological order. A cyclic dependency set fails with
// CycleDetected and no partial results. Durations are working days; a task
// with duration d occupies d working days starting at its computed start,
// and milestones (duration 0) collapse to a single date that successors may
// share.
func Compute(tasks []*domain.Task, deps []domain.Dependency, holidays []domain.Holiday, cfg Config) ([]TaskSchedule, error) {
	g := graph.FromSnapshot(tasks, deps)
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	cal := NewCalendar(holidays, cfg.SkipWeekends)

	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	// Forward pass: earliest start/finish.
	es := make(map[string]time.Time, len(tasks))
	ef := make(map[string]time.Time, len(tasks))
	base := cal.NextWorkingDay(cfg.ProjectStart)

	for _, id := range order {
		t := byID[id]
		start := base
		if t.PlannedStart != nil {
			if s := cal.NextWorkingDay(*t.PlannedStart); s.After(start) {
				start = s
			}
		}
		for _, p := range g.Predecessors(id) {
			pred := byID[p]
			constraint := ef[p]
			if !pred.IsMilestone() {
				constraint = cal.AddWorkingDays(ef[p], 1)
			}
			if constraint.After(start) {
				start = constraint
			}
		}
		es[id] = start
		if t.IsMilestone() {
			ef[id] = start
		} else {
			ef[id] = cal.AddWorkingDays(start, t.DurationDays-1)
		}
	}

	// Backward pass: latest finish/start in reverse topological order.
	lf := make(map[string]time.Time, len(tasks))
	ls := make(map[string]time.Time, len(tasks))

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		t := byID[id]

		var finish time.Time
		succs := g.Successors(id)
		if len(succs) == 0 {
			if cfg.RequiredEnd != nil {
				finish = cal.PrevWorkingDay(*cfg.RequiredEnd)
			} else {
				finish = ef[id]
			}
		} else {
			for _, s := range succs {
				// A successor's latest start bounds this task's latest
				// finish; milestones hand the same date through.
				bound := ls[s]
				if !t.IsMilestone() {
					bound = cal.SubWorkingDays(ls[s], 1)
				}
				if finish.IsZero() || bound.Before(finish) {
					finish = bound
				}
			}
		}
		lf[id] = finish
		if t.IsMilestone() {
			ls[id] = finish
		} else {
			ls[id] = cal.SubWorkingDays(finish, t.DurationDays-1)
		}
	}

	results := make([]TaskSchedule, 0, len(order))
	for _, id := range order {
		slack := floatDays(cal, es[id], ls[id])
		results = append(results, TaskSchedule{
			TaskID:        id,
			ComputedStart: es[id],
			ComputedEnd:   ef[id],
			TotalFloat:    slack,
			IsCritical:    slack == 0,
		})
	}
	return results, nil
}

// floatDays is the working-day distance from earliest to latest start,
// negative when the latest start precedes the earliest (required end too
// tight to meet).
func floatDays(cal *Calendar, earliest, latest time.Time) int {
	if latest.Before(earliest) {
		return -cal.WorkingDaysBetween(latest, earliest)
	}
	return cal.WorkingDaysBetween(earliest, latest)
}
