package scheduler

import (
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
)

// ProgressConfig tunes the progress metrics. Values come from the settings
// store, loaded by the caller per request.
type ProgressConfig struct {
	OverdueWarningDays int // flag overdue this many days before the end date
	LagThresholdPct    int // variance beyond which a task counts as behind
}

// ProgressMetrics compares a task's reported progress against the progress
// its timeline implies today.
type ProgressMetrics struct {
	EstimatedProgress int // percent implied by elapsed working days
	ProgressVariance  int // actual minus estimated
	IsBehindSchedule  bool
	IsOverdue         bool
}

// MeasureProgress derives the metrics for one task as of today. The computed
// schedule takes priority over the user-supplied plan when both are present,
// so adjusted timelines drive the numbers. Completed tasks are never flagged.
func MeasureProgress(t *domain.Task, cal *Calendar, cfg ProgressConfig, today time.Time) ProgressMetrics {
	today = truncate(today)

	start, end := timelineDates(t)

	var m ProgressMetrics
	if start != nil && end != nil {
		switch {
		case !today.Before(*end):
			m.EstimatedProgress = 100
		case !today.After(*start):
			m.EstimatedProgress = 0
		default:
			total := cal.CountWorkingDays(*start, *end)
			elapsed := cal.CountWorkingDays(*start, today)
			if total > 0 {
				m.EstimatedProgress = elapsed * 100 / total
			}
		}
	}

	m.ProgressVariance = t.ActualProgress - m.EstimatedProgress

	done := t.Status == domain.TaskCompleted || t.Status == domain.TaskCancelled
	if !done && m.ProgressVariance < 0 {
		m.IsBehindSchedule = -m.ProgressVariance >= cfg.LagThresholdPct
	}

	if !done && end != nil {
		warn := end.AddDate(0, 0, -cfg.OverdueWarningDays)
		m.IsOverdue = today.After(warn)
	}

	return m
}

func timelineDates(t *domain.Task) (start, end *time.Time) {
	if t.ComputedStart != nil && t.ComputedEnd != nil {
		return t.ComputedStart, t.ComputedEnd
	}
	return t.PlannedStart, t.PlannedEnd
}
