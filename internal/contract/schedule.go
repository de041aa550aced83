package contract

import "time"

// TaskScheduleView is one task's slot in a computed schedule, flattened for
// display. Tasks appear in natural WBS order.
type TaskScheduleView struct {
	TaskID       string
	WBSID        string
	Name         string
	Start        time.Time
	End          time.Time
	DurationDays int
	TotalFloat   int
	IsCritical   bool
	Milestone    bool
}

// ScheduleResult is the outcome of a schedule computation for one project.
type ScheduleResult struct {
	ProjectID  string
	ComputedAt time.Time
	// ProjectEnd is the latest computed end date across all tasks.
	ProjectEnd time.Time
	Tasks      []TaskScheduleView
	// CriticalPath holds the WBS ids of critical tasks in natural order.
	CriticalPath []string
	// Persisted reports whether the computed dates were written back.
	Persisted bool
}
