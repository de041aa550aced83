package domain

import "time"

// Task is a WBS node. WBSID places it in the hierarchy ("1.2" is a child of
// "1"); DurationDays 0 marks a milestone. The Computed* fields are derived by
// the schedule engine and overwritten on every recomputation.
type Task struct {
	ID        string
	ProjectID string
	WBSID     string
	Name      string
	Status    TaskStatus

	DurationDays int
	PlannedStart *time.Time
	PlannedEnd   *time.Time

	ActualProgress int // percent, user-reported

	// Derived by the schedule engine; never user-editable.
	ComputedStart *time.Time
	ComputedEnd   *time.Time
	TotalFloat    int
	IsCritical    bool

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMilestone reports whether the task occupies no working time.
func (t *Task) IsMilestone() bool {
	return t.DurationDays == 0
}
