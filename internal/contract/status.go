package contract

import (
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
)

// StatusRequest asks for a project health report.
type StatusRequest struct {
	ProjectID string
	// Now pins the reference date; nil means the wall clock.
	Now *time.Time
}

// NewStatusRequest builds a StatusRequest with defaults.
func NewStatusRequest(projectID string) StatusRequest {
	return StatusRequest{ProjectID: projectID}
}

// TaskProgressView pairs a task with its derived progress metrics.
type TaskProgressView struct {
	TaskID            string
	WBSID             string
	Name              string
	Status            domain.TaskStatus
	ActualProgress    int
	EstimatedProgress int
	ProgressVariance  int
	IsBehindSchedule  bool
	IsOverdue         bool
}

// StatusResponse summarizes a project's health as of the reference date.
type StatusResponse struct {
	ProjectID       string
	ProjectName     string
	AsOf            time.Time
	TaskCount       int
	CompletedCount  int
	// OverallProgress weights each task's reported progress by its duration.
	OverallProgress int
	BehindCount     int
	OverdueCount    int
	Tasks           []TaskProgressView
}
