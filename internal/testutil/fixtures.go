package testutil

import (
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/google/uuid"
)

// Monday 2024-01-01; a convenient anchor for schedule tests because the
// first week of 2024 starts on a working day.
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Project options
type ProjectOption func(*domain.Project)

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func WithRequiredEnd(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.RequiredEnd = &d
	}
}

func WithSkipWeekends(skip bool) ProjectOption {
	return func(p *domain.Project) {
		p.SkipWeekends = skip
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:           uuid.New().String(),
		Name:         name,
		StartDate:    DefaultStart,
		SkipWeekends: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithDuration(days int) TaskOption {
	return func(t *domain.Task) {
		t.DurationDays = days
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPlannedStart(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedStart = &d
	}
}

func WithPlannedEnd(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedEnd = &d
	}
}

func WithProgress(pct int) TaskOption {
	return func(t *domain.Task) {
		t.ActualProgress = pct
	}
}

func WithNotes(notes string) TaskOption {
	return func(t *domain.Task) {
		t.Notes = notes
	}
}

func NewTestTask(projectID, wbsID, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		WBSID:        wbsID,
		Name:         name,
		Status:       domain.TaskNotStarted,
		DurationDays: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue options
type IssueOption func(*domain.Issue)

func WithLinkedTask(taskID string) IssueOption {
	return func(i *domain.Issue) {
		i.LinkedTaskID = &taskID
	}
}

func WithIssueStatus(s domain.IssueStatus) IssueOption {
	return func(i *domain.Issue) {
		i.Status = s
	}
}

func WithEscalationLevel(level int) IssueOption {
	return func(i *domain.Issue) {
		i.EscalationLevel = level
	}
}

func NewTestIssue(projectID, title string, opts ...IssueOption) *domain.Issue {
	now := time.Now().UTC()
	i := &domain.Issue{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    domain.IssueOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Holiday options
type HolidayOption func(*domain.Holiday)

func WithHolidayProject(projectID string) HolidayOption {
	return func(h *domain.Holiday) {
		h.ProjectID = &projectID
	}
}

func NewTestHoliday(date time.Time, name string, opts ...HolidayOption) *domain.Holiday {
	now := time.Now().UTC()
	h := &domain.Holiday{
		ID:        uuid.New().String(),
		Date:      date,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
