package domain

import "time"

// Project is the root owning entity: tasks, dependencies, issues and
// project-scoped holidays all hang off it and are removed with it.
type Project struct {
	ID           string
	Name         string
	StartDate    time.Time
	RequiredEnd  *time.Time
	SkipWeekends bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
