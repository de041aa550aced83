package domain

import "time"

// Holiday is a non-working calendar date. ProjectID nil means the holiday
// applies to every project.
type Holiday struct {
	ID        string
	ProjectID *string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
