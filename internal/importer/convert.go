package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/google/uuid"
)

// ImportedProject holds the domain objects produced from a schema, ready for
// persistence in a single transaction.
type ImportedProject struct {
	Project      *domain.Project
	Tasks        []*domain.Task
	Dependencies []domain.Dependency
	Holidays     []*domain.Holiday
}

// Convert transforms a validated ProjectSchema into domain objects. Call
// ValidateProjectSchema first; Convert assumes the schema is valid.
func Convert(schema *ProjectSchema) (*ImportedProject, error) {
	now := time.Now().UTC()

	startDate, err := time.Parse("2006-01-02", schema.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}

	var requiredEnd *time.Time
	if schema.Project.RequiredEnd != nil {
		t, err := time.Parse("2006-01-02", *schema.Project.RequiredEnd)
		if err != nil {
			return nil, fmt.Errorf("parsing required_end: %w", err)
		}
		requiredEnd = &t
	}

	skipWeekends := true
	if schema.Project.SkipWeekends != nil {
		skipWeekends = *schema.Project.SkipWeekends
	}

	project := &domain.Project{
		ID:           uuid.New().String(),
		Name:         schema.Project.Name,
		StartDate:    startDate,
		RequiredEnd:  requiredEnd,
		SkipWeekends: skipWeekends,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	idByWBS := make(map[string]string, len(schema.Tasks))

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, ti := range schema.Tasks {
		status := domain.TaskStatus(ti.Status)
		if ti.Status == "" {
			status = domain.TaskNotStarted
		}

		task := &domain.Task{
			ID:             uuid.New().String(),
			ProjectID:      project.ID,
			WBSID:          ti.WBSID,
			Name:           ti.Name,
			Status:         status,
			DurationDays:   ti.DurationDays,
			PlannedStart:   parseOptionalDate(ti.PlannedStart),
			PlannedEnd:     parseOptionalDate(ti.PlannedEnd),
			ActualProgress: ti.Progress,
			Notes:          ti.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		idByWBS[ti.WBSID] = task.ID
		tasks = append(tasks, task)
	}

	deps := make([]domain.Dependency, 0, len(schema.Dependencies))
	for _, di := range schema.Dependencies {
		predID, ok := idByWBS[di.PredecessorWBS]
		if !ok {
			return nil, fmt.Errorf("predecessor_wbs %q not found", di.PredecessorWBS)
		}
		succID, ok := idByWBS[di.SuccessorWBS]
		if !ok {
			return nil, fmt.Errorf("successor_wbs %q not found", di.SuccessorWBS)
		}
		deps = append(deps, domain.Dependency{
			ProjectID:         project.ID,
			PredecessorTaskID: predID,
			SuccessorTaskID:   succID,
		})
	}

	holidays := make([]*domain.Holiday, 0, len(schema.Holidays))
	for _, hi := range schema.Holidays {
		date, err := time.Parse("2006-01-02", hi.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday date: %w", err)
		}
		holidays = append(holidays, &domain.Holiday{
			ID:        uuid.New().String(),
			ProjectID: &project.ID,
			Date:      date,
			Name:      hi.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return &ImportedProject{
		Project:      project,
		Tasks:        tasks,
		Dependencies: deps,
		Holidays:     holidays,
	}, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
