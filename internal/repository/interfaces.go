package repository

import (
	"context"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/scheduler"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByWBSID(ctx context.Context, projectID, wbsID string) (*domain.Task, error)
	// ListByProject returns the project's tasks in natural WBS order.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	CountChildren(ctx context.Context, projectID, wbsID string) (int, error)
	CountDependents(ctx context.Context, taskID string) (int, error)
	Update(ctx context.Context, t *domain.Task) error
	// UpdateComputed overwrites only the schedule-derived columns.
	UpdateComputed(ctx context.Context, taskID string, s scheduler.TaskSchedule) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	Delete(ctx context.Context, predecessorID, successorID string) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error)
	ListPredecessors(ctx context.Context, taskID string) ([]domain.Dependency, error)
	ListSuccessors(ctx context.Context, taskID string) ([]domain.Dependency, error)
}

type IssueRepo interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	Update(ctx context.Context, i *domain.Issue) error
	Delete(ctx context.Context, id string) error
}

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.Holiday) error
	// ListForProject returns global holidays plus those scoped to projectID.
	ListForProject(ctx context.Context, projectID string) ([]domain.Holiday, error)
	ListGlobal(ctx context.Context) ([]domain.Holiday, error)
	Delete(ctx context.Context, id string) error
}

type SettingRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]*domain.Setting, error)
	Upsert(ctx context.Context, s *domain.Setting) error
}
