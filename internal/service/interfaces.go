package service

import (
	"context"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByWBSID(ctx context.Context, projectID, wbsID string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	// Tree renders the project's tasks as a WBS hierarchy.
	Tree(ctx context.Context, projectID string) ([]contract.TreeNode, error)
	Update(ctx context.Context, t *domain.Task) error
	SetProgress(ctx context.Context, id string, pct int) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	// Delete refuses tasks that still have WBS children or dependency edges
	// unless force is set; force removes the edges first.
	Delete(ctx context.Context, id string, force bool) error
}

type DependencyService interface {
	// Add validates the new edge against the project's full dependency graph
	// before persisting it.
	Add(ctx context.Context, projectID, predecessorID, successorID string) error
	Remove(ctx context.Context, predecessorID, successorID string) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error)
	ListPredecessors(ctx context.Context, taskID string) ([]domain.Dependency, error)
	ListSuccessors(ctx context.Context, taskID string) ([]domain.Dependency, error)
}

type ScheduleService interface {
	// Recompute runs the schedule computation and persists the computed
	// dates transactionally.
	Recompute(ctx context.Context, projectID string) (*contract.ScheduleResult, error)
	// Preview runs the computation without writing anything back.
	Preview(ctx context.Context, projectID string) (*contract.ScheduleResult, error)
}

type IssueService interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	// Transition applies the escalation state machine and persists the result.
	Transition(ctx context.Context, id string, to domain.IssueStatus, note string) (*domain.Issue, error)
	Delete(ctx context.Context, id string) error
}

type HolidayService interface {
	// Add registers a holiday; an empty projectID makes it global.
	Add(ctx context.Context, projectID string, date string, name string) (*domain.Holiday, error)
	ListForProject(ctx context.Context, projectID string) ([]domain.Holiday, error)
	ListGlobal(ctx context.Context) ([]domain.Holiday, error)
	Remove(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]*domain.Setting, error)
	Set(ctx context.Context, key, rawValue string) error
	// ProgressConfig resolves the progress-related settings with defaults.
	ProgressConfig(ctx context.Context) (overdueWarningDays, lagThresholdPct int)
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Project         *domain.Project
	TaskCount       int
	DependencyCount int
	HolidayCount    int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ProjectSchema) (*ImportResult, error)
}
