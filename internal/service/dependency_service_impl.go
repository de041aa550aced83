package service

import (
	"context"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/graph"
	"github.com/alexanderramin/gantry/internal/repository"
)

type dependencyService struct {
	deps  repository.DependencyRepo
	tasks repository.TaskRepo
}

func NewDependencyService(deps repository.DependencyRepo, tasks repository.TaskRepo) DependencyService {
	return &dependencyService{deps: deps, tasks: tasks}
}

func (s *dependencyService) Add(ctx context.Context, projectID, predecessorID, successorID string) error {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	existing, err := s.deps.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	// Validation runs against the full in-memory graph so cycle detection
	// sees every persisted edge, not just the new one.
	g := graph.FromSnapshot(tasks, existing)
	if err := g.AddEdge(predecessorID, successorID); err != nil {
		return err
	}

	return s.deps.Create(ctx, &domain.Dependency{
		ProjectID:         projectID,
		PredecessorTaskID: predecessorID,
		SuccessorTaskID:   successorID,
	})
}

func (s *dependencyService) Remove(ctx context.Context, predecessorID, successorID string) error {
	return s.deps.Delete(ctx, predecessorID, successorID)
}

func (s *dependencyService) ListByProject(ctx context.Context, projectID string) ([]domain.Dependency, error) {
	return s.deps.ListByProject(ctx, projectID)
}

func (s *dependencyService) ListPredecessors(ctx context.Context, taskID string) ([]domain.Dependency, error) {
	return s.deps.ListPredecessors(ctx, taskID)
}

func (s *dependencyService) ListSuccessors(ctx context.Context, taskID string) ([]domain.Dependency, error) {
	return s.deps.ListSuccessors(ctx, taskID)
}
