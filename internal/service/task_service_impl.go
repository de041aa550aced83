package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/wbstree"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	deps     repository.DependencyRepo
	projects repository.ProjectRepo
	uow      db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, deps repository.DependencyRepo, projects repository.ProjectRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, deps: deps, projects: projects, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if err := domain.ValidateWBSID(t.WBSID); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		return err
	}
	if t.DurationDays < 0 {
		return domain.NewError(domain.KindInvalidIdentifier, "task", t.WBSID,
			"duration must be zero or positive")
	}

	// The UNIQUE constraint would reject the row anyway; checking here turns
	// a driver error into a typed Conflict.
	existing, err := s.tasks.GetByWBSID(ctx, t.ProjectID, t.WBSID)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return err
	}
	if existing != nil {
		return domain.Conflict("task", t.WBSID, "WBS id already in use in this project")
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskNotStarted
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) GetByWBSID(ctx context.Context, projectID, wbsID string) (*domain.Task, error) {
	return s.tasks.GetByWBSID(ctx, projectID, wbsID)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Tree(ctx context.Context, projectID string) ([]contract.TreeNode, error) {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	forest := wbstree.Build(tasks)
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var build func(i, depth int) contract.TreeNode
	build = func(i, depth int) contract.TreeNode {
		n := forest.Nodes[i]
		t := byID[n.TaskID]
		node := contract.TreeNode{
			TaskID:         t.ID,
			WBSID:          t.WBSID,
			Name:           t.Name,
			Status:         t.Status,
			DurationDays:   t.DurationDays,
			ActualProgress: t.ActualProgress,
			Depth:          depth,
		}
		for _, c := range n.Children {
			node.Children = append(node.Children, build(c, depth+1))
		}
		return node
	}

	var roots []contract.TreeNode
	for _, r := range forest.Roots {
		roots = append(roots, build(r, 0))
	}
	return roots, nil
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := domain.ValidateWBSID(t.WBSID); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetProgress(ctx context.Context, id string, pct int) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", pct)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.ActualProgress = pct
	if pct == 100 && t.Status == domain.TaskInProgress {
		t.Status = domain.TaskCompleted
	} else if pct > 0 && t.Status == domain.TaskNotStarted {
		t.Status = domain.TaskInProgress
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	if !domain.ValidTaskStatuses[string(status)] {
		return fmt.Errorf("unknown task status %q", status)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Status = status
	if status == domain.TaskCompleted {
		t.ActualProgress = 100
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string, force bool) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	children, err := s.tasks.CountChildren(ctx, t.ProjectID, t.WBSID)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.Conflict("task", t.WBSID,
			fmt.Sprintf("task has %d descendant task(s); delete them first", children))
	}

	edges, err := s.tasks.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if edges > 0 && !force {
		return domain.Conflict("task", t.WBSID,
			fmt.Sprintf("task participates in %d dependency edge(s); use force to remove them", edges))
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)

		if force {
			preds, err := txDeps.ListPredecessors(ctx, id)
			if err != nil {
				return err
			}
			succs, err := txDeps.ListSuccessors(ctx, id)
			if err != nil {
				return err
			}
			for _, d := range append(preds, succs...) {
				if err := txDeps.Delete(ctx, d.PredecessorTaskID, d.SuccessorTaskID); err != nil {
					return err
				}
			}
		}
		return txTasks.Delete(ctx, id)
	})
}
