package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/google/uuid"
)

type issueService struct {
	issues repository.IssueRepo
	tasks  repository.TaskRepo
}

func NewIssueService(issues repository.IssueRepo, tasks repository.TaskRepo) IssueService {
	return &issueService{issues: issues, tasks: tasks}
}

func (s *issueService) Create(ctx context.Context, i *domain.Issue) error {
	if i.LinkedTaskID != nil {
		if _, err := s.tasks.GetByID(ctx, *i.LinkedTaskID); err != nil {
			return err
		}
	}
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Status == "" {
		i.Status = domain.IssueOpen
	}
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	return s.issues.Create(ctx, i)
}

func (s *issueService) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	return s.issues.GetByID(ctx, id)
}

func (s *issueService) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return s.issues.ListByProject(ctx, projectID)
}

func (s *issueService) Transition(ctx context.Context, id string, to domain.IssueStatus, note string) (*domain.Issue, error) {
	issue, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := issue.Transition(to, note); err != nil {
		return nil, err
	}
	issue.UpdatedAt = time.Now().UTC()
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

func (s *issueService) Delete(ctx context.Context, id string) error {
	if _, err := s.issues.GetByID(ctx, id); err != nil {
		return err
	}
	return s.issues.Delete(ctx, id)
}
