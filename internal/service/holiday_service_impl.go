package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/google/uuid"
)

type holidayService struct {
	holidays repository.HolidayRepo
	projects repository.ProjectRepo
}

func NewHolidayService(holidays repository.HolidayRepo, projects repository.ProjectRepo) HolidayService {
	return &holidayService{holidays: holidays, projects: projects}
}

func (s *holidayService) Add(ctx context.Context, projectID, date, name string) (*domain.Holiday, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}

	h := &domain.Holiday{
		ID:   uuid.New().String(),
		Date: day,
		Name: name,
	}
	if projectID != "" {
		if _, err := s.projects.GetByID(ctx, projectID); err != nil {
			return nil, err
		}
		h.ProjectID = &projectID
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.holidays.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *holidayService) ListForProject(ctx context.Context, projectID string) ([]domain.Holiday, error) {
	return s.holidays.ListForProject(ctx, projectID)
}

func (s *holidayService) ListGlobal(ctx context.Context) ([]domain.Holiday, error) {
	return s.holidays.ListGlobal(ctx)
}

func (s *holidayService) Remove(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}
