package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/scheduler"
)

type statusService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	holidays repository.HolidayRepo
	settings SettingsService
}

func NewStatusService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	holidays repository.HolidayRepo,
	settings SettingsService,
) StatusService {
	return &statusService{projects: projects, tasks: tasks, holidays: holidays, settings: settings}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidays.ListForProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	overdueDays, lagPct := s.settings.ProgressConfig(ctx)
	cal := scheduler.NewCalendar(holidays, project.SkipWeekends)
	cfg := scheduler.ProgressConfig{
		OverdueWarningDays: overdueDays,
		LagThresholdPct:    lagPct,
	}

	resp := &contract.StatusResponse{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		AsOf:        now,
		TaskCount:   len(tasks),
	}

	var weightedDone, weightedTotal int
	for _, t := range tasks {
		m := scheduler.MeasureProgress(t, cal, cfg, now)

		if t.Status == domain.TaskCompleted {
			resp.CompletedCount++
		}
		if m.IsBehindSchedule {
			resp.BehindCount++
		}
		if m.IsOverdue {
			resp.OverdueCount++
		}

		// Milestones carry no duration; weight them as a single day so they
		// still move the needle.
		weight := t.DurationDays
		if weight == 0 {
			weight = 1
		}
		weightedDone += t.ActualProgress * weight
		weightedTotal += weight

		resp.Tasks = append(resp.Tasks, contract.TaskProgressView{
			TaskID:            t.ID,
			WBSID:             t.WBSID,
			Name:              t.Name,
			Status:            t.Status,
			ActualProgress:    t.ActualProgress,
			EstimatedProgress: m.EstimatedProgress,
			ProgressVariance:  m.ProgressVariance,
			IsBehindSchedule:  m.IsBehindSchedule,
			IsOverdue:         m.IsOverdue,
		})
	}
	if weightedTotal > 0 {
		resp.OverallProgress = weightedDone / weightedTotal
	}
	return resp, nil
}
