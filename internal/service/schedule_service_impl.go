package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/scheduler"
)

type scheduleService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	deps     repository.DependencyRepo
	holidays repository.HolidayRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewScheduleService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	deps repository.DependencyRepo,
	holidays repository.HolidayRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		projects: projects,
		tasks:    tasks,
		deps:     deps,
		holidays: holidays,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Recompute(ctx context.Context, projectID string) (result *contract.ScheduleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": projectID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "schedule-recompute",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	result, schedules, err := s.compute(ctx, projectID)
	if err != nil {
		return nil, err
	}
	fields["task_count"] = len(schedules)

	// Either every task gets its new dates or none do.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, sched := range schedules {
			if err := txTasks.UpdateComputed(ctx, sched.TaskID, sched); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Persisted = true
	return result, nil
}

func (s *scheduleService) Preview(ctx context.Context, projectID string) (*contract.ScheduleResult, error) {
	result, _, err := s.compute(ctx, projectID)
	return result, err
}

func (s *scheduleService) compute(ctx context.Context, projectID string) (*contract.ScheduleResult, []scheduler.TaskSchedule, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	deps, err := s.deps.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	holidays, err := s.holidays.ListForProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	schedules, err := scheduler.Compute(tasks, deps, holidays, scheduler.Config{
		ProjectStart: project.StartDate,
		RequiredEnd:  project.RequiredEnd,
		SkipWeekends: project.SkipWeekends,
	})
	if err != nil {
		return nil, nil, err
	}

	result := buildScheduleResult(project, tasks, schedules)
	return result, schedules, nil
}

// buildScheduleResult flattens the computed schedules into display order.
func buildScheduleResult(project *domain.Project, tasks []*domain.Task, schedules []scheduler.TaskSchedule) *contract.ScheduleResult {
	byID := make(map[string]scheduler.TaskSchedule, len(schedules))
	for _, sched := range schedules {
		byID[sched.TaskID] = sched
	}

	result := &contract.ScheduleResult{
		ProjectID:  project.ID,
		ComputedAt: time.Now().UTC(),
	}

	// tasks arrive in natural WBS order from the repository; keep it.
	for _, t := range tasks {
		sched, ok := byID[t.ID]
		if !ok {
			continue
		}
		result.Tasks = append(result.Tasks, contract.TaskScheduleView{
			TaskID:       t.ID,
			WBSID:        t.WBSID,
			Name:         t.Name,
			Start:        sched.ComputedStart,
			End:          sched.ComputedEnd,
			DurationDays: t.DurationDays,
			TotalFloat:   sched.TotalFloat,
			IsCritical:   sched.IsCritical,
			Milestone:    t.IsMilestone(),
		})
		if sched.IsCritical {
			result.CriticalPath = append(result.CriticalPath, t.WBSID)
		}
		if sched.ComputedEnd.After(result.ProjectEnd) {
			result.ProjectEnd = sched.ComputedEnd
		}
	}
	return result
}
