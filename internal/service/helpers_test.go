package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/require"
)

// env bundles the repositories and services most tests need.
type env struct {
	db       *sql.DB
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	deps     repository.DependencyRepo
	issues   repository.IssueRepo
	holidays repository.HolidayRepo
	settings repository.SettingRepo

	projectSvc ProjectService
	taskSvc    TaskService
	depSvc     DependencyService
	schedSvc   ScheduleService
	issueSvc   IssueService
	holidaySvc HolidayService
	settingSvc SettingsService
	statusSvc  StatusService
	importSvc  ImportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	e := &env{
		db:       database,
		projects: repository.NewSQLiteProjectRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		deps:     repository.NewSQLiteDependencyRepo(database),
		issues:   repository.NewSQLiteIssueRepo(database),
		holidays: repository.NewSQLiteHolidayRepo(database),
		settings: repository.NewSQLiteSettingRepo(database),
	}
	e.projectSvc = NewProjectService(e.projects)
	e.taskSvc = NewTaskService(e.tasks, e.deps, e.projects, uow)
	e.depSvc = NewDependencyService(e.deps, e.tasks)
	e.schedSvc = NewScheduleService(e.projects, e.tasks, e.deps, e.holidays, uow)
	e.issueSvc = NewIssueService(e.issues, e.tasks)
	e.holidaySvc = NewHolidayService(e.holidays, e.projects)
	e.settingSvc = NewSettingsService(e.settings)
	e.statusSvc = NewStatusService(e.projects, e.tasks, e.holidays, e.settingSvc)
	e.importSvc = NewImportService(uow)
	return e
}

func (e *env) mustProject(t *testing.T, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Test Project", opts...)
	require.NoError(t, e.projectSvc.Create(context.Background(), p))
	return p
}

func (e *env) mustTask(t *testing.T, projectID, wbsID, name string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, wbsID, name, opts...)
	require.NoError(t, e.taskSvc.Create(context.Background(), task))
	return task
}
