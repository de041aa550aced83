package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/service"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	projRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	issueRepo := repository.NewSQLiteIssueRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	settingRepo := repository.NewSQLiteSettingRepo(database)
	uow := testutil.NewTestUoW(database)

	settingsSvc := service.NewSettingsService(settingRepo)

	return &App{
		Projects: service.NewProjectService(projRepo),
		Tasks:    service.NewTaskService(taskRepo, depRepo, projRepo, uow),
		Deps:     service.NewDependencyService(depRepo, taskRepo),
		Schedule: service.NewScheduleService(projRepo, taskRepo, depRepo, holidayRepo, uow),
		Issues:   service.NewIssueService(issueRepo, taskRepo),
		Holidays: service.NewHolidayService(holidayRepo, projRepo),
		Settings: settingsSvc,
		Status:   service.NewStatusService(projRepo, taskRepo, holidayRepo, settingsSvc),
		Import:   service.NewImportService(uow),
	}
}

// executeCmd runs a cobra command tree and captures cobra-level output.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	return root.Execute()
}

func seedProject(t *testing.T, app *App) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Dock Rebuild")
	require.NoError(t, app.Projects.Create(context.Background(), p))
	return p
}

func TestProjectAddCmd_CreatesProject(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "project", "add",
		"--name", "Dock Rebuild", "--start", "2024-01-01")
	require.NoError(t, err)

	projects, err := app.Projects.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Dock Rebuild", projects[0].Name)
	assert.True(t, projects[0].SkipWeekends)
}

func TestProjectAddCmd_RejectsBadDate(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "project", "add",
		"--name", "Bad", "--start", "not-a-date")
	require.Error(t, err)
}

func TestTaskAddCmd_ResolvesProjectByName(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)

	err := executeCmd(t, app, "task", "add",
		"--project", "dock rebuild", "--wbs", "1.1", "--name", "Pilings", "--duration", "4")
	require.NoError(t, err)

	task, err := app.Tasks.GetByWBSID(context.Background(), p.ID, "1.1")
	require.NoError(t, err)
	assert.Equal(t, "Pilings", task.Name)
	assert.Equal(t, 4, task.DurationDays)
}

func TestDepAddCmd_ResolvesTasksByWBS(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)
	ctx := context.Background()

	a := testutil.NewTestTask(p.ID, "1", "Demolition")
	b := testutil.NewTestTask(p.ID, "2", "Rebuild")
	require.NoError(t, app.Tasks.Create(ctx, a))
	require.NoError(t, app.Tasks.Create(ctx, b))

	err := executeCmd(t, app, "dep", "add", "1", "2", "--project", p.ID)
	require.NoError(t, err)

	deps, err := app.Deps.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, a.ID, deps[0].PredecessorTaskID)
	assert.Equal(t, b.ID, deps[0].SuccessorTaskID)
}

func TestDepAddCmd_CycleSurfacesError(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)
	ctx := context.Background()

	a := testutil.NewTestTask(p.ID, "1", "A")
	b := testutil.NewTestTask(p.ID, "2", "B")
	require.NoError(t, app.Tasks.Create(ctx, a))
	require.NoError(t, app.Tasks.Create(ctx, b))
	require.NoError(t, app.Deps.Add(ctx, p.ID, a.ID, b.ID))

	err := executeCmd(t, app, "dep", "add", "2", "1", "--project", p.ID)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindCycleDetected))
}

func TestScheduleComputeCmd_PersistsDates(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)
	ctx := context.Background()

	task := testutil.NewTestTask(p.ID, "1", "Survey", testutil.WithDuration(2))
	require.NoError(t, app.Tasks.Create(ctx, task))

	err := executeCmd(t, app, "schedule", "compute", "--project", p.ID)
	require.NoError(t, err)

	got, err := app.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ComputedStart)
	require.NotNil(t, got.ComputedEnd)
}

func TestIssueLifecycleCmds(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)
	ctx := context.Background()

	require.NoError(t, executeCmd(t, app, "issue", "add",
		"--project", p.ID, "--title", "Permit delayed"))

	issues, err := app.Issues.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	id := issues[0].ID

	require.NoError(t, executeCmd(t, app, "issue", "start", id))
	require.NoError(t, executeCmd(t, app, "issue", "escalate", id, "--note", "blocking the pour"))

	got, err := app.Issues.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueEscalated, got.Status)
	assert.Equal(t, 1, got.EscalationLevel)
}

func TestIssueEscalateCmd_RequiresNote(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)

	require.NoError(t, executeCmd(t, app, "issue", "add",
		"--project", p.ID, "--title", "Crane shortage"))
	issues, err := app.Issues.ListByProject(context.Background(), p.ID)
	require.NoError(t, err)

	err = executeCmd(t, app, "issue", "escalate", issues[0].ID)
	require.Error(t, err) // --note is a required flag
}

func TestResolveProjectID_PrefixAndAmbiguity(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app)
	ctx := context.Background()

	got, err := resolveProjectID(ctx, app, p.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)

	_, err = resolveProjectID(ctx, app, "no-such-project")
	require.Error(t, err)
}

func TestSettingCmds_RoundTrip(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app, "setting", "set", domain.SettingOverdueWarningDays, "5"))

	s, err := app.Settings.Get(context.Background(), domain.SettingOverdueWarningDays)
	require.NoError(t, err)
	assert.Equal(t, "5", s.RawValue)

	err = executeCmd(t, app, "setting", "set", domain.SettingOverdueWarningDays, "not-a-number")
	require.Error(t, err)
}

func TestHolidayAddCmd_GlobalByDefault(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app, "holiday", "add", "2024-12-25", "--name", "Christmas"))

	holidays, err := app.Holidays.ListGlobal(context.Background())
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Nil(t, holidays[0].ProjectID)
}
