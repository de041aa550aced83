package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a project must take its tasks, dependencies, issues and scoped
// holidays with it, while global holidays stay.
func TestProjectDelete_CascadesEverything(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(db)
	taskRepo := NewSQLiteTaskRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)
	issueRepo := NewSQLiteIssueRepo(db)
	holidayRepo := NewSQLiteHolidayRepo(db)

	proj := testutil.NewTestProject("Condemned")
	require.NoError(t, projRepo.Create(ctx, proj))

	a := testutil.NewTestTask(proj.ID, "1", "A")
	b := testutil.NewTestTask(proj.ID, "2", "B")
	require.NoError(t, taskRepo.Create(ctx, a))
	require.NoError(t, taskRepo.Create(ctx, b))
	require.NoError(t, depRepo.Create(ctx, &domain.Dependency{
		ProjectID: proj.ID, PredecessorTaskID: a.ID, SuccessorTaskID: b.ID,
	}))
	require.NoError(t, issueRepo.Create(ctx, testutil.NewTestIssue(proj.ID, "Problem")))

	scoped := testutil.NewTestHoliday(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "Scoped",
		testutil.WithHolidayProject(proj.ID))
	global := testutil.NewTestHoliday(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Global")
	require.NoError(t, holidayRepo.Create(ctx, scoped))
	require.NoError(t, holidayRepo.Create(ctx, global))

	require.NoError(t, projRepo.Delete(ctx, proj.ID))

	tasks, err := taskRepo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	deps, err := depRepo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)

	issues, err := issueRepo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, issues)

	holidays, err := holidayRepo.ListForProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "Global", holidays[0].Name)
}
