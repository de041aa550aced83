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

func TestIssueRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tracked")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	repo := NewSQLiteIssueRepo(db)
	issue := testutil.NewTestIssue(proj.ID, "Crane unavailable")
	require.NoError(t, repo.Create(ctx, issue))

	fetched, err := repo.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crane unavailable", fetched.Title)
	assert.Equal(t, domain.IssueOpen, fetched.Status)
	assert.Equal(t, 0, fetched.EscalationLevel)
	assert.Nil(t, fetched.LinkedTaskID)
}

func TestIssueRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteIssueRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestIssueRepo_UpdatePersistsTransition(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tracked")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	repo := NewSQLiteIssueRepo(db)
	issue := testutil.NewTestIssue(proj.ID, "Permit delayed", testutil.WithIssueStatus(domain.IssueInProgress))
	require.NoError(t, repo.Create(ctx, issue))

	require.NoError(t, issue.Transition(domain.IssueEscalated, "city office backlog"))
	issue.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, issue))

	fetched, err := repo.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueEscalated, fetched.Status)
	assert.Equal(t, 1, fetched.EscalationLevel)
}

func TestIssueRepo_ListByProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	p1 := testutil.NewTestProject("One")
	p2 := testutil.NewTestProject("Two")
	projRepo := NewSQLiteProjectRepo(db)
	require.NoError(t, projRepo.Create(ctx, p1))
	require.NoError(t, projRepo.Create(ctx, p2))

	repo := NewSQLiteIssueRepo(db)
	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(p1.ID, "A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(p1.ID, "B")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(p2.ID, "C")))

	issues, err := repo.ListByProject(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestIssueRepo_TaskDeleteClearsLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Linked")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	taskRepo := NewSQLiteTaskRepo(db)
	task := testutil.NewTestTask(proj.ID, "1", "Risky work")
	require.NoError(t, taskRepo.Create(ctx, task))

	repo := NewSQLiteIssueRepo(db)
	issue := testutil.NewTestIssue(proj.ID, "Blocked", testutil.WithLinkedTask(task.ID))
	require.NoError(t, repo.Create(ctx, issue))

	require.NoError(t, taskRepo.Delete(ctx, task.ID))

	// ON DELETE SET NULL: the issue survives but loses its link.
	fetched, err := repo.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.LinkedTaskID)
}
