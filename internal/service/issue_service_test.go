package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueService_CreateWithLinkedTask(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	task := e.mustTask(t, proj.ID, "1", "Risky")

	ctx := context.Background()
	issue := testutil.NewTestIssue(proj.ID, "Blocked on permit", testutil.WithLinkedTask(task.ID))
	require.NoError(t, e.issueSvc.Create(ctx, issue))

	fetched, err := e.issueSvc.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LinkedTaskID)
	assert.Equal(t, task.ID, *fetched.LinkedTaskID)
}

func TestIssueService_CreateRejectsUnknownTask(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	issue := testutil.NewTestIssue(proj.ID, "Bad link", testutil.WithLinkedTask("ghost"))
	err := e.issueSvc.Create(context.Background(), issue)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestIssueService_EscalationLifecycle(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	ctx := context.Background()
	issue := testutil.NewTestIssue(proj.ID, "Supplier late")
	require.NoError(t, e.issueSvc.Create(ctx, issue))

	_, err := e.issueSvc.Transition(ctx, issue.ID, domain.IssueInProgress, "")
	require.NoError(t, err)

	esc, err := e.issueSvc.Transition(ctx, issue.ID, domain.IssueEscalated, "two weeks overdue")
	require.NoError(t, err)
	assert.Equal(t, 1, esc.EscalationLevel)

	esc, err = e.issueSvc.Transition(ctx, issue.ID, domain.IssueEscalated, "now a month overdue")
	require.NoError(t, err)
	assert.Equal(t, 2, esc.EscalationLevel)

	res, err := e.issueSvc.Transition(ctx, issue.ID, domain.IssueResolved, "second-source found")
	require.NoError(t, err)
	assert.Equal(t, "second-source found", res.ResolutionNote)

	// The level survives reopening; the note does not.
	re, err := e.issueSvc.Transition(ctx, issue.ID, domain.IssueReopened, "")
	require.NoError(t, err)
	assert.Equal(t, 2, re.EscalationLevel)
	assert.Empty(t, re.ResolutionNote)
}

func TestIssueService_InvalidTransitionNotPersisted(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	ctx := context.Background()
	issue := testutil.NewTestIssue(proj.ID, "Fresh")
	require.NoError(t, e.issueSvc.Create(ctx, issue))

	_, err := e.issueSvc.Transition(ctx, issue.ID, domain.IssueClosed, "")
	assert.True(t, domain.IsKind(err, domain.KindInvalidTransition))

	fetched, err := e.issueSvc.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueOpen, fetched.Status)
}

func TestIssueService_EscalationRequiresNote(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	ctx := context.Background()
	issue := testutil.NewTestIssue(proj.ID, "Quiet", testutil.WithIssueStatus(domain.IssueInProgress))
	require.NoError(t, e.issueSvc.Create(ctx, issue))

	_, err := e.issueSvc.Transition(ctx, issue.ID, domain.IssueEscalated, "")
	assert.True(t, domain.IsKind(err, domain.KindInvalidTransition))
}
