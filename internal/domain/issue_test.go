package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssue(status IssueStatus) *Issue {
	return &Issue{ID: "iss-1", ProjectID: "p-1", Title: "Flaky deploy", Status: status}
}

func TestIssueTransition_HappyPath(t *testing.T) {
	iss := newIssue(IssueOpen)

	require.NoError(t, iss.Transition(IssueInProgress, ""))
	assert.Equal(t, IssueInProgress, iss.Status)

	require.NoError(t, iss.Transition(IssueEscalated, "blocked on vendor"))
	assert.Equal(t, 1, iss.EscalationLevel)

	require.NoError(t, iss.Transition(IssueResolved, "vendor shipped a fix"))
	assert.Equal(t, IssueResolved, iss.Status)
	assert.Equal(t, "vendor shipped a fix", iss.ResolutionNote)

	require.NoError(t, iss.Transition(IssueClosed, ""))
	assert.Equal(t, IssueClosed, iss.Status)
}

func TestIssueTransition_ReEscalationIncrementsLevel(t *testing.T) {
	iss := newIssue(IssueInProgress)

	require.NoError(t, iss.Transition(IssueEscalated, "first"))
	require.NoError(t, iss.Transition(IssueEscalated, "second"))
	assert.Equal(t, 2, iss.EscalationLevel)
}

func TestIssueTransition_EscalationRequiresNote(t *testing.T) {
	iss := newIssue(IssueInProgress)

	err := iss.Transition(IssueEscalated, "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidTransition, KindOf(err))
	assert.Equal(t, IssueInProgress, iss.Status, "failed transition must not mutate")
	assert.Equal(t, 0, iss.EscalationLevel)
}

func TestIssueTransition_ResolveRequiresNote(t *testing.T) {
	iss := newIssue(IssueOpen)

	err := iss.Transition(IssueResolved, "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidTransition, KindOf(err))

	require.NoError(t, iss.Transition(IssueResolved, "duplicate of iss-0"))
	assert.Equal(t, IssueResolved, iss.Status)
}

func TestIssueTransition_ClosedOnlyReopens(t *testing.T) {
	for _, to := range []IssueStatus{IssueInProgress, IssueEscalated, IssueResolved, IssueClosed} {
		iss := newIssue(IssueClosed)
		err := iss.Transition(to, "note")
		require.Error(t, err, "closed -> %s must fail", to)
		assert.Equal(t, KindInvalidTransition, KindOf(err))
	}

	iss := newIssue(IssueClosed)
	require.NoError(t, iss.Transition(IssueReopened, ""))
	assert.Equal(t, IssueReopened, iss.Status)
}

func TestIssueTransition_ReopenPreservesLevelClearsNote(t *testing.T) {
	iss := newIssue(IssueInProgress)
	require.NoError(t, iss.Transition(IssueEscalated, "env broken"))
	require.NoError(t, iss.Transition(IssueEscalated, "still broken"))
	require.NoError(t, iss.Transition(IssueResolved, "rebuilt env"))
	require.NoError(t, iss.Transition(IssueClosed, ""))

	require.NoError(t, iss.Transition(IssueReopened, ""))
	assert.Equal(t, 2, iss.EscalationLevel, "escalation level survives reopening")
	assert.Empty(t, iss.ResolutionNote, "resolution note cleared on reopen")
}

func TestIssueTransition_ResolvedFromEscalatedAndReopened(t *testing.T) {
	esc := newIssue(IssueEscalated)
	require.NoError(t, esc.Transition(IssueResolved, "patched"))

	re := newIssue(IssueReopened)
	require.NoError(t, re.Transition(IssueResolved, "patched again"))
}

func TestIssueTransition_UnlistedTransitionsFail(t *testing.T) {
	cases := []struct {
		from, to IssueStatus
	}{
		{IssueOpen, IssueEscalated},
		{IssueOpen, IssueClosed},
		{IssueOpen, IssueReopened},
		{IssueInProgress, IssueOpen},
		{IssueResolved, IssueInProgress},
		{IssueReopened, IssueInProgress},
	}
	for _, tc := range cases {
		iss := newIssue(tc.from)
		err := iss.Transition(tc.to, "note")
		require.Error(t, err, "%s -> %s must fail", tc.from, tc.to)
		assert.Equal(t, KindInvalidTransition, KindOf(err))
	}
}
