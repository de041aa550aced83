package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_FlagsLaggingTask(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	e.mustTask(t, proj.ID, "1", "Slipping",
		testutil.WithDuration(8),
		testutil.WithPlannedStart(start),
		testutil.WithPlannedEnd(end),
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithProgress(10),
	)

	// Friday Jan 5: five of eight working days elapsed, ~62% expected.
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	req := contract.NewStatusRequest(proj.ID)
	req.Now = &now

	resp, err := e.statusSvc.GetStatus(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)

	tv := resp.Tasks[0]
	assert.Equal(t, 62, tv.EstimatedProgress)
	assert.Equal(t, -52, tv.ProgressVariance)
	assert.True(t, tv.IsBehindSchedule)
	assert.Equal(t, 1, resp.BehindCount)
}

func TestStatusService_CompletedTaskNeverFlagged(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	e.mustTask(t, proj.ID, "1", "Done",
		testutil.WithDuration(3),
		testutil.WithPlannedStart(start),
		testutil.WithPlannedEnd(end),
		testutil.WithTaskStatus(domain.TaskCompleted),
		testutil.WithProgress(100),
	)

	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	req := contract.NewStatusRequest(proj.ID)
	req.Now = &now

	resp, err := e.statusSvc.GetStatus(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CompletedCount)
	assert.Equal(t, 0, resp.BehindCount)
	assert.Equal(t, 0, resp.OverdueCount)
}

func TestStatusService_OverallProgressWeightedByDuration(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)

	e.mustTask(t, proj.ID, "1", "Long", testutil.WithDuration(9), testutil.WithProgress(100),
		testutil.WithTaskStatus(domain.TaskCompleted))
	e.mustTask(t, proj.ID, "2", "Short", testutil.WithDuration(1), testutil.WithProgress(0))

	resp, err := e.statusSvc.GetStatus(context.Background(), contract.NewStatusRequest(proj.ID))
	require.NoError(t, err)
	// 9 days at 100% plus 1 day at 0% averages to 90%.
	assert.Equal(t, 90, resp.OverallProgress)
	assert.Equal(t, 2, resp.TaskCount)
}

func TestStatusService_ComputedDatesDriveMetrics(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	task := e.mustTask(t, proj.ID, "1", "Scheduled", testutil.WithDuration(5),
		testutil.WithTaskStatus(domain.TaskInProgress), testutil.WithProgress(60))

	ctx := context.Background()
	_, err := e.schedSvc.Recompute(ctx, proj.ID)
	require.NoError(t, err)

	// Wednesday Jan 3 of a 5-day task starting Monday Jan 1: 3 of 5 days.
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	req := contract.NewStatusRequest(proj.ID)
	req.Now = &now

	resp, err := e.statusSvc.GetStatus(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, task.ID, resp.Tasks[0].TaskID)
	assert.Equal(t, 60, resp.Tasks[0].EstimatedProgress)
	assert.Equal(t, 0, resp.Tasks[0].ProgressVariance)
	assert.False(t, resp.Tasks[0].IsBehindSchedule)
}

func TestStatusService_UnknownProject(t *testing.T) {
	e := newEnv(t)

	_, err := e.statusSvc.GetStatus(context.Background(), contract.NewStatusRequest("ghost"))
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
