package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyService_AddAndList(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	a := e.mustTask(t, proj.ID, "1", "A")
	b := e.mustTask(t, proj.ID, "2", "B")

	ctx := context.Background()
	require.NoError(t, e.depSvc.Add(ctx, proj.ID, a.ID, b.ID))

	deps, err := e.depSvc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, a.ID, deps[0].PredecessorTaskID)
	assert.Equal(t, b.ID, deps[0].SuccessorTaskID)
}

func TestDependencyService_RejectsSelfDependency(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	a := e.mustTask(t, proj.ID, "1", "A")

	err := e.depSvc.Add(context.Background(), proj.ID, a.ID, a.ID)
	assert.True(t, domain.IsKind(err, domain.KindSelfDependency))
}

func TestDependencyService_RejectsDuplicateEdge(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	a := e.mustTask(t, proj.ID, "1", "A")
	b := e.mustTask(t, proj.ID, "2", "B")

	ctx := context.Background()
	require.NoError(t, e.depSvc.Add(ctx, proj.ID, a.ID, b.ID))
	err := e.depSvc.Add(ctx, proj.ID, a.ID, b.ID)
	assert.True(t, domain.IsKind(err, domain.KindDuplicateEdge))
}

func TestDependencyService_RejectsUnknownTask(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	a := e.mustTask(t, proj.ID, "1", "A")

	err := e.depSvc.Add(context.Background(), proj.ID, a.ID, "ghost")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestDependencyService_RejectsTransitiveCycle(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	a := e.mustTask(t, proj.ID, "1", "A")
	b := e.mustTask(t, proj.ID, "2", "B")
	c := e.mustTask(t, proj.ID, "3", "C")

	ctx := context.Background()
	require.NoError(t, e.depSvc.Add(ctx, proj.ID, a.ID, b.ID))
	require.NoError(t, e.depSvc.Add(ctx, proj.ID, b.ID, c.ID))

	err := e.depSvc.Add(ctx, proj.ID, c.ID, a.ID)
	assert.True(t, domain.IsKind(err, domain.KindCycleDetected))

	// The rejected edge must not be persisted.
	deps, listErr := e.depSvc.ListByProject(ctx, proj.ID)
	require.NoError(t, listErr)
	assert.Len(t, deps, 2)
}

func TestDependencyService_Remove(t *testing.T) {
	e := newEnv(t)
	proj := e.mustProject(t)
	a := e.mustTask(t, proj.ID, "1", "A")
	b := e.mustTask(t, proj.ID, "2", "B")

	ctx := context.Background()
	require.NoError(t, e.depSvc.Add(ctx, proj.ID, a.ID, b.ID))
	require.NoError(t, e.depSvc.Remove(ctx, a.ID, b.ID))

	// The reversed edge is legal once the original is gone.
	require.NoError(t, e.depSvc.Add(ctx, proj.ID, b.ID, a.ID))
}
