package graph

import (
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainGraph(t *testing.T, n int) *Graph {
	t.Helper()
	g := New()
	ids := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < n; i++ {
		g.AddNode(ids[i], string(rune('1'+i)))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1]))
	}
	return g
}

func TestAddEdge_SelfDependency(t *testing.T) {
	g := New()
	g.AddNode("a", "1")

	err := g.AddEdge("a", "a")
	require.Error(t, err)
	assert.Equal(t, domain.KindSelfDependency, domain.KindOf(err))
}

func TestAddEdge_Duplicate(t *testing.T) {
	g := chainGraph(t, 2)

	err := g.AddEdge("a", "b")
	require.Error(t, err)
	assert.Equal(t, domain.KindDuplicateEdge, domain.KindOf(err))
}

func TestAddEdge_UnknownNode(t *testing.T) {
	g := New()
	g.AddNode("a", "1")

	err := g.AddEdge("a", "ghost")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestAddEdge_DirectCycleRejected(t *testing.T) {
	g := chainGraph(t, 2)

	err := g.AddEdge("b", "a")
	require.Error(t, err)
	assert.Equal(t, domain.KindCycleDetected, domain.KindOf(err))
}

func TestAddEdge_TransitiveCycleRejected(t *testing.T) {
	g := chainGraph(t, 4) // a->b->c->d

	err := g.AddEdge("d", "a")
	require.Error(t, err)
	assert.Equal(t, domain.KindCycleDetected, domain.KindOf(err))
}

func TestAddEdge_RejectionLeavesGraphUnchanged(t *testing.T) {
	g := chainGraph(t, 3) // a->b->c

	require.Error(t, g.AddEdge("c", "a"))

	// The rejected edge must not be present in either direction.
	assert.Empty(t, g.Successors("c"))
	assert.Empty(t, g.Predecessors("a"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestRemoveEdge_Idempotent(t *testing.T) {
	g := chainGraph(t, 2)

	g.RemoveEdge("a", "b")
	assert.Empty(t, g.Successors("a"))

	// Removing again is a no-op.
	g.RemoveEdge("a", "b")
	g.RemoveEdge("nope", "b")
}

func TestRemoveNode_CascadesEdges(t *testing.T) {
	g := chainGraph(t, 3) // a->b->c

	g.RemoveNode("b")

	assert.False(t, g.HasNode("b"))
	assert.Empty(t, g.Successors("a"))
	assert.Empty(t, g.Predecessors("c"))
	assert.Equal(t, 2, g.NodeCount())

	// Idempotent.
	g.RemoveNode("b")
}

func TestTopologicalOrder_TiesBrokenByWBSID(t *testing.T) {
	g := New()
	// Three roots with WBS ids whose numeric order differs from the
	// lexicographic one.
	g.AddNode("x", "10")
	g.AddNode("y", "2")
	g.AddNode("z", "1.5")
	g.AddNode("w", "1.2")
	require.NoError(t, g.AddEdge("w", "x"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"w", "z", "y", "x"}, order)
}

func TestTopologicalOrder_DetectsPersistedCycle(t *testing.T) {
	// FromSnapshot skips validation, so a cyclic persisted edge set must be
	// caught at traversal time.
	tasks := []*domain.Task{
		{ID: "a", WBSID: "1"},
		{ID: "b", WBSID: "2"},
	}
	deps := []domain.Dependency{
		{PredecessorTaskID: "a", SuccessorTaskID: "b"},
		{PredecessorTaskID: "b", SuccessorTaskID: "a"},
	}
	g := FromSnapshot(tasks, deps)

	_, err := g.TopologicalOrder()
	require.Error(t, err)
	assert.Equal(t, domain.KindCycleDetected, domain.KindOf(err))
}

func TestFromSnapshot_SkipsDanglingAndDuplicateEdges(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "a", WBSID: "1"},
		{ID: "b", WBSID: "2"},
	}
	deps := []domain.Dependency{
		{PredecessorTaskID: "a", SuccessorTaskID: "b"},
		{PredecessorTaskID: "a", SuccessorTaskID: "b"}, // duplicate
		{PredecessorTaskID: "a", SuccessorTaskID: "ghost"},
		{PredecessorTaskID: "a", SuccessorTaskID: "a"}, // self-loop
	}
	g := FromSnapshot(tasks, deps)

	assert.Equal(t, []string{"b"}, g.Successors("a"))
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestTopologicalOrder_Diamond(t *testing.T) {
	g := New()
	g.AddNode("a", "1")
	g.AddNode("b", "2")
	g.AddNode("c", "3")
	g.AddNode("d", "4")
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("b", "d"))
	require.NoError(t, g.AddEdge("c", "d"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}
