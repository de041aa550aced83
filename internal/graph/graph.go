// Package graph maintains the directed dependency graph for one project's
// tasks: adjacency in both directions, acyclicity enforcement on mutation,
// and deterministic topological traversal.
package graph

import (
	"sort"

	"github.com/alexanderramin/gantry/internal/domain"
)

// Graph holds predecessor->successor adjacency for one project. The zero
// value is not usable; construct with New or FromSnapshot.
type Graph struct {
	succs map[string][]string
	preds map[string][]string
	wbs   map[string]string // task id -> WBS id, used for deterministic ties
}

func New() *Graph {
	return &Graph{
		succs: make(map[string][]string),
		preds: make(map[string][]string),
		wbs:   make(map[string]string),
	}
}

// FromSnapshot builds a graph from persisted tasks and edges. Edges are
// inserted without cycle validation (the snapshot may predate it); duplicate
// edges and edges referencing unknown tasks are skipped. TopologicalOrder
// re-checks acyclicity defensively.
func FromSnapshot(tasks []*domain.Task, deps []domain.Dependency) *Graph {
	g := New()
	for _, t := range tasks {
		g.AddNode(t.ID, t.WBSID)
	}
	for _, d := range deps {
		if !g.HasNode(d.PredecessorTaskID) || !g.HasNode(d.SuccessorTaskID) {
			continue
		}
		if d.PredecessorTaskID == d.SuccessorTaskID {
			continue
		}
		if g.hasEdge(d.PredecessorTaskID, d.SuccessorTaskID) {
			continue
		}
		g.link(d.PredecessorTaskID, d.SuccessorTaskID)
	}
	return g
}

// AddNode registers a task. Re-adding an existing node updates its WBS id.
func (g *Graph) AddNode(id, wbsID string) {
	if _, ok := g.wbs[id]; !ok {
		g.succs[id] = nil
		g.preds[id] = nil
	}
	g.wbs[id] = wbsID
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.wbs[id]
	return ok
}

// NodeCount returns the number of registered tasks.
func (g *Graph) NodeCount() int {
	return len(g.wbs)
}

// AddEdge inserts pred -> succ after validating that both endpoints exist,
// the edge is not a self-loop or duplicate, and it would not close a cycle.
// On any failure the graph is left unchanged.
func (g *Graph) AddEdge(pred, succ string) error {
	if !g.HasNode(pred) {
		return domain.NotFound("task", pred)
	}
	if !g.HasNode(succ) {
		return domain.NotFound("task", succ)
	}
	if pred == succ {
		return domain.NewError(domain.KindSelfDependency, "dependency", pred,
			"a task cannot depend on itself")
	}
	if g.hasEdge(pred, succ) {
		return domain.NewError(domain.KindDuplicateEdge, "dependency", pred+"->"+succ,
			"dependency already exists")
	}
	// The edge closes a cycle iff pred is already reachable from succ.
	if g.reachable(succ, pred) {
		return domain.NewError(domain.KindCycleDetected, "dependency", pred+"->"+succ,
			"dependency would create a cycle")
	}
	g.link(pred, succ)
	return nil
}

// RemoveEdge deletes pred -> succ if present; no-op otherwise.
func (g *Graph) RemoveEdge(pred, succ string) {
	g.succs[pred] = remove(g.succs[pred], succ)
	g.preds[succ] = remove(g.preds[succ], pred)
}

// RemoveNode deletes a task and every edge touching it; no-op if absent.
func (g *Graph) RemoveNode(id string) {
	if !g.HasNode(id) {
		return
	}
	for _, s := range g.succs[id] {
		g.preds[s] = remove(g.preds[s], id)
	}
	for _, p := range g.preds[id] {
		g.succs[p] = remove(g.succs[p], id)
	}
	delete(g.succs, id)
	delete(g.preds, id)
	delete(g.wbs, id)
}

// Predecessors returns the direct predecessors of id.
func (g *Graph) Predecessors(id string) []string {
	return append([]string(nil), g.preds[id]...)
}

// Successors returns the direct successors of id.
func (g *Graph) Successors(id string) []string {
	return append([]string(nil), g.succs[id]...)
}

// TopologicalOrder returns every task id in an order respecting all edges,
// ties broken by WBS id ascending so the result is stable across runs.
// Fails with CycleDetected if the graph is cyclic.
func (g *Graph) TopologicalOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.wbs))
	for id := range g.wbs {
		indegree[id] = len(g.preds[id])
	}

	var ready []string
	for id, d := range indegree {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	g.sortByWBS(ready)

	order := make([]string, 0, len(g.wbs))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		var freed []string
		for _, s := range g.succs[id] {
			indegree[s]--
			if indegree[s] == 0 {
				freed = append(freed, s)
			}
		}
		if len(freed) > 0 {
			ready = append(ready, freed...)
			g.sortByWBS(ready)
		}
	}

	if len(order) != len(g.wbs) {
		return nil, domain.NewError(domain.KindCycleDetected, "project", "",
			"dependency graph contains a cycle")
	}
	return order, nil
}

// reachable reports whether to can be reached from from via successor edges.
// Iterative DFS, O(V+E).
func (g *Graph) reachable(from, to string) bool {
	if from == to {
		return true
	}
	seen := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, s := range g.succs[n] {
			if s == to {
				return true
			}
			if !seen[s] {
				seen[s] = true
				stack = append(stack, s)
			}
		}
	}
	return false
}

func (g *Graph) hasEdge(pred, succ string) bool {
	for _, s := range g.succs[pred] {
		if s == succ {
			return true
		}
	}
	return false
}

func (g *Graph) link(pred, succ string) {
	g.succs[pred] = append(g.succs[pred], succ)
	g.preds[succ] = append(g.preds[succ], pred)
}

func (g *Graph) sortByWBS(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := g.wbs[ids[i]], g.wbs[ids[j]]
		if c := domain.CompareWBSID(a, b); c != 0 {
			return c < 0
		}
		return ids[i] < ids[j]
	})
}

func remove(list []string, v string) []string {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
