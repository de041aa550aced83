// Package wbstree reconstructs the parent/child WBS forest from a flat task
// list using identifier prefixes. The forest is an arena of nodes addressed
// by index rather than a pointer-linked tree, which keeps the projection
// cheap to rebuild and tolerant of missing intermediate levels.
package wbstree

import (
	"sort"

	"github.com/alexanderramin/gantry/internal/domain"
)

// Node is one entry in the forest arena. Parent and Children are indices
// into Forest.Nodes; Parent is -1 for roots.
type Node struct {
	TaskID   string
	WBSID    string
	Parent   int
	Children []int
}

// Forest is the reconstructed hierarchy. It is a pure projection of the
// input tasks: building it never mutates them.
type Forest struct {
	Nodes []Node
	Roots []int

	byWBS map[string]int
}

// Build produces the forest for one project's tasks. Each node attaches to
// the task whose WBS id is its longest existing proper dot-prefix; if no
// ancestor level exists the node becomes a root (orphan tolerance). Children
// and roots are ordered by the WBS comparator. Runs in O(n log n + n·depth).
func Build(tasks []*domain.Task) *Forest {
	f := &Forest{byWBS: make(map[string]int, len(tasks))}
	if len(tasks) == 0 {
		return f
	}

	// Sort a copy so the result is independent of input ordering and
	// children come out naturally ordered.
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := domain.CompareWBSID(sorted[i].WBSID, sorted[j].WBSID); c != 0 {
			return c < 0
		}
		return sorted[i].ID < sorted[j].ID
	})

	f.Nodes = make([]Node, len(sorted))
	for i, t := range sorted {
		f.Nodes[i] = Node{TaskID: t.ID, WBSID: t.WBSID, Parent: -1}
		if _, dup := f.byWBS[t.WBSID]; !dup {
			f.byWBS[t.WBSID] = i
		}
	}

	for i := range f.Nodes {
		parent := f.nearestAncestor(f.Nodes[i].WBSID)
		if parent < 0 {
			f.Roots = append(f.Roots, i)
			continue
		}
		f.Nodes[i].Parent = parent
		f.Nodes[parent].Children = append(f.Nodes[parent].Children, i)
	}

	return f
}

// Lookup returns the arena index for a WBS id, or -1 if absent.
func (f *Forest) Lookup(wbsID string) int {
	if i, ok := f.byWBS[wbsID]; ok {
		return i
	}
	return -1
}

// ParentTaskID returns the task id of the node's parent, or nil for roots.
func (f *Forest) ParentTaskID(i int) *string {
	p := f.Nodes[i].Parent
	if p < 0 {
		return nil
	}
	id := f.Nodes[p].TaskID
	return &id
}

// Walk visits every node depth-first in WBS order, reporting its depth
// relative to the forest roots.
func (f *Forest) Walk(visit func(i, depth int)) {
	var rec func(i, depth int)
	rec = func(i, depth int) {
		visit(i, depth)
		for _, c := range f.Nodes[i].Children {
			rec(c, depth+1)
		}
	}
	for _, r := range f.Roots {
		rec(r, 0)
	}
}

// nearestAncestor strips trailing segments off wbsID until it finds an
// existing node, skipping the node itself. Cost is bounded by the
// identifier's depth.
func (f *Forest) nearestAncestor(wbsID string) int {
	for p := domain.ParentWBSID(wbsID); p != ""; p = domain.ParentWBSID(p) {
		if i, ok := f.byWBS[p]; ok {
			return i
		}
	}
	return -1
}
