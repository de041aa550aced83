package contract

import "github.com/alexanderramin/gantry/internal/domain"

// TreeNode is one task in the rendered WBS hierarchy. Children are in
// natural WBS order.
type TreeNode struct {
	TaskID         string
	WBSID          string
	Name           string
	Status         domain.TaskStatus
	DurationDays   int
	ActualProgress int
	Depth          int
	Children       []TreeNode
}
