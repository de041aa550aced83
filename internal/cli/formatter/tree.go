package formatter

import (
	"strings"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderWBSTree renders the project hierarchy with box-drawing connectors.
// Each line shows the WBS id, the name and a status badge, with badges
// aligned in a right-hand column.
func RenderWBSTree(roots []contract.TreeNode) string {
	if len(roots) == 0 {
		return Dim("no tasks")
	}

	type line struct {
		content string
		badge   string
	}
	var lines []line
	maxWidth := 0

	var walk func(n contract.TreeNode, prefix string, last bool)
	walk = func(n contract.TreeNode, prefix string, last bool) {
		connector := ""
		childPrefix := prefix
		if n.Depth > 0 {
			if last {
				connector = prefix + treeCorner
				childPrefix = prefix + treeBlank
			} else {
				connector = prefix + treeBranch
				childPrefix = prefix + treePipe
			}
		}

		content := connector + StyleBlue.Render(n.WBSID) + " " + n.Name
		if w := lipgloss.Width(content); w > maxWidth {
			maxWidth = w
		}
		lines = append(lines, line{content: content, badge: TaskStatusBadge(n.Status)})

		for i, c := range n.Children {
			walk(c, childPrefix, i == len(n.Children)-1)
		}
	}

	for i, r := range roots {
		walk(r, "", i == len(roots)-1)
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.content)
		b.WriteString(strings.Repeat(" ", maxWidth-lipgloss.Width(l.content)+2))
		b.WriteString(l.badge)
		b.WriteString("\n")
	}
	return b.String()
}
