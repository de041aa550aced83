package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TaskStatusBadge returns a colored badge for a task status.
func TaskStatusBadge(status domain.TaskStatus) string {
	switch status {
	case domain.TaskCompleted:
		return StyleGreen.Render("✔ done")
	case domain.TaskInProgress:
		return StyleYellow.Render("▶ active")
	case domain.TaskCancelled:
		return StyleDim.Render("✘ cancelled")
	default:
		return StyleDim.Render("· pending")
	}
}

// IssueStatusBadge returns a colored badge for an issue status.
func IssueStatusBadge(status domain.IssueStatus, level int) string {
	switch status {
	case domain.IssueOpen:
		return StyleBlue.Render("open")
	case domain.IssueInProgress:
		return StyleYellow.Render("in progress")
	case domain.IssueEscalated:
		return StyleRed.Render(fmt.Sprintf("escalated (L%d)", level))
	case domain.IssueResolved:
		return StyleGreen.Render("resolved")
	case domain.IssueClosed:
		return StyleDim.Render("closed")
	case domain.IssueReopened:
		return StylePurple.Render("reopened")
	default:
		return StyleDim.Render(string(status))
	}
}

// CriticalMark renders the critical-path indicator for schedule rows.
func CriticalMark(critical bool) string {
	if critical {
		return StyleRed.Render("●")
	}
	return StyleDim.Render("○")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
