package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

const (
	ganttBar       = "█"
	ganttCritical  = "▓"
	ganttMilestone = "◆"
)

// RenderGantt renders a text timeline of the computed schedule, one row per
// task, one column per calendar day. Critical bars use the hatched block and
// milestones collapse to a diamond.
func RenderGantt(result *contract.ScheduleResult) string {
	if len(result.Tasks) == 0 {
		return Dim("no tasks scheduled")
	}

	first := result.Tasks[0].Start
	last := result.Tasks[0].End
	for _, t := range result.Tasks {
		if t.Start.Before(first) {
			first = t.Start
		}
		if t.End.After(last) {
			last = t.End
		}
	}
	days := int(last.Sub(first).Hours()/24) + 1

	labelWidth := 0
	for _, t := range result.Tasks {
		if n := len(t.WBSID) + 1 + len(t.Name); n > labelWidth {
			labelWidth = n
		}
	}
	const maxLabel = 32
	if labelWidth > maxLabel {
		labelWidth = maxLabel
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString(Dim(first.Format("Jan 02")))
	b.WriteString(strings.Repeat(" ", max(1, days-12)))
	b.WriteString(Dim(last.Format("Jan 02")))
	b.WriteString("\n")

	for _, t := range result.Tasks {
		label := t.WBSID + " " + t.Name
		if len(label) > labelWidth {
			label = label[:labelWidth-1] + "…"
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", labelWidth-lipgloss.Width(label)+2))

		offset := int(t.Start.Sub(first).Hours() / 24)
		b.WriteString(strings.Repeat(" ", offset))

		if t.Milestone {
			b.WriteString(StylePurple.Render(ganttMilestone))
		} else {
			span := int(t.End.Sub(t.Start).Hours()/24) + 1
			bar := strings.Repeat(ganttBar, span)
			if t.IsCritical {
				b.WriteString(StyleRed.Render(strings.Repeat(ganttCritical, span)))
			} else {
				b.WriteString(StyleGreen.Render(bar))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim("▓ critical   █ slack   ◆ milestone"))
	b.WriteString("\n")
	return b.String()
}

// FormatDate renders a date column value; zero dates come out as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Dim("-")
	}
	return t.Format("2006-01-02")
}
