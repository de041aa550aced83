package domain

import (
	"fmt"
	"time"
)

// Issue tracks a problem raised against a project, optionally linked to a
// WBS task. The link is weak: deleting the task clears LinkedTaskID but
// leaves the issue in place.
type Issue struct {
	ID              string
	ProjectID       string
	LinkedTaskID    *string
	Title           string
	Status          IssueStatus
	EscalationLevel int
	ResolutionNote  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Transition applies a status change with the escalation state machine's
// guards. The note argument is the escalation justification for transitions
// to Escalated and the resolution note for transitions to Resolved; it is
// ignored otherwise.
//
// Allowed transitions:
//
//	open        -> in_progress
//	in_progress -> escalated   (note required, level+1)
//	escalated   -> escalated   (note required, level+1 again)
//	any but closed -> resolved (note required, stored)
//	resolved    -> closed
//	resolved    -> reopened    (note cleared, level preserved)
//	closed      -> reopened    (note cleared, level preserved)
//
// Anything else fails with InvalidTransition. The state machine never touches
// linked tasks or computed schedule fields.
func (i *Issue) Transition(to IssueStatus, note string) error {
	from := i.Status

	switch {
	case from == IssueOpen && to == IssueInProgress:
		i.Status = IssueInProgress

	case (from == IssueInProgress || from == IssueEscalated) && to == IssueEscalated:
		if note == "" {
			return NewError(KindInvalidTransition, "issue", i.ID,
				"escalation requires a justification note")
		}
		i.EscalationLevel++
		i.Status = IssueEscalated

	case from != IssueClosed && to == IssueResolved:
		if note == "" {
			return NewError(KindInvalidTransition, "issue", i.ID,
				"resolving requires a resolution note")
		}
		i.Status = IssueResolved
		i.ResolutionNote = note

	case from == IssueResolved && to == IssueClosed:
		i.Status = IssueClosed

	case (from == IssueResolved || from == IssueClosed) && to == IssueReopened:
		i.Status = IssueReopened
		i.ResolutionNote = ""
		// EscalationLevel intentionally preserved.

	default:
		return NewError(KindInvalidTransition, "issue", i.ID,
			fmt.Sprintf("cannot transition from %s to %s", from, to))
	}

	return nil
}
