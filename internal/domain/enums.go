package domain

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "completed": true, "cancelled": true,
}

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueEscalated  IssueStatus = "escalated"
	IssueResolved   IssueStatus = "resolved"
	IssueClosed     IssueStatus = "closed"
	IssueReopened   IssueStatus = "reopened"
)

// ValidIssueStatuses is the canonical set of accepted issue status strings.
var ValidIssueStatuses = map[string]bool{
	"open": true, "in_progress": true, "escalated": true,
	"resolved": true, "closed": true, "reopened": true,
}

type SettingType string

const (
	SettingNumber  SettingType = "number"
	SettingBoolean SettingType = "boolean"
	SettingText    SettingType = "string"
)
