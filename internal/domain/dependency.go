package domain

// Dependency is a finish-to-start edge between two tasks of the same project.
type Dependency struct {
	ProjectID         string
	PredecessorTaskID string
	SuccessorTaskID   string
}
