package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProjectSchema is the top-level JSON structure for project import. Tasks
// reference each other by WBS id, not by database id.
type ProjectSchema struct {
	Project      ProjectImport      `json:"project"`
	Tasks        []TaskImport       `json:"tasks"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
	Holidays     []HolidayImport    `json:"holidays,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Name         string  `json:"name"`
	StartDate    string  `json:"start_date"`
	RequiredEnd  *string `json:"required_end,omitempty"`
	SkipWeekends *bool   `json:"skip_weekends,omitempty"`
}

// TaskImport defines a WBS task in the import file.
type TaskImport struct {
	WBSID        string  `json:"wbs_id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"duration_days"`
	Status       string  `json:"status,omitempty"`
	PlannedStart *string `json:"planned_start,omitempty"`
	PlannedEnd   *string `json:"planned_end,omitempty"`
	Progress     int     `json:"progress,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// DependencyImport defines a finish-to-start edge between two tasks.
type DependencyImport struct {
	PredecessorWBS string `json:"predecessor_wbs"`
	SuccessorWBS   string `json:"successor_wbs"`
}

// HolidayImport defines a project-scoped non-working day.
type HolidayImport struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// LoadProjectSchema reads and parses a project import JSON file.
func LoadProjectSchema(path string) (*ProjectSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ProjectSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
