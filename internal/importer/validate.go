package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
)

// ValidateProjectSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateProjectSchema(schema *ProjectSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)

	wbsSet := make(map[string]bool)
	errs = append(errs, validateTasks(schema.Tasks, wbsSet)...)
	errs = append(errs, validateDependencies(schema.Dependencies, wbsSet)...)
	errs = append(errs, validateHolidays(schema.Holidays)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("project.start_date is required"))
	} else if _, err := time.Parse("2006-01-02", p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("project.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	}
	if p.RequiredEnd != nil {
		end, err := time.Parse("2006-01-02", *p.RequiredEnd)
		if err != nil {
			errs = append(errs, fmt.Errorf("project.required_end: invalid date format %q (expected YYYY-MM-DD)", *p.RequiredEnd))
		} else if p.StartDate != "" {
			if start, startErr := time.Parse("2006-01-02", p.StartDate); startErr == nil && !end.After(start) {
				errs = append(errs, fmt.Errorf("project.required_end %q must be after start_date %q", *p.RequiredEnd, p.StartDate))
			}
		}
	}

	return errs
}

func validateTasks(tasks []TaskImport, wbsSet map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.WBSID == "" {
			errs = append(errs, fmt.Errorf("%s.wbs_id is required", prefix))
		} else if err := domain.ValidateWBSID(t.WBSID); err != nil {
			errs = append(errs, fmt.Errorf("%s.wbs_id: %w", prefix, err))
		} else if wbsSet[t.WBSID] {
			errs = append(errs, fmt.Errorf("%s.wbs_id: duplicate WBS id %q", prefix, t.WBSID))
		} else {
			wbsSet[t.WBSID] = true
		}

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.DurationDays < 0 {
			errs = append(errs, fmt.Errorf("%s.duration_days must be zero or positive", prefix))
		}
		if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.Progress < 0 || t.Progress > 100 {
			errs = append(errs, fmt.Errorf("%s.progress must be between 0 and 100", prefix))
		}

		errs = append(errs, validateOptionalDate(prefix+".planned_start", t.PlannedStart)...)
		errs = append(errs, validateOptionalDate(prefix+".planned_end", t.PlannedEnd)...)
	}

	return errs
}

func validateDependencies(deps []DependencyImport, wbsSet map[string]bool) []error {
	var errs []error

	seen := make(map[[2]string]bool)
	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)

		if d.PredecessorWBS == "" {
			errs = append(errs, fmt.Errorf("%s.predecessor_wbs is required", prefix))
		} else if !wbsSet[d.PredecessorWBS] {
			errs = append(errs, fmt.Errorf("%s.predecessor_wbs: unknown WBS id %q", prefix, d.PredecessorWBS))
		}
		if d.SuccessorWBS == "" {
			errs = append(errs, fmt.Errorf("%s.successor_wbs is required", prefix))
		} else if !wbsSet[d.SuccessorWBS] {
			errs = append(errs, fmt.Errorf("%s.successor_wbs: unknown WBS id %q", prefix, d.SuccessorWBS))
		}

		if d.PredecessorWBS != "" && d.PredecessorWBS == d.SuccessorWBS {
			errs = append(errs, fmt.Errorf("%s: task %q cannot depend on itself", prefix, d.PredecessorWBS))
		}
		key := [2]string{d.PredecessorWBS, d.SuccessorWBS}
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate edge %q -> %q", prefix, d.PredecessorWBS, d.SuccessorWBS))
		}
		seen[key] = true
	}

	if cycleErr := detectCycle(deps, wbsSet); cycleErr != nil {
		errs = append(errs, cycleErr)
	}

	return errs
}

func validateHolidays(holidays []HolidayImport) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, h := range holidays {
		prefix := fmt.Sprintf("holidays[%d]", i)

		if h.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse("2006-01-02", h.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, h.Date))
		} else if seen[h.Date] {
			errs = append(errs, fmt.Errorf("%s.date: duplicate holiday %q", prefix, h.Date))
		} else {
			seen[h.Date] = true
		}
	}

	return errs
}

func validateOptionalDate(field string, value *string) []error {
	if value == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *value); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *value)}
	}
	return nil
}

// detectCycle runs a depth-first search over the WBS-level edges. The graph
// package re-validates against database ids later; catching cycles here
// produces an error that names the refs the user actually wrote.
func detectCycle(deps []DependencyImport, wbsSet map[string]bool) error {
	succs := make(map[string][]string)
	for _, d := range deps {
		if d.PredecessorWBS == "" || d.SuccessorWBS == "" {
			continue
		}
		if !wbsSet[d.PredecessorWBS] || !wbsSet[d.SuccessorWBS] {
			continue
		}
		succs[d.PredecessorWBS] = append(succs[d.PredecessorWBS], d.SuccessorWBS)
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int)

	var visit func(id string) bool
	visit = func(id string) bool {
		state[id] = inStack
		for _, next := range succs[id] {
			switch state[next] {
			case inStack:
				return true
			case unvisited:
				if visit(next) {
					return true
				}
			}
		}
		state[id] = done
		return false
	}

	for id := range succs {
		if state[id] == unvisited && visit(id) {
			return fmt.Errorf("dependencies: cycle detected involving task %q", id)
		}
	}
	return nil
}
