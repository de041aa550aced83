package repository

import (
	"database/sql"
	"sort"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
)

const dateLayout = "2006-01-02"

// rowScanner is the part of *sql.Row and *sql.Rows the scan helpers need.
type rowScanner interface {
	Scan(dest ...any) error
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableString converts a *string to a value suitable for SQLite storage.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// likePrefix escapes LIKE metacharacters so a WBS id can be used as a
// literal prefix pattern.
func likePrefix(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// sortTasksNatural orders tasks by segment-wise numeric WBS comparison.
// SQLite's lexicographic ORDER BY gets "1.10" before "1.2" wrong, so ordering
// happens here after the scan.
func sortTasksNatural(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if c := domain.CompareWBSID(tasks[i].WBSID, tasks[j].WBSID); c != 0 {
			return c < 0
		}
		return tasks[i].ID < tasks[j].ID
	})
}
