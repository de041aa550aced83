package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/scheduler"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, project_id, wbs_id, name, status, duration_days,
	planned_start, planned_end, actual_progress,
	computed_start, computed_end, total_float, is_critical,
	notes, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.WBSID,
		t.Name,
		string(t.Status),
		t.DurationDays,
		nullableTimeToString(t.PlannedStart, dateLayout),
		nullableTimeToString(t.PlannedEnd, dateLayout),
		t.ActualProgress,
		nullableTimeToString(t.ComputedStart, dateLayout),
		nullableTimeToString(t.ComputedEnd, dateLayout),
		t.TotalFloat,
		boolToInt(t.IsCritical),
		t.Notes,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := r.scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("task", id)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) GetByWBSID(ctx context.Context, projectID, wbsID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND wbs_id = ?`
	row := r.db.QueryRowContext(ctx, query, projectID, wbsID)
	t, err := r.scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("task", wbsID)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTaskFromRows(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	sortTasksNatural(tasks)
	return tasks, nil
}

// CountChildren counts tasks whose wbs_id sits strictly below the given one.
func (r *SQLiteTaskRepo) CountChildren(ctx context.Context, projectID, wbsID string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE project_id = ? AND wbs_id LIKE ? ESCAPE '\'`
	var count int
	err := r.db.QueryRowContext(ctx, query, projectID, likePrefix(wbsID)+".%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting children: %w", err)
	}
	return count, nil
}

// CountDependents counts edges in which the task participates.
func (r *SQLiteTaskRepo) CountDependents(ctx context.Context, taskID string) (int, error) {
	query := `SELECT COUNT(*) FROM dependencies WHERE predecessor_id = ? OR successor_id = ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, taskID, taskID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting dependents: %w", err)
	}
	return count, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET wbs_id = ?, name = ?, status = ?, duration_days = ?,
		planned_start = ?, planned_end = ?, actual_progress = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.WBSID,
		t.Name,
		string(t.Status),
		t.DurationDays,
		nullableTimeToString(t.PlannedStart, dateLayout),
		nullableTimeToString(t.PlannedEnd, dateLayout),
		t.ActualProgress,
		t.Notes,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateComputed(ctx context.Context, taskID string, s scheduler.TaskSchedule) error {
	query := `UPDATE tasks SET computed_start = ?, computed_end = ?, total_float = ?, is_critical = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.ComputedStart.Format(dateLayout),
		s.ComputedEnd.Format(dateLayout),
		s.TotalFloat,
		boolToInt(s.IsCritical),
		taskID,
	)
	if err != nil {
		return fmt.Errorf("updating computed fields: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	return scanTaskFields(row)
}

func (r *SQLiteTaskRepo) scanTaskFromRows(rows *sql.Rows) (*domain.Task, error) {
	t, err := scanTaskFields(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning task row: %w", err)
	}
	return t, nil
}

func scanTaskFields(s rowScanner) (*domain.Task, error) {
	var t domain.Task
	var statusStr, createdAtStr, updatedAtStr string
	var plannedStartStr, plannedEndStr, computedStartStr, computedEndStr sql.NullString
	var isCritical int

	err := s.Scan(
		&t.ID, &t.ProjectID, &t.WBSID, &t.Name, &statusStr, &t.DurationDays,
		&plannedStartStr, &plannedEndStr, &t.ActualProgress,
		&computedStartStr, &computedEndStr, &t.TotalFloat, &isCritical,
		&t.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TaskStatus(statusStr)
	t.IsCritical = intToBool(isCritical)
	t.PlannedStart = parseNullableTime(plannedStartStr, dateLayout)
	t.PlannedEnd = parseNullableTime(plannedEndStr, dateLayout)
	t.ComputedStart = parseNullableTime(computedStartStr, dateLayout)
	t.ComputedEnd = parseNullableTime(computedEndStr, dateLayout)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
