package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(db db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: db}
}

func (r *SQLiteHolidayRepo) Create(ctx context.Context, h *domain.Holiday) error {
	query := `INSERT INTO holidays (id, project_id, date, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		nullableString(h.ProjectID),
		h.Date.Format(dateLayout),
		h.Name,
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) ListForProject(ctx context.Context, projectID string) ([]domain.Holiday, error) {
	query := `SELECT id, project_id, date, name, created_at, updated_at
		FROM holidays WHERE project_id IS NULL OR project_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()
	return r.scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) ListGlobal(ctx context.Context) ([]domain.Holiday, error) {
	query := `SELECT id, project_id, date, name, created_at, updated_at
		FROM holidays WHERE project_id IS NULL ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing global holidays: %w", err)
	}
	defer rows.Close()
	return r.scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM holidays WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) scanHolidays(rows *sql.Rows) ([]domain.Holiday, error) {
	var holidays []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		var projectID sql.NullString
		var dateStr, createdAtStr, updatedAtStr string

		if err := rows.Scan(&h.ID, &projectID, &dateStr, &h.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		if projectID.Valid && projectID.String != "" {
			v := projectID.String
			h.ProjectID = &v
		}

		var parseErr error
		h.Date, parseErr = time.Parse(dateLayout, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing holiday date: %w", parseErr)
		}
		h.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		h.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}
