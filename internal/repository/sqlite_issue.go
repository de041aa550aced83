package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/domain"
)

// SQLiteIssueRepo implements IssueRepo using a SQLite database.
type SQLiteIssueRepo struct {
	db db.DBTX
}

// NewSQLiteIssueRepo creates a new SQLiteIssueRepo.
func NewSQLiteIssueRepo(db db.DBTX) *SQLiteIssueRepo {
	return &SQLiteIssueRepo{db: db}
}

const issueColumns = `id, project_id, linked_task_id, title, status, escalation_level, resolution_note, created_at, updated_at`

func (r *SQLiteIssueRepo) Create(ctx context.Context, i *domain.Issue) error {
	query := `INSERT INTO issues (` + issueColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.ProjectID,
		nullableString(i.LinkedTaskID),
		i.Title,
		string(i.Status),
		i.EscalationLevel,
		i.ResolutionNote,
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting issue: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	i, err := scanIssueFields(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFound("issue", id)
		}
		return nil, err
	}
	return i, nil
}

func (r *SQLiteIssueRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		i, err := scanIssueFields(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning issue row: %w", err)
		}
		issues = append(issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return issues, nil
}

func (r *SQLiteIssueRepo) Update(ctx context.Context, i *domain.Issue) error {
	query := `UPDATE issues SET linked_task_id = ?, title = ?, status = ?, escalation_level = ?, resolution_note = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(i.LinkedTaskID),
		i.Title,
		string(i.Status),
		i.EscalationLevel,
		i.ResolutionNote,
		i.UpdatedAt.Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM issues WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}
	return nil
}

func scanIssueFields(s rowScanner) (*domain.Issue, error) {
	var i domain.Issue
	var statusStr, createdAtStr, updatedAtStr string
	var linkedTaskID sql.NullString

	err := s.Scan(
		&i.ID, &i.ProjectID, &linkedTaskID, &i.Title, &statusStr,
		&i.EscalationLevel, &i.ResolutionNote, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	i.Status = domain.IssueStatus(statusStr)
	if linkedTaskID.Valid && linkedTaskID.String != "" {
		v := linkedTaskID.String
		i.LinkedTaskID = &v
	}

	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &i, nil
}
