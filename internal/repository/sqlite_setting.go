package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/domain"
)

// SQLiteSettingRepo implements SettingRepo using a SQLite database.
type SQLiteSettingRepo struct {
	db db.DBTX
}

// NewSQLiteSettingRepo creates a new SQLiteSettingRepo.
func NewSQLiteSettingRepo(db db.DBTX) *SQLiteSettingRepo {
	return &SQLiteSettingRepo{db: db}
}

func (r *SQLiteSettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT setting_key, setting_value, setting_type, description, updated_at
		FROM system_settings WHERE setting_key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	s, err := scanSetting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("setting", key)
		}
		return nil, fmt.Errorf("getting setting %s: %w", key, err)
	}
	return s, nil
}

func (r *SQLiteSettingRepo) List(ctx context.Context) ([]*domain.Setting, error) {
	query := `SELECT setting_key, setting_value, setting_type, description, updated_at
		FROM system_settings ORDER BY setting_key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	var settings []*domain.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settings: %w", err)
	}
	return settings, nil
}

func (r *SQLiteSettingRepo) Upsert(ctx context.Context, s *domain.Setting) error {
	query := `INSERT INTO system_settings (setting_key, setting_value, setting_type, description, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			setting_type = excluded.setting_type,
			description = excluded.description,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.Key,
		s.RawValue,
		string(s.Type),
		s.Description,
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting setting %s: %w", s.Key, err)
	}
	return nil
}

func scanSetting(row rowScanner) (*domain.Setting, error) {
	var s domain.Setting
	var typeStr, updatedAtStr string
	var description sql.NullString

	if err := row.Scan(&s.Key, &s.RawValue, &typeStr, &description, &updatedAtStr); err != nil {
		return nil, err
	}
	s.Type = domain.SettingType(typeStr)
	s.Description = description.String

	var err error
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
