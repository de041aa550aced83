package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		start_date     TEXT NOT NULL,
		required_end   TEXT,
		skip_weekends  INTEGER NOT NULL DEFAULT 1,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		wbs_id          TEXT NOT NULL,
		name            TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'not_started'
		                CHECK(status IN ('not_started','in_progress','completed','cancelled')),
		duration_days   INTEGER NOT NULL DEFAULT 0 CHECK(duration_days >= 0),
		planned_start   TEXT,
		planned_end     TEXT,
		actual_progress INTEGER NOT NULL DEFAULT 0,
		computed_start  TEXT,
		computed_end    TEXT,
		total_float     INTEGER NOT NULL DEFAULT 0,
		is_critical     INTEGER NOT NULL DEFAULT 0,
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		UNIQUE(project_id, wbs_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		predecessor_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		successor_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (predecessor_id, successor_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_project ON dependencies(project_id)`,

	`CREATE TABLE IF NOT EXISTS issues (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		linked_task_id   TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		title            TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'open'
		                 CHECK(status IN ('open','in_progress','escalated','resolved','closed','reopened')),
		escalation_level INTEGER NOT NULL DEFAULT 0 CHECK(escalation_level >= 0),
		resolution_note  TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_issues_project ON issues(project_id)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		id          TEXT PRIMARY KEY,
		project_id  TEXT REFERENCES projects(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		name        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		UNIQUE(project_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS system_settings (
		setting_key   TEXT PRIMARY KEY,
		setting_value TEXT NOT NULL,
		setting_type  TEXT NOT NULL DEFAULT 'string'
		              CHECK(setting_type IN ('string','number','boolean')),
		description   TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL
	)`,
}
