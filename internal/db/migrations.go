package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedules (
			id           TEXT PRIMARY KEY,
			subject      TEXT NOT NULL DEFAULT '',
			days_of_week INTEGER NOT NULL DEFAULT 0 CHECK(days_of_week BETWEEN 0 AND 127),
			start_time   TIME,
			end_time     TIME,
			created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_schedules_subject ON schedules(subject);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schedules table: %w", err)
	}

	return nil
}
