package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id        TEXT PRIMARY KEY,
			candidate_name    TEXT NOT NULL,
			interviewer_name  TEXT,
			problem_id        TEXT,
			problem_statement TEXT,
			start_time        TEXT NOT NULL,
			end_time          TEXT,
			status            TEXT NOT NULL DEFAULT 'active'
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id   TEXT NOT NULL,
			session_id TEXT NOT NULL REFERENCES sessions(session_id),
			type       TEXT NOT NULL,
			timestamp  TEXT,
			sequence   INTEGER NOT NULL,
			metadata   TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS ai_interactions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			interaction_id TEXT NOT NULL,
			session_id     TEXT NOT NULL REFERENCES sessions(session_id),
			timestamp      TEXT,
			user_prompt    TEXT NOT NULL,
			ai_response    TEXT NOT NULL,
			intent_label   TEXT,
			response_used  BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE TABLE IF NOT EXISTS reports (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id   TEXT NOT NULL REFERENCES sessions(session_id),
			generated_at TEXT NOT NULL,
			report       TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_type ON events(type)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_session ON ai_interactions(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_session ON reports(session_id)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
