package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
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
		// No rows means a fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the scan run tables.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL UNIQUE,
			taken_at    TEXT NOT NULL,
			root        TEXT NOT NULL,
			version     TEXT NOT NULL,
			file_count  INTEGER NOT NULL,
			failed      INTEGER NOT NULL,
			low         INTEGER NOT NULL,
			medium      INTEGER NOT NULL,
			high        INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS file_results (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id          INTEGER NOT NULL REFERENCES scan_runs(id),
			path             TEXT NOT NULL,
			language         TEXT NOT NULL,
			risk             TEXT NOT NULL,
			attention_count  INTEGER NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_file_results_scan ON file_results(scan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_file_results_path ON file_results(path)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
