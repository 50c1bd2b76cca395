package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

// RecordScan stores a scan run and one row per result in a single
// transaction. It returns the stored run.
func (db *DB) RecordScan(root, version string, results []analyzer.Result, failed int) (*ScanRun, error) {
	run := &ScanRun{
		RunID:     uuid.NewString(),
		TakenAt:   time.Now().UTC().Truncate(time.Second),
		Root:      root,
		Version:   version,
		FileCount: len(results),
		Failed:    failed,
	}
	for _, r := range results {
		switch r.Risk {
		case analyzer.RiskHigh:
			run.High++
		case analyzer.RiskMedium:
			run.Medium++
		default:
			run.Low++
		}
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO scan_runs
		(run_id, taken_at, root, version, file_count, failed, low, medium, high)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.TakenAt.Format(time.RFC3339), run.Root, run.Version,
		run.FileCount, run.Failed, run.Low, run.Medium, run.High,
	)
	if err != nil {
		return nil, err
	}
	if run.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if _, err := tx.Exec(
			`INSERT INTO file_results (scan_id, path, language, risk, attention_count)
			VALUES (?, ?, ?, ?, ?)`,
			run.ID, r.Path, r.Language, string(r.Risk), len(r.AttentionPoints),
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

// ListScans returns up to limit runs, most recent first. A limit <= 0
// returns every run.
func (db *DB) ListScans(limit int) ([]ScanRun, error) {
	query := `SELECT id, run_id, taken_at, root, version, file_count, failed, low, medium, high
		FROM scan_runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []ScanRun
	for rows.Next() {
		var r ScanRun
		var takenAt string
		if err := rows.Scan(&r.ID, &r.RunID, &takenAt, &r.Root, &r.Version,
			&r.FileCount, &r.Failed, &r.Low, &r.Medium, &r.High); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339, takenAt)
		if err != nil {
			return nil, fmt.Errorf("parsing taken_at of scan %d: %w", r.ID, err)
		}
		r.TakenAt = parsed
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// FileResults returns the stored per-file rows of a scan, in scan order.
func (db *DB) FileResults(scanID int64) ([]FileResult, error) {
	rows, err := db.conn.Query(
		`SELECT scan_id, path, language, risk, attention_count
		FROM file_results WHERE scan_id = ? ORDER BY id`,
		scanID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []FileResult
	for rows.Next() {
		var fr FileResult
		if err := rows.Scan(&fr.ScanID, &fr.Path, &fr.Language, &fr.Risk, &fr.AttentionCount); err != nil {
			return nil, err
		}
		out = append(out, fr)
	}
	return out, rows.Err()
}
