// Package store provides SQLite persistence for recorded scan runs.
package store

import "time"

// ScanRun is one recorded execution of the scan command.
type ScanRun struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	TakenAt   time.Time `json:"taken_at"`
	Root      string    `json:"root"`
	Version   string    `json:"version"`
	FileCount int       `json:"file_count"`
	Failed    int       `json:"failed"`
	Low       int       `json:"low"`
	Medium    int       `json:"medium"`
	High      int       `json:"high"`
}

// FileResult is the per-file row stored for a scan run.
type FileResult struct {
	ScanID         int64  `json:"scan_id"`
	Path           string `json:"path"`
	Language       string `json:"language"`
	Risk           string `json:"risk"`
	AttentionCount int    `json:"attention_count"`
}
