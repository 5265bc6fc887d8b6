package tracking

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Tracker manages snapshot history in SQLite.
type Tracker struct {
	db *sql.DB
}

// NewTracker opens or creates a SQLite database for snapshot history.
func NewTracker(dbPath string) (*Tracker, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &Tracker{db: db}, nil
}

// Record stores one snapshot run.
func (t *Tracker) Record(s Snapshot) error {
	if _, err := t.db.Exec(insertSQL,
		s.Source, s.Language, s.Style, s.Lines, s.Images, s.Bytes, s.Destination, s.DurationMs); err != nil {
		return fmt.Errorf("record: %w", err)
	}

	// Cleanup old records
	t.db.Exec(cleanupSQL)

	return nil
}

// GetSummary returns aggregate history stats.
func (t *Tracker) GetSummary() (*Summary, error) {
	var s Summary
	err := t.db.QueryRow(summarySQL).Scan(&s.TotalSnapshots, &s.TotalImages, &s.TotalBytes, &s.TotalTimeMs)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return &s, nil
}

// GetRecent returns the last N snapshots.
func (t *Tracker) GetRecent(n int) ([]Record, error) {
	rows, err := t.db.Query(recentSQL, n)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Source, &r.Language, &r.Style, &r.Lines, &r.Images, &r.Bytes, &r.Destination, &r.DurationMs, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("recent scan: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetByLanguage returns per-language aggregates, busiest first.
func (t *Tracker) GetByLanguage(n int) ([]LanguageStats, error) {
	rows, err := t.db.Query(byLanguageSQL, n)
	if err != nil {
		return nil, fmt.Errorf("by language: %w", err)
	}
	defer rows.Close()

	var stats []LanguageStats
	for rows.Next() {
		var s LanguageStats
		if err := rows.Scan(&s.Language, &s.Snapshots, &s.Images, &s.Bytes); err != nil {
			return nil, fmt.Errorf("by language scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Close closes the database connection.
func (t *Tracker) Close() error {
	return t.db.Close()
}

// DBPath resolves the history database path.
func DBPath(configPath string) string {
	if p := os.Getenv("CSNAP_DB_PATH"); p != "" {
		return p
	}
	if configPath != "" {
		return configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "csnap", "history.db")
}
