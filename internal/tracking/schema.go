package tracking

const createTableSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT (datetime('now')),
	source TEXT NOT NULL,
	language TEXT NOT NULL,
	style TEXT NOT NULL,
	lines INTEGER NOT NULL,
	images INTEGER NOT NULL,
	bytes INTEGER NOT NULL,
	destination TEXT NOT NULL,
	duration_ms INTEGER NOT NULL
);
`

const cleanupSQL = `DELETE FROM snapshots WHERE timestamp < datetime('now', '-90 days');`

const insertSQL = `
INSERT INTO snapshots (source, language, style, lines, images, bytes, destination, duration_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const summarySQL = `
SELECT
	COUNT(*) as total_snapshots,
	COALESCE(SUM(images), 0) as total_images,
	COALESCE(SUM(bytes), 0) as total_bytes,
	COALESCE(SUM(duration_ms), 0) as total_time_ms
FROM snapshots;
`

const recentSQL = `
SELECT source, language, style, lines, images, bytes, destination, duration_ms, timestamp
FROM snapshots
ORDER BY id DESC
LIMIT ?;
`

const byLanguageSQL = `
SELECT
	language,
	COUNT(*) as snapshots,
	SUM(images) as images,
	SUM(bytes) as bytes
FROM snapshots
GROUP BY language
ORDER BY snapshots DESC
LIMIT ?;
`

// Snapshot holds one snapshot run to record.
type Snapshot struct {
	Source      string
	Language    string
	Style       string
	Lines       int
	Images      int
	Bytes       int64
	Destination string
	DurationMs  int64
}

// Record is a stored snapshot with its timestamp.
type Record struct {
	Snapshot
	Timestamp string
}

// Summary holds aggregate history stats.
type Summary struct {
	TotalSnapshots int
	TotalImages    int
	TotalBytes     int64
	TotalTimeMs    int64
}

// LanguageStats holds aggregate stats per language.
type LanguageStats struct {
	Language  string
	Snapshots int
	Images    int
	Bytes     int64
}
