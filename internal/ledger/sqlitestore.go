package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/convertify/iconkit/internal/paths"

	_ "modernc.org/sqlite"
)

// tsLayout is fixed-width and always written in UTC so timestamps
// compare correctly as text.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the ledger location inside the data directory.
func DefaultPath() string {
	return filepath.Join(paths.DataDir(), paths.LedgerFileName)
}

// NewSQLiteStore opens (or creates) a SQLite database at path and
// creates tables and indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps the per-connection PRAGMAs in effect.
	db.SetMaxOpenConns(1)

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    pipeline    TEXT    NOT NULL,
    output_dir  TEXT    NOT NULL,
    icns        TEXT    NOT NULL DEFAULT '',
    icns_error  TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS renditions (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id    INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    filename  TEXT    NOT NULL,
    pixels    INTEGER NOT NULL,
    digest    TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_runs_target    ON runs(pipeline, output_dir);
CREATE INDEX IF NOT EXISTS idx_renditions_run ON renditions(run_id);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Record(run Run) (int64, error) {
	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, pipeline, output_dir, icns, icns_error) VALUES (?, ?, ?, ?, ?)`,
		ts.UTC().Format(tsLayout), run.Pipeline, run.OutputDir, run.Icns, run.IcnsError,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO renditions (run_id, filename, pixels, digest) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for _, f := range run.Files {
		if _, err := stmt.Exec(id, f.Filename, f.Pixels, f.Digest); err != nil {
			return 0, err
		}
	}
	return id, tx.Commit()
}

func (s *SQLiteStore) Previous(pipeline, outputDir string) (map[string]string, error) {
	out := make(map[string]string)
	var id int64
	err := s.db.QueryRow(
		`SELECT id FROM runs WHERE pipeline = ? AND output_dir = ? ORDER BY id DESC LIMIT 1`,
		pipeline, outputDir,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT filename, digest FROM renditions WHERE run_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name, digest string
		if err := rows.Scan(&name, &digest); err != nil {
			return nil, err
		}
		out[name] = digest
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	q := `SELECT id, timestamp, pipeline, output_dir, icns, icns_error FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.Pipeline, &r.OutputDir, &r.Icns, &r.IcnsError); err != nil {
			rows.Close()
			return nil, err
		}
		r.Timestamp, _ = time.Parse(tsLayout, ts)
		runs = append(runs, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		files, err := s.files(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Files = files
	}
	return runs, nil
}

func (s *SQLiteStore) files(runID int64) ([]File, error) {
	rows, err := s.db.Query(`SELECT filename, pixels, digest FROM renditions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var files []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.Filename, &f.Pixels, &f.Digest); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(tsLayout)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if _, err := s.db.Exec(`DELETE FROM renditions WHERE run_id NOT IN (SELECT id FROM runs)`); err != nil {
		return 0, err
	}
	return int(n), nil
}
