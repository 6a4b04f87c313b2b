// Package history records sync runs in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/inabooth/inabooth-app-sheets/menu"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    spreadsheet TEXT    NOT NULL,
    sheet       TEXT    NOT NULL,
    shape       TEXT    NOT NULL,
    pages       INTEGER NOT NULL,
    failed      INTEGER NOT NULL,
    written     INTEGER NOT NULL,
    error       TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS pages (
    run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    file     TEXT    NOT NULL,
    id       TEXT    NOT NULL,
    title    TEXT    NOT NULL,
    error    TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_pages_run ON pages(run_id);
`

type DB struct {
	*sql.DB
	path string
}

// Run is the summary of a single recorded sync run.
type Run struct {
	ID          int64
	Timestamp   time.Time
	Spreadsheet string
	Sheet       string
	Shape       string
	Pages       int
	Failed      int
	Written     bool
	Error       string
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Open opens (or creates) the history database at path.
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
			return nil, err
		}
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	// a single connection so that an in-memory database is shared by all queries
	sqlDB.SetMaxOpenConns(1)

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Path() string {
	return db.path
}

// Record stores the outcome of a sync run along with the per-page results. 'failure' is the
// error (if any) that aborted the run.
func (db *DB) Record(ctx context.Context, report *menu.Report, failure error) (int64, error) {
	if report == nil {
		return 0, errors.New("missing sync report")
	}

	msg := ""
	if failure != nil {
		msg = failure.Error()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (timestamp, spreadsheet, sheet, shape, pages, failed, written, error) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		report.Spreadsheet,
		report.Sheet,
		report.Shape.String(),
		len(report.Results),
		len(report.Failed()),
		report.Written,
		msg)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range report.Results {
		e := ""
		if r.Err != nil {
			e = r.Err.Error()
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pages (run_id, file, id, title, error) VALUES (?, ?, ?, ?, ?)`,
			id, r.File, r.ID, r.Title, e); err != nil {
			return 0, fmt.Errorf("failed to record page %v: %w", r.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

// Runs returns the most recent runs, newest first.
func (db *DB) Runs(ctx context.Context, limit int) ([]Run, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, timestamp, spreadsheet, sheet, shape, pages, failed, written, error FROM runs ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var timestamp string

		if err := rows.Scan(&run.ID, &timestamp, &run.Spreadsheet, &run.Sheet, &run.Shape, &run.Pages, &run.Failed, &run.Written, &run.Error); err != nil {
			return nil, err
		}

		if run.Timestamp, err = time.Parse(time.RFC3339, timestamp); err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Pages returns the per-page results recorded for a run, in file order.
func (db *DB) Pages(ctx context.Context, run int64) ([]menu.Result, error) {
	rows, err := db.QueryContext(ctx, `SELECT file, id, title, error FROM pages WHERE run_id = ? ORDER BY rowid`, run)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	results := []menu.Result{}
	for rows.Next() {
		var r menu.Result
		var e string

		if err := rows.Scan(&r.File, &r.ID, &r.Title, &e); err != nil {
			return nil, err
		}

		if e != "" {
			r.Err = errors.New(e)
		}

		results = append(results, r)
	}

	return results, rows.Err()
}
