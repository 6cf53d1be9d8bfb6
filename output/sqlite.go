package output

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"SecTriage/core"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteWriter implements the Writer interface for SQLite output
type SQLiteWriter struct {
	mu     sync.Mutex
	db     *sql.DB
	tx     *sql.Tx
	txStmt *sql.Stmt
	count  int
}

// sqliteBatchSize is the number of inserts per transaction
const sqliteBatchSize = 1000

// NewSQLiteWriter creates a new SQLite writer
func NewSQLiteWriter(outputPath string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Bulk-insert settings; durability is not needed for an export file
	pragmas := []string{
		"PRAGMA synchronous = OFF",
		"PRAGMA journal_mode = MEMORY",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		event_id INTEGER NOT NULL,
		level TEXT NOT NULL,
		provider TEXT,
		machine TEXT,
		category TEXT,
		message TEXT
	);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create events table: %w", err)
	}

	w := &SQLiteWriter{db: db}
	if err := w.beginBatch(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

// beginBatch starts a new insert transaction with a prepared statement
func (w *SQLiteWriter) beginBatch() error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO events (timestamp, event_id, level, provider, machine, category, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	w.tx = tx
	w.txStmt = stmt
	return nil
}

// commitBatch commits the current transaction
func (w *SQLiteWriter) commitBatch() error {
	if w.tx == nil {
		return nil
	}
	w.txStmt.Close()
	if err := w.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	w.tx = nil
	w.txStmt = nil
	return nil
}

// Write writes the events to the SQLite database
func (w *SQLiteWriter) Write(events []*core.SecurityEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, event := range events {
		_, err := w.txStmt.Exec(
			event.Timestamp.Format(time.RFC3339),
			event.EventID,
			string(event.Level),
			event.Provider,
			event.Machine,
			event.Category,
			event.Message,
		)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWritingFailed, err)
		}

		w.count++
		if w.count%sqliteBatchSize == 0 {
			if err := w.commitBatch(); err != nil {
				return err
			}
			if err := w.beginBatch(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close commits pending inserts, creates query indexes and closes the database
func (w *SQLiteWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.commitBatch(); err != nil {
		w.db.Close()
		return err
	}

	// Index creation is deferred here for bulk insert performance
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_events_event_id ON events(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_events_category ON events(category)",
	}
	for _, index := range indexes {
		if _, err := w.db.Exec(index); err != nil {
			w.db.Close()
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return w.db.Close()
}
