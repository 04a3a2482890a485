package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"phspbench/internal/harness"
)

// SQLiteStore implements Store using a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) a SQLite store at path and
// applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at DATETIME NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			executable TEXT NOT NULL,
			generate_mean REAL NOT NULL,
			generate_std REAL NOT NULL,
			copy_mean REAL NOT NULL,
			copy_std REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS trials (
			batch_id INTEGER NOT NULL REFERENCES batches(id),
			seq INTEGER NOT NULL,
			generate_ms REAL NOT NULL,
			copy_ms REAL NOT NULL,
			PRIMARY KEY (batch_id, seq)
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save persists a batch and its trials, returning the new batch id.
func (s *SQLiteStore) Save(batch Batch) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	ts := batch.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	res, err := tx.Exec(
		`INSERT INTO batches (created_at, label, executable, generate_mean, generate_std, copy_mean, copy_std)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts, batch.Label, batch.Executable,
		batch.Generate.Mean, batch.Generate.Std,
		batch.Copy.Mean, batch.Copy.Std,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert batch: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, p := range batch.Trials {
		if _, err := tx.Exec(
			`INSERT INTO trials (batch_id, seq, generate_ms, copy_ms) VALUES (?, ?, ?, ?)`,
			id, i, p.Generate, p.Copy,
		); err != nil {
			return 0, fmt.Errorf("failed to insert trial %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Get loads one batch by id, or nil if it does not exist.
func (s *SQLiteStore) Get(id int64) (*Batch, error) {
	row := s.db.QueryRow(
		`SELECT id, created_at, label, executable, generate_mean, generate_std, copy_mean, copy_std
		 FROM batches WHERE id = ?`, id)

	b, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadTrials(b); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadAll returns all batches in chronological order.
func (s *SQLiteStore) LoadAll() ([]Batch, error) {
	return s.load(`SELECT id, created_at, label, executable, generate_mean, generate_std, copy_mean, copy_std
		 FROM batches ORDER BY created_at ASC, id ASC`)
}

// LoadLatest returns the n most recent batches in chronological order.
func (s *SQLiteStore) LoadLatest(n int) ([]Batch, error) {
	batches, err := s.load(`SELECT id, created_at, label, executable, generate_mean, generate_std, copy_mean, copy_std
		 FROM batches ORDER BY created_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	// Reverse into chronological order.
	for i, j := 0, len(batches)-1; i < j; i, j = i+1, j-1 {
		batches[i], batches[j] = batches[j], batches[i]
	}
	return batches, nil
}

func (s *SQLiteStore) load(query string, args ...any) ([]Batch, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range batches {
		if err := s.loadTrials(&batches[i]); err != nil {
			return nil, err
		}
	}
	return batches, nil
}

func (s *SQLiteStore) loadTrials(b *Batch) error {
	rows, err := s.db.Query(
		`SELECT generate_ms, copy_ms FROM trials WHERE batch_id = ? ORDER BY seq ASC`, b.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p harness.Pair
		if err := rows.Scan(&p.Generate, &p.Copy); err != nil {
			return err
		}
		b.Trials = append(b.Trials, p)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (*Batch, error) {
	var b Batch
	if err := row.Scan(&b.ID, &b.Timestamp, &b.Label, &b.Executable,
		&b.Generate.Mean, &b.Generate.Std, &b.Copy.Mean, &b.Copy.Std); err != nil {
		return nil, err
	}
	return &b, nil
}
