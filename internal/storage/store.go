// Package storage persists the task list between sessions and keeps an
// append-only log of accepted commands.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mkwee/taskbot/internal/task"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	kind        TEXT NOT NULL,
	description TEXT NOT NULL,
	due_by      TEXT NOT NULL DEFAULT '',
	start_from  TEXT NOT NULL DEFAULT '',
	end_to      TEXT NOT NULL DEFAULT '',
	done        INTEGER NOT NULL DEFAULT 0
);`

// Store is a SQLite-backed task store. The session loads the whole list at
// startup and saves it back verbatim at shutdown.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the task database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open task db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create task schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the saved tasks in insertion order.
func (s *Store) Load(ctx context.Context) (*task.List, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, description, due_by, start_from, end_to, done FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	list := task.NewList()
	for rows.Next() {
		var t task.Task
		var kind string
		var done int
		if err := rows.Scan(&kind, &t.Description, &t.By, &t.From, &t.To, &done); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Kind = task.Kind(kind)
		t.Done = done != 0
		list.Add(t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return list, nil
}

// Save rewrites the stored list verbatim in a single transaction.
func (s *Store) Save(ctx context.Context, list *task.List) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO tasks (position, kind, description, due_by, start_from, end_to, done) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range list.Tasks() {
		done := 0
		if t.Done {
			done = 1
		}
		if _, err := stmt.ExecContext(ctx, i, string(t.Kind), t.Description, t.By, t.From, t.To, done); err != nil {
			return fmt.Errorf("insert task %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
