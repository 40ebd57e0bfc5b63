// Package sqlite keeps reminder marks in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS notification_marks (
	mark_key TEXT PRIMARY KEY,
	fired_at INTEGER NOT NULL
)`

type Storage struct {
	DB *sql.DB
}

func InitDB(dataSourceName string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) LoadMarks(ctx context.Context) (map[string]int64, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT mark_key, fired_at FROM notification_marks`)
	if err != nil {
		return nil, fmt.Errorf("failed to load marks: %w", err)
	}
	defer rows.Close()

	marks := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			at  int64
		)
		if err := rows.Scan(&key, &at); err != nil {
			return nil, fmt.Errorf("failed to scan mark: %w", err)
		}
		marks[key] = at
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating marks: %w", err)
	}

	return marks, nil
}

func (s *Storage) SaveMark(ctx context.Context, key string, firedAtMs int64) error {
	query := `
		INSERT INTO notification_marks (mark_key, fired_at)
		VALUES (?, ?)
		ON CONFLICT(mark_key) DO UPDATE SET fired_at = excluded.fired_at`

	if _, err := s.DB.ExecContext(ctx, query, key, firedAtMs); err != nil {
		return fmt.Errorf("failed to save mark: %w", err)
	}

	return nil
}
