package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventPlanner/internal/config"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS notification_marks (
	mark_key TEXT PRIMARY KEY,
	fired_at BIGINT NOT NULL
)`

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", ConnString(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func ConnString(dbCfg *config.Database) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) LoadMarks(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT mark_key, fired_at
		FROM notification_marks`

	rows, err := s.DB.QueryContext(ctx, query)
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
		VALUES ($1, $2)
		ON CONFLICT (mark_key) DO UPDATE SET fired_at = EXCLUDED.fired_at`

	if _, err := s.DB.ExecContext(ctx, query, key, firedAtMs); err != nil {
		return fmt.Errorf("failed to save mark: %w", err)
	}

	return nil
}
