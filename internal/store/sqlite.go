package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/personachat/personachat/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed feedback store.
func NewSQLite(dbPath string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL mode so concurrent session appends don't trip over each other.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY,
		timestamp TEXT,
		persona TEXT,
		style TEXT,
		rating TEXT,
		comment TEXT,
		user_msg TEXT,
		assistant_msg TEXT
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// AppendFeedback inserts one record and writes the generated id back into rec.
func (s *SQLiteStore) AppendFeedback(ctx context.Context, rec *domain.FeedbackRecord) error {
	query := `
	INSERT INTO feedback (timestamp, persona, style, rating, comment, user_msg, assistant_msg)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		rec.Timestamp, rec.Persona, rec.Style, rec.Rating,
		rec.Comment, rec.UserMsg, rec.AssistantMsg,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("feedback insert id: %w", err)
	}
	rec.ID = id
	return nil
}

// AllFeedback returns every feedback record in insertion order.
func (s *SQLiteStore) AllFeedback(ctx context.Context) ([]*domain.FeedbackRecord, error) {
	query := `
		SELECT id, timestamp, persona, style, rating, comment, user_msg, assistant_msg
		FROM feedback ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close feedback rows", "error", closeErr)
		}
	}()

	var records []*domain.FeedbackRecord
	for rows.Next() {
		var rec domain.FeedbackRecord
		if err := rows.Scan(
			&rec.ID, &rec.Timestamp, &rec.Persona, &rec.Style,
			&rec.Rating, &rec.Comment, &rec.UserMsg, &rec.AssistantMsg,
		); err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
