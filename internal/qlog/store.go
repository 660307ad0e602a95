package qlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finuxhq/docqa/internal/db"
)

// Entry is one recorded question/answer exchange.
type Entry struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Grounded  bool      `json:"grounded"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder is the sink the composer hands finished exchanges to. A failed
// Record must never prevent the answer from reaching the caller.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Store persists question/answer entries in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new entry. If entry.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Platform == "" {
		entry.Platform = "web"
	}

	grounded := 0
	if entry.Grounded {
		grounded = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO questions (id, platform, user_id, username, question, answer, grounded)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Platform,
		entry.UserID,
		entry.Username,
		entry.Question,
		entry.Answer,
		grounded,
	)
	if err != nil {
		return fmt.Errorf("inserting question entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, platform, user_id, username, question, answer, grounded, created_at
		FROM questions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var grounded int
		if err := rows.Scan(&e.ID, &e.Platform, &e.UserID, &e.Username, &e.Question, &e.Answer, &grounded, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning question entry: %w", err)
		}
		e.Grounded = grounded != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	return count, nil
}
