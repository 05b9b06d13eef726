package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"personal_profile/internal/models"
)

type SessionSQLite struct {
	db *sql.DB
}

func NewSessionSQLite(db *sql.DB) *SessionSQLite {
	return &SessionSQLite{db: db}
}

var _ Sessions = (*SessionSQLite)(nil)

const (
	insertSessionSQL = `INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`
	selectSessionSQL = `SELECT id, user_id, expires_at FROM sessions WHERE id = ?`
	deleteSessionSQL = `DELETE FROM sessions WHERE id = ?`
)

func (r *SessionSQLite) Create(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL, s.ID, s.UserID, formatTimestamp(s.ExpiresAt))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get fetches a session by id. Returns (nil, nil) if no such session is
// live server-side.
func (r *SessionSQLite) Get(ctx context.Context, id string) (*models.Session, error) {
	var (
		s         models.Session
		expiresAt string
	)
	err := r.db.QueryRowContext(ctx, selectSessionSQL, id).Scan(&s.ID, &s.UserID, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	if s.ExpiresAt, err = parseTimestamp(expiresAt); err != nil {
		return nil, fmt.Errorf("parse session expires_at: %w", err)
	}
	return &s, nil
}

// Delete removes a session. Deleting an unknown id is not an error; the
// caller is already logged out.
func (r *SessionSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
