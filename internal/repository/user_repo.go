package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"personal_profile/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`

	selectUserByIdentifierSQL = `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ? OR email = ?`

	selectUserByIDSQL = `SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`

	countUserConflictsSQL = `SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`
)

// Create inserts a new user. A duplicate username or email yields
// models.ErrConflict.
func (r *UserSQLite) Create(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	var taken int
	if err := r.db.QueryRowContext(ctx, countUserConflictsSQL, username, email).Scan(&taken); err != nil {
		return models.User{}, fmt.Errorf("check user %q: %w", username, err)
	}
	if taken > 0 {
		return models.User{}, models.ErrConflict
	}

	createdAt := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash, formatTimestamp(createdAt))
	if err != nil {
		// the UNIQUE constraints are the authority under concurrent signups
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, models.ErrConflict
		}
		return models.User{}, fmt.Errorf("insert user %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}

	return models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

// GetByIdentifier fetches a user by username or email. Returns (nil, nil)
// if no user matches.
func (r *UserSQLite) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIdentifierSQL, identifier, strings.ToLower(identifier))
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

func (r *UserSQLite) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var (
		u         models.User
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	if u.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parse user created_at: %w", err)
	}
	return &u, nil
}
