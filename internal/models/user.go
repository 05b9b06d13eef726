package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the server-side record behind an issued login token.
// Logout deletes the row, so a replayed cookie fails validation even
// before the token itself expires.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}
