package models

import "time"

// Goal status values accepted by create/update and the status filter.
const (
	GoalStatusPlanned    = "planned"
	GoalStatusInProgress = "in_progress"
	GoalStatusComplete   = "complete"
)

// Dates are carried as YYYY-MM-DD strings end to end: they marshal directly
// to the wire format and compare correctly as text in SQL range filters.

type Achievement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AchievedOn  string    `json:"achieved_on,omitempty"`
	UserID      int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

type Goal struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	TargetDate  string    `json:"target_date,omitempty"`
	UserID      int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

type Expense struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes,omitempty"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfidentialDetail carries the plaintext value only in memory and in
// responses to its owner. Only EncryptedValue is ever persisted.
type ConfidentialDetail struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Value          string    `json:"value"`
	EncryptedValue string    `json:"-"`
	UserID         int64     `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
