package repository

import (
	"context"
	"database/sql"
	"time"

	"personal_profile/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type Achievements interface {
	List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Achievement, error)
	Create(ctx context.Context, a models.Achievement) (models.Achievement, error)
	GetByID(ctx context.Context, userID, id int64) (models.Achievement, error)
	Update(ctx context.Context, a models.Achievement) error
	Delete(ctx context.Context, userID, id int64) error
}

type Goals interface {
	List(ctx context.Context, userID int64, f models.GoalFilter) ([]models.Goal, error)
	Create(ctx context.Context, g models.Goal) (models.Goal, error)
	GetByID(ctx context.Context, userID, id int64) (models.Goal, error)
	Update(ctx context.Context, g models.Goal) error
	Delete(ctx context.Context, userID, id int64) error
}

type Expenses interface {
	List(ctx context.Context, userID int64, f models.ExpenseFilter) ([]models.Expense, error)
	Create(ctx context.Context, e models.Expense) (models.Expense, error)
	GetByID(ctx context.Context, userID, id int64) (models.Expense, error)
	Update(ctx context.Context, e models.Expense) error
	Delete(ctx context.Context, userID, id int64) error
}

type Notes interface {
	List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Note, error)
	Create(ctx context.Context, n models.Note) (models.Note, error)
	GetByID(ctx context.Context, userID, id int64) (models.Note, error)
	Update(ctx context.Context, n models.Note) error
	Delete(ctx context.Context, userID, id int64) error
}

type ConfidentialDetails interface {
	List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.ConfidentialDetail, error)
	Create(ctx context.Context, d models.ConfidentialDetail) (models.ConfidentialDetail, error)
	GetByID(ctx context.Context, userID, id int64) (models.ConfidentialDetail, error)
	Update(ctx context.Context, d models.ConfidentialDetail) error
	Delete(ctx context.Context, userID, id int64) error
}

type Repository struct {
	Users        Users
	Sessions     Sessions
	Achievements Achievements
	Goals        Goals
	Expenses     Expenses
	Notes        Notes
	Confidential ConfidentialDetails
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserSQLite(conn),
		Sessions:     NewSessionSQLite(conn),
		Achievements: NewAchievementSQLite(conn),
		Goals:        NewGoalSQLite(conn),
		Expenses:     NewExpenseSQLite(conn),
		Notes:        NewNoteSQLite(conn),
		Confidential: NewConfidentialSQLite(conn),
	}
}

// Timestamps are persisted as sortable "YYYY-MM-DD HH:MM:SS" UTC strings,
// which is also what sqlmock rows carry in the tests.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(timestampLayout, s, time.UTC)
}
