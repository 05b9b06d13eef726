package service

import (
	"context"
	"time"

	"personal_profile/internal/cryptox"
	"personal_profile/internal/models"
	"personal_profile/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (models.User, string, error)
	Login(ctx context.Context, in LoginInput) (models.User, string, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (int64, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
}

type Achievements interface {
	List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Achievement, error)
	Create(ctx context.Context, userID int64, in AchievementInput) (models.Achievement, error)
	Update(ctx context.Context, userID, id int64, in AchievementPatch) (models.Achievement, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Goals interface {
	List(ctx context.Context, userID int64, f models.GoalFilter) ([]models.Goal, error)
	Create(ctx context.Context, userID int64, in GoalInput) (models.Goal, error)
	Update(ctx context.Context, userID, id int64, in GoalPatch) (models.Goal, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Expenses interface {
	List(ctx context.Context, userID int64, f models.ExpenseFilter) ([]models.Expense, error)
	Create(ctx context.Context, userID int64, in ExpenseInput) (models.Expense, error)
	Update(ctx context.Context, userID, id int64, in ExpensePatch) (models.Expense, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Notes interface {
	List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Note, error)
	Create(ctx context.Context, userID int64, in NoteInput) (models.Note, error)
	Update(ctx context.Context, userID, id int64, in NotePatch) (models.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}

type ConfidentialDetails interface {
	List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.ConfidentialDetail, error)
	Create(ctx context.Context, userID int64, in ConfidentialInput) (models.ConfidentialDetail, error)
	Update(ctx context.Context, userID, id int64, in ConfidentialPatch) (models.ConfidentialDetail, error)
	Delete(ctx context.Context, userID, id int64) error
}

// AuthConfig carries the session signing material and token lifetime.
type AuthConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Achievements
	Goals
	Expenses
	Notes
	Confidential ConfidentialDetails
}

// NewService wires the repository layer, the encryption box and the auth
// configuration into concrete services.
func NewService(repos *repository.Repository, box *cryptox.Box, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, auth),
		Achievements:  NewAchievementService(repos.Achievements),
		Goals:         NewGoalService(repos.Goals),
		Expenses:      NewExpenseService(repos.Expenses),
		Notes:         NewNoteService(repos.Notes),
		Confidential:  NewConfidentialService(repos.Confidential, box),
	}
}
