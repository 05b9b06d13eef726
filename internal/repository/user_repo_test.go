package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"personal_profile/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserSQLite(conn)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = conn.Close()
	}
	return repo, mock, cleanup
}

func TestUserSQLite_Create(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantID     int64
		wantErr    error
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(countUserConflictsSQL)).
					WithArgs("alice", "alice@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "alice@x.com", "h123", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "duplicate detected up front",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(countUserConflictsSQL)).
					WithArgs("alice", "alice@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: models.ErrConflict,
		},
		{
			name: "duplicate raced to the unique constraint",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(countUserConflictsSQL)).
					WithArgs("alice", "alice@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "alice@x.com", "h123", sqlmock.AnyArg()).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username"))
			},
			wantErr: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			user, err := repo.Create(context.Background(), "alice", "alice@x.com", "h123")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, user.ID)
			}
			if user.PasswordHash != "h123" {
				t.Fatalf("unexpected hash: %q", user.PasswordHash)
			}
		})
	}
}

func TestUserSQLite_GetByIdentifier(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(7, "alice", "alice@x.com", "h123", "2024-01-05 10:00:00")
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIdentifierSQL)).
		WithArgs("Alice@X.com", "alice@x.com").
		WillReturnRows(rows)

	user, err := repo.GetByIdentifier(context.Background(), "Alice@X.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.ID != 7 || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("created_at not parsed")
	}
}

func TestUserSQLite_GetByIdentifier_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIdentifierSQL)).
		WithArgs("ghost", "ghost").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByIdentifier(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}
