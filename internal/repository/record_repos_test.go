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

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = conn.Close()
	}
	return conn, mock, cleanup
}

func TestAchievementSQLite_GetByID_ScopesByOwner(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAchievementSQLite(conn)

	query := `SELECT id, title, description, achieved_on, user_id, created_at FROM achievements WHERE id = ? AND user_id = ?`

	// a record that exists but belongs to another user comes back as no rows
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(5), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 2, 5)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAchievementSQLite_Delete_NotFoundWhenNoRowAffected(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAchievementSQLite(conn)

	query := `DELETE FROM achievements WHERE id = ? AND user_id = ?`

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 1, 5); err != nil {
		t.Fatalf("first delete: unexpected error: %v", err)
	}
	if err := repo.Delete(context.Background(), 1, 5); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestAchievementSQLite_List_SubstringFilter(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAchievementSQLite(conn)

	query := `SELECT id, title, description, achieved_on, user_id, created_at FROM achievements WHERE user_id = ? AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?) ORDER BY created_at DESC, id DESC`

	rows := sqlmock.NewRows([]string{"id", "title", "description", "achieved_on", "user_id", "created_at"}).
		AddRow(3, "Marathon", "Ran 42km", "2024-03-01", 1, "2024-03-02 08:00:00").
		AddRow(1, "Degree", "Graduated with a marathon of exams", nil, 1, "2024-01-01 08:00:00")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), "%marathon%", "%marathon%").
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), 1, models.SearchFilter{Q: "Marathon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].AchievedOn != "2024-03-01" || items[1].AchievedOn != "" {
		t.Fatalf("achieved_on not mapped: %+v", items)
	}
}

func TestExpenseSQLite_List_CombinesFiltersWithAND(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewExpenseSQLite(conn)

	query := `SELECT id, amount, date, category, notes, user_id, created_at FROM expenses WHERE user_id = ? AND category = ? AND date >= ? AND date <= ? AND amount >= ? AND amount <= ? ORDER BY date DESC, id DESC`

	rows := sqlmock.NewRows([]string{"id", "amount", "date", "category", "notes", "user_id", "created_at"}).
		AddRow(9, 12.5, "2024-01-05", "food", "lunch", 1, "2024-01-05 13:00:00")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), "food", "2024-01-01", "2024-01-31", 10.0, 20.0).
		WillReturnRows(rows)

	minAmount, maxAmount := 10.0, 20.0
	items, err := repo.List(context.Background(), 1, models.ExpenseFilter{
		Category:  "food",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Amount != 12.5 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestConfidentialSQLite_List_FiltersTitleOnly(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewConfidentialSQLite(conn)

	// the encrypted_value column never appears in the WHERE clause
	query := `SELECT id, title, encrypted_value, user_id, created_at FROM confidential_details WHERE user_id = ? AND (LOWER(title) LIKE ?) ORDER BY created_at DESC, id DESC`

	rows := sqlmock.NewRows([]string{"id", "title", "encrypted_value", "user_id", "created_at"}).
		AddRow(4, "bank", "blob", 1, "2024-01-05 13:00:00")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), "%bank%").
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), 1, models.SearchFilter{Q: "bank"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].EncryptedValue != "blob" {
		t.Fatalf("unexpected items: %+v", items)
	}
}
