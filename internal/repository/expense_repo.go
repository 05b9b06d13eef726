package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal_profile/internal/models"
)

type ExpenseSQLite struct {
	ownedTable[models.Expense]
}

func NewExpenseSQLite(db *sql.DB) *ExpenseSQLite {
	return &ExpenseSQLite{ownedTable[models.Expense]{
		db:      db,
		table:   "expenses",
		columns: "id, amount, date, category, notes, user_id, created_at",
		scan:    scanExpense,
	}}
}

var _ Expenses = (*ExpenseSQLite)(nil)

const insertExpenseSQL = `INSERT INTO expenses (amount, date, category, notes, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`

const updateExpenseSQL = `UPDATE expenses SET amount = ?, date = ?, category = ?, notes = ? WHERE id = ? AND user_id = ?`

func scanExpense(row rowScanner) (models.Expense, error) {
	var (
		e         models.Expense
		notes     sql.NullString
		createdAt string
	)
	if err := row.Scan(&e.ID, &e.Amount, &e.Date, &e.Category, &notes, &e.UserID, &createdAt); err != nil {
		return models.Expense{}, err
	}
	e.Notes = notes.String
	var err error
	if e.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// List applies all provided filters with AND semantics; date and amount
// bounds are inclusive.
func (r *ExpenseSQLite) List(ctx context.Context, userID int64, f models.ExpenseFilter) ([]models.Expense, error) {
	var (
		conds []string
		args  []any
	)
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if f.Q != "" {
		cond, condArgs := likeCond([]string{"notes", "category"}, f.Q, args)
		conds, args = append(conds, cond), condArgs
	}
	if f.StartDate != "" {
		conds = append(conds, "date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		conds = append(conds, "date <= ?")
		args = append(args, f.EndDate)
	}
	if f.MinAmount != nil {
		conds = append(conds, "amount >= ?")
		args = append(args, *f.MinAmount)
	}
	if f.MaxAmount != nil {
		conds = append(conds, "amount <= ?")
		args = append(args, *f.MaxAmount)
	}
	return r.list(ctx, userID, conds, args, "date DESC, id DESC")
}

func (r *ExpenseSQLite) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertExpenseSQL,
		e.Amount, e.Date, e.Category, nullable(e.Notes), e.UserID, formatTimestamp(e.CreatedAt))
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return models.Expense{}, fmt.Errorf("get expense insert id: %w", err)
	}
	return e, nil
}

func (r *ExpenseSQLite) GetByID(ctx context.Context, userID, id int64) (models.Expense, error) {
	return r.getByID(ctx, userID, id)
}

func (r *ExpenseSQLite) Update(ctx context.Context, e models.Expense) error {
	res, err := r.db.ExecContext(ctx, updateExpenseSQL,
		e.Amount, e.Date, e.Category, nullable(e.Notes), e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("update expense %d: %w", e.ID, err)
	}
	return requireRowAffected(res, "expense")
}

func (r *ExpenseSQLite) Delete(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, userID, id)
}
