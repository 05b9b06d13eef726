package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal_profile/internal/models"
)

type GoalSQLite struct {
	ownedTable[models.Goal]
}

func NewGoalSQLite(db *sql.DB) *GoalSQLite {
	return &GoalSQLite{ownedTable[models.Goal]{
		db:      db,
		table:   "goals",
		columns: "id, title, description, status, target_date, user_id, created_at",
		scan:    scanGoal,
	}}
}

var _ Goals = (*GoalSQLite)(nil)

const insertGoalSQL = `INSERT INTO goals (title, description, status, target_date, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`

const updateGoalSQL = `UPDATE goals SET title = ?, description = ?, status = ?, target_date = ? WHERE id = ? AND user_id = ?`

func scanGoal(row rowScanner) (models.Goal, error) {
	var (
		g          models.Goal
		targetDate sql.NullString
		createdAt  string
	)
	if err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Status, &targetDate, &g.UserID, &createdAt); err != nil {
		return models.Goal{}, err
	}
	g.TargetDate = targetDate.String
	var err error
	if g.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

func (r *GoalSQLite) List(ctx context.Context, userID int64, f models.GoalFilter) ([]models.Goal, error) {
	var (
		conds []string
		args  []any
	)
	if f.Q != "" {
		cond, condArgs := likeCond([]string{"title", "description"}, f.Q, args)
		conds, args = append(conds, cond), condArgs
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	return r.list(ctx, userID, conds, args, "created_at DESC, id DESC")
}

func (r *GoalSQLite) Create(ctx context.Context, g models.Goal) (models.Goal, error) {
	g.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertGoalSQL,
		g.Title, g.Description, g.Status, nullable(g.TargetDate), g.UserID, formatTimestamp(g.CreatedAt))
	if err != nil {
		return models.Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	if g.ID, err = res.LastInsertId(); err != nil {
		return models.Goal{}, fmt.Errorf("get goal insert id: %w", err)
	}
	return g, nil
}

func (r *GoalSQLite) GetByID(ctx context.Context, userID, id int64) (models.Goal, error) {
	return r.getByID(ctx, userID, id)
}

func (r *GoalSQLite) Update(ctx context.Context, g models.Goal) error {
	res, err := r.db.ExecContext(ctx, updateGoalSQL,
		g.Title, g.Description, g.Status, nullable(g.TargetDate), g.ID, g.UserID)
	if err != nil {
		return fmt.Errorf("update goal %d: %w", g.ID, err)
	}
	return requireRowAffected(res, "goal")
}

func (r *GoalSQLite) Delete(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, userID, id)
}
