package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal_profile/internal/models"
)

type AchievementSQLite struct {
	ownedTable[models.Achievement]
}

func NewAchievementSQLite(db *sql.DB) *AchievementSQLite {
	return &AchievementSQLite{ownedTable[models.Achievement]{
		db:      db,
		table:   "achievements",
		columns: "id, title, description, achieved_on, user_id, created_at",
		scan:    scanAchievement,
	}}
}

var _ Achievements = (*AchievementSQLite)(nil)

const insertAchievementSQL = `INSERT INTO achievements (title, description, achieved_on, user_id, created_at) VALUES (?, ?, ?, ?, ?)`

const updateAchievementSQL = `UPDATE achievements SET title = ?, description = ?, achieved_on = ? WHERE id = ? AND user_id = ?`

func scanAchievement(row rowScanner) (models.Achievement, error) {
	var (
		a          models.Achievement
		achievedOn sql.NullString
		createdAt  string
	)
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &achievedOn, &a.UserID, &createdAt); err != nil {
		return models.Achievement{}, err
	}
	a.AchievedOn = achievedOn.String
	var err error
	if a.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Achievement{}, err
	}
	return a, nil
}

func (r *AchievementSQLite) List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Achievement, error) {
	var (
		conds []string
		args  []any
	)
	if f.Q != "" {
		cond, condArgs := likeCond([]string{"title", "description"}, f.Q, args)
		conds, args = append(conds, cond), condArgs
	}
	return r.list(ctx, userID, conds, args, "created_at DESC, id DESC")
}

func (r *AchievementSQLite) Create(ctx context.Context, a models.Achievement) (models.Achievement, error) {
	a.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertAchievementSQL,
		a.Title, a.Description, nullable(a.AchievedOn), a.UserID, formatTimestamp(a.CreatedAt))
	if err != nil {
		return models.Achievement{}, fmt.Errorf("insert achievement: %w", err)
	}
	if a.ID, err = res.LastInsertId(); err != nil {
		return models.Achievement{}, fmt.Errorf("get achievement insert id: %w", err)
	}
	return a, nil
}

func (r *AchievementSQLite) GetByID(ctx context.Context, userID, id int64) (models.Achievement, error) {
	return r.getByID(ctx, userID, id)
}

func (r *AchievementSQLite) Update(ctx context.Context, a models.Achievement) error {
	res, err := r.db.ExecContext(ctx, updateAchievementSQL,
		a.Title, a.Description, nullable(a.AchievedOn), a.ID, a.UserID)
	if err != nil {
		return fmt.Errorf("update achievement %d: %w", a.ID, err)
	}
	return requireRowAffected(res, "achievement")
}

func (r *AchievementSQLite) Delete(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, userID, id)
}
