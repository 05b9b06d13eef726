package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal_profile/internal/models"
)

type NoteSQLite struct {
	ownedTable[models.Note]
}

func NewNoteSQLite(db *sql.DB) *NoteSQLite {
	return &NoteSQLite{ownedTable[models.Note]{
		db:      db,
		table:   "notes",
		columns: "id, title, content, user_id, created_at",
		scan:    scanNote,
	}}
}

var _ Notes = (*NoteSQLite)(nil)

const insertNoteSQL = `INSERT INTO notes (title, content, user_id, created_at) VALUES (?, ?, ?, ?)`

const updateNoteSQL = `UPDATE notes SET title = ?, content = ? WHERE id = ? AND user_id = ?`

func scanNote(row rowScanner) (models.Note, error) {
	var (
		n         models.Note
		createdAt string
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &createdAt); err != nil {
		return models.Note{}, err
	}
	var err error
	if n.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (r *NoteSQLite) List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Note, error) {
	var (
		conds []string
		args  []any
	)
	if f.Q != "" {
		cond, condArgs := likeCond([]string{"title", "content"}, f.Q, args)
		conds, args = append(conds, cond), condArgs
	}
	return r.list(ctx, userID, conds, args, "created_at DESC, id DESC")
}

func (r *NoteSQLite) Create(ctx context.Context, n models.Note) (models.Note, error) {
	n.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertNoteSQL,
		n.Title, n.Content, n.UserID, formatTimestamp(n.CreatedAt))
	if err != nil {
		return models.Note{}, fmt.Errorf("insert note: %w", err)
	}
	if n.ID, err = res.LastInsertId(); err != nil {
		return models.Note{}, fmt.Errorf("get note insert id: %w", err)
	}
	return n, nil
}

func (r *NoteSQLite) GetByID(ctx context.Context, userID, id int64) (models.Note, error) {
	return r.getByID(ctx, userID, id)
}

func (r *NoteSQLite) Update(ctx context.Context, n models.Note) error {
	res, err := r.db.ExecContext(ctx, updateNoteSQL, n.Title, n.Content, n.ID, n.UserID)
	if err != nil {
		return fmt.Errorf("update note %d: %w", n.ID, err)
	}
	return requireRowAffected(res, "note")
}

func (r *NoteSQLite) Delete(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, userID, id)
}
