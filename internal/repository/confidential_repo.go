package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal_profile/internal/models"
)

// ConfidentialSQLite stores only the ciphertext column; the plaintext value
// never reaches this layer. The title-only search keeps filtering off the
// encrypted column entirely.
type ConfidentialSQLite struct {
	ownedTable[models.ConfidentialDetail]
}

func NewConfidentialSQLite(db *sql.DB) *ConfidentialSQLite {
	return &ConfidentialSQLite{ownedTable[models.ConfidentialDetail]{
		db:      db,
		table:   "confidential_details",
		columns: "id, title, encrypted_value, user_id, created_at",
		scan:    scanConfidential,
	}}
}

var _ ConfidentialDetails = (*ConfidentialSQLite)(nil)

const insertConfidentialSQL = `INSERT INTO confidential_details (title, encrypted_value, user_id, created_at) VALUES (?, ?, ?, ?)`

const updateConfidentialSQL = `UPDATE confidential_details SET title = ?, encrypted_value = ? WHERE id = ? AND user_id = ?`

func scanConfidential(row rowScanner) (models.ConfidentialDetail, error) {
	var (
		d         models.ConfidentialDetail
		createdAt string
	)
	if err := row.Scan(&d.ID, &d.Title, &d.EncryptedValue, &d.UserID, &createdAt); err != nil {
		return models.ConfidentialDetail{}, err
	}
	var err error
	if d.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.ConfidentialDetail{}, err
	}
	return d, nil
}

func (r *ConfidentialSQLite) List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.ConfidentialDetail, error) {
	var (
		conds []string
		args  []any
	)
	if f.Q != "" {
		cond, condArgs := likeCond([]string{"title"}, f.Q, args)
		conds, args = append(conds, cond), condArgs
	}
	return r.list(ctx, userID, conds, args, "created_at DESC, id DESC")
}

func (r *ConfidentialSQLite) Create(ctx context.Context, d models.ConfidentialDetail) (models.ConfidentialDetail, error) {
	d.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertConfidentialSQL,
		d.Title, d.EncryptedValue, d.UserID, formatTimestamp(d.CreatedAt))
	if err != nil {
		return models.ConfidentialDetail{}, fmt.Errorf("insert confidential detail: %w", err)
	}
	if d.ID, err = res.LastInsertId(); err != nil {
		return models.ConfidentialDetail{}, fmt.Errorf("get confidential detail insert id: %w", err)
	}
	return d, nil
}

func (r *ConfidentialSQLite) GetByID(ctx context.Context, userID, id int64) (models.ConfidentialDetail, error) {
	return r.getByID(ctx, userID, id)
}

func (r *ConfidentialSQLite) Update(ctx context.Context, d models.ConfidentialDetail) error {
	res, err := r.db.ExecContext(ctx, updateConfidentialSQL,
		d.Title, d.EncryptedValue, d.ID, d.UserID)
	if err != nil {
		return fmt.Errorf("update confidential detail %d: %w", d.ID, err)
	}
	return requireRowAffected(res, "confidential detail")
}

func (r *ConfidentialSQLite) Delete(ctx context.Context, userID, id int64) error {
	return r.deleteByID(ctx, userID, id)
}
