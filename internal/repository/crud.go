package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"personal_profile/internal/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ownedTable is the shared per-user CRUD capability behind the five record
// repositories. Every query it issues is scoped by user_id, which is what
// makes a missing record and another user's record indistinguishable: both
// come back as models.ErrNotFound.
type ownedTable[T any] struct {
	db      *sql.DB
	table   string
	columns string // selected column list, matching scan's order
	scan    func(rowScanner) (T, error)
}

func (t *ownedTable[T]) getByID(ctx context.Context, userID, id int64) (T, error) {
	var zero T
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ? AND user_id = ?`, t.columns, t.table)
	rec, err := t.scan(t.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, models.ErrNotFound
		}
		return zero, fmt.Errorf("select %s %d: %w", t.table, id, err)
	}
	return rec, nil
}

func (t *ownedTable[T]) deleteByID(ctx context.Context, userID, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ? AND user_id = ?`, t.table)
	res, err := t.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", t.table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: rows affected: %w", t.table, id, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// list runs a filtered listing for one user. conds/args carry the optional
// resource-specific filters; orderBy must produce a deterministic order.
func (t *ownedTable[T]) list(ctx context.Context, userID int64, conds []string, args []any, orderBy string) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = ?`, t.columns, t.table)
	queryArgs := append([]any{userID}, args...)
	if len(conds) > 0 {
		query += " AND " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + orderBy

	rows, err := t.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()

	out := make([]T, 0, 16)
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", t.table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.table, err)
	}
	return out, nil
}

// nullable maps an empty string to SQL NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// requireRowAffected turns a zero-row UPDATE into models.ErrNotFound, which
// covers both a missing id and another user's record.
func requireRowAffected(res sql.Result, table string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: rows affected: %w", table, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// likeCond builds a case-insensitive substring condition over the given
// columns and appends the matching args.
func likeCond(columns []string, q string, args []any) (string, []any) {
	pattern := "%" + strings.ToLower(q) + "%"
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE ?", col))
		args = append(args, pattern)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
