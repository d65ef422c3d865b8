package remote

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/driverhelper/internal/dbx"
)

// ListIncome returns the user's records ordered by date descending.
func (c *PostgresClient) ListIncome(ctx context.Context, userID string) ([]IncomeRow, error) {
	query :=
		`SELECT id, user_id, date, source, amount, type, category
		 FROM income_records
		 WHERE user_id = $1
		 ORDER BY date DESC`

	rows, err := dbx.QueryAll(ctx, c.db, func(r *sql.Rows) (IncomeRow, error) {
		var row IncomeRow
		err := r.Scan(&row.ID, &row.UserID, &row.Date, &row.Source, &row.Amount, &row.Type, &row.Category)
		return row, err
	}, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rows, nil
}

// UpsertIncome inserts or replaces a record. A record owned by another user
// is left untouched.
func (c *PostgresClient) UpsertIncome(ctx context.Context, row IncomeRow) error {
	query :=
		`INSERT INTO income_records (id, user_id, date, source, amount, type, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   date = EXCLUDED.date,
		   source = EXCLUDED.source,
		   amount = EXCLUDED.amount,
		   type = EXCLUDED.type,
		   category = EXCLUDED.category
		 WHERE income_records.user_id = EXCLUDED.user_id`

	_, err := c.db.ExecContext(ctx, query,
		row.ID, row.UserID, row.Date, row.Source, row.Amount.String(), row.Type, row.Category)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteIncome removes the record only if userID owns it. Deleting a
// missing record is not an error.
func (c *PostgresClient) DeleteIncome(ctx context.Context, userID, id string) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM income_records WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
