package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/dbx"
)

const profileColumns = `id, name, language, premium, is_admin, avatar_url, theme, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(r rowScanner) (ProfileRow, error) {
	var p ProfileRow
	err := r.Scan(&p.ID, &p.Name, &p.Language, &p.Premium, &p.IsAdmin, &p.AvatarURL, &p.Theme, &p.CreatedAt)
	return p, err
}

func (c *PostgresClient) GetProfile(ctx context.Context, id string) (*ProfileRow, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(c.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

// ListProfiles returns every profile, newest first.
func (c *PostgresClient) ListProfiles(ctx context.Context) ([]ProfileRow, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

	rows, err := dbx.QueryAll(ctx, c.db, func(r *sql.Rows) (ProfileRow, error) {
		return scanProfile(r)
	}, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rows, nil
}

func (c *PostgresClient) UpsertProfile(ctx context.Context, p ProfileRow) error {
	query :=
		`INSERT INTO profiles (id, name, language, premium, is_admin, avatar_url, theme)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   language = EXCLUDED.language,
		   premium = EXCLUDED.premium,
		   is_admin = EXCLUDED.is_admin,
		   avatar_url = EXCLUDED.avatar_url,
		   theme = EXCLUDED.theme`

	_, err := c.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Language, p.Premium, p.IsAdmin, p.AvatarURL, p.Theme)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateProfileFlags changes only the flags that are set.
func (c *PostgresClient) UpdateProfileFlags(ctx context.Context, id string, flags ProfileFlags) error {
	query :=
		`UPDATE profiles SET
		   premium = COALESCE($2, premium),
		   is_admin = COALESCE($3, is_admin)
		 WHERE id = $1`

	res, err := c.db.ExecContext(ctx, query, id, nullBool(flags.Premium), nullBool(flags.IsAdmin))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
