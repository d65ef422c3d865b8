package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/cryptox"
	"github.com/dmitrijs2005/driverhelper/internal/dbx"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CurrentIdentity resolves the stored session token. A missing, expired or
// revoked session is not an error: it yields (nil, nil).
func (c *PostgresClient) CurrentIdentity(ctx context.Context) (*Identity, error) {
	token, err := c.sessions.LoadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	claims, err := ParseToken(token, c.secret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrInvalidToken) {
			return nil, nil
		}
		return nil, err
	}

	query :=
		`SELECT u.id, u.email FROM auth_sessions s
		 JOIN auth_users u ON u.id = s.user_id
		 WHERE s.id = $1 AND s.expires_at > $2`

	id := &Identity{}
	err = c.db.QueryRowContext(ctx, query, claims.ID, c.now()).Scan(&id.ID, &id.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// SignUp creates an account and opens a session for it.
func (c *PostgresClient) SignUp(ctx context.Context, email string, password []byte) (*Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, common.ErrInvalidCredentials
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	id := &Identity{ID: c.newID(), Email: email}
	var token string
	err = dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM auth_users WHERE email = $1)`, email).Scan(&exists)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if exists {
			return common.ErrAlreadyExists
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO auth_users (id, email, password_hash) VALUES ($1, $2, $3)`,
			id.ID, id.Email, hash)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		token, err = c.openSession(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := c.sessions.SaveSession(ctx, token); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSessionNotSaved, err)
	}
	return id, nil
}

// SignIn verifies the credentials and opens a session.
func (c *PostgresClient) SignIn(ctx context.Context, email string, password []byte) (*Identity, error) {
	email = normalizeEmail(email)

	id := &Identity{}
	var hash []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM auth_users WHERE email = $1`, email).
		Scan(&id.ID, &id.Email, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := cryptox.VerifyPassword(hash, password); err != nil {
		return nil, err
	}

	token, err := c.openSession(ctx, c.db, id)
	if err != nil {
		return nil, err
	}
	if err := c.sessions.SaveSession(ctx, token); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSessionNotSaved, err)
	}
	return id, nil
}

// SignOut revokes the current session. The stored token is cleared even
// when revocation fails.
func (c *PostgresClient) SignOut(ctx context.Context) (err error) {
	defer func() {
		if cerr := c.sessions.ClearSession(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("clear session: %w", cerr)
		}
	}()

	token, err := c.sessions.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		return nil
	}

	claims, perr := ParseToken(token, c.secret)
	if perr != nil {
		// nothing to revoke server-side
		return nil
	}

	if _, err := c.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = $1`, claims.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (c *PostgresClient) openSession(ctx context.Context, db dbx.DBTX, id *Identity) (string, error) {
	sessionID := c.newID()
	expiresAt := c.now().Add(c.sessionTTL)

	_, err := db.ExecContext(ctx,
		`INSERT INTO auth_sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`,
		sessionID, id.ID, expiresAt)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	token, err := GenerateToken(sessionID, id.ID, id.Email, expiresAt, c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
