package remote

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/remote/migrations"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// DefaultSessionTTL is used when Options.SessionTTL is zero.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Options configures a PostgresClient.
type Options struct {
	// URL is the Postgres connection string.
	URL string
	// Key signs session tokens.
	Key        string
	SessionTTL time.Duration
	// Migrate applies the embedded schema on open.
	Migrate bool
}

// PostgresClient is the Client backed by a Postgres database.
type PostgresClient struct {
	db         *sql.DB
	secret     []byte
	sessionTTL time.Duration
	sessions   SessionStore

	now   func() time.Time
	newID func() string
}

var _ Client = (*PostgresClient)(nil)

// NewPostgresClient wraps an open database handle.
func NewPostgresClient(db *sql.DB, key string, ttl time.Duration, sessions SessionStore) *PostgresClient {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &PostgresClient{
		db:         db,
		secret:     []byte(key),
		sessionTTL: ttl,
		sessions:   sessions,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open connects to the database described by opts, optionally migrating it.
func Open(ctx context.Context, opts Options, sessions SessionStore) (*PostgresClient, error) {
	db, err := sqlOpen("pgx", opts.URL)
	if err != nil {
		return nil, fmt.Errorf("open remote: %w", err)
	}
	if opts.Migrate {
		if err := RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate remote: %w", err)
		}
	}
	return NewPostgresClient(db, opts.Key, opts.SessionTTL, sessions), nil
}

// RunMigrations applies the embedded schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func (c *PostgresClient) Configured() bool { return true }

func (c *PostgresClient) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (c *PostgresClient) Close() error {
	return c.db.Close()
}
