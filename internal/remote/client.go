package remote

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Identity is the authenticated account behind the current session.
type Identity struct {
	ID    string
	Email string
}

// ProfileRow mirrors the profiles table. Nullable columns stay nullable so
// callers can apply their own defaults.
type ProfileRow struct {
	ID        string
	Name      sql.NullString
	Language  sql.NullString
	Premium   sql.NullBool
	IsAdmin   sql.NullBool
	AvatarURL sql.NullString
	Theme     sql.NullString
	CreatedAt time.Time
}

// ProfileFlags is a partial update of the privileged profile columns.
// Nil fields are left unchanged.
type ProfileFlags struct {
	Premium *bool
	IsAdmin *bool
}

// IncomeRow mirrors income_records.
type IncomeRow struct {
	ID       string
	UserID   string
	Date     string
	Source   string
	Amount   decimal.Decimal
	Type     string
	Category string
}

// PostRow mirrors community_posts.
type PostRow struct {
	ID         string
	AuthorID   string
	AuthorName string
	Content    string
	Category   string
	CreatedAt  time.Time
	Likes      sql.NullInt64
	LikedBy    []string
	ImageURL   sql.NullString
	AudioURL   sql.NullString
}

// Client is the remote store contract consumed by the hybrid data layer.
type Client interface {
	// Configured reports whether a usable remote endpoint exists at all.
	Configured() bool

	// CurrentIdentity returns (nil, nil) when there is no active session.
	CurrentIdentity(ctx context.Context) (*Identity, error)
	SignUp(ctx context.Context, email string, password []byte) (*Identity, error)
	SignIn(ctx context.Context, email string, password []byte) (*Identity, error)
	SignOut(ctx context.Context) error

	GetProfile(ctx context.Context, id string) (*ProfileRow, error)
	ListProfiles(ctx context.Context) ([]ProfileRow, error)
	UpsertProfile(ctx context.Context, row ProfileRow) error
	UpdateProfileFlags(ctx context.Context, id string, flags ProfileFlags) error

	ListIncome(ctx context.Context, userID string) ([]IncomeRow, error)
	UpsertIncome(ctx context.Context, row IncomeRow) error
	DeleteIncome(ctx context.Context, userID, id string) error

	ListPosts(ctx context.Context) ([]PostRow, error)
	InsertPost(ctx context.Context, row PostRow) error

	Ping(ctx context.Context) error
	Close() error
}

// SessionStore persists the session token between runs.
type SessionStore interface {
	LoadSession(ctx context.Context) (string, error)
	SaveSession(ctx context.Context, token string) error
	ClearSession(ctx context.Context) error
}
