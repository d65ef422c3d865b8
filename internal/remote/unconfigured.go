package remote

import (
	"context"

	"github.com/dmitrijs2005/driverhelper/internal/common"
)

// Unconfigured is the Client used when no valid remote credentials exist.
type Unconfigured struct{}

var _ Client = Unconfigured{}

func (Unconfigured) Configured() bool { return false }

func (Unconfigured) CurrentIdentity(context.Context) (*Identity, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) SignUp(context.Context, string, []byte) (*Identity, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) SignIn(context.Context, string, []byte) (*Identity, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) SignOut(context.Context) error { return common.ErrNotConfigured }

func (Unconfigured) GetProfile(context.Context, string) (*ProfileRow, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) ListProfiles(context.Context) ([]ProfileRow, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) UpsertProfile(context.Context, ProfileRow) error {
	return common.ErrNotConfigured
}

func (Unconfigured) UpdateProfileFlags(context.Context, string, ProfileFlags) error {
	return common.ErrNotConfigured
}

func (Unconfigured) ListIncome(context.Context, string) ([]IncomeRow, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) UpsertIncome(context.Context, IncomeRow) error {
	return common.ErrNotConfigured
}

func (Unconfigured) DeleteIncome(context.Context, string, string) error {
	return common.ErrNotConfigured
}

func (Unconfigured) ListPosts(context.Context) ([]PostRow, error) {
	return nil, common.ErrNotConfigured
}

func (Unconfigured) InsertPost(context.Context, PostRow) error { return common.ErrNotConfigured }

func (Unconfigured) Ping(context.Context) error { return common.ErrNotConfigured }

func (Unconfigured) Close() error { return nil }
