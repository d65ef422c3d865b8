package services

import (
	"context"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
)

// AdminService is the privileged view over every profile.
type AdminService struct {
	h    *hybrid
	user *UserService
}

// ListAll returns every remote profile, newest first. Without a remote
// store it returns only the cached profile, if any. A remote failure yields
// an empty list since the local store cannot represent other users.
func (s *AdminService) ListAll(ctx context.Context) []models.UserProfile {
	users, out := attempt(ctx, s.h, domainAdmin, "list", false, func(ctx context.Context, _ *remote.Identity) ([]models.UserProfile, error) {
		rows, err := s.h.remote.ListProfiles(ctx)
		if err != nil {
			return nil, err
		}
		users := make([]models.UserProfile, 0, len(rows))
		for _, r := range rows {
			users = append(users, profileFromRow(r, ""))
		}
		return users, nil
	})

	switch out {
	case outcomeRemote:
		return users
	case outcomeUnconfigured:
		if p := s.user.cached(ctx); p != nil {
			return []models.UserProfile{*p}
		}
	}
	return []models.UserProfile{}
}

// SetStatus changes premium and/or admin flags for the profile id. The local
// profile is updated when it is the one being changed.
func (s *AdminService) SetStatus(ctx context.Context, id string, upd models.ProfileUpdate) error {
	if id == "" {
		return common.ErrEmptyID
	}
	if upd.Empty() {
		return nil
	}

	if p := s.user.cached(ctx); p != nil && p.ID == id {
		s.user.saveLocal(ctx, "set_status", p.Apply(upd))
	}

	mirror(ctx, s.h, domainAdmin, "set_status", false, func(ctx context.Context, _ *remote.Identity) error {
		return s.h.remote.UpdateProfileFlags(ctx, id, remote.ProfileFlags{Premium: upd.Premium, IsAdmin: upd.IsAdmin})
	})
	return nil
}
