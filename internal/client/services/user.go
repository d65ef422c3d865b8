package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/google/uuid"
)

// OfflineIDPrefix marks profiles created while the remote store was
// unreachable.
const OfflineIDPrefix = "offline-"

// UserService owns the single locally cached profile.
type UserService struct {
	h *hybrid
}

// Current returns the signed-in profile, or nil when there is none. The
// remote row wins when a session exists and the row can be fetched.
func (s *UserService) Current(ctx context.Context) *models.UserProfile {
	p, out := attempt(ctx, s.h, domainUser, "current", true, func(ctx context.Context, id *remote.Identity) (models.UserProfile, error) {
		row, err := s.h.remote.GetProfile(ctx, id.ID)
		if err != nil {
			return models.UserProfile{}, err
		}
		return profileFromRow(*row, id.Email), nil
	})
	if out == outcomeRemote {
		return &p
	}
	return s.cached(ctx)
}

func (s *UserService) cached(ctx context.Context) *models.UserProfile {
	s.h.servedLocal(domainUser, "current")

	var p models.UserProfile
	found, err := s.h.local.Get(ctx, keyUser, &p)
	if err != nil {
		s.h.localFailed(ctx, domainUser, "current", err)
		return nil
	}
	if !found {
		return nil
	}
	return &p
}

// Save caches p locally, then upserts it remotely when configured.
func (s *UserService) Save(ctx context.Context, p models.UserProfile) error {
	if p.ID == "" {
		return common.ErrEmptyID
	}
	s.saveLocal(ctx, "save", p)

	mirror(ctx, s.h, domainUser, "save", false, func(ctx context.Context, _ *remote.Identity) error {
		return s.h.remote.UpsertProfile(ctx, rowFromProfile(p))
	})
	return nil
}

func (s *UserService) saveLocal(ctx context.Context, op string, p models.UserProfile) {
	s.h.localFailed(ctx, domainUser, op, s.h.local.Set(ctx, keyUser, p))
	s.h.servedLocal(domainUser, op)
}

// Logout ends the remote session when configured and always forgets the
// local profile, even if sign-out fails or panics.
func (s *UserService) Logout(ctx context.Context) {
	defer func() {
		s.h.localFailed(ctx, domainUser, "logout", s.h.local.Remove(ctx, keyUser))
		s.h.servedLocal(domainUser, "logout")
	}()

	mirror(ctx, s.h, domainUser, "logout", false, func(ctx context.Context, _ *remote.Identity) error {
		return s.h.remote.SignOut(ctx)
	})
}

// SignIn authenticates remotely and caches the resulting profile. When the
// remote store is unconfigured or unreachable an offline profile is created
// instead. Rejected credentials are returned as an error, as is a session
// that was opened remotely but could not be stored.
func (s *UserService) SignIn(ctx context.Context, email string, password []byte) (*models.UserProfile, error) {
	return s.authenticate(ctx, "signin", email, "", func(ctx context.Context) (*remote.Identity, error) {
		return s.h.remote.SignIn(ctx, email, password)
	})
}

// SignUp registers remotely and caches the new profile, falling back to an
// offline profile like SignIn.
func (s *UserService) SignUp(ctx context.Context, name, email string, password []byte) (*models.UserProfile, error) {
	return s.authenticate(ctx, "signup", email, name, func(ctx context.Context) (*remote.Identity, error) {
		return s.h.remote.SignUp(ctx, email, password)
	})
}

func (s *UserService) authenticate(ctx context.Context, op, email, name string,
	auth func(ctx context.Context) (*remote.Identity, error)) (*models.UserProfile, error) {

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrInvalidValue)
	}
	if name == "" {
		name = nameFromEmail(email)
	}

	var rejected error
	p, out := attempt(ctx, s.h, domainUser, op, false, func(ctx context.Context, _ *remote.Identity) (models.UserProfile, error) {
		id, err := auth(ctx)
		if err != nil {
			if errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrAlreadyExists) {
				rejected = err
				return models.UserProfile{}, nil
			}
			if errors.Is(err, common.ErrSessionNotSaved) {
				s.h.remoteFailed(ctx, domainUser, op, err)
				rejected = err
				return models.UserProfile{}, nil
			}
			return models.UserProfile{}, err
		}
		return s.remoteProfile(ctx, id, name), nil
	})
	if rejected != nil {
		return nil, rejected
	}

	if out != outcomeRemote {
		p = models.UserProfile{
			ID:       OfflineIDPrefix + uuid.NewString(),
			Name:     name,
			Email:    email,
			Language: models.DefaultLanguage,
			Theme:    models.DefaultTheme,
		}
		s.h.log.Info(ctx, "created offline profile", "id", p.ID)
	}

	s.saveLocal(ctx, op, p)
	return &p, nil
}

// remoteProfile loads the account's profile row, creating it only when the
// row does not exist. On a failed read nothing is written remotely and the
// cached profile for the same account is used when there is one.
func (s *UserService) remoteProfile(ctx context.Context, id *remote.Identity, name string) models.UserProfile {
	row, err := s.h.remote.GetProfile(ctx, id.ID)
	if err == nil {
		return profileFromRow(*row, id.Email)
	}

	p := models.UserProfile{
		ID:       id.ID,
		Name:     name,
		Email:    id.Email,
		Language: models.DefaultLanguage,
		Theme:    models.DefaultTheme,
	}

	if !errors.Is(err, common.ErrNotFound) {
		s.h.remoteFailed(ctx, domainUser, "profile", err)
		var cached models.UserProfile
		found, lerr := s.h.local.Get(ctx, keyUser, &cached)
		s.h.localFailed(ctx, domainUser, "profile", lerr)
		if found && cached.ID == id.ID {
			return cached
		}
		return p
	}

	if err := s.h.remote.UpsertProfile(ctx, rowFromProfile(p)); err != nil {
		s.h.remoteFailed(ctx, domainUser, "profile", err)
	}
	return p
}

func nameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
