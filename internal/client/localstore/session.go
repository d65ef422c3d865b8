package localstore

import "context"

const sessionKey = "session"

// LoadSession returns the persisted remote session token, or "" when there is none.
func (s *Store) LoadSession(ctx context.Context) (string, error) {
	var token string
	if _, err := s.Get(ctx, sessionKey, &token); err != nil {
		return "", err
	}
	return token, nil
}

// SaveSession persists the remote session token.
func (s *Store) SaveSession(ctx context.Context, token string) error {
	return s.Set(ctx, sessionKey, token)
}

// ClearSession forgets the remote session token.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.Remove(ctx, sessionKey)
}
