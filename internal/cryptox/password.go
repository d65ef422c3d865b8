// Package cryptox wraps the password hashing used by the remote store's
// sign-in and sign-up flows.
package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/driverhelper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of password at the default cost.
func HashPassword(password []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, common.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports common.ErrInvalidCredentials when password does not
// match hash.
func VerifyPassword(hash, password []byte) error {
	err := bcrypt.CompareHashAndPassword(hash, password)
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return common.ErrInvalidCredentials
	}
	return fmt.Errorf("verify password: %w", err)
}

// Wipe zeroes b in place. Nil is allowed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
