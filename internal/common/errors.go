// Package common defines shared constants and sentinel errors used across
// the Driver Helper client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrCorruptValue = errors.New("corrupt stored value")

	// Remote store availability.
	ErrNotConfigured = errors.New("remote store not configured")

	// Auth errors.
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrSessionNotSaved    = errors.New("session not saved")

	// Validation errors.
	ErrEmptyID      = errors.New("empty id")
	ErrInvalidValue = errors.New("invalid value")
)
