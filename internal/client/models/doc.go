// Package models defines the client-side entities persisted by the Driver
// Helper data layer. Every entity carries a client-generated, immutable ID
// and serialises to the JSON shape the local store keeps per key.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts stay JSON numbers in the local blobs.
	decimal.MarshalJSONWithoutQuotes = true
}

// Identified is implemented by every list entity; list mutations key on it.
type Identified interface {
	EntityID() string
}

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.NewString()
}
