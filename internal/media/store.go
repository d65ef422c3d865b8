// Package media stores community post attachments in an S3-compatible
// bucket using presigned URLs.
package media

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/google/uuid"
)

// DefaultURLExpiry is the longest lifetime SigV4 allows for a presigned GET.
const DefaultURLExpiry = 7 * 24 * time.Hour

const uploadExpiry = 15 * time.Minute

// Kind is the attachment category; it becomes part of the object key.
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

// Config describes the bucket.
type Config struct {
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"`
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	// PathStyle is needed for MinIO and most self-hosted endpoints.
	PathStyle bool          `json:"path_style"`
	URLExpiry time.Duration `json:"-"`
}

// IsConfigured reports whether there is enough to reach a bucket.
func (c Config) IsConfigured() bool {
	return c.Bucket != "" && c.Endpoint != ""
}

// Store puts attachments and hands back URLs to read them.
type Store interface {
	Put(ctx context.Context, kind Kind, data []byte, contentType string) (key string, url string, err error)
	URL(ctx context.Context, key string) (string, error)
}

// New returns an S3Store, or NopStore when cfg is incomplete.
func New(cfg Config) Store {
	if !cfg.IsConfigured() {
		return NopStore{}
	}
	return NewS3Store(cfg, http.DefaultClient)
}

// NopStore is used when no bucket is configured.
type NopStore struct{}

func (NopStore) Put(context.Context, Kind, []byte, string) (string, string, error) {
	return "", "", common.ErrNotConfigured
}

func (NopStore) URL(context.Context, string) (string, error) {
	return "", common.ErrNotConfigured
}

// newObjectKey spreads objects by kind and date.
func newObjectKey(kind Kind, now time.Time) string {
	return fmt.Sprintf("community/%s/%d/%02d/%02d/%s", kind, now.Year(), now.Month(), now.Day(), uuid.New())
}
