package telemetry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter forwards unexpected errors to an error tracker.
type Reporter interface {
	Capture(ctx context.Context, err error, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Capture(context.Context, error, map[string]string) {}
func (NopReporter) Flush(time.Duration) bool                          { return true }

// SentryReporter sends errors through a sentry hub.
type SentryReporter struct {
	hub *sentry.Hub
}

// NewSentryReporter initialises a client for dsn. An empty dsn yields a
// NopReporter.
func NewSentryReporter(dsn, release string) (Reporter, error) {
	if dsn == "" {
		return NopReporter{}, nil
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	})
	if err != nil {
		return nil, err
	}
	return newSentryReporter(client), nil
}

func newSentryReporter(client *sentry.Client) *SentryReporter {
	return &SentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}
}

func (r *SentryReporter) Capture(_ context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

func (r *SentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}
