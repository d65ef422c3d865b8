// Package telemetry records how the hybrid data layer served each request
// and reports remote failures.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sources an operation can be served from.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Reasons a remote attempt did not succeed.
const (
	ReasonUnconfigured = "unconfigured"
	ReasonNoSession    = "no_session"
	ReasonMissing      = "missing"
	ReasonError        = "error"
)

// Recorder counts how operations were served.
type Recorder interface {
	Served(domain, op, source string)
	RemoteSkipped(domain, op, reason string)
}

// NopRecorder records nothing.
type NopRecorder struct{}

func (NopRecorder) Served(string, string, string)        {}
func (NopRecorder) RemoteSkipped(string, string, string) {}

var _ Recorder = (*Metrics)(nil)

// Metrics owns a private registry with the data layer's counters.
type Metrics struct {
	registry *prometheus.Registry

	ops      *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "driverhelper",
			Subsystem: "data",
			Name:      "operations_total",
			Help:      "Data operations by domain, operation and the source that served them.",
		}, []string{"domain", "op", "source"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "driverhelper",
			Subsystem: "data",
			Name:      "remote_fallbacks_total",
			Help:      "Remote attempts that fell back or were skipped, by reason.",
		}, []string{"domain", "op", "reason"}),
	}
	m.registry.MustRegister(m.ops, m.failures)
	return m
}

// Served counts an operation answered from source.
func (m *Metrics) Served(domain, op, source string) {
	m.ops.WithLabelValues(domain, op, source).Inc()
}

// RemoteSkipped counts a remote attempt that did not produce a result.
func (m *Metrics) RemoteSkipped(domain, op, reason string) {
	m.failures.WithLabelValues(domain, op, reason).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
