package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/logging"
	"github.com/dmitrijs2005/driverhelper/internal/media"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/dmitrijs2005/driverhelper/internal/telemetry"
)

// Deps are the collaborators shared by every façade. Only Local is
// required; nil fields get inert defaults.
type Deps struct {
	Local    *localstore.Store
	Remote   remote.Client
	Logger   logging.Logger
	Metrics  telemetry.Recorder
	Reporter telemetry.Reporter
	Media    media.Store
}

type hybrid struct {
	local  *localstore.Store
	remote remote.Client
	log    logging.Logger
	rec    telemetry.Recorder
	rep    telemetry.Reporter
	media  media.Store
}

func newHybrid(d Deps) *hybrid {
	h := &hybrid{
		local:  d.Local,
		remote: d.Remote,
		log:    d.Logger,
		rec:    d.Metrics,
		rep:    d.Reporter,
		media:  d.Media,
	}
	if h.remote == nil {
		h.remote = remote.Unconfigured{}
	}
	if h.log == nil {
		h.log = logging.NewDiscardLogger()
	}
	if h.rec == nil {
		h.rec = telemetry.NopRecorder{}
	}
	if h.rep == nil {
		h.rep = telemetry.NopReporter{}
	}
	if h.media == nil {
		h.media = media.NopStore{}
	}
	return h
}

// outcome is the terminal state of a remote attempt.
type outcome int

const (
	outcomeRemote outcome = iota
	outcomeUnconfigured
	outcomeNoSession
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeRemote:
		return telemetry.SourceRemote
	case outcomeUnconfigured:
		return telemetry.ReasonUnconfigured
	case outcomeNoSession:
		return telemetry.ReasonNoSession
	default:
		return telemetry.ReasonError
	}
}

// attempt walks configured -> identity -> remote call. Any branch that does
// not end in a remote result is reported and returned as a non-remote
// outcome, and the caller serves the local result instead. fn receives a nil
// identity when needIdentity is false.
func attempt[T any](ctx context.Context, h *hybrid, domain, op string, needIdentity bool,
	fn func(ctx context.Context, id *remote.Identity) (T, error)) (result T, out outcome) {

	var zero T

	defer func() {
		if p := recover(); p != nil {
			h.remoteFailed(ctx, domain, op, fmt.Errorf("remote panic: %v", p))
			result, out = zero, outcomeFailed
		}
	}()

	if !h.remote.Configured() {
		h.rec.RemoteSkipped(domain, op, telemetry.ReasonUnconfigured)
		return zero, outcomeUnconfigured
	}

	var id *remote.Identity
	if needIdentity {
		var err error
		id, err = h.remote.CurrentIdentity(ctx)
		if err != nil {
			h.remoteFailed(ctx, domain, op, fmt.Errorf("resolve identity: %w", err))
			return zero, outcomeFailed
		}
		if id == nil {
			h.rec.RemoteSkipped(domain, op, telemetry.ReasonNoSession)
			h.log.Debug(ctx, "no remote session, using local store", "domain", domain, "op", op)
			return zero, outcomeNoSession
		}
	}

	v, err := fn(ctx, id)
	if err != nil {
		h.remoteFailed(ctx, domain, op, err)
		return zero, outcomeFailed
	}

	h.rec.Served(domain, op, telemetry.SourceRemote)
	return v, outcomeRemote
}

// mirror is attempt for writes, where only the side effect matters.
func mirror(ctx context.Context, h *hybrid, domain, op string, needIdentity bool,
	fn func(ctx context.Context, id *remote.Identity) error) outcome {

	_, out := attempt(ctx, h, domain, op, needIdentity, func(ctx context.Context, id *remote.Identity) (struct{}, error) {
		return struct{}{}, fn(ctx, id)
	})
	return out
}

func (h *hybrid) remoteFailed(ctx context.Context, domain, op string, err error) {
	if errors.Is(err, common.ErrNotFound) {
		h.rec.RemoteSkipped(domain, op, telemetry.ReasonMissing)
		h.log.Info(ctx, "remote row missing, using local store", "domain", domain, "op", op)
		return
	}

	h.rec.RemoteSkipped(domain, op, telemetry.ReasonError)
	h.log.Warn(ctx, "remote call failed, using local store",
		"domain", domain, "op", op, "reason", telemetry.ReasonError, "error", err)
	h.rep.Capture(ctx, err, map[string]string{"domain": domain, "op": op})
}

// servedLocal records that the local store answered op.
func (h *hybrid) servedLocal(domain, op string) {
	h.rec.Served(domain, op, telemetry.SourceLocal)
}

// localFailed logs a local store failure. Local errors are not returned to
// callers either; a failed read degrades to an empty default.
func (h *hybrid) localFailed(ctx context.Context, domain, op string, err error) {
	if err == nil {
		return
	}
	h.log.Error(ctx, "local store failed", "domain", domain, "op", op, "error", err)
	h.rep.Capture(ctx, err, map[string]string{"domain": domain, "op": op, "source": telemetry.SourceLocal})
}
