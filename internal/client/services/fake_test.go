package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/logging"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/dmitrijs2005/driverhelper/internal/telemetry"
	"github.com/stretchr/testify/require"
)

var errRemoteDown = errors.New("remote down")

// fakeRemote is an in-memory remote.Client. Calls are recorded by name; err
// fields make the matching call fail, panicOn makes it panic.
type fakeRemote struct {
	mu sync.Mutex

	configured bool
	identity   *remote.Identity

	profiles map[string]remote.ProfileRow
	income   []remote.IncomeRow
	posts    []remote.PostRow

	identityErr error
	getErr      error
	listErr     error
	writeErr    error
	signOutErr  error
	authErr     error
	pingErr     error
	panicOn     string

	calls []string
}

var _ remote.Client = (*fakeRemote)(nil)

func newFakeRemote() *fakeRemote {
	return &fakeRemote{configured: true, profiles: map[string]remote.ProfileRow{}}
}

func (f *fakeRemote) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	if f.panicOn == name {
		panic(name + " exploded")
	}
}

func (f *fakeRemote) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeRemote) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeRemote) Configured() bool { return f.configured }

func (f *fakeRemote) CurrentIdentity(context.Context) (*remote.Identity, error) {
	f.record("CurrentIdentity")
	return f.identity, f.identityErr
}

func (f *fakeRemote) SignUp(_ context.Context, email string, _ []byte) (*remote.Identity, error) {
	f.record("SignUp")
	if f.authErr != nil {
		return nil, f.authErr
	}
	f.identity = &remote.Identity{ID: "acc-new", Email: email}
	return f.identity, nil
}

func (f *fakeRemote) SignIn(_ context.Context, email string, _ []byte) (*remote.Identity, error) {
	f.record("SignIn")
	if f.authErr != nil {
		return nil, f.authErr
	}
	f.identity = &remote.Identity{ID: "acc-1", Email: email}
	return f.identity, nil
}

func (f *fakeRemote) SignOut(context.Context) error {
	f.record("SignOut")
	return f.signOutErr
}

func (f *fakeRemote) GetProfile(_ context.Context, id string) (*remote.ProfileRow, error) {
	f.record("GetProfile")
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.profiles[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &row, nil
}

func (f *fakeRemote) ListProfiles(context.Context) ([]remote.ProfileRow, error) {
	f.record("ListProfiles")
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := make([]remote.ProfileRow, 0, len(f.profiles))
	for _, r := range f.profiles {
		rows = append(rows, r)
	}
	return rows, nil
}

func (f *fakeRemote) UpsertProfile(_ context.Context, row remote.ProfileRow) error {
	f.record("UpsertProfile")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.profiles[row.ID] = row
	return nil
}

func (f *fakeRemote) UpdateProfileFlags(_ context.Context, id string, flags remote.ProfileFlags) error {
	f.record("UpdateProfileFlags")
	if f.writeErr != nil {
		return f.writeErr
	}
	row, ok := f.profiles[id]
	if !ok {
		return common.ErrNotFound
	}
	if flags.Premium != nil {
		row.Premium.Bool, row.Premium.Valid = *flags.Premium, true
	}
	if flags.IsAdmin != nil {
		row.IsAdmin.Bool, row.IsAdmin.Valid = *flags.IsAdmin, true
	}
	f.profiles[id] = row
	return nil
}

func (f *fakeRemote) ListIncome(_ context.Context, userID string) ([]remote.IncomeRow, error) {
	f.record("ListIncome")
	if f.listErr != nil {
		return nil, f.listErr
	}
	var rows []remote.IncomeRow
	for _, r := range f.income {
		if r.UserID == userID {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

func (f *fakeRemote) UpsertIncome(_ context.Context, row remote.IncomeRow) error {
	f.record("UpsertIncome")
	if f.writeErr != nil {
		return f.writeErr
	}
	for i, r := range f.income {
		if r.ID == row.ID {
			f.income[i] = row
			return nil
		}
	}
	f.income = append(f.income, row)
	return nil
}

func (f *fakeRemote) DeleteIncome(_ context.Context, userID, id string) error {
	f.record("DeleteIncome")
	if f.writeErr != nil {
		return f.writeErr
	}
	out := f.income[:0]
	for _, r := range f.income {
		if !(r.ID == id && r.UserID == userID) {
			out = append(out, r)
		}
	}
	f.income = out
	return nil
}

func (f *fakeRemote) ListPosts(context.Context) ([]remote.PostRow, error) {
	f.record("ListPosts")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakeRemote) InsertPost(_ context.Context, row remote.PostRow) error {
	f.record("InsertPost")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.posts = append([]remote.PostRow{row}, f.posts...)
	return nil
}

func (f *fakeRemote) Ping(context.Context) error {
	f.record("Ping")
	return f.pingErr
}

func (f *fakeRemote) Close() error { return nil }

// countingRecorder is a telemetry.Recorder that keeps plain counts.
type countingRecorder struct {
	mu      sync.Mutex
	served  map[string]int
	skipped map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{served: map[string]int{}, skipped: map[string]int{}}
}

func (r *countingRecorder) Served(domain, op, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.served[domain+"/"+op+"/"+source]++
}

func (r *countingRecorder) RemoteSkipped(domain, op, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped[domain+"/"+op+"/"+reason]++
}

type capturedErr struct {
	err  error
	tags map[string]string
}

type recordingReporter struct {
	mu   sync.Mutex
	errs []capturedErr
}

func (r *recordingReporter) Capture(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, capturedErr{err: err, tags: tags})
}

func (r *recordingReporter) Flush(time.Duration) bool { return true }

type fixture struct {
	svc      *DataService
	store    *localstore.Store
	remote   *fakeRemote
	rec      *countingRecorder
	reporter *recordingReporter
}

// newFixture builds a DataService over a fresh SQLite file. Pass nil for
// an unconfigured remote.
func newFixture(t *testing.T, rc *fakeRemote) *fixture {
	t.Helper()
	db, err := localstore.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := localstore.New(db, common.LocalKeyPrefix)
	rec := newCountingRecorder()
	rep := &recordingReporter{}

	deps := Deps{
		Local:    store,
		Logger:   logging.NewDiscardLogger(),
		Metrics:  rec,
		Reporter: rep,
	}
	if rc != nil {
		deps.Remote = rc
	}

	return &fixture{svc: New(deps), store: store, remote: rc, rec: rec, reporter: rep}
}

var _ telemetry.Recorder = (*countingRecorder)(nil)
var _ telemetry.Reporter = (*recordingReporter)(nil)
