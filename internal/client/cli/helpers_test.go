package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/driverhelper/internal/client/config"
	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/client/services"
	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/logging"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/stretchr/testify/require"
)

// pingRemote is configured but serves nothing except Ping.
type pingRemote struct {
	remote.Unconfigured
	err error
}

func (pingRemote) Configured() bool { return true }

func (p pingRemote) Ping(context.Context) error { return p.err }

type testApp struct {
	*App
	out *bytes.Buffer
}

// newTestApp builds an App over a fresh SQLite file. rc may be nil for an
// unconfigured remote.
func newTestApp(t *testing.T, rc remote.Client) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LocalDBPath = filepath.Join(t.TempDir(), "local.db")

	db, err := localstore.InitDatabase(context.Background(), cfg.LocalDBPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	deps := services.Deps{
		Local:  localstore.New(db, common.LocalKeyPrefix),
		Logger: logging.NewDiscardLogger(),
	}
	if rc != nil {
		deps.Remote = rc
	}

	app := NewApp(cfg, services.New(deps), logging.NewDiscardLogger())
	out := &bytes.Buffer{}
	app.out = out
	app.reader = bufio.NewReader(strings.NewReader(""))
	return &testApp{App: app, out: out}
}

// input replaces the pending user input with lines.
func (ta *testApp) input(lines ...string) {
	ta.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// run executes one command handler with the given input lines and returns
// what it printed.
func (ta *testApp) run(t *testing.T, fn handler, args []string, lines ...string) string {
	t.Helper()
	ta.input(lines...)
	ta.out.Reset()
	require.NoError(t, fn(context.Background(), args))
	return ta.out.String()
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(w io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = old })
}
