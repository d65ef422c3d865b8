package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/config"
	"github.com/dmitrijs2005/driverhelper/internal/client/services"
	"github.com/dmitrijs2005/driverhelper/internal/logging"
)

type Mode string

const (
	// ModeLocal means no remote store is configured at all.
	ModeLocal   Mode = "local"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	data   *services.DataService
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu       sync.RWMutex
	mode     Mode
	userName string
}

// NewApp builds the REPL over data. Input is read from stdin and output
// goes to stdout.
func NewApp(c *config.Config, data *services.DataService, logger logging.Logger) *App {
	a := &App{
		config: c,
		data:   data,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		mode:   ModeLocal,
	}
	if data.RemoteConfigured() {
		a.mode = ModeOffline
	}
	return a
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) setUserName(name string) {
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := string(a.mode)
	if a.userName != "" {
		s = a.userName + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// checkOnline pings the remote store once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	if !a.data.RemoteConfigured() {
		a.setMode(ctx, ModeLocal)
		return
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.data.Ping(pctx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "remote ping failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher checks connectivity right away and then every
// interval until ctx is done. A non-positive interval disables the watcher.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Run starts the watcher and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if p := a.data.User.Current(ctx); p != nil {
		a.setUserName(p.Name)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to Driver Helper CLI (type 'help' for commands)")
	runREPL(ctx, a.commands(), a.getStatus, a.reader, a.out)
}
