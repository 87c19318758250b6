// Package daemon wires the configuration supervisor, its background
// watchers, and the Unix socket listener into one long-running process.
package daemon

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/kestrelwm/rpaperd/internal/config"
	"github.com/kestrelwm/rpaperd/internal/logging"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
	"github.com/kestrelwm/rpaperd/internal/process"
	"github.com/kestrelwm/rpaperd/internal/request"
)

// Options configures one daemon run.
type Options struct {
	ConfigPath string
	SocketPath string
	Verbose    bool
}

// Daemon holds the live config reference and the long-lived goroutines
// that keep it current.
type Daemon struct {
	opts   Options
	log    *logging.Logger
	runner process.Runner

	live atomic.Pointer[config.Config]
}

// New loads the initial configuration and constructs a Daemon. A config
// file that cannot be read at startup is fatal, matching the source's
// config-watcher boot panic.
func New(opts Options, log *logging.Logger) (*Daemon, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("daemon: cannot find config file at %s: %w", opts.ConfigPath, err)
	}

	d := &Daemon{opts: opts, log: log, runner: &process.ShellRunner{}}
	d.live.Store(cfg)
	return d, nil
}

// Snapshot returns a deep copy of the current live configuration, safe to
// hand to a single request's Handler.
func (d *Daemon) Snapshot() *config.Config {
	return d.live.Load().Clone()
}

// Run starts the background watchers and the socket listener, blocking
// until ctx is cancelled or the socket file is removed from disk.
func (d *Daemon) Run(ctx context.Context) error {
	startedAt := pathutil.UnixTimestampMillis()

	go d.watchDirectories(ctx)
	go d.watchConfig(ctx)

	if d.log != nil {
		d.log.Info("Daemon initialized in %dms.", pathutil.UnixTimestampMillis()-startedAt)
	}

	return RunListener(ctx, d.opts.SocketPath, d, d.log)
}

func (d *Daemon) watchDirectories(ctx context.Context) {
	dirs := pathutil.WellKnownDirs()
	events := make(chan config.DirEvent, len(dirs))
	go config.WatchDirectories(ctx, dirs, events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if d.log == nil {
				continue
			}
			if ev.Created {
				d.log.Info("Needed directory created: %s", ev.Dir)
			} else {
				d.log.Error("Unable to create needed directory %s: %v", ev.Dir, ev.Err)
			}
		}
	}
}

func (d *Daemon) watchConfig(ctx context.Context) {
	changed := make(chan string, 1)
	go func() {
		if err := config.Watch(ctx, d.opts.ConfigPath, changed); err != nil && d.log != nil {
			d.log.Error("config watcher stopped: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case raw := <-changed:
			cfg, err := config.LoadFromString(raw)
			if err != nil {
				continue
			}
			d.live.Store(cfg)
			if d.log != nil {
				d.log.Info("Config changed.")
			}
		}
	}
}

// NewHandler builds a request.Handler bound to the current config
// snapshot, for one socket connection.
func (d *Daemon) NewHandler() *request.Handler {
	return request.NewHandler(d.Snapshot(), d.runner, d.log)
}

// replyWaitTimeout bounds how long the listener waits for handling to
// finish before dropping a connection without a reply.
const replyWaitTimeout = 5 * time.Second
