// Package daemon runs the renderer shell: it enforces single-instance
// execution with a lock file, writes the pid file, and holds the process open
// until a shutdown signal arrives. Playback events reach it through the
// transport observers it hands out.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"gorender/internal/config"
	"gorender/internal/history"
	"gorender/internal/logging"
	"gorender/internal/transport"
)

// Daemon coordinates the renderer shell and enforces single-instance
// execution.
type Daemon struct {
	cfg      *config.Config
	facility *logging.Facility
	store    *history.Store

	lockPath string
	lock     *flock.Flock

	transportObs *transport.Observer
	controlObs   *transport.Observer

	running bool
}

// New constructs a daemon with initialized dependencies. The history store
// may be nil when no database is configured.
func New(cfg *config.Config, facility *logging.Facility, store *history.Store) (*Daemon, error) {
	if cfg == nil || facility == nil {
		return nil, errors.New("daemon requires config and logging facility")
	}

	return &Daemon{
		cfg:          cfg,
		facility:     facility,
		store:        store,
		lockPath:     cfg.Paths.LockFile,
		lock:         flock.New(cfg.Paths.LockFile),
		transportObs: transport.NewObserver(facility, store, "transport"),
		controlObs:   transport.NewObserver(facility, nil, "control"),
	}, nil
}

// TransportObserver returns the observer for AV transport state variables.
func (d *Daemon) TransportObserver() *transport.Observer {
	return d.transportObs
}

// ControlObserver returns the observer for rendering control variables.
func (d *Daemon) ControlObserver() *transport.Observer {
	return d.controlObs
}

// Start acquires the single-instance lock and writes the pid file. Unwritable
// state destinations are reported but do not prevent startup; the facility
// already degrades them to no-ops.
func (d *Daemon) Start() error {
	if d.running {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another gorender instance is already running")
	}

	if err := d.writePIDFile(); err != nil {
		_ = d.lock.Unlock()
		return err
	}

	d.reportUnwritableDestinations()
	d.running = true
	return nil
}

// Stop releases the lock and removes the pid file.
func (d *Daemon) Stop() {
	if !d.running {
		return
	}
	d.removePIDFile()
	if err := d.lock.Unlock(); err != nil {
		d.facility.Error("main", "release daemon lock: %v", err)
	}
	d.running = false
}

// Run starts the shell and blocks until the context is canceled, typically by
// SIGINT or SIGTERM.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.Start(); err != nil {
		return err
	}
	defer d.Stop()

	d.facility.Printf(0, "main", "Ready for rendering.")
	if d.facility.InfoEnabled() {
		// Echo to the console as well; the log may be a file nobody watches.
		fmt.Fprintln(os.Stderr, "Ready for rendering.")
	}

	<-ctx.Done()

	d.facility.Printf(0, "main", "Exiting.")
	return nil
}

func (d *Daemon) writePIDFile() error {
	path := d.cfg.Paths.PIDFile
	if path == "" {
		return nil
	}
	contents := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write pid file %q: %w", path, err)
	}
	return nil
}

func (d *Daemon) removePIDFile() {
	if d.cfg.Paths.PIDFile == "" {
		return
	}
	if err := os.Remove(d.cfg.Paths.PIDFile); err != nil && !os.IsNotExist(err) {
		d.facility.Error("main", "remove pid file: %v", err)
	}
}
