package runner

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"walkroute/core/launcher"

	"github.com/fsnotify/fsnotify"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Runner serves registered fiber applications. It implements launcher.Runner.
type Runner struct {
	registry        Registry
	logger          *zap.Logger
	watchPaths      []string
	reloadDelay     time.Duration
	shutdownTimeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithWatchPaths sets the files and directories watched when reload is on.
func WithWatchPaths(paths ...string) Option {
	return func(r *Runner) {
		r.watchPaths = paths
	}
}

// WithReloadDelay sets how long file events are collected before a reload.
func WithReloadDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.reloadDelay = d
		}
	}
}

// WithShutdownTimeout bounds the graceful shutdown of one instance.
func WithShutdownTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.shutdownTimeout = d
		}
	}
}

// New creates a Runner over the given registry.
func New(registry Registry, logger *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		registry:        registry,
		logger:          logger,
		watchPaths:      []string{"."},
		reloadDelay:     250 * time.Millisecond,
		shutdownTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ launcher.Runner = (*Runner)(nil)

// instance is one built application bound to a listener.
type instance struct {
	app  *fiber.App
	ln   net.Listener
	done chan error
}

// Run serves opts.App on opts.Host:opts.Port until ctx is cancelled or the
// server fails. With opts.Reload the application is rebuilt whenever a
// watched file changes.
func (r *Runner) Run(ctx context.Context, opts launcher.Options) error {
	factory, err := r.registry.Resolve(opts.App)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))

	app, err := factory()
	if err != nil {
		return fmt.Errorf("failed to build application %s: %w", opts.App, err)
	}

	current, err := r.serve(app, addr)
	if err != nil {
		return err
	}

	if !opts.Reload {
		select {
		case err := <-current.done:
			return err
		case <-ctx.Done():
			return r.stop(current)
		}
	}

	return r.runWithReload(ctx, factory, addr, current)
}

func (r *Runner) runWithReload(ctx context.Context, factory Factory, addr string, current *instance) error {
	w, err := newWatcher(r.logger)
	if err != nil {
		_ = r.stop(current)
		return err
	}
	defer w.Close()

	for _, path := range r.watchPaths {
		if err := w.addRecursive(path); err != nil {
			r.logger.Warn("Cannot watch path", zap.String("path", path), zap.Error(err))
		}
	}
	r.logger.Info("Watching for changes",
		zap.Strings("paths", r.watchPaths),
		zap.Duration("delay", r.reloadDelay))

	pending := time.NewTimer(r.reloadDelay)
	pending.Stop()
	defer pending.Stop()
	var changed string

	for {
		select {
		case <-ctx.Done():
			return r.stop(current)

		case err := <-current.done:
			return err

		case event, ok := <-w.fs.Events:
			if !ok {
				return r.stop(current)
			}
			if !w.handle(event) {
				continue
			}
			changed = event.Name
			pending.Reset(r.reloadDelay)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return r.stop(current)
			}
			r.logger.Warn("File watcher error", zap.Error(err))

		case <-pending.C:
			next, err := r.reload(factory, addr, current, changed)
			if err != nil {
				return err
			}
			current = next
		}
	}
}

// reload swaps current for a freshly built instance on the same address. When
// the build fails the current instance keeps serving.
func (r *Runner) reload(factory Factory, addr string, current *instance, changed string) (*instance, error) {
	r.logger.Info("Change detected, reloading", zap.String("file", changed))

	app, err := factory()
	if err != nil {
		r.logger.Error("Reload failed, keeping previous instance", zap.Error(err))
		return current, nil
	}

	if err := r.stop(current); err != nil {
		r.logger.Warn("Previous instance did not stop cleanly", zap.Error(err))
	}

	next, err := r.serve(app, addr)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// serve binds addr and starts app on it in the background.
func (r *Runner) serve(app *fiber.App, addr string) (*instance, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		_ = app.Shutdown()
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	inst := &instance{app: app, ln: ln, done: make(chan error, 1)}
	go func() {
		inst.done <- app.Listener(ln)
	}()

	r.logger.Info("Server listening", zap.String("addr", ln.Addr().String()))
	return inst, nil
}

// stop shuts inst down and waits for its serve loop to return.
func (r *Runner) stop(inst *instance) error {
	err := inst.app.ShutdownWithTimeout(r.shutdownTimeout)
	// Closing the listener also ends a serve loop that had not started yet.
	_ = inst.ln.Close()
	<-inst.done
	if err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	r.logger.Info("Server stopped", zap.String("addr", inst.ln.Addr().String()))
	return nil
}

// isWrite reports whether an event changes file content or layout.
func isWrite(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
