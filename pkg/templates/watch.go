package templates

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the registry when templates.yaml changes on disk or when
// the process receives SIGHUP.
type Watcher struct {
	registry *Registry
	fsw      *fsnotify.Watcher
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewWatcher starts watching the registry's config directory. Call Stop to
// release the inotify handle.
func NewWatcher(ctx context.Context, registry *Registry) (*Watcher, error) {
	if registry.configDir == "" {
		return nil, fmt.Errorf("registry has no config directory to watch")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(registry.configDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", registry.configDir, err)
	}

	wctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		registry: registry,
		fsw:      fsw,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	go func() {
		defer close(w.done)
		defer signal.Stop(hup)
		target := filepath.Join(registry.configDir, templatesFileName)
		for {
			select {
			case <-wctx.Done():
				return
			case <-hup:
				w.reload("SIGHUP")
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				if evt.Name != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.reload("file change")
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				slog.Warn("Template watcher error", "error", err)
			}
		}
	}()
	return w, nil
}

func (w *Watcher) reload(trigger string) {
	if err := w.registry.Reload(); err != nil {
		slog.Error("Template reload failed, keeping previous set", "trigger", trigger, "error", err)
		return
	}
	slog.Info("Templates reloaded", "trigger", trigger)
}

// Stop halts watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.fsw.Close()
	<-w.done
}
