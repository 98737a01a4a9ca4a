package csvsource

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-imports the events file whenever it is rewritten. The
// parent directory is watched rather than the file itself, because
// editors and deploy tooling usually replace the file (rename) instead
// of writing in place.
type Watcher struct {
	Path     string
	OnChange func(ctx context.Context)
	Logger   *slog.Logger
}

// Run blocks until the context is cancelled. Watch errors are logged
// and the loop keeps going; a hot-reload miss is not worth a crash.
func (w Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.Path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target := filepath.Clean(w.Path)
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("watching events file",
		"event", "catalog_watch_started",
		"module", "temporal-analysis/event-catalog-service",
		"layer", "adapter",
		"path", target,
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Info("events file changed, reimporting",
				"event", "catalog_file_changed",
				"module", "temporal-analysis/event-catalog-service",
				"layer", "adapter",
				"op", event.Op.String(),
			)
			if w.OnChange != nil {
				w.OnChange(ctx)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("events file watch error",
				"event", "catalog_watch_error",
				"module", "temporal-analysis/event-catalog-service",
				"layer", "adapter",
				"error", err.Error(),
			)
		}
	}
}
