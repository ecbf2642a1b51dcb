package internal

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/ansuz/internal/notion"
	pkgconfig "github.com/starford/ansuz/pkg/config"
)

// WatchConfig observes the config file and rotates the upstream credential
// on change, until ctx is cancelled. The watch is placed on the containing
// directory because editors and secret managers typically replace the file
// rather than write it in place.
//
// A reload that fails validation (including an empty token) is logged and
// ignored; the previously loaded credential stays active.
func WatchConfig(ctx context.Context, path string, client *notion.Client, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("config watcher: started", slog.String("path", path))

	// reloadTimer debounces bursts of events from file replacement.
	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("config watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case <-reloadCh:
			reloadConfig(path, client, logger)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: error", slog.String("error", err.Error()))
		}
	}
}

func reloadConfig(path string, client *notion.Client, logger *slog.Logger) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		logger.Warn("config watcher: reload rejected", slog.String("error", err.Error()))
		return
	}
	client.SetToken(cfg.Notion.Token)
	logger.Info("config watcher: credential rotated")
}
