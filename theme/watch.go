package theme

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ui"
)

// Watch reloads the theme file at path whenever it is written or replaced
// and passes each successfully loaded theme to onChange. Reload failures
// are logged and the previous theme stays in effect.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep being observed. Watch blocks until ctx
// is done and returns ctx.Err(), or returns early if the watcher fails.
func Watch(ctx context.Context, path string, onChange func(*Theme)) error {
	if _, err := FormatFor(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("theme: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("theme: watch %s: %w", path, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("theme: watch %s: %w", path, err)
	}

	log := ui.Logger().With("path", abs)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			t, err := Load(abs)
			if err != nil {
				log.Warn("theme: reload failed", "err", err)
				continue
			}
			log.Info("theme: reloaded", "theme", t.Name())
			onChange(t)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("theme: watcher error", "err", err)
		}
	}
}
