package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/wieku/danser-sliders/framework/logger"
)

// watchConfig calls rebuild every time the file at path is written or replaced,
// until ctx is done. Rebuild errors are logged and don't stop the watcher.
func watchConfig(ctx context.Context, path string, log *logger.Logger, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// Editors often replace the file instead of writing it, so watch the directory
	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	log.WithFields(map[string]any{"path": abs}).Info("Watching config for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			log.Debug("Config changed")

			if err := rebuild(); err != nil {
				log.Error(err, "Rebuild failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Error(err, "Watcher error")
		}
	}
}
