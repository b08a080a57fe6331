package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultReloadDelay debounces bursts of write events from editors
const DefaultReloadDelay = 300 * time.Millisecond

// ReloadFunc receives the reloaded document, or the error that prevented loading it
type ReloadFunc func(doc *Document, err error)

// Watcher reloads a document whenever its file changes on disk
type Watcher struct {
	path         string
	logger       zerolog.Logger
	watcher      *fsnotify.Watcher
	reloadDelay  time.Duration
	lastModified time.Time
}

// NewWatcher watches the directory holding path. Editors that replace the file
// on save emit events for the directory entry, not the old inode.
func NewWatcher(path string, reloadDelay time.Duration, logger zerolog.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}
	if reloadDelay <= 0 {
		reloadDelay = DefaultReloadDelay
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch document directory '%s': %w", dir, err)
	}

	w := &Watcher{
		path:        absPath,
		logger:      logger.With().Str("component", "DocumentWatcher").Logger(),
		watcher:     fw,
		reloadDelay: reloadDelay,
	}
	if stat, err := os.Stat(absPath); err == nil {
		w.lastModified = stat.ModTime()
	}
	w.logger.Info().Str("directory", dir).Msg("Watching document for changes")
	return w, nil
}

// Run blocks until ctx is done, calling onReload after each settled change
func (w *Watcher) Run(ctx context.Context, onReload ReloadFunc) error {
	reloadTimer := time.NewTimer(0)
	reloadTimer.Stop()
	defer reloadTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Document watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) != 0 {
				w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Document change detected")
				reloadTimer.Reset(w.reloadDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("File watcher error")

		case <-reloadTimer.C:
			stat, err := os.Stat(w.path)
			if err != nil {
				// Mid-save rename, the Create event re-arms the timer.
				continue
			}
			if !stat.ModTime().After(w.lastModified) {
				continue
			}
			w.lastModified = stat.ModTime()

			doc, err := Load(w.path)
			if err != nil {
				w.logger.Error().Err(err).Msg("Failed to reload document")
			} else {
				w.logger.Info().Msg("Document reloaded")
			}
			onReload(doc, err)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
