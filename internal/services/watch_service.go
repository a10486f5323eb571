package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"elenavasquez.com/internal/content"
	"elenavasquez.com/internal/models"
)

// DefaultDebounce coalesces the burst of events an editor emits per save
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads site content when the content file changes on disk
type Watcher struct {
	path     string
	sites    *SiteService
	logger   *zap.Logger
	debounce time.Duration
	load     func(string) (*models.Site, error)
}

// NewWatcher creates a Watcher for the content file at path
func NewWatcher(path string, sites *SiteService, logger *zap.Logger) *Watcher {
	return &Watcher{
		path:     path,
		sites:    sites,
		logger:   logger,
		debounce: DefaultDebounce,
		load:     content.Load,
	}
}

// SetDebounce changes the quiet period required before a reload
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run watches until ctx is cancelled. A reload that fails validation keeps
// the previous content in place.
func (w *Watcher) Run(ctx context.Context) error {
	path, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve content path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory: editors often save by renaming a temp file over
	// the original, which drops a watch placed on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	w.logger.Info("watching content", zap.String("path", path))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("content watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.reload(path)
		}
	}
}

func (w *Watcher) reload(path string) {
	site, err := w.load(path)
	if err != nil {
		w.logger.Error("content reload failed, keeping previous content", zap.String("path", path), zap.Error(err))
		return
	}
	w.sites.Replace(site)
	w.logger.Info("content reloaded", zap.String("path", path), zap.Int("projects", len(site.Projects)))
}
