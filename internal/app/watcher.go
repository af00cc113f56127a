package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/bayaz-archive/bayaz/internal/catalog"
)

const reloadDebounce = 200 * time.Millisecond

// Watcher reloads the catalog file when it changes on disk.
type Watcher struct {
	path     string
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
	debounce time.Duration
	reloads  chan *catalog.Catalog
	done     chan struct{}
	once     sync.Once
}

// WatchCatalog starts watching path. The parent directory is watched so
// editors that replace the file by rename are still observed.
func WatchCatalog(ctx context.Context, path string, logger *zap.Logger) (*Watcher, error) {
	return watchCatalog(ctx, path, logger, reloadDebounce)
}

func watchCatalog(ctx context.Context, path string, logger *zap.Logger, debounce time.Duration) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		logger:   logger,
		fsw:      fsw,
		debounce: debounce,
		reloads:  make(chan *catalog.Catalog, 1),
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	logger.Info("watching catalog", zap.String("path", abs))
	return w, nil
}

// Reloads delivers each successfully rebuilt catalog. Only the newest
// pending catalog is kept. The channel closes when the watcher stops.
func (w *Watcher) Reloads() <-chan *catalog.Catalog {
	return w.reloads
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.reloads)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("catalog changed", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cat, err := catalog.LoadFile(w.path)
	if err != nil {
		// Keep serving the previous catalog until the file is valid again.
		w.logger.Warn("catalog reload failed", zap.Error(err))
		return
	}
	w.logger.Info("catalog reloaded", zap.Int("songs", cat.Len()))
	select {
	case <-w.reloads:
	default:
	}
	w.reloads <- cat
}
