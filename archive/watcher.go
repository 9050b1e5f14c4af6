package archive

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher wraps fsnotify to reload a process-global Archive whenever
// its backing file changes on disk, triggered by the filesystem
// instead of only by a direct API call. It watches the containing directory rather
// than the file itself so that editors and atomic-rename saves (which
// replace the inode) are still observed.
type Watcher struct {
	archive *Archive
	path    string
	fsw     *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher constructs a Watcher for archive, backed by path. The
// caller must call Run to start processing events and Close to
// release the underlying OS watch.
func NewWatcher(a *Archive, path string, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{archive: a, path: filepath.Clean(path), fsw: fsw, logger: logger}, nil
}

// Run processes filesystem events until ctx is canceled or the
// underlying watcher is closed. It is intended to run in its own
// goroutine.
func (w *Watcher) Run(ctx context.Context) {
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
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.archive.Reload(w.path); err != nil {
				w.logger.Warn("archive reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.logger.Info("archive reloaded", zap.String("path", w.path), zap.Int("entries", w.archive.Len()))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("archive watcher error", zap.Error(err))
		}
	}
}

// Close releases the underlying OS watch.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
