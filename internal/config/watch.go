package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// FileWatcher reports changes to a single file. It watches the parent
// directory so that editors which replace the file on save are handled.
type FileWatcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// NewFileWatcher starts watching the directory containing path. The
// directory must exist; the file itself need not.
func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &FileWatcher{path: abs, fsw: fsw, debounce: debounce}, nil
}

// Run calls onChange after the file is written, created, or renamed into
// place, coalescing bursts of events. It returns when ctx is cancelled or
// the watcher fails.
func (w *FileWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.fsw.Close()

	var timer *time.Timer
	fired := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			})

		case <-fired:
			onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}
