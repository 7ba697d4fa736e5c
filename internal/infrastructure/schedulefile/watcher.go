package schedulefile

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the schedule when a schedule file changes on disk, so an
// edit lands without waiting for a manual reload command. It watches the
// parent directories rather than the files themselves because most editors
// replace files on save, which would drop a per-file watch.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching the given file paths and calls onChange after
// any of them is written, created or renamed. Rapid event bursts are
// debounced.
func NewWatcher(paths []string, onChange func()) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		onChange: onChange,
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	var debounce *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err != nil || !w.files[abs] {
				continue
			}
			// Debounce rapid save events into one reload.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️ schedule watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
