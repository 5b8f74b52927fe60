package levels

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last write before a change is
// reported; editors typically write a file in several steps.
const debounce = 100 * time.Millisecond

// Watcher reports changes to a single level file. It watches the parent
// directory so atomic-rename saves are seen too.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the
// background goroutine exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	var settled <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			timer.Reset(debounce)
			settled = timer.C
		case <-settled:
			settled = nil
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
