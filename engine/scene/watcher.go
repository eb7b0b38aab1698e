package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/korkuveren/MARS/engine/containers"
	"github.com/korkuveren/MARS/engine/core"
)

// Reload is the outcome of re-reading the scene file after it changed.
// Exactly one of Scene and Err is set.
type Reload struct {
	Scene *Scene
	Err   error
	At    time.Time
}

// Watcher reloads a scene file whenever it is written or replaced. Reloads
// queue up in a bounded buffer; when the consumer falls behind the oldest
// ones are dropped.
type Watcher struct {
	path string

	mutex    sync.Mutex
	queue    *containers.RingQueue[Reload]
	isClosed bool

	fsnotify *fsnotify.Watcher
	notify   chan struct{}
	done     chan struct{}
	stopped  chan struct{}
}

// NewWatcher starts watching the directory holding path. Editors often
// replace files instead of writing them in place, so the directory is
// watched rather than the file itself.
func NewWatcher(path string, capacity int) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		queue:    containers.NewRingQueue[Reload](capacity),
		fsnotify: fsWatch,
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("scene watcher: %s", err.Error())

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	r := Reload{Scene: s, Err: err, At: time.Now()}
	if err != nil {
		core.LogWarn("scene reload failed: %s", err.Error())
	} else {
		core.LogDebug("scene reloaded: %s (%d objects)", w.path, len(s.Objects))
	}

	w.mutex.Lock()
	if w.queue.Overwrite(r) {
		core.LogWarn("scene watcher: reload queue full, dropped the oldest reload")
	}
	w.mutex.Unlock()

	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Poll returns the oldest queued reload without blocking.
func (w *Watcher) Poll() (Reload, bool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	r, err := w.queue.Dequeue()
	return r, err == nil
}

// Pending returns the number of queued reloads.
func (w *Watcher) Pending() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.queue.Len()
}

// Next blocks until a reload is queued, ctx is done or the watcher closes.
// Reloads queued before Close are still delivered.
func (w *Watcher) Next(ctx context.Context) (Reload, error) {
	for {
		if r, ok := w.Poll(); ok {
			return r, nil
		}

		w.mutex.Lock()
		closed := w.isClosed
		w.mutex.Unlock()
		if closed {
			return Reload{}, core.ErrWatcherClosed
		}

		select {
		case <-ctx.Done():
			return Reload{}, ctx.Err()
		case <-w.notify:
		case <-w.done:
		}
	}
}

// Close stops watching. Later calls return core.ErrWatcherClosed.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}
