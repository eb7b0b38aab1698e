package scene

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/korkuveren/MARS/engine/core"
)

func sceneWithObject(name string) string {
	return validCamera + "\n[[objects]]\nname = \"" + name + "\"\npoints = [[0.0, 0.0, 0.0]]\n"
}

// replaceFile writes through a temporary file and a rename so the watcher
// never reads a half-written scene.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename %s: %v", tmp, err)
	}
}

// nextMatching waits for a reload accepted by match, skipping the others.
func nextMatching(t *testing.T, w *Watcher, match func(Reload) bool) Reload {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		r, err := w.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if match(r) {
			return r
		}
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	replaceFile(t, path, sceneWithObject("first"))

	w, err := NewWatcher(path, 4)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// A file next to the scene does not trigger a reload.
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	replaceFile(t, path, sceneWithObject("second"))
	r := nextMatching(t, w, func(r Reload) bool { return r.Err == nil })
	if got := r.Scene.Objects[0].Name; got != "second" {
		t.Errorf("reloaded object: got %q, want %q", got, "second")
	}
	if r.Scene.Path != w.Path() {
		t.Errorf("reloaded path: got %q, want %q", r.Scene.Path, w.Path())
	}

	replaceFile(t, path, "[camera]\nnear = -1\n")
	r = nextMatching(t, w, func(r Reload) bool { return r.Err != nil })
	if !errors.Is(r.Err, core.ErrInvalidScene) || r.Scene != nil {
		t.Errorf("broken file: got %v, %v", r.Scene, r.Err)
	}
}

func TestWatcherNextHonoursContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	replaceFile(t, path, sceneWithObject("only"))

	w, err := NewWatcher(path, 1)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := w.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want %v", err, context.DeadlineExceeded)
	}
	if _, ok := w.Poll(); ok {
		t.Errorf("Poll returned a reload nobody triggered")
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	replaceFile(t, path, sceneWithObject("only"))

	w, err := NewWatcher(path, 1)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); !errors.Is(err, core.ErrWatcherClosed) {
		t.Errorf("second Close: got %v, want %v", err, core.ErrWatcherClosed)
	}
	if _, err := w.Next(context.Background()); !errors.Is(err, core.ErrWatcherClosed) {
		t.Errorf("Next after Close: got %v, want %v", err, core.ErrWatcherClosed)
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "scene.toml"), 1); err == nil {
		t.Errorf("watching a missing directory succeeded")
	}
}
