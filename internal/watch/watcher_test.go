package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/udostore/pkg/persist"
	"github.com/bft-labs/udostore/pkg/udo"
)

func waitFor(t *testing.T, ch <-chan udo.Udo, want udo.Udo) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-ch:
			if got.Equal(want) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "udo.json")
	c := persist.Open(path)
	if err := c.Save(udo.Udo{"a": "1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	changes := make(chan udo.Udo, 16)
	w := NewWatcher(c, path, 20*time.Millisecond, nil, func(u udo.Udo) { changes <- u })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitFor(t, changes, udo.Udo{"a": "1"})

	// Legacy text written by another process is picked up.
	if err := os.WriteFile(path, []byte("a=2&b=3"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, changes, udo.Udo{"a": "2", "b": "3"})

	// Atomic saves (temp file + rename) are picked up too.
	if err := persist.Open(path).Save(udo.Udo{"c": "4"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	waitFor(t, changes, udo.Udo{"c": "4"})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestWatcherSkipsMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "udo.json")
	c := persist.Open(path)

	called := false
	w := NewWatcher(c, path, time.Millisecond, nil, func(udo.Udo) { called = true })
	w.reload()

	if called {
		t.Fatal("onChange called for a missing file")
	}
	if c.Exists() {
		t.Fatal("reload wrote a default for a missing file")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "udo.json")
	w := NewWatcher(persist.Open(path), path, 0, nil, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}

func TestWatcherLeavesCorruptFileAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "udo.json")
	c := persist.Open(path)
	if err := c.Save(udo.Udo{"a": "1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	changes := make(chan udo.Udo, 16)
	w := NewWatcher(c, path, 20*time.Millisecond, nil, func(u udo.Udo) { changes <- u })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	waitFor(t, changes, udo.Udo{"a": "1"})

	partial := `{"a":"1","b":`
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(300 * time.Millisecond)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != partial {
		t.Fatalf("watcher rewrote the file to %q", data)
	}
	select {
	case u := <-changes:
		t.Fatalf("watcher emitted %v for undecodable text", u)
	default:
	}

	// Once the writer finishes, the complete mapping is emitted.
	if err := os.WriteFile(path, []byte(`{"a":"1","b":"2"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, changes, udo.Udo{"a": "1", "b": "2"})

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}

func TestWatcherNoEmitAfterShutdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "udo.json")
	c := persist.Open(path)
	if err := c.Save(udo.Udo{"a": "1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	calls := 0
	w := NewWatcher(c, path, time.Millisecond, nil, func(udo.Udo) { calls++ })
	w.schedule()
	w.shutdown()
	w.emit()
	time.Sleep(20 * time.Millisecond)

	if calls != 0 {
		t.Fatalf("onChange called %d times after shutdown", calls)
	}
}
