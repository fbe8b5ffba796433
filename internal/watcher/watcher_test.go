package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) handle(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, path)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func startWatcher(t *testing.T, files ...string) *recorder {
	t.Helper()

	rec := &recorder{}
	w := New(rec.handle)
	w.SetDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(t.Context())
	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, files, started)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not start")
	}
	return rec
}

func TestWatcherDebouncesWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := filepath.Join(dir, "icons.json")
	rec := startWatcher(t, store)

	for range 5 {
		require.NoError(t, os.WriteFile(store, []byte("[]"), 0o644))
	}

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	require.Equal(t, []string{store}, rec.snapshot())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	members := filepath.Join(dir, "project-icons.json")
	rec := startWatcher(t, members)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.ts"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Empty(t, rec.snapshot())

	require.NoError(t, os.WriteFile(members, []byte(`["a"]`), 0o644))
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherSeesRenameOver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := filepath.Join(dir, "icons.json")
	rec := startWatcher(t, store)

	tmp := filepath.Join(dir, ".icons.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("[]"), 0o644))
	require.NoError(t, os.Rename(tmp, store))

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherMissingDirectory(t *testing.T) {
	t.Parallel()

	rec := startWatcher(t, filepath.Join(t.TempDir(), "nope", "icons.json"))
	require.Empty(t, rec.snapshot())
}
