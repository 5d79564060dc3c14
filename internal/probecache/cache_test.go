package probecache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cratedig/internal/media/ffprobe"
)

func sampleSummary() ffprobe.Summary {
	return ffprobe.Summary{
		Duration:   215.4,
		Resolution: "1920x1080",
		VideoCodec: "h264",
		AudioCodec: "aac",
		Bitrate:    "2.7 Mbps",
		Framerate:  "29.97 fps",
		Filesize:   "70.0 MB",
	}
}

func mustOpen(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStorePutGet(t *testing.T) {
	store := mustOpen(t, filepath.Join(t.TempDir(), "probe.db"))
	ctx := context.Background()

	entry := Entry{Path: "/videos/clip.mp4", Size: 73400320, ModTime: 1700000000, Summary: sampleSummary()}
	if err := store.Put(ctx, entry); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, hit, err := store.Get(ctx, entry.Path, entry.Size, entry.ModTime)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got != entry.Summary {
		t.Errorf("summary = %+v, want %+v", got, entry.Summary)
	}

	cases := []struct {
		name  string
		path  string
		size  int64
		mtime int64
	}{
		{"different size", entry.Path, entry.Size + 1, entry.ModTime},
		{"different mtime", entry.Path, entry.Size, entry.ModTime + 1},
		{"unknown path", "/videos/other.mp4", entry.Size, entry.ModTime},
	}
	for _, tc := range cases {
		_, hit, err := store.Get(ctx, tc.path, tc.size, tc.mtime)
		if err != nil {
			t.Fatalf("%s: get: %v", tc.name, err)
		}
		if hit {
			t.Errorf("%s: expected miss", tc.name)
		}
	}
}

func TestStorePutReplacesRow(t *testing.T) {
	store := mustOpen(t, filepath.Join(t.TempDir(), "probe.db"))
	ctx := context.Background()

	first := Entry{Path: "/videos/clip.mp4", Size: 100, ModTime: 1, Summary: sampleSummary()}
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("put: %v", err)
	}

	second := first
	second.Size = 200
	second.ModTime = 2
	second.Summary.Resolution = "1280x720"
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("put replacement: %v", err)
	}

	if _, hit, _ := store.Get(ctx, first.Path, first.Size, first.ModTime); hit {
		t.Error("stale row should not match after replacement")
	}
	got, hit, err := store.Get(ctx, second.Path, second.Size, second.ModTime)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit for replaced row")
	}
	if got.Resolution != "1280x720" {
		t.Errorf("resolution = %q, want 1280x720", got.Resolution)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}
}

func TestStorePutRejectsEmptyPath(t *testing.T) {
	store := mustOpen(t, filepath.Join(t.TempDir(), "probe.db"))
	if err := store.Put(context.Background(), Entry{Summary: sampleSummary()}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.db")
	store := mustOpen(t, path)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := Entry{Path: fmt.Sprintf("/videos/clip-%d.mp4", i), Size: int64(i), ModTime: int64(i), Summary: sampleSummary()}
		if err := store.Put(ctx, entry); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Entries != 3 {
		t.Errorf("entries = %d, want 3", stats.Entries)
	}
	if stats.SizeBytes <= 0 {
		t.Errorf("size = %d, want > 0", stats.SizeBytes)
	}
	if stats.Path != path {
		t.Errorf("path = %q, want %q", stats.Path, path)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	stats, err = store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats after clear: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("entries after clear = %d, want 0", stats.Entries)
	}
	if _, hit, _ := store.Get(ctx, "/videos/clip-0.mp4", 0, 0); hit {
		t.Error("expected miss after clear")
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.db")
	ctx := context.Background()

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	entry := Entry{Path: "/videos/clip.mp4", Size: 100, ModTime: 1, Summary: sampleSummary()}
	if err := store.Put(ctx, entry); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := mustOpen(t, path)
	got, hit, err := reopened.Get(ctx, entry.Path, entry.Size, entry.ModTime)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after reopen")
	}
	if got != entry.Summary {
		t.Errorf("summary = %+v, want %+v", got, entry.Summary)
	}
}

func TestStoreRecreatesOnVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.db")
	ctx := context.Background()

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Put(ctx, Entry{Path: "/videos/clip.mp4", Size: 1, ModTime: 1, Summary: sampleSummary()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.db.ExecContext(ctx, "UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := mustOpen(t, path)
	if _, hit, _ := reopened.Get(ctx, "/videos/clip.mp4", 1, 1); hit {
		t.Error("expected empty cache after version mismatch")
	}
	stats, err := reopened.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("entries = %d, want 0", stats.Entries)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "probe.db")
	store := mustOpen(t, path)
	if err := store.Put(context.Background(), Entry{Path: "/v/x.mp4", Size: 1, ModTime: 1, Summary: sampleSummary()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("   ", nil); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestStoreConcurrentPuts(t *testing.T) {
	store := mustOpen(t, filepath.Join(t.TempDir(), "probe.db"))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := Entry{Path: fmt.Sprintf("/videos/clip-%d.mp4", i), Size: int64(i), ModTime: int64(i), Summary: sampleSummary()}
			if err := store.Put(ctx, entry); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent put: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Entries != 8 {
		t.Errorf("entries = %d, want 8", stats.Entries)
	}
}
