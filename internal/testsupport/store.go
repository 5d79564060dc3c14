package testsupport

import (
	"context"
	"testing"

	"cratedig/internal/logging"
	"cratedig/internal/media/ffprobe"
	"cratedig/internal/probecache"
)

// MustOpenCache opens a probecache.Store for tests and registers cleanup.
func MustOpenCache(t testing.TB, path string) *probecache.Store {
	t.Helper()

	store, err := probecache.Open(path, logging.NewNop())
	if err != nil {
		t.Fatalf("probecache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedCacheEntry stores a probe summary for tests using the provided store.
func SeedCacheEntry(t testing.TB, store *probecache.Store, path string, size, mtime int64, summary ffprobe.Summary) {
	t.Helper()

	err := store.Put(context.Background(), probecache.Entry{
		Path:    path,
		Size:    size,
		ModTime: mtime,
		Summary: summary,
	})
	if err != nil {
		t.Fatalf("store.Put: %v", err)
	}
}
