package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates path with size bytes of filler, creating parent
// directories as needed. Fixtures are placeholders only; tests stub ffprobe,
// so real container bytes are never required.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'v'}, int(size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteVideo creates a small placeholder video file and pins its mtime so
// file-date assertions stay stable across test runs.
func WriteVideo(t testing.TB, dir, name string, mtime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, 64)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
	return path
}
