package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// videoExtensions are the container suffixes a scan considers.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".webm": {},
	".avi":  {},
	".mpg":  {},
	".mpeg": {},
	".mov":  {},
	".wmv":  {},
	".flv":  {},
}

// ErrNotDirectory reports a scan root that is missing or not a directory.
var ErrNotDirectory = errors.New("not a valid directory")

// IsVideoFile reports whether name carries a recognized video extension.
// A bare extension such as ".mp4" is a hidden file, not a video.
func IsVideoFile(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	_, ok := videoExtensions[strings.ToLower(ext)]
	return ok
}

// ValidateRoot confirms root exists, is a directory, and is listable.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", root, ErrNotDirectory)
	}
	if err := unix.Access(root, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("directory %s is not readable: %w", root, err)
	}
	return nil
}

// ListVideos returns the video files directly under root in lexicographic
// order. Subdirectories are not descended. Symlinks count when they resolve
// to regular files.
func ListVideos(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", root, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsVideoFile(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}
