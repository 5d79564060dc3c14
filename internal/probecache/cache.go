package probecache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cratedig/internal/logging"
	"cratedig/internal/media/ffprobe"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. A cache opened with a
// different version starts empty rather than refusing to open.
const schemaVersion = 1

const (
	sqliteBusy    = 5
	busyAttempts  = 5
	busyBaseDelay = 10 * time.Millisecond
	busyMaxDelay  = 200 * time.Millisecond
)

// Entry records one probed file.
type Entry struct {
	Path    string
	Size    int64
	ModTime int64
	Summary ffprobe.Summary
}

// Stats describes the cache database.
type Stats struct {
	Entries   int64
	SizeBytes int64
	Path      string
}

// Store manages probe summary persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the cache database, creating parent
// directories as needed.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("probe cache path cannot be empty")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "probecache")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, logger: logger}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path reports the database file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached summary for path when both size and mtime match
// the stored row. Any other outcome is a miss.
func (s *Store) Get(ctx context.Context, path string, size, mtime int64) (ffprobe.Summary, bool, error) {
	ctx = defaultContext(ctx)

	var summary ffprobe.Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT duration, resolution, video_codec, audio_codec, bitrate, framerate, filesize
		 FROM probe_results
		 WHERE path = ? AND size = ? AND mtime = ?`,
		path, size, mtime,
	).Scan(
		&summary.Duration,
		&summary.Resolution,
		&summary.VideoCodec,
		&summary.AudioCodec,
		&summary.Bitrate,
		&summary.Framerate,
		&summary.Filesize,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ffprobe.Summary{}, false, nil
	}
	if err != nil {
		return ffprobe.Summary{}, false, fmt.Errorf("query probe cache: %w", err)
	}
	return summary, true, nil
}

// Put inserts or replaces the row for entry.Path.
func (s *Store) Put(ctx context.Context, entry Entry) error {
	if strings.TrimSpace(entry.Path) == "" {
		return errors.New("cache entry path cannot be empty")
	}
	ctx = defaultContext(ctx)

	err := s.execWithRetry(ctx,
		`INSERT INTO probe_results
		 (path, size, mtime, duration, resolution, video_codec, audio_codec, bitrate, framerate, filesize, probed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		 size = excluded.size,
		 mtime = excluded.mtime,
		 duration = excluded.duration,
		 resolution = excluded.resolution,
		 video_codec = excluded.video_codec,
		 audio_codec = excluded.audio_codec,
		 bitrate = excluded.bitrate,
		 framerate = excluded.framerate,
		 filesize = excluded.filesize,
		 probed_at = excluded.probed_at`,
		entry.Path, entry.Size, entry.ModTime,
		entry.Summary.Duration, entry.Summary.Resolution, entry.Summary.VideoCodec,
		entry.Summary.AudioCodec, entry.Summary.Bitrate, entry.Summary.Framerate,
		entry.Summary.Filesize, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store probe result: %w", err)
	}

	s.logger.Debug("cached probe result", logging.String(logging.FieldPath, entry.Path))
	return nil
}

// Stats reports the entry count and database file size.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = defaultContext(ctx)

	stats := Stats{Path: s.path}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM probe_results").Scan(&stats.Entries); err != nil {
		return Stats{}, fmt.Errorf("count cache entries: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats, nil
}

// Clear removes all entries and compacts the database file.
func (s *Store) Clear(ctx context.Context) error {
	ctx = defaultContext(ctx)

	if err := s.execWithRetry(ctx, "DELETE FROM probe_results"); err != nil {
		return fmt.Errorf("clear probe cache: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("compact probe cache: %w", err)
	}

	s.logger.Debug("cleared probe cache", logging.String(logging.FieldPath, s.path))
	return nil
}

func defaultContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) && coded.Code() == sqliteBusy {
		return true
	}
	text := err.Error()
	return strings.Contains(text, "SQLITE_BUSY") || strings.Contains(text, "database is locked")
}

// execWithRetry retries writes that lose a lock race. Reads go through the
// busy_timeout pragma instead.
func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	delay := busyBaseDelay
	for attempt := 1; ; attempt++ {
		_, err := s.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if attempt == busyAttempts || !isSQLiteBusy(err) {
			return err
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
		if delay > busyMaxDelay {
			delay = busyMaxDelay
		}
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	var haveTable int
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'schema_version')",
	).Scan(&haveTable)
	if err != nil {
		return fmt.Errorf("look up schema_version: %w", err)
	}
	if haveTable == 0 {
		return s.rebuildSchema(ctx, false)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) || version != schemaVersion {
		s.logger.Warn("probe cache schema changed, starting empty",
			logging.Int("have_version", version),
			logging.Int("want_version", schemaVersion))
		return s.rebuildSchema(ctx, true)
	}

	return nil
}

// rebuildSchema applies schema.sql and stamps the version. With dropExisting
// it first discards the old table, which is how a version mismatch resets the
// cache.
func (s *Store) rebuildSchema(ctx context.Context, dropExisting bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if dropExisting {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS probe_results"); err != nil {
			return fmt.Errorf("drop probe_results: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM schema_version"); err != nil {
			return fmt.Errorf("reset schema version: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema changes: %w", err)
	}
	return nil
}
