package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"

	"cratedig/internal/logging"
	"cratedig/internal/scan"
	"cratedig/internal/textutil"
)

// Options configures a Watcher.
type Options struct {
	// Scanner processes settled files into records.
	Scanner *scan.Scanner
	// Logger receives watch lifecycle and per-file events. Nil means no
	// logging.
	Logger *slog.Logger
	// Settle is how long a file must go without write events before it is
	// processed. Zero processes files immediately.
	Settle time.Duration
	// OnRecord is invoked for every processed file, in settle order.
	OnRecord func(scan.Record)
}

// Watcher follows a directory and processes video files as they appear.
type Watcher struct {
	root     string
	scanner  *scan.Scanner
	logger   *slog.Logger
	settle   time.Duration
	onRecord func(scan.Record)

	lock    *flock.Flock
	watcher *fsnotify.Watcher

	// pending maps absolute paths to the time they may be processed.
	pending map[string]time.Time
}

// New validates root, acquires the per-directory lock, and registers the
// filesystem watcher. Callers must Close the returned Watcher.
func New(root string, opts Options) (*Watcher, error) {
	if opts.Scanner == nil {
		return nil, errors.New("watch: scanner is required")
	}

	if err := scan.ValidateRoot(root); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	settle := opts.Settle
	if settle < 0 {
		settle = 0
	}

	lock := flock.New(LockPath(abs))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire watch lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another cratedig watcher is already running for %s", abs)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(abs); err != nil {
		_ = watcher.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("watch %s: %w", abs, err)
	}

	return &Watcher{
		root:     abs,
		scanner:  opts.Scanner,
		logger:   logger,
		settle:   settle,
		onRecord: opts.OnRecord,
		lock:     lock,
		watcher:  watcher,
		pending:  make(map[string]time.Time),
	}, nil
}

// Root returns the absolute directory being watched.
func (w *Watcher) Root() string {
	return w.root
}

// LockPath returns the lock file guarding watch mode for root. One file per
// directory, under the system temp dir, so stale locks vanish on reboot.
func LockPath(root string) string {
	return filepath.Join(os.TempDir(), "cratedig-watch-"+textutil.SanitizeToken(root)+".lock")
}

// Run processes events until ctx is canceled. Files keep their pending
// deadline pushed back while write events arrive; once a file goes quiet for
// the settle delay it is probed, parsed, and handed to OnRecord.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watching directory",
		logging.String(logging.FieldPath, w.root),
		logging.Duration("settle", w.settle))

	// Armed only while files are pending. A spurious fire is harmless
	// because processDue re-checks each deadline.
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
			w.armTimer(timer)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logging.Error(err))
		case <-timer.C:
			w.processDue(ctx)
			w.armTimer(timer)
		}
	}
}

// Close releases the filesystem watcher and the directory lock.
func (w *Watcher) Close() error {
	var errs []error
	if w.watcher != nil {
		if err := w.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		w.watcher = nil
	}
	if w.lock != nil {
		if err := w.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
		w.lock = nil
	}
	return errors.Join(errs...)
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !scan.IsVideoFile(filepath.Base(event.Name)) {
		return
	}
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create,
		event.Op&fsnotify.Write == fsnotify.Write:
		w.pending[event.Name] = time.Now().Add(w.settle)
		w.logger.Debug("file pending",
			logging.String(logging.FieldPath, event.Name),
			logging.String("op", event.Op.String()))
	case event.Op&fsnotify.Remove == fsnotify.Remove,
		event.Op&fsnotify.Rename == fsnotify.Rename:
		delete(w.pending, event.Name)
	}
}

func (w *Watcher) armTimer(timer *time.Timer) {
	if len(w.pending) == 0 {
		return
	}
	next := time.Time{}
	for _, due := range w.pending {
		if next.IsZero() || due.Before(next) {
			next = due
		}
	}
	wait := time.Until(next)
	if wait < 0 {
		wait = 0
	}
	timer.Reset(wait)
}

func (w *Watcher) processDue(ctx context.Context) {
	now := time.Now()
	var due []string
	for path, deadline := range w.pending {
		if !deadline.After(now) {
			due = append(due, path)
		}
	}
	sort.Strings(due)

	for _, path := range due {
		delete(w.pending, path)
		if ctx.Err() != nil {
			return
		}
		if _, err := os.Stat(path); err != nil {
			w.logger.Debug("pending file vanished", logging.String(logging.FieldPath, path))
			continue
		}
		record := w.scanner.ProcessFile(ctx, path)
		w.logger.Info("processed file",
			logging.String(logging.FieldPath, path),
			logging.String("type", string(record.Type)))
		if w.onRecord != nil {
			w.onRecord(record)
		}
	}
}
