package scan

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"cratedig/internal/classify"
	"cratedig/internal/filename"
	"cratedig/internal/logging"
	"cratedig/internal/media/ffprobe"
	"cratedig/internal/probecache"
)

const (
	defaultProbeTimeout = 60 * time.Second
	defaultConcurrency  = 4
)

// Options configures a Scanner. Zero values fall back to defaults; a nil
// Cache disables caching.
type Options struct {
	Probe            *ffprobe.Client
	Cache            *probecache.Store
	Logger           *slog.Logger
	ThresholdSeconds int
	ProbeTimeout     time.Duration
	Concurrency      int
}

// Scanner turns directories of video files into Records.
type Scanner struct {
	probe       *ffprobe.Client
	cache       *probecache.Store
	logger      *slog.Logger
	threshold   int
	timeout     time.Duration
	concurrency int
}

// New returns a Scanner with defaults applied.
func New(opts Options) *Scanner {
	probe := opts.Probe
	if probe == nil {
		probe = ffprobe.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	threshold := opts.ThresholdSeconds
	if threshold <= 0 {
		threshold = classify.DefaultThresholdSeconds
	}
	timeout := opts.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Scanner{
		probe:       probe,
		cache:       opts.Cache,
		logger:      logging.NewComponentLogger(logger, "scan"),
		threshold:   threshold,
		timeout:     timeout,
		concurrency: concurrency,
	}
}

// Scan processes every video file directly under root and returns one
// Record per file in walker order.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Record, error) {
	if err := ValidateRoot(root); err != nil {
		return nil, err
	}
	paths, err := ListVideos(root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	logger := s.logger.With(logging.String(logging.FieldSessionID, uuid.NewString()))
	logger.Info("scan started",
		logging.String(logging.FieldPath, root),
		logging.Int(logging.FieldCount, len(paths)),
		logging.String("binary", s.probe.Binary()))

	records := make([]Record, len(paths))
	jobs := make(chan int)
	workers := s.concurrency
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				records[idx] = s.processFile(ctx, logger, paths[idx])
			}
		}()
	}

send:
	for idx := range paths {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break send
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(map[classify.Category]int)
	for _, rec := range records {
		counts[rec.Type]++
	}
	logger.Info("scan finished",
		logging.Int(logging.FieldCount, len(records)),
		logging.Int("music_videos", counts[classify.CategoryMusicVideo]),
		logging.Int("live_sets", counts[classify.CategoryLiveSet]),
		logging.Int("live_performances", counts[classify.CategoryLivePerformance]),
		logging.Int("unknown", counts[classify.CategoryUnknown]))

	return records, nil
}

// ProcessFile builds the Record for a single path. Watch mode uses this to
// handle one new file without rescanning the directory.
func (s *Scanner) ProcessFile(ctx context.Context, path string) Record {
	return s.processFile(ctx, s.logger, path)
}

func (s *Scanner) processFile(ctx context.Context, logger *slog.Logger, path string) Record {
	summary, fileDate := s.probeFile(ctx, logger, path)

	name := filepath.Base(path)
	parsed := filename.Parse(name)
	category, confidence := classify.Classify(summary.Duration, parsed.Live, s.threshold)

	duration := "unknown"
	if summary.Duration > 0 {
		duration = ffprobe.FormatDuration(summary.Duration)
	}

	return Record{
		Filename:        name,
		Artist:          parsed.Artist,
		Title:           parsed.Title,
		Duration:        duration,
		DurationSeconds: summary.Duration,
		Type:            category,
		Confidence:      confidence,
		Resolution:      summary.Resolution,
		VideoCodec:      summary.VideoCodec,
		AudioCodec:      summary.AudioCodec,
		Bitrate:         summary.Bitrate,
		Framerate:       summary.Framerate,
		Filesize:        summary.Filesize,
		FileDate:        fileDate,
		ReleaseGroup:    parsed.ReleaseGroup,
	}
}

// probeFile resolves the summary for path, consulting the cache when the
// file statted cleanly. Failures degrade to UnknownSummary and are never
// cached so a later scan can retry.
func (s *Scanner) probeFile(ctx context.Context, logger *slog.Logger, path string) (ffprobe.Summary, string) {
	fileDate := "unknown"
	var size, mtime int64
	statOK := false
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
		mtime = info.ModTime().Unix()
		fileDate = info.ModTime().Format("2006-01-02")
		statOK = true
	} else {
		logger.Warn("stat failed", logging.String(logging.FieldPath, path), logging.Error(err))
	}

	if statOK && s.cache != nil {
		summary, hit, err := s.cache.Get(ctx, path, size, mtime)
		if err != nil {
			logger.Warn("probe cache lookup failed", logging.String(logging.FieldPath, path), logging.Error(err))
		} else if hit {
			logger.Debug("probe cache hit", logging.String(logging.FieldPath, path))
			return summary, fileDate
		}
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := probeInspect(probeCtx, s.probe, path)
	if err != nil {
		logger.Warn("probe failed", logging.String(logging.FieldPath, path), logging.Error(err))
		return ffprobe.UnknownSummary(), fileDate
	}
	summary, err := result.Summary()
	if err != nil {
		logger.Warn("probe output unusable", logging.String(logging.FieldPath, path), logging.Error(err))
		return ffprobe.UnknownSummary(), fileDate
	}

	if statOK && s.cache != nil {
		entry := probecache.Entry{Path: path, Size: size, ModTime: mtime, Summary: summary}
		if err := s.cache.Put(ctx, entry); err != nil {
			logger.Warn("probe cache store failed", logging.String(logging.FieldPath, path), logging.Error(err))
		}
	}
	return summary, fileDate
}
