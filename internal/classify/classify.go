// Package classify buckets videos into music video, live set, or live
// performance based on probed duration and the live indicator recovered from
// the filename.
package classify

// Category labels what kind of recording a video holds.
type Category string

const (
	CategoryMusicVideo      Category = "music_video"
	CategoryLiveSet         Category = "live_set"
	CategoryLivePerformance Category = "live_performance"
	CategoryUnknown         Category = "unknown"
)

// Confidence grades how reliable a classification is. A coarse label, not a
// probability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// DefaultThresholdSeconds is the live-set duration cutoff applied when no
// configuration overrides it (45 minutes).
const DefaultThresholdSeconds = 45 * 60

// shortFormCutoffSeconds separates high-confidence music videos from longer
// medium-confidence ones.
const shortFormCutoffSeconds = 15 * 60

// Classify maps a duration and live indicator to a category and confidence.
// thresholdSeconds is the live-set cutoff: durations above it are live sets,
// durations at or below it with a live indicator are single live
// performances. A zero duration means probing failed and yields unknown.
func Classify(durationSeconds float64, live bool, thresholdSeconds int) (Category, Confidence) {
	long := durationSeconds > float64(thresholdSeconds)
	switch {
	case long && live:
		return CategoryLiveSet, ConfidenceHigh
	case long:
		return CategoryLiveSet, ConfidenceMedium
	case live && durationSeconds > 0:
		return CategoryLivePerformance, ConfidenceMedium
	case durationSeconds > 0 && durationSeconds < shortFormCutoffSeconds:
		return CategoryMusicVideo, ConfidenceHigh
	case durationSeconds > 0:
		return CategoryMusicVideo, ConfidenceMedium
	default:
		return CategoryUnknown, ConfidenceLow
	}
}
