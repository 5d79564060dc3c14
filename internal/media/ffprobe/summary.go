package ffprobe

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary condenses a probe result into the display fields carried on scan
// records. String fields hold "unknown" when the source document lacks the
// data.
type Summary struct {
	Duration   float64
	Resolution string
	VideoCodec string
	AudioCodec string
	Bitrate    string
	Framerate  string
	Filesize   string
}

// UnknownSummary is the degraded summary recorded when probing fails.
func UnknownSummary() Summary {
	return Summary{
		Resolution: "unknown",
		VideoCodec: "unknown",
		AudioCodec: "unknown",
		Bitrate:    "unknown",
		Framerate:  "unknown",
		Filesize:   "unknown",
	}
}

// Summary derives display fields from the decoded document. When a file
// carries several video or audio streams the last one wins. A numeric field
// that fails to parse poisons the whole summary; callers fall back to
// UnknownSummary.
func (r *Result) Summary() (Summary, error) {
	s := UnknownSummary()

	if raw := strings.TrimSpace(r.Format.Duration); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Summary{}, fmt.Errorf("parse duration %q: %w", raw, err)
		}
		s.Duration = seconds
	}

	if raw := strings.TrimSpace(r.Format.BitRate); raw != "" {
		bps, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Summary{}, fmt.Errorf("parse bit rate %q: %w", raw, err)
		}
		s.Bitrate = formatBitrate(bps / 1000)
	}

	var sizeBytes int64
	if raw := strings.TrimSpace(r.Format.Size); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Summary{}, fmt.Errorf("parse size %q: %w", raw, err)
		}
		sizeBytes = parsed
	}
	s.Filesize = FormatFilesize(sizeBytes)

	for _, stream := range r.Streams {
		switch stream.CodecType {
		case "video":
			s.VideoCodec = orUnknown(stream.CodecName)
			if stream.Width > 0 && stream.Height > 0 {
				s.Resolution = fmt.Sprintf("%dx%d", stream.Width, stream.Height)
			}
			rate := stream.RFrameRate
			if rate == "" {
				rate = stream.AvgFrameRate
			}
			if strings.Contains(rate, "/") {
				num, den, err := parseFraction(rate)
				if err != nil {
					return Summary{}, err
				}
				if den > 0 {
					s.Framerate = fmt.Sprintf("%.2f fps", float64(num)/float64(den))
				}
			}
		case "audio":
			s.AudioCodec = orUnknown(stream.CodecName)
		}
	}

	return s, nil
}

func formatBitrate(kbps int64) string {
	if kbps >= 1000 {
		return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
	}
	return fmt.Sprintf("%d kbps", kbps)
}

// FormatFilesize renders a byte count with one decimal in the largest unit
// under 1024, topping out at petabytes.
func FormatFilesize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f PB", size)
}

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// parseFraction splits an ffprobe frame rate such as "30000/1001" into its
// integer parts.
func parseFraction(raw string) (num, den int64, err error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed frame rate %q", raw)
	}
	num, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse frame rate %q: %w", raw, err)
	}
	den, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse frame rate %q: %w", raw, err)
	}
	return num, den, nil
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
