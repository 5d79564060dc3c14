package scan

import (
	"cratedig/internal/classify"
)

// Record is one scanned file flattened for table, CSV, and JSON output.
// Field order fixes both the CSV header and the JSON key order.
type Record struct {
	Filename        string              `csv:"filename" json:"filename"`
	Artist          string              `csv:"artist" json:"artist"`
	Title           string              `csv:"title" json:"title"`
	Duration        string              `csv:"duration" json:"duration"`
	DurationSeconds float64             `csv:"duration_seconds" json:"duration_seconds"`
	Type            classify.Category   `csv:"type" json:"type"`
	Confidence      classify.Confidence `csv:"confidence" json:"confidence"`
	Resolution      string              `csv:"resolution" json:"resolution"`
	VideoCodec      string              `csv:"video_codec" json:"video_codec"`
	AudioCodec      string              `csv:"audio_codec" json:"audio_codec"`
	Bitrate         string              `csv:"bitrate" json:"bitrate"`
	Framerate       string              `csv:"framerate" json:"framerate"`
	Filesize        string              `csv:"filesize" json:"filesize"`
	FileDate        string              `csv:"file_date" json:"file_date"`
	ReleaseGroup    string              `csv:"release_group" json:"release_group"`
}
