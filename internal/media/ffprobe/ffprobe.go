package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
)

// DefaultBinary is the executable resolved from PATH when no override is
// configured.
const DefaultBinary = "ffprobe"

// commandContext is swapped out by tests to intercept process creation.
var commandContext = exec.CommandContext

// Client runs ffprobe against individual media files.
type Client struct {
	binary string
}

// Option adjusts a Client.
type Option func(*Client)

// WithBinary overrides the ffprobe executable. Empty values keep the
// default.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// New returns a Client with options applied.
func New(opts ...Option) *Client {
	c := &Client{binary: DefaultBinary}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary reports the executable the client invokes.
func (c *Client) Binary() string {
	return c.binary
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. Callers bound the probe with a context deadline; a timed-out
// or failed probe returns an error and no partial result.
func (c *Client) Inspect(ctx context.Context, path string) (*Result, error) {
	if path == "" {
		return nil, errors.New("ffprobe inspect: empty path")
	}

	cmd := commandContext(ctx, c.binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ffprobe inspect %s: %w", path, ctx.Err())
		}
		return nil, fmt.Errorf("ffprobe inspect %s: %w", path, err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("ffprobe parse: %w", err)
	}
	return &result, nil
}

// Result is the decoded JSON document a probe produces.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream holds the per-stream fields the summary consumes.
type Stream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
	SampleRate   string `json:"sample_rate"`
	Channels     int    `json:"channels"`
}

// Format holds container-level metadata.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}
