package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cratedig/internal/scan"
	"cratedig/internal/testsupport"
)

var testModTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

func TestScanInvalidDirectory(t *testing.T) {
	cfgPath := testsupport.WriteConfig(t, testsupport.NewConfig(t))
	missing := filepath.Join(t.TempDir(), "absent")

	_, stderr, err := runCLI(t, []string{missing}, cfgPath)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	wantContains(t, stderr, "Error: '"+missing+"' is not a valid directory")
}

func TestScanInvalidFormat(t *testing.T) {
	cfgPath := testsupport.WriteConfig(t, testsupport.NewConfig(t))

	_, _, err := runCLI(t, []string{t.TempDir(), "-f", "xml"}, cfgPath)
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Fatalf("err = %v, want invalid format", err)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	cfgPath := testsupport.WriteConfig(t, testsupport.NewConfig(t))

	stdout, _, err := runCLI(t, []string{t.TempDir()}, cfgPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	wantContains(t, stdout, "No video files found.")
}

func TestScanTableOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedFFprobe(testsupport.ProbePayload(215.4)))
	cfgPath := testsupport.WriteConfig(t, cfg)

	dir := t.TempDir()
	testsupport.WriteVideo(t, dir, "Artist - Clip-oW0VovnyjPY.mp4", testModTime)
	testsupport.WriteVideo(t, dir, "Band - Live At Hellfest 2022.mkv", testModTime)

	stdout, _, err := runCLI(t, []string{dir}, cfgPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	wantContains(t, stdout, "Processing videos in: "+dir)
	wantContains(t, stdout, "Live set threshold: 45 minutes")
	wantContains(t, stdout, "MUSIC VIDEOS (1 files)")
	wantContains(t, stdout, "LIVE PERFORMANCES (Single songs) (1 files)")
	wantContains(t, stdout, "Total files processed: 2")
}

func TestScanThresholdFlag(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedFFprobe(testsupport.ProbePayload(90)))
	cfgPath := testsupport.WriteConfig(t, cfg)

	dir := t.TempDir()
	testsupport.WriteVideo(t, dir, "Artist - Jam-AbCdEfGhIjK.mp4", testModTime)

	stdout, _, err := runCLI(t, []string{dir, "-t", "1"}, cfgPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	wantContains(t, stdout, "Live set threshold: 1 minutes")
	wantContains(t, stdout, "LIVE SETS (Full concerts/DJ sets) (1 files)")
}

func TestScanCSVSavedToFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedFFprobe(testsupport.ProbePayload(100)))
	cfgPath := testsupport.WriteConfig(t, cfg)

	dir := t.TempDir()
	testsupport.WriteVideo(t, dir, "Artist - Song-AbCdEfGhIjK.mp4", testModTime)

	outPath := filepath.Join(t.TempDir(), "report.csv")
	stdout, _, err := runCLI(t, []string{dir, "-f", "csv", "-o", outPath}, cfgPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	wantContains(t, stdout, "CSV saved to: "+outPath)
	// Output went to a file, so the banner stays on stdout.
	wantContains(t, stdout, "Processing videos in:")

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	wantContains(t, string(data), "filename,artist,title,duration,duration_seconds,type,confidence")
	wantContains(t, string(data), "Artist - Song-AbCdEfGhIjK.mp4,Artist,Song,1:40,100,music_video,high")
}

func TestScanJSONBannerOnStderr(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedFFprobe(testsupport.ProbePayload(100)))
	cfgPath := testsupport.WriteConfig(t, cfg)

	dir := t.TempDir()
	testsupport.WriteVideo(t, dir, "Artist - Song-AbCdEfGhIjK.mp4", testModTime)

	stdout, stderr, err := runCLI(t, []string{dir, "-f", "json"}, cfgPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	wantContains(t, stderr, "Processing videos in:")
	wantContains(t, stderr, "Live set threshold: 45 minutes")

	var records []scan.Record
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("stdout is not json: %v\n%s", err, stdout)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Artist != "Artist" || records[0].Title != "Song" {
		t.Errorf("parsed %q / %q", records[0].Artist, records[0].Title)
	}
	if records[0].DurationSeconds != 100 {
		t.Errorf("duration_seconds = %v", records[0].DurationSeconds)
	}
}

func TestScanNoCacheFlag(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedFFprobe(testsupport.ProbePayload(100)))
	cfgPath := testsupport.WriteConfig(t, cfg)

	dir := t.TempDir()
	testsupport.WriteVideo(t, dir, "Artist - Song-AbCdEfGhIjK.mp4", testModTime)

	if _, _, err := runCLI(t, []string{dir, "--no-cache"}, cfgPath); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if _, err := os.Stat(cfg.Cache.Path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cache database should not exist after --no-cache scan, stat err = %v", err)
	}
}
