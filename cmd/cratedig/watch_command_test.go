package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cratedig/internal/scan"
	"cratedig/internal/testsupport"
	"cratedig/internal/watch"
)

func TestWatchInvalidDirectory(t *testing.T) {
	cfgPath := testsupport.WriteConfig(t, testsupport.NewConfig(t))
	missing := filepath.Join(t.TempDir(), "absent")

	_, stderr, err := runCLI(t, []string{"watch", missing}, cfgPath)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	wantContains(t, stderr, "Error: '"+missing+"' is not a valid directory")
}

func TestWatchRejectsSecondInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfgPath := testsupport.WriteConfig(t, cfg)
	dir := t.TempDir()

	holder, err := watch.New(dir, watch.Options{Scanner: scan.New(scan.Options{})})
	if err != nil {
		t.Fatalf("watch.New: %v", err)
	}
	defer holder.Close()

	_, _, err = runCLI(t, []string{"watch", dir}, cfgPath)
	if err == nil || !strings.Contains(err.Error(), "already running") {
		t.Fatalf("err = %v, want already-running", err)
	}
}
