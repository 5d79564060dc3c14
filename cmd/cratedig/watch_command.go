package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cratedig/internal/scan"
	"cratedig/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a directory and process new video files as they appear",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, ctx, args)
		},
	}
}

func runWatch(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := scan.ValidateRoot(dir); err != nil {
		if errors.Is(err, scan.ErrNotDirectory) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: '%s' is not a valid directory\n", dir)
			return errReported
		}
		return err
	}

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cache := ctx.openCache(logger)
	if cache != nil {
		defer cache.Close()
	}
	scanner, err := ctx.newScanner(logger, cache, cfg.ThresholdSeconds())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	watcher, err := watch.New(dir, watch.Options{
		Scanner: scanner,
		Logger:  logger,
		Settle:  cfg.SettleDelay(),
		OnRecord: func(rec scan.Record) {
			fmt.Fprintln(out, formatWatchLine(rec))
		},
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	fmt.Fprintf(out, "Watching for new videos in: %s\n", watcher.Root())
	fmt.Fprintln(out, "Press Ctrl-C to stop.")

	if err := watcher.Run(signalCtx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func formatWatchLine(rec scan.Record) string {
	artist := rec.Artist
	if artist == "" {
		artist = "Unknown"
	}
	title := rec.Title
	if title == "" {
		title = "Unknown"
	}
	return fmt.Sprintf("%s: %s - %s [%s, %s, %s]",
		rec.Filename, artist, title, rec.Type, rec.Confidence, rec.Duration)
}
