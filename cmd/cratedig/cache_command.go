package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cratedig/internal/probecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the probe result cache",
	}

	cacheCmd.AddCommand(newCacheStatusCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show probe cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, warn, err := openCacheStore(ctx)
			if warn != "" {
				fmt.Fprintln(cmd.OutOrStdout(), warn)
			}
			if err != nil || store == nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache path: %s\n", stats.Path)
			fmt.Fprintf(out, "Entries:    %d\n", stats.Entries)
			fmt.Fprintf(out, "Size:       %s\n", humanize.IBytes(uint64(stats.SizeBytes)))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all cached probe results",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, warn, err := openCacheStore(ctx)
			if warn != "" {
				fmt.Fprintln(cmd.OutOrStdout(), warn)
			}
			if err != nil || store == nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			if stats.Entries == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cached probe results to clear")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached probe results\n", stats.Entries)
			return nil
		},
	}
}

// openCacheStore opens the configured cache database. A disabled cache
// returns a warning line instead of a store.
func openCacheStore(ctx *commandContext) (*probecache.Store, string, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	if !cfg.Cache.Enabled {
		return nil, "Probe cache is disabled (set enabled = true under [cache] in config.toml)", nil
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, "", err
	}
	store, err := probecache.Open(cfg.Cache.Path, logger)
	if err != nil {
		return nil, "", fmt.Errorf("open probe cache: %w", err)
	}
	return store, "", nil
}
