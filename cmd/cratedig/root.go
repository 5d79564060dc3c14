package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var noCacheFlag bool
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &noCacheFlag, &logLevelFlag)

	opts := &scanOptions{}
	rootCmd := &cobra.Command{
		Use:           "cratedig [directory]",
		Short:         "Extract metadata from music video files",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the probe result cache")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (default: table)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (for csv/json). If not specified, prints to stdout")
	rootCmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 0, "Duration threshold in minutes for live set classification (default: 45)")

	rootCmd.AddCommand(newCacheCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
