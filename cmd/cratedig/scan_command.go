package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cratedig/internal/report"
	"cratedig/internal/scan"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

type scanOptions struct {
	format    string
	output    string
	threshold int
}

func runScan(cmd *cobra.Command, ctx *commandContext, opts *scanOptions, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format == "" {
		format = cfg.Scan.DefaultFormat
	}
	switch format {
	case formatTable, formatCSV, formatJSON:
	default:
		return fmt.Errorf("invalid format %q (choose table, csv, or json)", opts.format)
	}

	thresholdMinutes := cfg.Scan.ThresholdMinutes
	if cmd.Flags().Changed("threshold") {
		thresholdMinutes = opts.threshold
	}
	if thresholdMinutes < 0 {
		return fmt.Errorf("threshold must be zero or more minutes, got %d", thresholdMinutes)
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
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	output := strings.TrimSpace(opts.output)

	// The banner moves to stderr when machine-readable output goes to
	// stdout, so piped csv/json stays parseable.
	banner := cmd.OutOrStdout()
	if format != formatTable && output == "" {
		banner = cmd.ErrOrStderr()
	}
	fmt.Fprintf(banner, "Processing videos in: %s\n", abs)
	fmt.Fprintf(banner, "Live set threshold: %d minutes\n", thresholdMinutes)

	cache := ctx.openCache(logger)
	if cache != nil {
		defer cache.Close()
	}

	scanner, err := ctx.newScanner(logger, cache, thresholdMinutes*60)
	if err != nil {
		return err
	}

	records, err := scanner.Scan(cmd.Context(), abs)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No video files found.")
		return nil
	}

	return writeReport(cmd, records, format, output)
}

func writeReport(cmd *cobra.Command, records []scan.Record, format, output string) error {
	switch format {
	case formatCSV:
		return writeFileReport(cmd, records, output, "CSV", report.WriteCSV)
	case formatJSON:
		return writeFileReport(cmd, records, output, "JSON", report.WriteJSON)
	default:
		return report.WriteTable(cmd.OutOrStdout(), records, report.TableOptions{})
	}
}

// writeFileReport renders records to output, or to stdout when no path was
// given.
func writeFileReport(cmd *cobra.Command, records []scan.Record, output, label string, render func(io.Writer, []scan.Record) error) error {
	if output == "" {
		return render(cmd.OutOrStdout(), records)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := render(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s saved to: %s\n", label, output)
	return nil
}
