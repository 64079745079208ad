package cli

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mazhezhema/songtools/internal/config"
	"github.com/mazhezhema/songtools/internal/pipeline"
	"github.com/mazhezhema/songtools/internal/types"
)

const defaultFormat = types.FormatLRC

func run(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)

	entries, err := resolveEntries(cmd)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")

	cfg := pipeline.Config{
		Entries: entries,
		Output:  output,
		Workers: workers,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Partial failures are reported inside Run and keep exit status 0;
	// only an all-failed batch surfaces as an error here.
	_, err = pipeline.Run(cmd.Context(), cfg)
	return err
}

func setupLogging(cmd *cobra.Command) {
	cfg := config.Get()

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		log.SetLevel(log.ErrorLevel)
	}
}

func resolveEntries(cmd *cobra.Command) ([]types.Entry, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		formatStr, _ := cmd.Flags().GetString("format")
		format, err := types.ParseFormat(formatStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, formatStr)
		}
		id, _ := cmd.Flags().GetString("id")
		name, _ := cmd.Flags().GetString("name")
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, err
		}
		return []types.Entry{{Path: abs, ID: id, Name: name, Format: format}}, nil
	}

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		return pipeline.ParseBatchFile(input)
	}

	dir, _ := cmd.Flags().GetString("dir")
	return pipeline.ScanDir(dir)
}
