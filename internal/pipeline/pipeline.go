// Package pipeline runs the batch: for every entry it parses the lyric
// file, selects the share quote, and collects results in input order. One
// file's failure never aborts the batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mazhezhema/songtools/internal/domain/lyrics"
	"github.com/mazhezhema/songtools/internal/domain/quote"
	"github.com/mazhezhema/songtools/internal/types"
)

var ErrAllFailed = errors.New("every input file failed")

type Config struct {
	Entries []types.Entry
	Output  string
	Workers int
}

func (c Config) Validate() error {
	if len(c.Entries) == 0 {
		return errors.New("no input files")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be > 0")
	}
	return nil
}

// Report summarizes one batch run. Summaries keep the input order of their
// entries; Failures likewise.
type Report struct {
	Summaries []types.Summary
	Failures  []types.Failure
}

func (r Report) Succeeded() int { return len(r.Summaries) }
func (r Report) Failed() int    { return len(r.Failures) }

// Run processes all entries with bounded concurrency and writes the CSV.
// Per-file units are independent, so they run on a worker-limited errgroup;
// each result lands in its index-addressed slot and order is restored for
// free. Run returns ErrAllFailed only when no entry succeeded.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	type slot struct {
		summary types.Summary
		failure *types.Failure
	}
	slots := make([]slot, len(cfg.Entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, entry := range cfg.Entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := processEntry(entry)
			if err != nil {
				log.WithFields(log.Fields{"path": entry.Path, "id": entry.ID}).
					WithError(err).Warn("file failed")
				slots[i] = slot{failure: &types.Failure{
					Path:   entry.Path,
					ID:     entry.ID,
					Reason: err.Error(),
				}}
				return nil
			}
			log.WithFields(log.Fields{"id": entry.ID, "summary": summary.Text}).
				Debug("share quote selected")
			slots[i] = slot{summary: summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var report Report
	for _, s := range slots {
		if s.failure != nil {
			report.Failures = append(report.Failures, *s.failure)
			continue
		}
		report.Summaries = append(report.Summaries, s.summary)
	}

	if err := writeOutput(cfg.Output, report.Summaries); err != nil {
		return report, fmt.Errorf("write output: %w", err)
	}

	log.WithFields(log.Fields{
		"succeeded": report.Succeeded(),
		"failed":    report.Failed(),
		"output":    cfg.Output,
	}).Info("batch complete")
	for _, f := range report.Failures {
		log.WithFields(log.Fields{"path": f.Path, "id": f.ID}).
			Warnf("failed: %s", f.Reason)
	}

	if report.Succeeded() == 0 {
		return report, ErrAllFailed
	}
	return report, nil
}

// processEntry is the per-file unit of work: read, parse, select.
func processEntry(e types.Entry) (types.Summary, error) {
	b, err := os.ReadFile(e.Path)
	if err != nil {
		return types.Summary{}, fmt.Errorf("read lyrics: %w", err)
	}
	song, err := lyrics.Parse(e.Format, string(b))
	if err != nil {
		return types.Summary{}, err
	}
	text, err := quote.Select(song)
	if err != nil {
		return types.Summary{}, err
	}
	return types.Summary{ID: e.ID, SongName: e.Name, Text: text}, nil
}

func writeOutput(path string, summaries []types.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, summaries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
