// Package mirror binds discovery, dispatch, the worker pool, and
// aggregation into one run over a source tree.
package mirror

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"assetmirror/internal/assets"
	"assetmirror/internal/convert"
	"assetmirror/internal/discover"
	"assetmirror/internal/pipeline"
	"assetmirror/internal/runlock"
)

// discoverTag is the function name stamped on discovery-level failures.
const discoverTag = "discover"

// Options configures one run.
type Options struct {
	SourceRoot     string
	DestRoot       string
	Workers        int // 0 = logical CPU count
	SkipInfoPlist  bool
	FollowSymlinks bool
	Extensions     assets.Extensions
}

// Run executes the full pipeline: validate roots, lock the destination,
// discover candidates, convert them with bounded parallelism, and return
// the finalized report. Per-file failures land in the report; only
// top-level misconfiguration (missing source root, un-creatable
// destination, held lock) is an error.
func Run(opts Options, logger *slog.Logger) (*pipeline.Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(opts.SourceRoot)
	if err != nil {
		return nil, fmt.Errorf("source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", opts.SourceRoot)
	}
	if err := os.MkdirAll(opts.DestRoot, 0755); err != nil {
		return nil, fmt.Errorf("create destination root: %w", err)
	}

	lock, err := runlock.Acquire(opts.DestRoot)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release destination lock", "path", lock.Path(), "error", err)
		}
	}()

	start := time.Now()
	report := pipeline.NewReport(uuid.New().String(), start)

	classifier := assets.NewClassifier(opts.Extensions, opts.SkipInfoPlist)
	mapper := assets.NewMapper(opts.SourceRoot, opts.DestRoot)

	walk, err := discover.Walk(opts.SourceRoot, discover.Options{
		Match:          classifier.Match,
		FollowSymlinks: opts.FollowSymlinks,
	}, logger)
	if err != nil {
		return nil, err
	}
	report.DiscoveryDurationMs = walk.Duration.Milliseconds()
	report.FilesDiscovered = len(walk.Candidates) + len(walk.Broken)
	for _, b := range walk.Broken {
		report.Errors = append(report.Errors, pipeline.Failure{
			Filepath:     b.Path,
			ErrorMessage: "broken symlink or file not found",
			Function:     discoverTag,
		})
	}
	logger.Info("discovery complete",
		"candidates", len(walk.Candidates),
		"broken", len(walk.Broken),
		"duration", walk.Duration)

	dispatcher := pipeline.NewDispatcher(classifier,
		convert.NewStringsTable(mapper),
		convert.NewImageCopier(mapper),
		convert.NewPlistNormalizer(mapper),
		logger)
	pool := pipeline.NewPool(opts.Workers, dispatcher, logger)

	summary := pool.Run(walk.Candidates)

	report.FilesProcessed = summary.Processed
	report.FilesSkipped = summary.Skipped
	report.Errors = append(report.Errors, summary.Failures...)
	report.TotalDurationMs = time.Since(start).Milliseconds()

	logger.Info("run complete",
		"run_id", report.RunID,
		"processed", report.FilesProcessed,
		"skipped", report.FilesSkipped,
		"errors", len(report.Errors),
		"workers", pool.Workers())
	return report, nil
}

// Scan runs discovery and classification only: per-category counts and
// broken candidates, no writes and no destination lock.
func Scan(opts Options, logger *slog.Logger) (map[assets.Category]int, []pipeline.Failure, error) {
	classifier := assets.NewClassifier(opts.Extensions, opts.SkipInfoPlist)

	walk, err := discover.Walk(opts.SourceRoot, discover.Options{
		Match:          classifier.Match,
		FollowSymlinks: opts.FollowSymlinks,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[assets.Category]int)
	for _, path := range walk.Candidates {
		counts[classifier.Classify(path)]++
	}
	var failures []pipeline.Failure
	for _, b := range walk.Broken {
		failures = append(failures, pipeline.Failure{
			Filepath:     b.Path,
			ErrorMessage: "broken symlink or file not found",
			Function:     discoverTag,
		})
	}
	return counts, failures, nil
}
