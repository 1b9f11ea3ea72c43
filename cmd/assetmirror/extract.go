package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"assetmirror/internal/history"
	"assetmirror/internal/mirror"
	"assetmirror/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract <source-root> <dest-root>",
	Short: "Convert and mirror every recognized asset",
	Long: `Walks the source tree once, converts every recognized asset, and
mirrors the results into the destination tree. Per-file failures are
reported, never fatal; the exit code is zero whenever the run completes.`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().Int("workers", 0, "Parallel conversion workers (0 = CPU count)")
	extractCmd.Flags().Bool("skip-info-plist", false, "Treat Info.plist files as unclassified")
	extractCmd.Flags().Bool("follow-symlinks", true, "Traverse directory symlinks")
	extractCmd.Flags().Bool("no-history", false, "Do not record this run in the history database")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := mirror.Options{
		SourceRoot:     args[0],
		DestRoot:       args[1],
		Workers:        cfg.Extract.Workers,
		SkipInfoPlist:  cfg.Extract.SkipInfoPlist,
		FollowSymlinks: cfg.Extract.FollowSymlinks,
		Extensions:     cfg.AssetExtensions(),
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("skip-info-plist") {
		opts.SkipInfoPlist, _ = cmd.Flags().GetBool("skip-info-plist")
	}
	if cmd.Flags().Changed("follow-symlinks") {
		opts.FollowSymlinks, _ = cmd.Flags().GetBool("follow-symlinks")
	}

	report, err := mirror.Run(opts, logger)
	if err != nil {
		return err
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if cfg.History.Enabled && !noHistory {
		recordRun(cmd.Context(), historyPath(cfg.History.Path), report, opts, logger)
	}

	renderReport(report)
	return nil
}

// recordRun persists the report. History failures are warnings, never run
// failures.
func recordRun(ctx context.Context, dbPath string, report *pipeline.Report, opts mirror.Options, logger *slog.Logger) {
	logger = logger.With("component", "history")

	store, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("history unavailable", "path", dbPath, "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Record(ctx, report, opts.SourceRoot, opts.DestRoot); err != nil {
		logger.Warn("failed to record run", "run_id", report.RunID, "error", err)
	}
}

// historyPath resolves the configured database location.
func historyPath(configured string) string {
	if configured != "" {
		return configured
	}
	return history.DefaultPath()
}
