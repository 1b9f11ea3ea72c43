package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"assetmirror/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run and its failures",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
}

func openHistory() (*history.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(historyPath(cfg.History.Path))
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if useJSON() {
		printJSON(runs)
		return nil
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.StartedAt.Format(time.RFC3339),
			r.SourceRoot,
			fmt.Sprintf("%d", r.FilesProcessed),
			fmt.Sprintf("%d", r.ErrorCount),
		})
	}
	fmt.Println(renderTable(
		[]string{"Run", "Started", "Source", "Processed", "Errors"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	run, failures, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if useJSON() {
		printJSON(map[string]any{"run": run, "errors": failures})
		return nil
	}

	fmt.Println(renderTable(
		[]string{"Field", "Value"},
		[][]string{
			{"Run", run.ID},
			{"Started", run.StartedAt.Format(time.RFC3339)},
			{"Source", run.SourceRoot},
			{"Destination", run.DestRoot},
			{"Files discovered", fmt.Sprintf("%d", run.FilesDiscovered)},
			{"Files processed", fmt.Sprintf("%d", run.FilesProcessed)},
			{"Files skipped", fmt.Sprintf("%d", run.FilesSkipped)},
			{"Errors", fmt.Sprintf("%d", run.ErrorCount)},
			{"Discovery", fmt.Sprintf("%d ms", run.DiscoveryDurationMs)},
			{"Total", fmt.Sprintf("%d ms", run.TotalDurationMs)},
		},
		[]columnAlignment{alignLeft, alignLeft},
	))
	if len(failures) > 0 {
		fmt.Println()
		renderFailures(failures)
	}
	return nil
}
