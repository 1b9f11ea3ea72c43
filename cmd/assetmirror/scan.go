package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"assetmirror/internal/assets"
	"assetmirror/internal/mirror"
	"assetmirror/internal/pipeline"
)

var scanCmd = &cobra.Command{
	Use:   "scan <source-root>",
	Short: "Preview discovery and classification without writing",
	Long: `Walks the source tree and reports what an extract run would process:
candidate counts per category plus any broken symlinks. No destination
is touched.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("skip-info-plist", false, "Treat Info.plist files as unclassified")
	scanCmd.Flags().Bool("follow-symlinks", true, "Traverse directory symlinks")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := mirror.Options{
		SourceRoot:     args[0],
		SkipInfoPlist:  cfg.Extract.SkipInfoPlist,
		FollowSymlinks: cfg.Extract.FollowSymlinks,
		Extensions:     cfg.AssetExtensions(),
	}
	if cmd.Flags().Changed("skip-info-plist") {
		opts.SkipInfoPlist, _ = cmd.Flags().GetBool("skip-info-plist")
	}
	if cmd.Flags().Changed("follow-symlinks") {
		opts.FollowSymlinks, _ = cmd.Flags().GetBool("follow-symlinks")
	}

	counts, failures, err := mirror.Scan(opts, logger)
	if err != nil {
		return err
	}

	if useJSON() {
		printJSON(map[string]any{
			"loctables": counts[assets.LocTable],
			"images":    counts[assets.Image],
			"plists":    counts[assets.PropertyList],
			"errors":    jsonFailures(failures),
		})
		return nil
	}

	fmt.Println(renderTable(
		[]string{"Category", "Files"},
		[][]string{
			{"String tables", fmt.Sprintf("%d", counts[assets.LocTable])},
			{"Images", fmt.Sprintf("%d", counts[assets.Image])},
			{"Property lists", fmt.Sprintf("%d", counts[assets.PropertyList])},
		},
		[]columnAlignment{alignLeft, alignRight},
	))
	if len(failures) > 0 {
		fmt.Println()
		renderFailures(failures)
	}
	return nil
}

// jsonFailures keeps a nil slice from marshaling as null.
func jsonFailures(failures []pipeline.Failure) []pipeline.Failure {
	if failures == nil {
		return []pipeline.Failure{}
	}
	return failures
}
