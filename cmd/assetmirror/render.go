package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"assetmirror/internal/pipeline"
)

// maxFailureRows caps the failure listing in human output; the full list
// is always in the JSON report and the history store.
const maxFailureRows = 20

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// useJSON reports whether machine output was requested, explicitly or by
// stdout not being a terminal.
func useJSON() bool {
	if jsonOutput {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderReport(report *pipeline.Report) {
	if useJSON() {
		printJSON(report)
		return
	}

	fmt.Println(renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Run", report.RunID},
			{"Files discovered", fmt.Sprintf("%d", report.FilesDiscovered)},
			{"Files processed", fmt.Sprintf("%d", report.FilesProcessed)},
			{"Files skipped", fmt.Sprintf("%d", report.FilesSkipped)},
			{"Errors", fmt.Sprintf("%d", len(report.Errors))},
			{"Discovery", fmt.Sprintf("%d ms", report.DiscoveryDurationMs)},
			{"Total", fmt.Sprintf("%d ms", report.TotalDurationMs)},
		},
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(report.Errors) > 0 {
		fmt.Println()
		renderFailures(report.Errors)
	}
}

func renderFailures(failures []pipeline.Failure) {
	rows := make([][]string, 0, len(failures))
	for i, f := range failures {
		if i == maxFailureRows {
			break
		}
		rows = append(rows, []string{f.Function, f.Filepath, f.ErrorMessage})
	}
	fmt.Println(renderTable(
		[]string{"Function", "File", "Error"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	if len(failures) > maxFailureRows {
		fmt.Printf("... and %d more\n", len(failures)-maxFailureRows)
	}
}
