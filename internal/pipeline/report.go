// internal/pipeline/report.go
package pipeline

import "time"

// Report is the final, immutable summary of one run. Failures appear in
// completion order, which differs between runs of the same input.
type Report struct {
	RunID               string    `json:"runId"`
	StartedAt           time.Time `json:"startedAt"`
	DiscoveryDurationMs int64     `json:"discoveryDurationMs"`
	FilesDiscovered     int       `json:"filesDiscovered"`
	FilesProcessed      int       `json:"filesProcessed"`
	FilesSkipped        int       `json:"filesSkipped"`
	TotalDurationMs     int64     `json:"totalDurationMs"`
	Errors              []Failure `json:"errors"`
}

// NewReport returns a report whose Errors list marshals as [], never null.
func NewReport(runID string, startedAt time.Time) *Report {
	return &Report{
		RunID:     runID,
		StartedAt: startedAt,
		Errors:    []Failure{},
	}
}
