// Package pipeline fans discovered paths out to converters with bounded
// parallelism and fans completed outcomes back in to a single aggregator.
// Outcomes are the only data that crosses from a worker back to the
// aggregator; no task mutates shared state.
package pipeline

import "assetmirror/internal/assets"

// Code is what processing one file amounted to.
type Code int

const (
	// Converted: a destination artifact was produced.
	Converted Code = iota
	// Skipped: success with no output (no english strings, excluded
	// locale bundle, already normalized).
	Skipped
	// Unclassified: no converter applies; not counted as processed.
	Unclassified
	// Failed: the converter reported an error or panicked.
	Failed
)

func (c Code) String() string {
	switch c {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	case Unclassified:
		return "unclassified"
	default:
		return "failed"
	}
}

// Outcome is the result of processing exactly one file. Every dispatched
// path produces exactly one Outcome.
type Outcome struct {
	Path      string
	Category  assets.Category
	Converter string
	Code      Code
	Message   string
}

// Failure is one error entry of the final report, in its wire shape.
type Failure struct {
	Filepath     string `json:"filepath"`
	ErrorMessage string `json:"errorMessage"`
	Function     string `json:"function"`
}

// failure converts a failed outcome into its report entry.
func (o Outcome) failure() Failure {
	return Failure{
		Filepath:     o.Path,
		ErrorMessage: o.Message,
		Function:     o.Converter,
	}
}
