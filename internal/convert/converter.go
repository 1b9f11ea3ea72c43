// Package convert holds the per-file converters. Each takes one source
// path and produces at most one destination artifact. Converters are
// stateless and idempotent: rerunning one over an unchanged source yields
// an identical destination file.
package convert

// Result reports what a completed conversion did.
type Result struct {
	Written bool   // a destination artifact was produced
	Reason  string // why nothing was written, when Written is false
}

// Converter turns one source file into its destination form.
type Converter interface {
	// Name identifies the converter in failure reports.
	Name() string

	// Convert processes the file at path. A nil error with Written false
	// means the file was deliberately skipped.
	Convert(path string) (Result, error)
}
