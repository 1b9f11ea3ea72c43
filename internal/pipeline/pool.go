// internal/pipeline/pool.go
package pipeline

import (
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Summary is what the pool's aggregator tallied over one run. Failures
// are in completion order.
type Summary struct {
	// Processed counts every classified path that ran: converted,
	// skipped, and failed alike.
	Processed int
	// Skipped counts the success-without-output subset of Processed.
	Skipped int
	// Failures holds one entry per failed path.
	Failures []Failure
}

// Pool executes dispatch over a set of paths with bounded parallelism.
type Pool struct {
	workers  int
	dispatch func(string) Outcome
	logger   *slog.Logger
}

// NewPool builds a Pool of the given size; workers <= 0 means one per
// logical CPU.
func NewPool(workers int, d *Dispatcher, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		workers:  workers,
		dispatch: d.Dispatch,
		logger:   logger.With("component", "pipeline"),
	}
}

// Workers returns the pool size.
func (p *Pool) Workers() int { return p.workers }

// Run processes every path and returns the aggregated summary. Submission
// is eager; the group's limit bounds in-flight tasks, so open file handles
// stay proportional to the pool size. Outcomes flow over a channel to a
// single aggregating goroutine, so completions never race on shared
// storage, and no outcome is ever dropped.
func (p *Pool) Run(paths []string) Summary {
	outcomes := make(chan Outcome)
	done := make(chan Summary, 1)

	go func() {
		var s Summary
		for out := range outcomes {
			p.logger.Debug("task complete", "path", out.Path, "result", out.Code)
			if out.Code == Unclassified {
				continue
			}
			s.Processed++
			switch out.Code {
			case Skipped:
				s.Skipped++
			case Failed:
				s.Failures = append(s.Failures, out.failure())
			}
		}
		done <- s
	}()

	var g errgroup.Group
	g.SetLimit(p.workers)
	for _, path := range paths {
		g.Go(func() error {
			outcomes <- p.dispatch(path)
			return nil
		})
	}
	_ = g.Wait()
	close(outcomes)

	return <-done
}
