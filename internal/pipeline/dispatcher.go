// internal/pipeline/dispatcher.go
package pipeline

import (
	"fmt"
	"log/slog"

	"assetmirror/internal/assets"
	"assetmirror/internal/convert"
)

// Dispatcher routes a path to the converter its category selects.
// Dispatch itself performs no I/O and is safe for concurrent use; it is
// also the task isolation boundary, so a panic inside a converter becomes
// a Failed outcome instead of taking down the pool.
type Dispatcher struct {
	classifier *assets.Classifier
	converters map[assets.Category]convert.Converter
	logger     *slog.Logger
}

// NewDispatcher binds one converter per category.
func NewDispatcher(classifier *assets.Classifier, loc, img, pl convert.Converter, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		classifier: classifier,
		converters: map[assets.Category]convert.Converter{
			assets.LocTable:     loc,
			assets.Image:        img,
			assets.PropertyList: pl,
		},
		logger: logger.With("component", "pipeline"),
	}
}

// Dispatch classifies path and runs the selected converter. Every call
// returns exactly one Outcome; errors and panics never escape.
func (d *Dispatcher) Dispatch(path string) (out Outcome) {
	cat := d.classifier.Classify(path)
	out = Outcome{Path: path, Category: cat}

	if cat == assets.Unclassified {
		out.Code = Unclassified
		return out
	}

	conv := d.converters[cat]
	out.Converter = conv.Name()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("converter panicked", "path", path, "converter", conv.Name(), "panic", r)
			out.Code = Failed
			out.Message = fmt.Sprintf("unexpected panic: %v", r)
		}
	}()

	res, err := conv.Convert(path)
	if err != nil {
		out.Code = Failed
		out.Message = err.Error()
		return out
	}
	if !res.Written {
		out.Code = Skipped
		out.Message = res.Reason
		return out
	}
	out.Code = Converted
	return out
}
