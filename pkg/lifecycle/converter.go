package lifecycle

import (
	"context"
	"time"

	"github.com/gnames/gncurie/pkg/plan"
)

// Converter runs one plan over files on disk.
type Converter interface {
	// Convert reads every input of the plan, normalizes it and writes all
	// outputs. Paths are keyed by flag name and must contain every flag of
	// the plan. Existing outputs are replaced.
	Convert(ctx context.Context, p plan.Plan, paths map[string]string) (*Report, error)
}

// Report summarizes a finished conversion.
type Report struct {
	Plan string
	// Rows is the number of rows after the shared steps of the plan.
	Rows int
	// Skipped counts malformed input rows dropped by the lenient reader.
	Skipped int
	// Replaced counts input lines that had invalid UTF-8 repaired.
	Replaced int
	// Outputs holds rows written per output flag.
	Outputs  map[string]int
	Duration time.Duration
}
