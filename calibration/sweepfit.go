package calibration

import (
	"fmt"

	"github.com/arloliu/tiacal/internal/pool"
	"github.com/arloliu/tiacal/regression"
	"github.com/arloliu/tiacal/segment"
)

// DefaultEdgeTrim is the number of plateaus excluded from each end of a sweep
// before fitting. Sweep start and end carry settling transients.
const DefaultEdgeTrim = 10

// FitSweep fits mean voltage against index midpoint over the interior
// plateaus stats[edge : len(stats)-edge].
//
// Returns *InsufficientSegmentsError when fewer than 2*edge+1 plateaus are
// available, and *regression.DegenerateFitError when the interior cannot
// define a line.
func FitSweep(stats []segment.Stat, edge int) (*regression.Model, error) {
	if edge < 0 {
		return nil, fmt.Errorf("%w: edge trim must not be negative, got %d", ErrInvalidConfig, edge)
	}

	need := 2*edge + 1
	if len(stats) < need {
		return nil, &InsufficientSegmentsError{Have: len(stats), Need: need}
	}

	interior := stats[edge : len(stats)-edge]

	xs, releaseX := pool.GetFloat64Slice(len(interior))
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(len(interior))
	defer releaseY()

	for i, st := range interior {
		xs[i] = st.Midpoint
		ys[i] = st.Mean
	}

	model, err := regression.FitLinear(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("sweep fit: %w", err)
	}

	return model, nil
}
