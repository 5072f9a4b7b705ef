package calibration

import (
	"cmp"
	"slices"
)

// Curve is a piecewise-linear voltage to current lookup over calibrated
// points. Lookups outside the covered voltage range clamp to the nearest end.
type Curve struct {
	points []Point
}

// NewCurve builds a lookup over a copy of points ordered by voltage.
func NewCurve(points []Point) Curve {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(a.Voltage, b.Voltage)
	})

	return Curve{points: sorted}
}

// Len returns the number of points in the curve.
func (c Curve) Len() int {
	return len(c.points)
}

// Points returns the curve points ordered by voltage. The slice must not be
// modified.
func (c Curve) Points() []Point {
	return c.points
}

// CurrentAt interpolates the current producing voltage v. It returns 0 and
// false for an empty curve.
func (c Curve) CurrentAt(v float64) (float64, bool) {
	n := len(c.points)
	if n == 0 {
		return 0, false
	}

	if v <= c.points[0].Voltage {
		return c.points[0].Current, true
	}
	if v >= c.points[n-1].Voltage {
		return c.points[n-1].Current, true
	}

	// First point with Voltage >= v; 0 < i < n here.
	i, _ := slices.BinarySearchFunc(c.points, v, func(p Point, target float64) int {
		return cmp.Compare(p.Voltage, target)
	})
	lo, hi := c.points[i-1], c.points[i]

	span := hi.Voltage - lo.Voltage
	if span == 0 {
		return hi.Current, true
	}
	t := (v - lo.Voltage) / span

	return lo.Current + t*(hi.Current-lo.Current), true
}
