package calibration

import (
	"math"

	"github.com/arloliu/tiacal/regression"
	"github.com/arloliu/tiacal/segment"
)

// Point is one calibrated plateau.
type Point struct {
	// Current is the input current in amps.
	Current float64 `json:"current"`
	// Voltage is the mean output voltage of the plateau.
	Voltage float64 `json:"voltage"`
	// StdDev is the population standard deviation of the plateau voltage.
	StdDev float64 `json:"stdDev"`
}

// Mapping converts sweep indices to currents: I = x/Alpha + Beta.
type Mapping struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// NewMapping reconciles the reference fit (voltage over current) with the
// sweep fit (voltage over index).
func NewMapping(reference, sweep *regression.Model) (Mapping, error) {
	switch {
	case reference == nil || sweep == nil:
		return Mapping{}, &regression.DegenerateFitError{Reason: "missing fit"}
	case reference.Slope == 0:
		return Mapping{}, &regression.DegenerateFitError{Reason: "reference slope is zero"}
	case sweep.Slope == 0:
		return Mapping{}, &regression.DegenerateFitError{Reason: "sweep slope is zero"}
	}

	m := Mapping{
		Alpha: reference.Slope / sweep.Slope,
		Beta:  (sweep.Intercept - reference.Intercept) / reference.Slope,
	}
	if m.Alpha == 0 || math.IsInf(m.Alpha, 0) || math.IsNaN(m.Alpha) || math.IsInf(m.Beta, 0) || math.IsNaN(m.Beta) {
		return Mapping{}, &regression.DegenerateFitError{Reason: "mapping is not finite"}
	}

	return m, nil
}

// Current maps a sweep index to amps.
func (m Mapping) Current(x float64) float64 {
	return (1/m.Alpha)*x + m.Beta
}

// Apply maps every plateau, in order.
func (m Mapping) Apply(stats []segment.Stat) []Point {
	points := make([]Point, len(stats))
	for i, st := range stats {
		points[i] = Point{
			Current: m.Current(st.Midpoint),
			Voltage: st.Mean,
			StdDev:  st.StdDev,
		}
	}

	return points
}
