package calibration

import (
	"fmt"
	"math"

	"github.com/arloliu/tiacal/internal/pool"
	"github.com/arloliu/tiacal/regression"
)

// ReferencePoint is one hand-measured operating point of the amplifier.
type ReferencePoint struct {
	// Current is the input current in amps.
	Current float64 `yaml:"current"`
	// Voltage is the output voltage in volts.
	Voltage float64 `yaml:"voltage"`
}

// ReferenceTable is the trusted current/voltage relation of an amplifier.
type ReferenceTable []ReferencePoint

// Ximpedance22x holds the bench measurements of the 22x transimpedance board.
var Ximpedance22x = ReferenceTable{
	{Current: -80.0e-6, Voltage: 1897.01e-3},
	{Current: -70.0e-6, Voltage: 1674.18e-3},
	{Current: -60.0e-6, Voltage: 1457.56e-3},
	{Current: -50.0e-6, Voltage: 1236.95e-3},
	{Current: -40.0e-6, Voltage: 1020.39e-3},
	{Current: -30.0e-6, Voltage: 797.671e-3},
	{Current: -20.0e-6, Voltage: 573.201e-3},
	{Current: -10.0e-6, Voltage: 368.117e-3},
}

// Validate checks that t holds at least two finite points with two distinct
// currents. Every failure also matches regression.ErrDegenerateFit.
func (t ReferenceTable) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("%w: %w", ErrInvalidReference,
			&regression.DegenerateFitError{Reason: fmt.Sprintf("need at least 2 points, got %d", len(t))})
	}

	distinct := false
	for i, p := range t {
		if math.IsNaN(p.Current) || math.IsInf(p.Current, 0) || math.IsNaN(p.Voltage) || math.IsInf(p.Voltage, 0) {
			return fmt.Errorf("%w: %w", ErrInvalidReference,
				&regression.DegenerateFitError{Reason: fmt.Sprintf("point %d is not finite", i)})
		}
		if p.Current != t[0].Current {
			distinct = true
		}
	}
	if !distinct {
		return fmt.Errorf("%w: %w", ErrInvalidReference,
			&regression.DegenerateFitError{Reason: fmt.Sprintf("all %d currents equal %v", len(t), t[0].Current)})
	}

	return nil
}

// FitReference fits voltage against current over the table.
func FitReference(t ReferenceTable) (*regression.Model, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	xs, releaseX := pool.GetFloat64Slice(len(t))
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(len(t))
	defer releaseY()

	for i, p := range t {
		xs[i] = p.Current
		ys[i] = p.Voltage
	}

	model, err := regression.FitLinear(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("reference fit: %w", err)
	}

	return model, nil
}
