package segment

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/tiacal/internal/options"
)

// Default detector parameters, tuned against bench sweeps of the 10x and 22x
// amplifier boards.
const (
	DefaultAlpha = 3.5
	DefaultBeta  = 18
	DefaultGamma = 4
	DefaultDelta = 0.001
)

// ErrInvalidParams is returned when detector parameters are out of range.
var ErrInvalidParams = errors.New("invalid detector parameters")

// Params holds the detector configuration.
type Params struct {
	// Alpha is the threshold multiplier applied to the window standard deviation.
	Alpha float64 `yaml:"alpha"`
	// Beta is the warm-up length: no threshold checks happen until the window
	// holds this many samples. Must be greater than 1.
	Beta int `yaml:"beta"`
	// Gamma is the number of samples trimmed from each end of a flushed window.
	Gamma int `yaml:"gamma"`
	// Delta is the floor for the standard deviation used in the threshold.
	Delta float64 `yaml:"delta"`
}

// DefaultParams returns the default detector parameters.
func DefaultParams() Params {
	return Params{
		Alpha: DefaultAlpha,
		Beta:  DefaultBeta,
		Gamma: DefaultGamma,
		Delta: DefaultDelta,
	}
}

// Validate reports whether p can drive a detector.
func (p Params) Validate() error {
	switch {
	case !(p.Alpha > 0) || math.IsInf(p.Alpha, 0):
		return fmt.Errorf("%w: alpha must be positive and finite, got %v", ErrInvalidParams, p.Alpha)
	case p.Beta <= 1:
		return fmt.Errorf("%w: beta must be greater than 1, got %d", ErrInvalidParams, p.Beta)
	case p.Gamma < 0:
		return fmt.Errorf("%w: gamma must not be negative, got %d", ErrInvalidParams, p.Gamma)
	case !(p.Delta >= 0) || math.IsInf(p.Delta, 0):
		return fmt.Errorf("%w: delta must be non-negative and finite, got %v", ErrInvalidParams, p.Delta)
	}

	return nil
}

// Option configures detector Params.
type Option = options.Option[*Params]

// WithThreshold sets Alpha, the threshold multiplier.
func WithThreshold(alpha float64) Option {
	return options.NoError(func(p *Params) {
		p.Alpha = alpha
	})
}

// WithWarmup sets Beta, the warm-up window length.
func WithWarmup(beta int) Option {
	return options.New(func(p *Params) error {
		if beta <= 1 {
			return fmt.Errorf("%w: beta must be greater than 1, got %d", ErrInvalidParams, beta)
		}
		p.Beta = beta

		return nil
	})
}

// WithTrim sets Gamma, the number of samples dropped at each window end.
func WithTrim(gamma int) Option {
	return options.New(func(p *Params) error {
		if gamma < 0 {
			return fmt.Errorf("%w: gamma must not be negative, got %d", ErrInvalidParams, gamma)
		}
		p.Gamma = gamma

		return nil
	})
}

// WithStdDevFloor sets Delta, the floor on the standard deviation.
func WithStdDevFloor(delta float64) Option {
	return options.NoError(func(p *Params) {
		p.Delta = delta
	})
}

// WithParams replaces all parameters at once.
func WithParams(params Params) Option {
	return options.NoError(func(p *Params) {
		*p = params
	})
}

// NewParams applies opts over DefaultParams and validates the result.
func NewParams(opts ...Option) (Params, error) {
	p := DefaultParams()
	if err := options.Apply(&p, opts...); err != nil {
		return Params{}, err
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}
