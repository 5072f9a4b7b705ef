package calibration

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/tiacal/internal/hash"
	"github.com/arloliu/tiacal/internal/options"
	"github.com/arloliu/tiacal/regression"
	"github.com/arloliu/tiacal/segment"
)

type config struct {
	params    segment.Params
	reference ReferenceTable
	edgeTrim  int
	skipEmpty bool
	logger    logrus.FieldLogger
}

// Option configures a Calibrator.
type Option = options.Option[*config]

// WithDetectorOptions applies segment detector options on top of the current
// detector parameters.
func WithDetectorOptions(opts ...segment.Option) Option {
	return options.New(func(c *config) error {
		return options.Apply(&c.params, opts...)
	})
}

// WithReference sets the reference table. The table is copied.
func WithReference(table ReferenceTable) Option {
	return options.NoError(func(c *config) {
		c.reference = append(ReferenceTable(nil), table...)
	})
}

// WithEdgeTrim sets the number of plateaus excluded from each end of the
// sweep before fitting.
func WithEdgeTrim(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: edge trim must not be negative, got %d", ErrInvalidConfig, n)
		}
		c.edgeTrim = n

		return nil
	})
}

// WithSkipEmptySegments drops plateaus that are empty after trimming instead
// of failing the run.
func WithSkipEmptySegments(skip bool) Option {
	return options.NoError(func(c *config) {
		c.skipEmpty = skip
	})
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// Calibrator runs the sweep calibration pipeline. It holds immutable
// configuration only and is safe for concurrent use; every Run owns its own
// detector.
type Calibrator struct {
	cfg          config
	referenceFit *regression.Model
}

// NewCalibrator validates the configuration and fits the reference table.
//
// Defaults: segment.DefaultParams, Ximpedance22x, DefaultEdgeTrim, empty
// segments fail, logrus.StandardLogger.
func NewCalibrator(opts ...Option) (*Calibrator, error) {
	cfg := config{
		params:    segment.DefaultParams(),
		reference: Ximpedance22x,
		edgeTrim:  DefaultEdgeTrim,
		logger:    logrus.StandardLogger(),
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.params.Validate(); err != nil {
		return nil, err
	}

	referenceFit, err := FitReference(cfg.reference)
	if err != nil {
		return nil, err
	}
	if referenceFit.Slope == 0 {
		return nil, fmt.Errorf("reference fit: %w", &regression.DegenerateFitError{Reason: "reference slope is zero"})
	}

	return &Calibrator{cfg: cfg, referenceFit: referenceFit}, nil
}

// Params returns the detector parameters.
func (c *Calibrator) Params() segment.Params {
	return c.cfg.params
}

// EdgeTrim returns the number of plateaus excluded from each end of a sweep.
func (c *Calibrator) EdgeTrim() int {
	return c.cfg.edgeTrim
}

// Reference returns a copy of the reference table.
func (c *Calibrator) Reference() ReferenceTable {
	return append(ReferenceTable(nil), c.cfg.reference...)
}

// ReferenceFit returns the fitted reference line.
func (c *Calibrator) ReferenceFit() regression.Model {
	return *c.referenceFit
}

// Result holds everything derived from one calibration run.
type Result struct {
	// Samples is the number of input samples.
	Samples int
	// Digest identifies the input sequence.
	Digest uint64
	// Segments are the detected plateaus, including dropped empty ones.
	Segments []segment.Segment
	// Stats are the statistics of the kept plateaus, in sweep order.
	Stats []segment.Stat
	// Dropped is the number of empty plateaus skipped.
	Dropped int
	// ReferenceFit is the voltage over current line of the reference table.
	ReferenceFit regression.Model
	// SweepFit is the voltage over index line of the interior plateaus.
	SweepFit regression.Model
	// Mapping converts sweep indices to currents.
	Mapping Mapping
	// Points are the calibrated plateaus, one per entry of Stats.
	Points []Point
}

// Curve returns a voltage to current lookup over the calibrated points.
func (r *Result) Curve() Curve {
	return NewCurve(r.Points)
}

// Run calibrates one sweep. No partial result is returned on error.
func (c *Calibrator) Run(values []float64) (*Result, error) {
	digest := hash.Samples(values)
	log := c.cfg.logger.WithFields(logrus.Fields{
		"samples": len(values),
		"digest":  fmt.Sprintf("%016x", digest),
	})

	segments, err := segment.Detect(values, segment.WithParams(c.cfg.params))
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	log.WithFields(logrus.Fields{"stage": "detect", "segments": len(segments)}).Debug("segments detected")

	stats, dropped, err := c.summarize(segments, log)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	sweepFit, err := FitSweep(stats, c.cfg.edgeTrim)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"stage":     "fit",
		"reference_fit": c.referenceFit.Formula,
		"sweep_fit":     sweepFit.Formula,
		"r2":            sweepFit.RSquared,
	}).Debug("lines fitted")

	mapping, err := NewMapping(c.referenceFit, sweepFit)
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	log.WithFields(logrus.Fields{
		"stage":    "map",
		"alpha":    mapping.Alpha,
		"beta":     mapping.Beta,
		"plateaus": len(stats),
	}).Info("sweep calibrated")

	return &Result{
		Samples:      len(values),
		Digest:       digest,
		Segments:     segments,
		Stats:        stats,
		Dropped:      dropped,
		ReferenceFit: *c.referenceFit,
		SweepFit:     *sweepFit,
		Mapping:      mapping,
		Points:       mapping.Apply(stats),
	}, nil
}

func (c *Calibrator) summarize(segments []segment.Segment, log logrus.FieldLogger) ([]segment.Stat, int, error) {
	if !c.cfg.skipEmpty {
		stats, err := segment.SummarizeAll(segments)
		return stats, 0, err
	}

	stats := make([]segment.Stat, 0, len(segments))
	dropped := 0
	for i, seg := range segments {
		st, err := segment.Summarize(seg)
		if errors.Is(err, segment.ErrEmptySegment) {
			dropped++
			log.WithFields(logrus.Fields{
				"stage":   "summarize",
				"segment": i,
				"window":  seg.Window,
			}).Warn("dropping empty segment")

			continue
		}
		if err != nil {
			return nil, 0, err
		}
		stats = append(stats, st)
	}

	return stats, dropped, nil
}
