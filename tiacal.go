// Package tiacal calibrates transimpedance amplifier sweeps.
//
// A sweep is a sequence of output voltages recorded while the amplifier input
// current steps through a staircase. Each step shows up as a plateau of
// roughly constant voltage. tiacal finds the plateaus, summarizes them, and
// maps every plateau to the input current that produced it by reconciling a
// line fitted through the sweep with a line fitted through a hand-measured
// reference table.
//
// # Basic Usage
//
// Calibrating a recorded sweep log against the 22x board:
//
//	import "github.com/arloliu/tiacal"
//
//	result, err := tiacal.CalibrateFile("sweep.txt.zst")
//	if err != nil {
//	    return err
//	}
//	for _, p := range result.Points {
//	    fmt.Printf("%.3e A  %.5f V  ±%.5f\n", p.Current, p.Voltage, p.StdDev)
//	}
//
// Looking up the current behind a voltage:
//
//	curve := result.Curve()
//	current, ok := curve.CurrentAt(1.25)
//
// # Package Structure
//
//   - sweep: sweep log parsing, optionally compressed (zstd, s2, lz4)
//   - segment: plateau detection and plateau statistics
//   - regression: ordinary least squares line fitting
//   - calibration: reference table, sweep fit, mapping and the Calibrator pipeline
//   - profile: YAML calibration profiles
//
// This package provides convenient top-level wrappers around the calibration
// package. For fine-grained control, use the Calibrator directly.
package tiacal

import (
	"fmt"

	"github.com/arloliu/tiacal/calibration"
	"github.com/arloliu/tiacal/sweep"
)

// Calibrate runs the calibration pipeline over sweep voltages.
//
// Without options the 22x reference table and default detector settings are
// used, and progress is logged through the logrus standard logger.
//
// Example:
//
//	result, err := tiacal.Calibrate(values,
//	    calibration.WithDetectorOptions(segment.WithThreshold(4)),
//	    calibration.WithLogger(logger),
//	)
func Calibrate(values []float64, opts ...calibration.Option) (*calibration.Result, error) {
	cal, err := calibration.NewCalibrator(opts...)
	if err != nil {
		return nil, err
	}

	return cal.Run(values)
}

// CalibrateFile loads the sweep log at path and calibrates it. Files ending in
// .zst, .zstd, .sz, .s2 or .lz4 are decompressed on the fly.
func CalibrateFile(path string, opts ...calibration.Option) (*calibration.Result, error) {
	cal, err := calibration.NewCalibrator(opts...)
	if err != nil {
		return nil, err
	}

	values, err := sweep.LoadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := cal.Run(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return result, nil
}
