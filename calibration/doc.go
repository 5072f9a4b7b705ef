// Package calibration cross-calibrates a transimpedance amplifier sweep
// against a hand-measured reference table.
//
// A sweep only knows sample indices and voltages; the reference table knows
// currents and voltages. Both are linear in voltage, so fitting one line to
// each gives
//
//	reference: V = k2*I + m2
//	sweep:     V = k1*x + m1
//
// and the mapping from sweep index x to current I follows as
//
//	Alpha = k2 / k1
//	Beta  = (m1 - m2) / k2
//	I     = x/Alpha + Beta
//
// Calibrator runs the whole pipeline: segment detection, plateau statistics,
// both fits, the mapping, and its application to every plateau.
//
//	cal, err := calibration.NewCalibrator(
//	    calibration.WithReference(calibration.Ximpedance22x),
//	    calibration.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := cal.Run(values)
//	if err != nil {
//	    return err
//	}
//	for _, p := range result.Points {
//	    fmt.Printf("%.3e A -> %.4f V ±%.4f\n", p.Current, p.Voltage, p.StdDev)
//	}
package calibration
