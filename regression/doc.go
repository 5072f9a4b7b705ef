// Package regression provides the ordinary least-squares line fit used to
// relate current, sweep index and voltage.
//
// Calibration fits two independent lines of the form y = Slope*x + Intercept:
//
//   - Reference fit: hand-measured (current, voltage) pairs of the amplifier.
//   - Sweep fit: (index midpoint, mean voltage) of the detected plateaus.
//
// Both come out of FitLinear, which minimizes the total squared vertical
// residual and reports the goodness of fit alongside the coefficients.
//
// # Usage
//
//	model, err := regression.FitLinear(currents, voltages)
//	if err != nil {
//	    return err // errors.Is(err, regression.ErrDegenerateFit)
//	}
//	fmt.Println(model.Formula)          // y = -21908.8*x + 0.14224
//	v := model.Estimate(-35e-6)         // voltage at -35 µA
//	i := model.Solve(0.9)               // current producing 0.9 V
//
// # Degenerate Input
//
// A line is undefined when fewer than two points are supplied, when every x
// is identical, or when any coordinate is NaN or infinite. FitLinear returns a
// *DegenerateFitError in all of these cases rather than a model with NaN
// coefficients.
//
// # Diagnostics
//
//   - RSquared: coefficient of determination, 1 - SS_res/SS_tot (0 when y is constant)
//   - RMSE: root mean square of the residuals, in units of y
package regression
