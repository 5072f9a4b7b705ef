package regression

import "fmt"

// Model is a fitted line y = Slope*x + Intercept with fit diagnostics.
type Model struct {
	// Slope is the fitted dy/dx.
	Slope float64
	// Intercept is the fitted y at x = 0.
	Intercept float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error of the residuals.
	RMSE float64
	// N is the number of points the line was fitted over.
	N int
	// Formula is a human-readable representation of the line.
	Formula string
}

// Estimate evaluates the line at x.
func (m *Model) Estimate(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Solve returns the x at which the line reaches y. The result is infinite or
// NaN when the slope is zero.
func (m *Model) Solve(y float64) float64 {
	return (y - m.Intercept) / m.Slope
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{N: %d, R²: %.4f, RMSE: %.4g, Formula: %s}",
		m.N, m.RSquared, m.RMSE, m.Formula)
}
