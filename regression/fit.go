package regression

import (
	"fmt"
	"math"
)

// FitLinear fits y = Slope*x + Intercept to the points (x[i], y[i]) by
// ordinary least squares.
//
// Returns a *DegenerateFitError when the slices differ in length, hold fewer
// than two points, contain a non-finite value, or when all x coincide.
func FitLinear(x, y []float64) (*Model, error) {
	if len(x) != len(y) {
		return nil, degenerate("mismatched data lengths: %d x vs %d y", len(x), len(y))
	}

	n := len(x)
	if n < 2 {
		return nil, degenerate("need at least 2 points, got %d", n)
	}

	for i := range n {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, degenerate("non-finite point %d: (%v, %v)", i, x[i], y[i])
		}
	}

	meanX := calculateMean(x)
	meanY := calculateMean(y)

	// Centered sums avoid the cancellation of the Σx², Σxy form when x is a
	// large sweep index.
	var sxx, sxy float64
	for i := range n {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}
	if sxx == 0 {
		return nil, degenerate("all %d x values equal %v", n, x[0])
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	predicted := make([]float64, n)
	for i := range n {
		predicted[i] = slope*x[i] + intercept
	}

	return &Model{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  calculateRSquared(y, predicted),
		RMSE:      calculateRMSE(y, predicted),
		N:         n,
		Formula:   fmt.Sprintf("y = %.6g*x + %.6g", slope, intercept),
	}, nil
}

// calculateRSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot). Returns 0 when the observations are
// constant, since SS_tot is zero.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error, √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
