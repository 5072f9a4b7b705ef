package calibration

import (
	"math/rand/v2"

	"github.com/arloliu/tiacal/regression"
)

const plateauLen = 30

// plateauMidpoint is the statistics midpoint of plateau k under symmetric
// trimming.
func plateauMidpoint(k int) float64 {
	return float64(k*plateauLen) + float64(plateauLen-1)/2
}

// plateaus expands one level per plateau into a sweep.
func plateaus(levels []float64, noise float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x94d049bb133111eb))
	out := make([]float64, 0, len(levels)*plateauLen)
	for _, level := range levels {
		for range plateauLen {
			v := level
			if noise > 0 {
				v += noise * rng.NormFloat64()
			}
			out = append(out, v)
		}
	}

	return out
}

// lineSweep returns n plateaus whose voltages lie on v = slope*midpoint + intercept.
func lineSweep(n int, slope, intercept float64) []float64 {
	levels := make([]float64, n)
	for k := range levels {
		levels[k] = slope*plateauMidpoint(k) + intercept
	}

	return plateaus(levels, 0, 1)
}

// currentSweep returns the sweep an amplifier described by ref produces for
// currents start, start+step, ...
func currentSweep(ref *regression.Model, n int, start, step, noise float64) ([]float64, []float64) {
	currents := make([]float64, n)
	levels := make([]float64, n)
	for k := range levels {
		currents[k] = start + step*float64(k)
		levels[k] = ref.Estimate(currents[k])
	}

	return plateaus(levels, noise, 7), currents
}
