package sweep

// Sample is one voltage reading of a sweep.
type Sample struct {
	// Index is the position of the sample in the original sequence.
	Index int
	// Value is the reading in volts.
	Value float64
}

// Samples pairs every value with its position in values.
func Samples(values []float64) []Sample {
	out := make([]Sample, len(values))
	for i, v := range values {
		out[i] = Sample{Index: i, Value: v}
	}

	return out
}
