// Package segment partitions a sweep into plateaus and reduces each plateau to
// summary statistics.
//
// # Detection
//
// Detector is a single-pass online scanner. It keeps one open window that is
// seeded with the first sample. The first Beta samples of a window are
// accepted unconditionally (warm-up). After that every new sample is compared
// against the mean of everything the window has accepted so far; a sample
// further away than Alpha times the window standard deviation (floored at
// Delta) closes the window and opens a new one:
//
//	|v - mean| > Alpha * max(stddev, Delta)  => flush, reseed with v
//
// The window is never bounded, so its statistics are cumulative over the whole
// plateau. A flushed window loses Gamma samples at each end to discard
// transition transients; windows of 2*Gamma samples or fewer therefore become
// empty segments.
//
// # Statistics
//
// Summarize reduces a segment to its index midpoint (half-span from the lowest
// index), mean and population standard deviation.
//
// # Usage
//
//	segments, err := segment.Detect(values, segment.WithThreshold(3.5))
//	if err != nil {
//	    return err
//	}
//	stats, err := segment.SummarizeAll(segments)
package segment
