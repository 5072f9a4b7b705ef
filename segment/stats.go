package segment

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySegment is matched by every *EmptySegmentError.
var ErrEmptySegment = errors.New("empty segment")

// EmptySegmentError reports that statistics were requested for a segment
// without samples.
type EmptySegmentError struct {
	// Index is the position of the segment in its sequence, or -1 when the
	// segment was summarized on its own.
	Index int
	// Window is the untrimmed length of the flushed window.
	Window int
}

func (e *EmptySegmentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s (window of %d samples)", ErrEmptySegment, e.Window)
	}

	return fmt.Sprintf("segment %d: %s (window of %d samples)", e.Index, ErrEmptySegment, e.Window)
}

func (e *EmptySegmentError) Unwrap() error {
	return ErrEmptySegment
}

// Stat summarizes one segment.
type Stat struct {
	// Midpoint is the half-span point between the lowest and highest sample
	// index of the segment.
	Midpoint float64
	// Mean is the arithmetic mean of the segment values.
	Mean float64
	// StdDev is the population standard deviation of the segment values.
	StdDev float64
}

// Summarize computes the statistics of seg.
func Summarize(seg Segment) (Stat, error) {
	if len(seg.Points) == 0 {
		return Stat{}, &EmptySegmentError{Index: -1, Window: seg.Window}
	}

	minIdx, maxIdx := seg.Points[0].Index, seg.Points[0].Index

	// Welford keeps constant segments exact: mean == v, m2 == 0.
	var mean, m2 float64
	for i, p := range seg.Points {
		minIdx = min(minIdx, p.Index)
		maxIdx = max(maxIdx, p.Index)

		delta := p.Value - mean
		mean += delta / float64(i+1)
		m2 += delta * (p.Value - mean)
	}

	lo, hi := float64(minIdx), float64(maxIdx)

	return Stat{
		Midpoint: (hi-lo)/2 + lo,
		Mean:     mean,
		StdDev:   math.Sqrt(max(m2, 0) / float64(len(seg.Points))),
	}, nil
}

// SummarizeAll summarizes every segment in order. It fails on the first empty
// segment.
func SummarizeAll(segments []Segment) ([]Stat, error) {
	stats := make([]Stat, 0, len(segments))
	for i, seg := range segments {
		st, err := Summarize(seg)
		if err != nil {
			return nil, &EmptySegmentError{Index: i, Window: seg.Window}
		}
		stats = append(stats, st)
	}

	return stats, nil
}
