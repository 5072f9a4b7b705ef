package segment

import (
	"math"

	"github.com/arloliu/tiacal/sweep"
)

// State is the phase of the detector's open window.
type State uint8

const (
	// StateIdle means no window is open: nothing was pushed yet, or the last
	// window was flushed explicitly.
	StateIdle State = iota
	// StateWarmingUp means the open window holds fewer than Beta samples and
	// accepts new samples without a threshold check.
	StateWarmingUp
	// StateWatching means every new sample is checked against the window
	// statistics before it is accepted.
	StateWatching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWarmingUp:
		return "WarmingUp"
	case StateWatching:
		return "Watching"
	default:
		return "Unknown"
	}
}

// Segment is the trimmed content of one flushed window.
type Segment struct {
	// Points are the samples left after trimming, in input order. May be empty.
	Points []sweep.Sample
	// Window is the untrimmed length of the flushed window.
	Window int
}

// Len returns the number of samples left after trimming.
func (s Segment) Len() int {
	return len(s.Points)
}

// Detector partitions a sample stream into plateaus.
//
// A Detector is not safe for concurrent use.
type Detector struct {
	params Params
	state  State
	window []sweep.Sample

	// running sums over window values
	sum   float64
	sumSq float64
}

// NewDetector creates a detector from DefaultParams adjusted by opts.
// Invalid parameters are rejected here, before any sample is processed.
func NewDetector(opts ...Option) (*Detector, error) {
	params, err := NewParams(opts...)
	if err != nil {
		return nil, err
	}

	return &Detector{params: params}, nil
}

// Params returns the detector configuration.
func (d *Detector) Params() Params {
	return d.params
}

// State returns the current phase of the open window.
func (d *Detector) State() State {
	return d.state
}

// Push feeds the next sample. When s does not belong to the open window, the
// window is flushed and returned with ok set, and s seeds a new window.
func (d *Detector) Push(s sweep.Sample) (seg Segment, ok bool) {
	switch d.state {
	case StateIdle:
		d.reset(s)
	case StateWarmingUp:
		d.accept(s)
	case StateWatching:
		if d.breaks(s.Value) {
			seg = d.trimmed()
			d.reset(s)

			return seg, true
		}
		d.accept(s)
	}

	return Segment{}, false
}

// Flush trims and returns the open window regardless of its length, leaving
// the detector idle. ok is false when no window is open.
func (d *Detector) Flush() (seg Segment, ok bool) {
	if d.state == StateIdle {
		return Segment{}, false
	}

	seg = d.trimmed()
	d.window = nil
	d.sum, d.sumSq = 0, 0
	d.state = StateIdle

	return seg, true
}

// Mean returns the mean of the open window, or NaN if none is open.
func (d *Detector) Mean() float64 {
	if len(d.window) == 0 {
		return math.NaN()
	}

	return d.sum / float64(len(d.window))
}

// StdDev returns the population standard deviation of the open window, or NaN
// if none is open.
func (d *Detector) StdDev() float64 {
	n := float64(len(d.window))
	if n == 0 {
		return math.NaN()
	}

	mean := d.sum / n
	variance := d.sumSq/n - mean*mean
	if variance < 0 {
		// cancellation on near-constant windows
		variance = 0
	}

	return math.Sqrt(variance)
}

func (d *Detector) breaks(v float64) bool {
	delta := math.Abs(v - d.Mean())

	return delta > d.params.Alpha*math.Max(d.StdDev(), d.params.Delta)
}

func (d *Detector) reset(s sweep.Sample) {
	d.window = make([]sweep.Sample, 0, d.params.Beta)
	d.sum, d.sumSq = 0, 0
	d.state = StateWarmingUp
	d.accept(s)
}

func (d *Detector) accept(s sweep.Sample) {
	d.window = append(d.window, s)
	d.sum += s.Value
	d.sumSq += s.Value * s.Value

	if d.state == StateWarmingUp && len(d.window) >= d.params.Beta {
		d.state = StateWatching
	}
}

// trimmed hands the open window off as a segment. The detector must not touch
// the returned points afterwards.
func (d *Detector) trimmed() Segment {
	n := len(d.window)
	g := d.params.Gamma

	seg := Segment{Window: n}
	if n > 2*g {
		seg.Points = d.window[g : n-g : n-g]
	} else {
		seg.Points = []sweep.Sample{}
	}

	return seg
}

// Detect runs a fresh detector over values, indexing samples by position, and
// flushes the final window. Empty input yields no segments.
func Detect(values []float64, opts ...Option) ([]Segment, error) {
	d, err := NewDetector(opts...)
	if err != nil {
		return nil, err
	}

	var segments []Segment
	for i, v := range values {
		if seg, ok := d.Push(sweep.Sample{Index: i, Value: v}); ok {
			segments = append(segments, seg)
		}
	}
	if seg, ok := d.Flush(); ok {
		segments = append(segments, seg)
	}

	return segments, nil
}
