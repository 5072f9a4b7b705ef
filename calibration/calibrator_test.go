package calibration

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tiacal/regression"
	"github.com/arloliu/tiacal/segment"
)

func quietLogger() *logrus.Logger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func TestNewCalibratorDefaults(t *testing.T) {
	cal, err := NewCalibrator(WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, segment.DefaultParams(), cal.Params())
	assert.Equal(t, DefaultEdgeTrim, cal.EdgeTrim())
	assert.Equal(t, Ximpedance22x, cal.Reference())
	assert.InDelta(t, -21908.8, cal.ReferenceFit().Slope, 0.1)
}

func TestNewCalibratorRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"negative edge trim", WithEdgeTrim(-1), ErrInvalidConfig},
		{"short reference", WithReference(ReferenceTable{{Current: 1, Voltage: 1}}), ErrInvalidReference},
		{"coinciding currents", WithReference(ReferenceTable{{Current: 1, Voltage: 1}, {Current: 1, Voltage: 2}}), regression.ErrDegenerateFit},
		{"flat reference", WithReference(ReferenceTable{{Current: 1, Voltage: 1}, {Current: 2, Voltage: 1}}), regression.ErrDegenerateFit},
		{"warm-up", WithDetectorOptions(segment.WithWarmup(1)), segment.ErrInvalidParams},
		{"threshold", WithDetectorOptions(segment.WithThreshold(0)), segment.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := NewCalibrator(tt.opt)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, cal)
		})
	}
}

func TestWithReferenceCopiesTable(t *testing.T) {
	table := ReferenceTable{{Current: 0, Voltage: 0}, {Current: 1, Voltage: 2}}
	cal, err := NewCalibrator(WithReference(table), WithLogger(quietLogger()))
	require.NoError(t, err)

	table[1].Voltage = 100
	assert.Equal(t, 2.0, cal.Reference()[1].Voltage)
	assert.InDelta(t, 2.0, cal.ReferenceFit().Slope, 1e-12)
}

func TestCalibratorRoundTrip(t *testing.T) {
	const slope, intercept = 0.001, 0.1

	// The reference is the sweep's own line, so currents equal indices.
	reference := make(ReferenceTable, 0, 9)
	for x := 0.0; x <= 800; x += 100 {
		reference = append(reference, ReferencePoint{Current: x, Voltage: slope*x + intercept})
	}

	cal, err := NewCalibrator(WithReference(reference), WithLogger(quietLogger()))
	require.NoError(t, err)

	values := lineSweep(30, slope, intercept)
	result, err := cal.Run(values)
	require.NoError(t, err)

	assert.Equal(t, len(values), result.Samples)
	require.Len(t, result.Segments, 30)
	require.Len(t, result.Stats, 30)
	require.Len(t, result.Points, 30)
	assert.Zero(t, result.Dropped)

	assert.InDelta(t, 1.0, result.Mapping.Alpha, 1e-9)
	assert.InDelta(t, 0.0, result.Mapping.Beta, 1e-6)
	assert.Equal(t, 30-2*DefaultEdgeTrim, result.SweepFit.N)

	for k, p := range result.Points {
		assert.InDelta(t, plateauMidpoint(k), result.Stats[k].Midpoint, 1e-12)
		assert.InDelta(t, plateauMidpoint(k), p.Current, 1e-6)
		assert.InDelta(t, slope*plateauMidpoint(k)+intercept, p.Voltage, 1e-12)
		assert.InDelta(t, 0.0, p.StdDev, 1e-9)
	}
}

func TestCalibratorRecoversCurrents(t *testing.T) {
	ref, err := FitReference(Ximpedance22x)
	require.NoError(t, err)

	tests := []struct {
		name      string
		noise     float64
		tolerance float64
	}{
		{"noise free", 0, 1e-12},
		{"noisy", 0.0002, 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, currents := currentSweep(ref, 35, -80e-6, 2e-6, tt.noise)

			cal, err := NewCalibrator(WithLogger(quietLogger()))
			require.NoError(t, err)

			result, err := cal.Run(values)
			require.NoError(t, err)
			require.Len(t, result.Points, len(currents))

			for k, p := range result.Points {
				assert.InDelta(t, currents[k], p.Current, tt.tolerance, "plateau %d", k)
			}

			// Interpolating back from voltage lands on the same currents.
			curve := result.Curve()
			for k, p := range result.Points {
				got, ok := curve.CurrentAt(p.Voltage)
				require.True(t, ok)
				assert.InDelta(t, currents[k], got, tt.tolerance, "plateau %d", k)
			}
		})
	}
}

func TestCalibratorEmptySegments(t *testing.T) {
	values := lineSweep(25, 0.001, 0.1)
	// A short tail is trimmed away entirely.
	for range 6 {
		values = append(values, 1.5)
	}

	t.Run("fail", func(t *testing.T) {
		cal, err := NewCalibrator(WithLogger(quietLogger()))
		require.NoError(t, err)

		result, err := cal.Run(values)
		require.ErrorIs(t, err, segment.ErrEmptySegment)
		assert.Nil(t, result)

		var empty *segment.EmptySegmentError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, 25, empty.Index)
		assert.Equal(t, 6, empty.Window)
	})

	t.Run("skip", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		cal, err := NewCalibrator(
			WithReference(ReferenceTable{{Current: 0, Voltage: 0.1}, {Current: 1000, Voltage: 1.1}}),
			WithSkipEmptySegments(true),
			WithLogger(logger),
		)
		require.NoError(t, err)

		result, err := cal.Run(values)
		require.NoError(t, err)
		assert.Len(t, result.Segments, 26)
		assert.Len(t, result.Stats, 25)
		assert.Equal(t, 1, result.Dropped)

		var warnings []*logrus.Entry
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.WarnLevel {
				warnings = append(warnings, entry)
			}
		}
		require.Len(t, warnings, 1)
		assert.Equal(t, 25, warnings[0].Data["segment"])
		assert.Equal(t, "summarize", warnings[0].Data["stage"])
	})
}

func TestCalibratorInsufficientSegments(t *testing.T) {
	cal, err := NewCalibrator(WithLogger(quietLogger()))
	require.NoError(t, err)

	result, err := cal.Run(lineSweep(15, 0.001, 0.1))
	require.ErrorIs(t, err, ErrInsufficientSegments)
	assert.Nil(t, result)

	var insufficient *InsufficientSegmentsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 15, insufficient.Have)
	assert.Equal(t, 21, insufficient.Need)

	_, err = cal.Run(nil)
	require.ErrorIs(t, err, ErrInsufficientSegments)
}

func TestCalibratorEdgeTrimOption(t *testing.T) {
	cal, err := NewCalibrator(WithEdgeTrim(2), WithLogger(quietLogger()))
	require.NoError(t, err)

	ref, err := FitReference(Ximpedance22x)
	require.NoError(t, err)
	values, _ := currentSweep(ref, 8, -40e-6, 2e-6, 0)

	result, err := cal.Run(values)
	require.NoError(t, err)
	assert.Equal(t, 4, result.SweepFit.N)
}

func TestCalibratorLogsMapping(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	// Callers tag runs with their own fields; the pipeline must not clobber them.
	cal, err := NewCalibrator(WithLogger(logger.WithField("sweep", "bench-7.txt")))
	require.NoError(t, err)

	ref, err := FitReference(Ximpedance22x)
	require.NoError(t, err)
	values, _ := currentSweep(ref, 25, -60e-6, 2e-6, 0)

	result, err := cal.Run(values)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "sweep calibrated", entry.Message)
	assert.Equal(t, result.Mapping.Alpha, entry.Data["alpha"])
	assert.Equal(t, result.Mapping.Beta, entry.Data["beta"])
	assert.Equal(t, len(values), entry.Data["samples"])

	var stages []any
	for _, e := range hook.AllEntries() {
		stages = append(stages, e.Data["stage"])
		assert.Equal(t, "bench-7.txt", e.Data["sweep"], "stage %v", e.Data["stage"])
	}
	assert.Equal(t, []any{"detect", "fit", "map"}, stages)

	fit := hook.AllEntries()[1]
	assert.Equal(t, result.SweepFit.Formula, fit.Data["sweep_fit"])
	assert.Equal(t, result.ReferenceFit.Formula, fit.Data["reference_fit"])
}

func TestCalibratorDeterministicAndShareable(t *testing.T) {
	ref, err := FitReference(Ximpedance22x)
	require.NoError(t, err)
	values, _ := currentSweep(ref, 30, -75e-6, 2e-6, 0.0002)

	cal, err := NewCalibrator(WithLogger(quietLogger()))
	require.NoError(t, err)

	want, err := cal.Run(values)
	require.NoError(t, err)

	const workers = 8
	results := make([]*Result, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = cal.Run(values)
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.NotNil(t, got)
		assert.Equal(t, want.Digest, got.Digest)
		assert.Equal(t, want.Mapping, got.Mapping)
		assert.Equal(t, want.Points, got.Points)
	}
}
