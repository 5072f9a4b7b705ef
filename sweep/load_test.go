package sweep

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tiacal/compress"
	"github.com/arloliu/tiacal/format"
)

const sweepFixture = `[00:00:01] adc: 1897 mV
[00:00:02] adc: 1674.5 mV
[00:00:03] adc: -368 mV
[00:00:04]	adc:   0 mV
`

func TestLoad(t *testing.T) {
	values, err := Load(strings.NewReader(sweepFixture))
	require.NoError(t, err)
	require.Len(t, values, 4)

	assert.InDelta(t, 1.897, values[0], 1e-12)
	assert.InDelta(t, 1.6745, values[1], 1e-12)
	assert.InDelta(t, -0.368, values[2], 1e-12)
	assert.Equal(t, 0.0, values[3])
}

func TestLoadEmpty(t *testing.T) {
	values, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestLoadMalformedRecord(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		fields int
		parse  bool
	}{
		{
			name:   "three tokens",
			input:  "a b 1 c\na b 2 c\n1 2 3\na b 4 c\n",
			line:   3,
			fields: 3,
		},
		{
			name:   "five tokens on first line",
			input:  "a b 1 c d\n",
			line:   1,
			fields: 5,
		},
		{
			name:   "blank line",
			input:  "a b 1 c\n\na b 2 c\n",
			line:   2,
			fields: 0,
		},
		{
			name:   "voltage not numeric",
			input:  "a b 1 c\na b x c\n",
			line:   2,
			fields: 4,
			parse:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			require.Nil(t, values)
			require.ErrorIs(t, err, ErrMalformedRecord)

			var mre *MalformedRecordError
			require.True(t, errors.As(err, &mre))
			require.Equal(t, tt.line, mre.Line)
			require.Equal(t, tt.fields, mre.Fields)
			require.Contains(t, err.Error(), "line "+strconv.Itoa(tt.line))

			if tt.parse {
				require.ErrorIs(t, err, strconv.ErrSyntax)
			} else {
				require.NoError(t, mre.Err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte(sweepFixture)

	files := map[string]format.CompressionType{
		"sweep.txt":     format.CompressionNone,
		"sweep.txt.zst": format.CompressionZstd,
		"sweep.txt.sz":  format.CompressionS2,
		"sweep.txt.lz4": format.CompressionLZ4,
	}

	for name, ct := range files {
		t.Run(name, func(t *testing.T) {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)
			payload, err := codec.Compress(data)
			require.NoError(t, err)

			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, payload, 0o600))

			values, err := LoadFile(path)
			require.NoError(t, err)
			require.Len(t, values, 4)
			assert.InDelta(t, 1.897, values[0], 1e-12)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("a b 1 c\n1 2 3\n"), 0o600))

	_, err = LoadFile(path)
	require.ErrorIs(t, err, ErrMalformedRecord)
	require.Contains(t, err.Error(), path)

	var mre *MalformedRecordError
	require.ErrorAs(t, err, &mre)
	require.Equal(t, 2, mre.Line)
}

func TestSamples(t *testing.T) {
	samples := Samples([]float64{0.5, 0.25, 1})
	require.Equal(t, []Sample{{0, 0.5}, {1, 0.25}, {2, 1}}, samples)
	require.Empty(t, Samples(nil))
}
