package sweep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/tiacal/compress"
	"github.com/arloliu/tiacal/format"
)

const (
	// RecordFields is the number of tokens in a well-formed record.
	RecordFields = 4
	// VoltageField is the zero-based token position of the millivolt reading.
	VoltageField = 2

	millivoltsPerVolt = 1000.0

	// maxLineSize bounds a single record; real records are a few dozen bytes.
	maxLineSize = 64 * 1024
)

// Load parses a sweep log and returns the readings in volts.
func Load(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var values []float64
	line := 0
	for scanner.Scan() {
		line++
		v, err := parseRecord(scanner.Text(), line)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sweep after line %d: %w", line, err)
	}

	return values, nil
}

// LoadFile opens path, transparently decompresses it based on its extension
// (see format.CompressionFromPath) and parses it with Load.
func LoadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := compress.NewReader(f, format.CompressionFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	values, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return values, nil
}

func parseRecord(text string, line int) (float64, error) {
	fields := strings.Fields(text)
	if len(fields) != RecordFields {
		return 0, &MalformedRecordError{Line: line, Fields: len(fields)}
	}

	mv, err := strconv.ParseFloat(fields[VoltageField], 64)
	if err != nil {
		return 0, &MalformedRecordError{Line: line, Fields: len(fields), Err: err}
	}

	return mv / millivoltsPerVolt, nil
}
