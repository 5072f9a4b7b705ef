package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/tiacal/calibration"
	"github.com/arloliu/tiacal/segment"
)

// ErrInvalidProfile is returned for profiles that fail validation.
var ErrInvalidProfile = errors.New("invalid calibration profile")

// Profile is the on-disk calibration configuration.
type Profile struct {
	Detector          segment.Params             `yaml:"detector"`
	EdgeTrim          int                        `yaml:"edge_trim"`
	SkipEmptySegments bool                       `yaml:"skip_empty_segments"`
	LogLevel          string                     `yaml:"log_level"`
	Reference         calibration.ReferenceTable `yaml:"reference"`
}

// Default returns the profile of the 22x board with default detector settings.
func Default() Profile {
	return Profile{
		Detector:  segment.DefaultParams(),
		EdgeTrim:  calibration.DefaultEdgeTrim,
		LogLevel:  logrus.InfoLevel.String(),
		Reference: append(calibration.ReferenceTable(nil), calibration.Ximpedance22x...),
	}
}

// Load reads and validates the profile at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}

	return p, nil
}

// Parse decodes a YAML profile over Default and validates it. An empty
// document yields Default.
func Parse(data []byte) (Profile, error) {
	p := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Encode writes p as YAML.
func (p Profile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return enc.Close()
}

// Validate reports the first invalid field of p.
func (p Profile) Validate() error {
	if err := p.Detector.Validate(); err != nil {
		return fmt.Errorf("%w: detector: %w", ErrInvalidProfile, err)
	}
	if p.EdgeTrim < 0 {
		return fmt.Errorf("%w: edge_trim must not be negative, got %d", ErrInvalidProfile, p.EdgeTrim)
	}
	if _, err := p.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidProfile, err)
	}
	if err := p.Reference.Validate(); err != nil {
		return fmt.Errorf("%w: reference: %w", ErrInvalidProfile, err)
	}

	return nil
}

// Level parses LogLevel. An empty level means info.
func (p Profile) Level() (logrus.Level, error) {
	if p.LogLevel == "" {
		return logrus.InfoLevel, nil
	}

	return logrus.ParseLevel(p.LogLevel)
}

// Options converts p into calibrator options logging to logger.
func (p Profile) Options(logger logrus.FieldLogger) []calibration.Option {
	return []calibration.Option{
		calibration.WithDetectorOptions(segment.WithParams(p.Detector)),
		calibration.WithReference(p.Reference),
		calibration.WithEdgeTrim(p.EdgeTrim),
		calibration.WithSkipEmptySegments(p.SkipEmptySegments),
		calibration.WithLogger(logger),
	}
}
