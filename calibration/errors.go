package calibration

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientSegments is matched by every *InsufficientSegmentsError.
	ErrInsufficientSegments = errors.New("insufficient segments")
	// ErrInvalidReference is returned for reference tables that cannot define a line.
	ErrInvalidReference = errors.New("invalid reference table")
	// ErrInvalidConfig is returned by NewCalibrator for out of range options.
	ErrInvalidConfig = errors.New("invalid calibrator configuration")
)

// InsufficientSegmentsError reports a sweep with too few plateaus to fit once
// the edge plateaus are excluded.
type InsufficientSegmentsError struct {
	// Have is the number of plateaus detected.
	Have int
	// Need is the minimum number of plateaus required.
	Need int
}

func (e *InsufficientSegmentsError) Error() string {
	return fmt.Sprintf("%s: have %d, need at least %d", ErrInsufficientSegments, e.Have, e.Need)
}

func (e *InsufficientSegmentsError) Unwrap() error {
	return ErrInsufficientSegments
}
