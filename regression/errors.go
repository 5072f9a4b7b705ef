package regression

import (
	"errors"
	"fmt"
)

// ErrDegenerateFit is matched by every *DegenerateFitError.
var ErrDegenerateFit = errors.New("degenerate linear fit")

// DegenerateFitError reports that a line could not be determined, or that a
// fitted line cannot be used because its slope is zero.
type DegenerateFitError struct {
	Reason string
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDegenerateFit, e.Reason)
}

func (e *DegenerateFitError) Unwrap() error {
	return ErrDegenerateFit
}

func degenerate(format string, args ...any) error {
	return &DegenerateFitError{Reason: fmt.Sprintf(format, args...)}
}
