package sweep

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is matched by every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed sweep record")

// MalformedRecordError reports a sweep log record that cannot be turned into
// a sample.
type MalformedRecordError struct {
	// Line is the 1-based line number of the record.
	Line int
	// Fields is the number of tokens found on the line.
	Fields int
	// Err is the parse error of the voltage token, if the token count was right.
	Err error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, ErrMalformedRecord, e.Err)
	}

	return fmt.Sprintf("line %d: %s: expected %d fields, got %d", e.Line, ErrMalformedRecord, RecordFields, e.Fields)
}

func (e *MalformedRecordError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedRecord, e.Err}
	}

	return []error{ErrMalformedRecord}
}
