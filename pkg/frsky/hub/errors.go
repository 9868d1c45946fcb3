package hub

import "errors"

// ErrUnsupportedKind indicates the sensor value can't be derived from a
// single float.
var ErrUnsupportedKind = errors.New("unsupported sensor kind")

// FramingError reports a discarded frame.
type FramingError struct {
	Reason string
}

// Error implements error.
func (e *FramingError) Error() string {
	return "framing error: " + e.Reason
}
