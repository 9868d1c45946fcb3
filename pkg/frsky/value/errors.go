package value

import "fmt"

// RangeError indicates an input that does not fit the target wire field.
type RangeError struct {
	What  string
	Value float64
	Min   float64
	Max   float64
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %v out of range [%v, %v]", e.What, e.Value, e.Min, e.Max)
}

func checkRange(what string, v, min, max float64) error {
	if v < min || v > max || v != v {
		return &RangeError{What: what, Value: v, Min: min, Max: max}
	}
	return nil
}
