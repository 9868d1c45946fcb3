package value

import "math"

// GPSSecondsPerUnit converts the after-decimal GPS field (1/10000 minute,
// displayed as ddmm.mmmm) into seconds.
const GPSSecondsPerUnit = 0.006

// SplitFixedPoint splits v into an integer part and a separately scaled
// fractional part. The fractional part is always non-negative and the sign
// lives in before, so -0.5 and 0.5 split identically.
func SplitFixedPoint(v float64, scale int) (before int16, after uint16, err error) {
	if scale <= 0 {
		return 0, 0, &RangeError{What: "scale", Value: float64(scale), Min: 1, Max: math.MaxInt32}
	}
	whole := math.Trunc(v)
	if err = checkRange("integer part", whole, math.MinInt16, math.MaxInt16); err != nil {
		return
	}
	frac := math.Round(math.Abs(v-whole) * float64(scale))
	if err = checkRange("fractional part", frac, 0, math.MaxUint16); err != nil {
		return
	}
	return int16(whole), uint16(frac), nil
}

// JoinFixedPoint is the inverse of SplitFixedPoint. A zero integer part is
// treated as non-negative.
func JoinFixedPoint(before int16, after uint16, scale int) float64 {
	frac := float64(after) / float64(scale)
	if before > 0 {
		return float64(before) + frac
	}
	return float64(before) - frac
}

// DMS is a GPS coordinate in degrees, minutes and seconds.
type DMS struct {
	Degrees int
	Minutes int
	Seconds float64
}

// DegreesMinutesSeconds decodes the D protocol ddmm / mmmm GPS pair.
func DegreesMinutesSeconds(bp int16, ap uint16) DMS {
	return DMS{
		Degrees: int(bp) / 100,
		Minutes: int(bp) % 100,
		Seconds: float64(ap) * GPSSecondsPerUnit,
	}
}
