package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitJoinFixedPoint(t *testing.T) {
	testCases := []struct {
		name   string
		value  float64
		scale  int
		before int16
		after  uint16
	}{
		{"positive", 12.34, 100, 12, 34},
		{"negative", -12.34, 100, -12, 34},
		{"integer", 250, 100, 250, 0},
		{"per mille", 3.1416, 1000, 3, 142},
		{"max", 32767.5, 10, 32767, 5},
		{"min", -32768.25, 100, -32768, 25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before, after, err := SplitFixedPoint(tc.value, tc.scale)
			require.NoError(t, err)
			require.Equal(t, tc.before, before)
			require.Equal(t, tc.after, after)
			require.InDelta(t, tc.value, JoinFixedPoint(before, after, tc.scale), 1/float64(tc.scale))
		})
	}
}

func TestFixedPointRoundTrip(t *testing.T) {
	for _, scale := range []int{10, 100, 500, 1000} {
		for v := -9000.0; v <= 9000; v += 7.129 {
			if math.Abs(v) < 1 {
				continue
			}
			before, after, err := SplitFixedPoint(v, scale)
			require.NoError(t, err)
			require.InDeltaf(t, v, JoinFixedPoint(before, after, scale), 1/float64(scale), "value %v scale %d", v, scale)
		}
	}
}

// The sign of the fraction is lost when the integer part is zero.
func TestFixedPointZeroIntegerPart(t *testing.T) {
	bn, an, err := SplitFixedPoint(-0.5, 100)
	require.NoError(t, err)
	bp, ap, err := SplitFixedPoint(0.5, 100)
	require.NoError(t, err)
	require.Equal(t, bp, bn)
	require.Equal(t, ap, an)
	require.Equal(t, -0.5, JoinFixedPoint(bp, ap, 100))
}

func TestSplitFixedPointRange(t *testing.T) {
	_, _, err := SplitFixedPoint(40000, 100)
	require.IsType(t, &RangeError{}, err)
	_, _, err = SplitFixedPoint(-40000, 100)
	require.IsType(t, &RangeError{}, err)
	_, _, err = SplitFixedPoint(1.5, 0)
	require.IsType(t, &RangeError{}, err)
	_, _, err = SplitFixedPoint(math.NaN(), 100)
	require.IsType(t, &RangeError{}, err)
	_, _, err = SplitFixedPoint(1.9, 1000000)
	require.IsType(t, &RangeError{}, err)
}

func TestDegreesMinutesSeconds(t *testing.T) {
	dms := DegreesMinutesSeconds(4807, 1234)
	require.Equal(t, 48, dms.Degrees)
	require.Equal(t, 7, dms.Minutes)
	require.InDelta(t, 7.404, dms.Seconds, 1e-9)

	dms = DegreesMinutesSeconds(-12230, 5000)
	require.Equal(t, -122, dms.Degrees)
	require.Equal(t, -30, dms.Minutes)
	require.InDelta(t, 30.0, dms.Seconds, 1e-9)
}

func TestPackHubCell(t *testing.T) {
	v, err := PackHubCell(3, 3.7)
	require.NoError(t, err)
	b0, b1 := byte(v), byte(v>>8)
	require.Equal(t, byte(0x37), b0)
	require.Equal(t, byte(0x3a), b1)

	id, volts := UnpackHubCell(v)
	require.Equal(t, uint8(3), id)
	require.InDelta(t, 3.7, volts, 1.0/CellScale)

	// cell ids are 4-bit on the wire
	v, err = PackHubCell(0x13, 4.2)
	require.NoError(t, err)
	id, _ = UnpackHubCell(v)
	require.Equal(t, uint8(3), id)

	_, err = PackHubCell(1, 8.2)
	require.IsType(t, &RangeError{}, err)
	_, err = PackHubCell(1, -0.1)
	require.IsType(t, &RangeError{}, err)
}

func TestPackSportCells(t *testing.T) {
	v, err := PackSportCells(2, 6, 3.7, 4.2)
	require.NoError(t, err)
	require.Equal(t, uint32(2100)<<20|uint32(1850)<<8|6<<4|2, v)
	cells := UnpackSportCells(v)
	require.Equal(t, uint8(2), cells.ID)
	require.Equal(t, uint8(6), cells.Count)
	require.InDelta(t, 3.7, cells.Volts[0], 1.0/CellScale)
	require.InDelta(t, 4.2, cells.Volts[1], 1.0/CellScale)

	v, err = PackSportCell(1, 3.7)
	require.NoError(t, err)
	require.Equal(t, uint32(1850)<<8|1, v)
	cells = UnpackSportCells(v)
	require.Equal(t, uint8(1), cells.ID)
	require.Zero(t, cells.Count)
	require.Zero(t, cells.Volts[1])

	// the D and SP layouts differ for the same input
	hub, err := PackHubCell(3, 3.7)
	require.NoError(t, err)
	sport, err := PackSportCell(3, 3.7)
	require.NoError(t, err)
	require.NotEqual(t, uint32(hub), sport)

	_, err = PackSportCells(0, 2, 3.7, 9)
	require.IsType(t, &RangeError{}, err)
}

func TestBytePair(t *testing.T) {
	v := PackBytePair(19, 10)
	require.Equal(t, uint16(0x0a13), v)
	day, month := UnpackBytePair(v)
	require.Equal(t, uint8(19), day)
	require.Equal(t, uint8(10), month)
}

func TestFASVoltage(t *testing.T) {
	b, a, err := EncodeFASVoltage(12.3)
	require.NoError(t, err)
	// 12.3 * 110 / 21 = 64.43
	require.Equal(t, uint16(6), b)
	require.Equal(t, uint16(4), a)
	require.InDelta(t, 12.3, DecodeFASVoltage(b, a), 0.2)

	_, _, err = EncodeFASVoltage(-1)
	require.IsType(t, &RangeError{}, err)
}

func TestSportGPS(t *testing.T) {
	testCases := []struct {
		degrees   float64
		longitude bool
	}{
		{48.1173, false},
		{-33.8688, false},
		{11.5167, true},
		{-122.4194, true},
		{0, true},
	}
	for _, tc := range testCases {
		v, err := PackSportGPS(tc.degrees, tc.longitude)
		require.NoError(t, err)
		degrees, longitude := UnpackSportGPS(v)
		require.InDelta(t, tc.degrees, degrees, 1.0/600000)
		require.Equal(t, tc.longitude, longitude)
	}
	v, err := PackSportGPS(-1, true)
	require.NoError(t, err)
	require.Equal(t, uint32(0xc0000000|600000), v)

	_, err = PackSportGPS(91, false)
	require.IsType(t, &RangeError{}, err)
}

func TestSportDateTime(t *testing.T) {
	v := PackSportDate(26, 10, 19)
	require.Equal(t, uint32(0x1a0a13ff), v)
	y, m, d, isDate := UnpackSportDateTime(v)
	require.True(t, isDate)
	require.Equal(t, []uint8{26, 10, 19}, []uint8{y, m, d})

	v = PackSportTime(13, 45, 7)
	h, mi, s, isDate := UnpackSportDateTime(v)
	require.False(t, isDate)
	require.Equal(t, []uint8{13, 45, 7}, []uint8{h, mi, s})
}
