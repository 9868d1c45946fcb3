package value

import "math"

// PackBytePair packs two bytes into a 16-bit frame value, lo going first on
// the wire (e.g. day and month for the D GPS date).
func PackBytePair(lo, hi uint8) uint16 {
	return uint16(lo) | uint16(hi)<<8
}

// UnpackBytePair reverses PackBytePair.
func UnpackBytePair(v uint16) (lo, hi uint8) {
	return uint8(v), uint8(v >> 8)
}

// FAS sensors report voltage through a divider, hence the 110/21 factor
// and the poor (~0.19 V) resolution.
const (
	fasNum = 110
	fasDen = 21
)

// EncodeFASVoltage splits volts into the FAS before (tens) and after
// (units) fields sent on ids 0x3A and 0x3B.
func EncodeFASVoltage(volts float64) (b, a uint16, err error) {
	if err = checkRange("FAS voltage", volts, 0, float64(math.MaxUint16)*10*fasDen/fasNum); err != nil {
		return
	}
	v := int(volts * fasNum / fasDen)
	b = uint16(v / 10)
	a = uint16(v - int(b)*10)
	return
}

// DecodeFASVoltage reverses EncodeFASVoltage.
func DecodeFASVoltage(b, a uint16) float64 {
	return float64(int(b)*10+int(a)) * fasDen / fasNum
}

// Smart Port GPS coordinates are minutes/10000 in the low 30 bits.
const (
	sportGPSScale     = 600000
	sportGPSMask      = 0x3fffffff
	sportGPSNegative  = 1 << 30
	sportGPSLongitude = 1 << 31
)

// PackSportGPS encodes a latitude (longitude=false) or longitude for the
// Smart Port GPS_LONG_LATI sensor.
func PackSportGPS(degrees float64, longitude bool) (uint32, error) {
	limit := 90.0
	if longitude {
		limit = 180
	}
	if err := checkRange("GPS degrees", degrees, -limit, limit); err != nil {
		return 0, err
	}
	v := uint32(math.Round(math.Abs(degrees)*sportGPSScale)) & sportGPSMask
	if degrees < 0 {
		v |= sportGPSNegative
	}
	if longitude {
		v |= sportGPSLongitude
	}
	return v, nil
}

// UnpackSportGPS reverses PackSportGPS.
func UnpackSportGPS(v uint32) (degrees float64, longitude bool) {
	degrees = float64(v&sportGPSMask) / sportGPSScale
	if v&sportGPSNegative != 0 {
		degrees = -degrees
	}
	return degrees, v&sportGPSLongitude != 0
}

const sportDateMarker = 0xff

// PackSportDate encodes a GMT date (two-digit year) for GPS_TIME_DATE.
func PackSportDate(year, month, day uint8) uint32 {
	return uint32(year)<<24 | uint32(month)<<16 | uint32(day)<<8 | sportDateMarker
}

// PackSportTime encodes a GMT time of day for GPS_TIME_DATE.
func PackSportTime(hour, minute, second uint8) uint32 {
	return uint32(hour)<<24 | uint32(minute)<<16 | uint32(second)<<8
}

// UnpackSportDateTime splits a GPS_TIME_DATE value into its three fields,
// most significant first. isDate tells year/month/day from hour/minute/second.
func UnpackSportDateTime(v uint32) (f0, f1, f2 uint8, isDate bool) {
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), v&0xff == sportDateMarker
}
