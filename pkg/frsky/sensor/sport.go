package sensor

// Smart Port logical ids.
const (
	SportAlt         = 0x0100
	SportVario       = 0x0110
	SportCurr        = 0x0200
	SportVFAS        = 0x0210
	SportCells       = 0x0300
	SportT1          = 0x0400
	SportT2          = 0x0410
	SportRPM         = 0x0500
	SportFuel        = 0x0600
	SportAccX        = 0x0700
	SportAccY        = 0x0710
	SportAccZ        = 0x0720
	SportGPSLongLati = 0x0800
	SportGPSAlt      = 0x0820
	SportGPSSpeed    = 0x0830
	SportGPSCourse   = 0x0840
	SportGPSTimeDate = 0x0850
	SportA3          = 0x0900
	SportA4          = 0x0910
	SportAirSpeed    = 0x0a00
	SportRSSI        = 0xf101
	SportADC1        = 0xf102
	SportADC2        = 0xf103
	SportBatt        = 0xf104
	SportSWR         = 0xf105
)

// Sport is the Smart Port catalog.
var Sport = newCatalog(ProtocolSport, []Descriptor{
	{ID: SportAlt, Name: "ALT", Kind: SignedScaled, Width: 32, Signed: true, Scale: 100, Unit: "m"},
	{ID: SportVario, Name: "VARIO", Kind: SignedScaled, Width: 32, Signed: true, Scale: 100, Unit: "m/s"},
	{ID: SportCurr, Name: "CURR", Kind: UnsignedScaled, Width: 32, Scale: 10, Unit: "A"},
	{ID: SportVFAS, Name: "VFAS", Kind: UnsignedScaled, Width: 32, Scale: 100, Unit: "V"},
	{ID: SportCells, Name: "CELLS", Kind: CellVoltage, Width: 32, Scale: 500, Unit: "V"},
	{ID: SportT1, Name: "T1", Kind: SignedScaled, Width: 32, Signed: true, Scale: 1, Unit: "°C"},
	{ID: SportT2, Name: "T2", Kind: SignedScaled, Width: 32, Signed: true, Scale: 1, Unit: "°C"},
	{ID: SportRPM, Name: "RPM", Kind: UnsignedScaled, Width: 32, Scale: 1, Unit: "rpm"},
	{ID: SportFuel, Name: "FUEL", Kind: UnsignedScaled, Width: 32, Scale: 1, Unit: "%"},
	{ID: SportAccX, Name: "ACCX", Kind: SignedScaled, Width: 32, Signed: true, Scale: 100, Unit: "g"},
	{ID: SportAccY, Name: "ACCY", Kind: SignedScaled, Width: 32, Signed: true, Scale: 100, Unit: "g"},
	{ID: SportAccZ, Name: "ACCZ", Kind: SignedScaled, Width: 32, Signed: true, Scale: 100, Unit: "g"},
	{ID: SportGPSLongLati, Name: "GPS_LONG_LATI", Kind: GPSCoord, Width: 32, Scale: 600000, Unit: "°"},
	{ID: SportGPSAlt, Name: "GPS_ALT", Kind: SignedScaled, Width: 32, Signed: true, Scale: 100, Unit: "m"},
	{ID: SportGPSSpeed, Name: "GPS_SPEED", Kind: UnsignedScaled, Width: 32, Scale: 1000, Unit: "kn"},
	{ID: SportGPSCourse, Name: "GPS_COURSE", Kind: UnsignedScaled, Width: 32, Scale: 100, Unit: "°"},
	{ID: SportGPSTimeDate, Name: "GPS_TIME_DATE", Kind: GPSDateTime, Width: 32, Scale: 1},
	{ID: SportA3, Name: "A3", Kind: UnsignedScaled, Width: 32, Scale: 100, Unit: "V"},
	{ID: SportA4, Name: "A4", Kind: UnsignedScaled, Width: 32, Scale: 100, Unit: "V"},
	{ID: SportAirSpeed, Name: "AIR_SPEED", Kind: UnsignedScaled, Width: 32, Scale: 10, Unit: "kn"},
	{ID: SportRSSI, Name: "RSSI", Kind: UnsignedScaled, Width: 32, Scale: 1, Unit: "dB"},
	{ID: SportADC1, Name: "ADC1", Kind: UnsignedScaled, Width: 32, Scale: 1},
	{ID: SportADC2, Name: "ADC2", Kind: UnsignedScaled, Width: 32, Scale: 1},
	{ID: SportBatt, Name: "BATT", Kind: UnsignedScaled, Width: 32, Scale: 1},
	{ID: SportSWR, Name: "SWR", Kind: UnsignedScaled, Width: 32, Scale: 1},
})
