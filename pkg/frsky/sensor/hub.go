package sensor

// D protocol logical ids. B ids carry the part before the decimal point,
// A ids the part after.
const (
	HubGPSAltB    = 0x01
	HubTemp1      = 0x02
	HubRPM        = 0x03
	HubFuel       = 0x04
	HubTemp2      = 0x05
	HubCellVolt   = 0x06
	HubGPSAltA    = 0x09
	HubAltB       = 0x10
	HubGPSSpeedB  = 0x11
	HubGPSLongB   = 0x12
	HubGPSLatB    = 0x13
	HubGPSCourseB = 0x14
	HubGPSDM      = 0x15
	HubGPSYear    = 0x16
	HubGPSHM      = 0x17
	HubGPSSec     = 0x18
	HubGPSSpeedA  = 0x19
	HubGPSLongA   = 0x1a
	HubGPSLatA    = 0x1b
	HubGPSCourseA = 0x1c
	HubAltA       = 0x21
	HubGPSLongEW  = 0x22
	HubGPSLatNS   = 0x23
	HubAccX       = 0x24
	HubAccY       = 0x25
	HubAccZ       = 0x26
	HubCurrent    = 0x28
	HubVFAS       = 0x39
	HubVoltageB   = 0x3a
	HubVoltageA   = 0x3b
)

// Hub is the D protocol catalog.
var Hub = newCatalog(ProtocolHub, []Descriptor{
	{ID: HubGPSAltB, Name: "GPS_ALT_B", Kind: BeforeAfter, Width: 16, Signed: true, Scale: 100, Part: Before, Pair: HubGPSAltA, Unit: "m"},
	{ID: HubGPSAltA, Name: "GPS_ALT_A", Kind: BeforeAfter, Width: 16, Scale: 100, Part: After, Pair: HubGPSAltB, Unit: "m"},
	{ID: HubTemp1, Name: "TEMP1", Kind: SignedScaled, Width: 16, Signed: true, Scale: 1, Unit: "°C"},
	{ID: HubRPM, Name: "RPM", Kind: UnsignedScaled, Width: 16, Scale: 1, Unit: "rpm"},
	{ID: HubFuel, Name: "FUEL", Kind: UnsignedScaled, Width: 16, Scale: 1, Unit: "%"},
	{ID: HubTemp2, Name: "TEMP2", Kind: SignedScaled, Width: 16, Signed: true, Scale: 1, Unit: "°C"},
	{ID: HubCellVolt, Name: "CELL_VOLT", Kind: CellVoltage, Width: 16, Scale: 500, Unit: "V"},
	{ID: HubAltB, Name: "ALT_B", Kind: BeforeAfter, Width: 16, Signed: true, Scale: 100, Part: Before, Pair: HubAltA, Unit: "m"},
	{ID: HubAltA, Name: "ALT_A", Kind: BeforeAfter, Width: 16, Scale: 100, Part: After, Pair: HubAltB, Unit: "m"},
	{ID: HubGPSSpeedB, Name: "GPS_SPEED_B", Kind: BeforeAfter, Width: 16, Signed: true, Scale: 100, Part: Before, Pair: HubGPSSpeedA, Unit: "kn"},
	{ID: HubGPSSpeedA, Name: "GPS_SPEED_A", Kind: BeforeAfter, Width: 16, Scale: 100, Part: After, Pair: HubGPSSpeedB, Unit: "kn"},
	{ID: HubGPSLongB, Name: "GPS_LONG_B", Kind: BeforeAfter, Width: 16, Signed: true, Scale: 10000, Part: Before, Pair: HubGPSLongA, Unit: "ddmm.mmmm"},
	{ID: HubGPSLongA, Name: "GPS_LONG_A", Kind: BeforeAfter, Width: 16, Scale: 10000, Part: After, Pair: HubGPSLongB, Unit: "ddmm.mmmm"},
	{ID: HubGPSLatB, Name: "GPS_LAT_B", Kind: BeforeAfter, Width: 16, Signed: true, Scale: 10000, Part: Before, Pair: HubGPSLatA, Unit: "ddmm.mmmm"},
	{ID: HubGPSLatA, Name: "GPS_LAT_A", Kind: BeforeAfter, Width: 16, Scale: 10000, Part: After, Pair: HubGPSLatB, Unit: "ddmm.mmmm"},
	{ID: HubGPSCourseB, Name: "GPS_COURSE_B", Kind: BeforeAfter, Width: 16, Signed: true, Scale: 100, Part: Before, Pair: HubGPSCourseA, Unit: "°"},
	{ID: HubGPSCourseA, Name: "GPS_COURSE_A", Kind: BeforeAfter, Width: 16, Scale: 100, Part: After, Pair: HubGPSCourseB, Unit: "°"},
	{ID: HubGPSDM, Name: "GPS_DM", Kind: BytePair, Width: 16, Scale: 1, Unit: "day/month"},
	{ID: HubGPSYear, Name: "GPS_YEAR", Kind: UnsignedScaled, Width: 16, Scale: 1, Unit: "year"},
	{ID: HubGPSHM, Name: "GPS_HM", Kind: BytePair, Width: 16, Scale: 1, Unit: "hour/minute"},
	{ID: HubGPSSec, Name: "GPS_SEC", Kind: UnsignedScaled, Width: 16, Scale: 1, Unit: "s"},
	{ID: HubGPSLongEW, Name: "GPS_LONG_EW", Kind: UnsignedScaled, Width: 16, Scale: 1, Unit: "E/W"},
	{ID: HubGPSLatNS, Name: "GPS_LAT_NS", Kind: UnsignedScaled, Width: 16, Scale: 1, Unit: "N/S"},
	{ID: HubAccX, Name: "ACCX", Kind: SignedScaled, Width: 16, Signed: true, Scale: 1000, Unit: "g"},
	{ID: HubAccY, Name: "ACCY", Kind: SignedScaled, Width: 16, Signed: true, Scale: 1000, Unit: "g"},
	{ID: HubAccZ, Name: "ACCZ", Kind: SignedScaled, Width: 16, Signed: true, Scale: 1000, Unit: "g"},
	{ID: HubCurrent, Name: "CURRENT", Kind: SignedScaled, Width: 16, Signed: true, Scale: 10, Unit: "A"},
	{ID: HubVFAS, Name: "VFAS", Kind: SignedScaled, Width: 16, Signed: true, Scale: 10, Unit: "V"},
	{ID: HubVoltageB, Name: "VOLTAGE_B", Kind: FASVoltage, Width: 16, Scale: 1, Part: Before, Pair: HubVoltageA, Unit: "V"},
	{ID: HubVoltageA, Name: "VOLTAGE_A", Kind: FASVoltage, Width: 16, Scale: 1, Part: After, Pair: HubVoltageB, Unit: "V"},
})
