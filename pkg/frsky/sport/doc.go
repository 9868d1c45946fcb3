// Package sport implements the FrSky Smart Port packet protocol.
//
// The receiver polls physical sensor ids in turn at 57600 baud on an
// inverted, half-duplex line:
//
//	0x7E phys
//
// and the sensor owning phys answers right away with one 8-byte packet:
//
//	type id_lo id_hi v0 v1 v2 v3 checksum
//
// A sensor with nothing new to report answers with the empty packet (all
// zero, checksum 0xFF) to keep its slot alive.
//
// Producer: sensor
// Consumer: receiver
package sport
