// Package hub implements the FrSky D protocol framing.
//
// A D sensor (or hub) streams frames unsolicited at 9600 baud on an
// inverted serial line:
//
//	0x5E id b0 b1 0x5E
//
// b0 b1 is a little-endian 16-bit value. A data byte equal to 0x5E or 0x5D
// is sent as 0x5D 0x3E or 0x5D 0x3D. There is no checksum; a corrupted frame
// is dropped and the next one is expected shortly since senders repeat
// their values continuously.
//
// Producer: sensor / hub
// Consumer: receiver
package hub
