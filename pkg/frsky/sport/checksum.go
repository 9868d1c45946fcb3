package sport

// Fold adds one byte to the running checksum, folding the carry back into
// the low byte.
func Fold(crc uint16, b byte) uint16 {
	crc += uint16(b)
	crc += crc >> 8
	crc &= 0x00ff
	crc += crc >> 8
	crc &= 0x00ff
	return crc
}

// Accumulate folds all bytes.
func Accumulate(bs []byte) byte {
	var crc uint16
	for _, b := range bs {
		crc = Fold(crc, b)
	}
	return byte(crc)
}

// Checksum returns the byte to store after bs.
func Checksum(bs []byte) byte {
	return ^Accumulate(bs)
}

// Verify checks an 8-byte packet including its checksum byte.
func Verify(pkt []byte) bool {
	return len(pkt) == PacketSize && Accumulate(pkt) == 0xff
}

// VerifyReceived checks a packet as buffered by a receiver: the polled
// physical id byte followed by the 8-byte packet. The physical id is not
// covered by the checksum.
func VerifyReceived(buf []byte) bool {
	return len(buf) == PacketSize+1 && Accumulate(buf[1:]) == 0xff
}
