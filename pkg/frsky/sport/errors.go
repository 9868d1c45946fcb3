package sport

import "errors"

var (
	// ErrChecksum indicates a packet failed checksum verification.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrShortPacket indicates a buffer which is not exactly one packet.
	ErrShortPacket = errors.New("packet must be 8 bytes")
	// ErrPhysicalID indicates a poll byte with invalid parity bits.
	ErrPhysicalID = errors.New("invalid physical id")
)
