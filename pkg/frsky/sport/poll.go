package sport

import "github.com/robotalks/frsky.go/pkg/frsky/value"

// PollStart starts a poll frame.
const PollStart byte = 0x7e

// MaxPhysicalID is the highest polled physical id.
const MaxPhysicalID = 0x1b

// Poll is a receiver poll.
type Poll struct {
	PhysicalID uint8
}

// PhysicalID returns the poll byte for physical id n: the id in the low 5
// bits and three parity bits on top.
func PhysicalID(n uint8) (byte, error) {
	if n > MaxPhysicalID {
		return 0, &value.RangeError{What: "physical id", Value: float64(n), Min: 0, Max: MaxPhysicalID}
	}
	return withParity(n), nil
}

func withParity(n uint8) byte {
	bit := func(i uint) byte { return (n >> i) & 1 }
	b := n
	b |= (bit(0) ^ bit(1) ^ bit(2)) << 5
	b |= (bit(2) ^ bit(3) ^ bit(4)) << 6
	b |= (bit(0) ^ bit(2) ^ bit(4)) << 7
	return b
}

// ParsePhysicalID validates a poll byte and extracts the physical id.
func ParsePhysicalID(b byte) (uint8, bool) {
	n := b & 0x1f
	return n, n <= MaxPhysicalID && withParity(n) == b
}

// EncodePoll returns the poll frame for physical id n.
func EncodePoll(n uint8) ([]byte, error) {
	b, err := PhysicalID(n)
	if err != nil {
		return nil, err
	}
	return []byte{PollStart, b}, nil
}
