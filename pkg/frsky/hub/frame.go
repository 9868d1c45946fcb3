package hub

import "io"

// Reserved bytes.
const (
	Marker        byte = 0x5e
	Escape        byte = 0x5d
	EscapedMarker byte = 0x3e
	EscapedEscape byte = 0x3d
)

// MaxFrameSize is the size of a frame with both data bytes escaped.
const MaxFrameSize = 7

// Frame is one id/value pair.
type Frame struct {
	ID    byte
	Value uint16
}

// EncodeFrame encodes a signed value.
func EncodeFrame(id byte, v int16) []byte {
	return Frame{ID: id, Value: uint16(v)}.Bytes()
}

// Int16 returns the value as signed.
func (f Frame) Int16() int16 {
	return int16(f.Value)
}

// Bytes returns encoded bytes for sending.
func (f Frame) Bytes() []byte {
	b := make([]byte, 0, MaxFrameSize)
	b = append(b, Marker, f.ID)
	b = appendEscaped(b, byte(f.Value))
	b = appendEscaped(b, byte(f.Value>>8))
	return append(b, Marker)
}

// WriteTo writes encoded bytes.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

func appendEscaped(b []byte, c byte) []byte {
	switch c {
	case Marker:
		return append(b, Escape, EscapedMarker)
	case Escape:
		return append(b, Escape, EscapedEscape)
	}
	return append(b, c)
}
