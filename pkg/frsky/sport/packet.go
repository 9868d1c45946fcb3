package sport

import (
	"encoding/binary"
	"io"
)

// PacketSize is the size of an encoded packet.
const PacketSize = 8

// TypeData is the only packet type currently defined.
const TypeData uint8 = 0x10

// Packet contains the information of a parsed packet.
type Packet struct {
	Type  uint8
	ID    uint16
	Value int32
}

// NewData creates a data packet.
func NewData(id uint16, v int32) Packet {
	return Packet{Type: TypeData, ID: id, Value: v}
}

// EncodePacket lays out the fields little-endian and appends the checksum.
func EncodePacket(typ uint8, id uint16, v int32) (pkt [PacketSize]byte) {
	pkt[0] = typ
	binary.LittleEndian.PutUint16(pkt[1:3], id)
	binary.LittleEndian.PutUint32(pkt[3:7], uint32(v))
	pkt[7] = Checksum(pkt[:7])
	return
}

// EmptyAnswer returns the packet a present sensor sends when it has no
// fresh value.
func EmptyAnswer() (pkt [PacketSize]byte) {
	pkt[7] = 0xff
	return
}

// DecodePacket validates and decodes one packet.
func DecodePacket(b []byte) (Packet, error) {
	if len(b) != PacketSize {
		return Packet{}, ErrShortPacket
	}
	if !Verify(b) {
		return Packet{}, ErrChecksum
	}
	return Packet{
		Type:  b[0],
		ID:    binary.LittleEndian.Uint16(b[1:3]),
		Value: int32(binary.LittleEndian.Uint32(b[3:7])),
	}, nil
}

// Encode encodes the packet.
func (p Packet) Encode() [PacketSize]byte {
	return EncodePacket(p.Type, p.ID, p.Value)
}

// Bytes returns encoded bytes for sending.
func (p Packet) Bytes() []byte {
	pkt := p.Encode()
	return pkt[:]
}

// WriteTo writes encoded bytes.
func (p Packet) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// Uint32 returns the value bits as unsigned.
func (p Packet) Uint32() uint32 {
	return uint32(p.Value)
}

// IsEmpty indicates the packet is the no-data answer.
func (p Packet) IsEmpty() bool {
	return p == Packet{}
}
