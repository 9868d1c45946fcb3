package sport

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacket(t *testing.T) {
	testCases := []struct {
		name   string
		packet Packet
		expect []byte
	}{
		{"a4", Packet{Type: 0x10, ID: 0x0910, Value: 1234}, []byte{0x10, 0x10, 0x09, 0xd2, 0x04, 0x00, 0x00, 0x00}},
		{"air speed", NewData(0x0a00, 868), []byte{0x10, 0x00, 0x0a, 0x64, 0x03, 0x00, 0x00, 0x7e}},
		{"negative", NewData(0x0100, -1), []byte{0x10, 0x00, 0x01, 0xff, 0xff, 0xff, 0xff, 0xee}},
		{"empty", Packet{}, []byte{0, 0, 0, 0, 0, 0, 0, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.packet.Bytes())
			var buf bytes.Buffer
			n, err := tc.packet.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, int64(PacketSize), n)
			require.Equal(t, tc.expect, buf.Bytes())

			pkt, err := DecodePacket(tc.expect)
			require.NoError(t, err)
			require.Equal(t, tc.packet, pkt)
		})
	}
}

func TestEncodeDecodePacket(t *testing.T) {
	pkt := EncodePacket(0x10, 0x0910, 1234)
	decoded, err := DecodePacket(pkt[:])
	require.NoError(t, err)
	require.Equal(t, uint8(0x10), decoded.Type)
	require.Equal(t, uint16(0x0910), decoded.ID)
	require.Equal(t, int32(1234), decoded.Value)
	require.Equal(t, uint32(1234), decoded.Uint32())
	require.False(t, decoded.IsEmpty())
}

func TestDecodePacketErrors(t *testing.T) {
	pkt := EncodePacket(TypeData, 0x0500, 6000)
	_, err := DecodePacket(pkt[:7])
	require.Equal(t, ErrShortPacket, err)
	_, err = DecodePacket(append(pkt[:], 0))
	require.Equal(t, ErrShortPacket, err)
	pkt[4] ^= 0x01
	_, err = DecodePacket(pkt[:])
	require.Equal(t, ErrChecksum, err)
}

func TestChecksumRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		typ, id, v := uint8(r.Intn(256)), uint16(r.Intn(65536)), int32(r.Uint32())
		pkt := EncodePacket(typ, id, v)
		require.Truef(t, Verify(pkt[:]), "packet % x", pkt)
	}
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		pkt := EncodePacket(TypeData, 0xffff, v)
		require.True(t, Verify(pkt[:]))
	}
}

func TestChecksumSingleBitFlip(t *testing.T) {
	samples := []Packet{
		{Type: 0x10, ID: 0x0910, Value: 1234},
		{Type: 0x10, ID: 0x0100, Value: -1},
		{Type: 0x10, ID: 0xf101, Value: 0},
		{Type: 0x00, ID: 0x0000, Value: 0},
		{Type: 0xff, ID: 0xffff, Value: math.MaxInt32},
	}
	for _, sample := range samples {
		pkt := sample.Encode()
		require.True(t, Verify(pkt[:]))
		for i := 0; i < PacketSize; i++ {
			for bit := uint(0); bit < 8; bit++ {
				corrupted := pkt
				corrupted[i] ^= 1 << bit
				require.Falsef(t, Verify(corrupted[:]), "%+v byte %d bit %d", sample, i, bit)
			}
		}
	}
}

func TestEmptyAnswer(t *testing.T) {
	pkt := EmptyAnswer()
	require.True(t, Verify(pkt[:]))
	decoded, err := DecodePacket(pkt[:])
	require.NoError(t, err)
	require.True(t, decoded.IsEmpty())

	for _, crc := range []byte{0x00, 0xfe, 0x7f} {
		pkt[7] = crc
		require.False(t, Verify(pkt[:]))
	}
}

func TestVerifyReceived(t *testing.T) {
	pkt := EncodePacket(TypeData, 0x0910, 1234)
	buf := append([]byte{0x98}, pkt[:]...)
	require.True(t, VerifyReceived(buf))
	require.False(t, VerifyReceived(pkt[:]))
	buf[0] = 0x00
	require.True(t, VerifyReceived(buf))
	buf[8] ^= 0x80
	require.False(t, VerifyReceived(buf))
}

func TestFold(t *testing.T) {
	require.Equal(t, uint16(0x00), Fold(0, 0))
	require.Equal(t, uint16(0xff), Fold(0, 0xff))
	require.Equal(t, uint16(0x02), Fold(0xff, 0x02))
	require.Equal(t, uint16(0xff), Fold(0x80, 0x7f))
	require.Equal(t, byte(0x81), Accumulate([]byte{0x10, 0x00, 0x0a, 0x64, 0x03}))
	require.Equal(t, byte(0x7e), Checksum([]byte{0x10, 0x00, 0x0a, 0x64, 0x03}))
}
