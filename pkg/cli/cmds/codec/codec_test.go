package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/frsky.go/pkg/cli/sh"
	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
)

func TestEncodeHub(t *testing.T) {
	out, err := EncodeHub([]string{"0x02", "-10"})
	require.NoError(t, err)
	require.Equal(t, hub.EncodeFrame(sensor.HubTemp1, -10), out)

	out, err = EncodeHub([]string{"0x10", "0x5e5d"})
	require.NoError(t, err)
	require.Equal(t, []byte{0x5e, 0x10, 0x5d, 0x3d, 0x5d, 0x3e, 0x5e}, out)

	out, err = EncodeHub([]string{"ALT_B=12.5", "VFAS=16.8"})
	require.NoError(t, err)
	frames, errs := hub.Decode(out)
	require.Empty(t, errs)
	require.Equal(t, []hub.Frame{
		{ID: sensor.HubAltB, Value: 12},
		{ID: sensor.HubAltA, Value: 50},
		{ID: sensor.HubVFAS, Value: 168},
	}, frames)

	for _, args := range [][]string{nil, {"0x100", "1"}, {"2", "0x10000"}, {"NOPE=1"}, {"GPS_DM=1"}} {
		_, err = EncodeHub(args)
		require.Error(t, err, "%v", args)
	}
}

func TestDecodeHub(t *testing.T) {
	data, err := sh.ParseHex([]string{"5e 10 0c 00 5e 21 32 00 5e", "5e02"})
	require.NoError(t, err)
	readings, errs := DecodeHub(data)
	require.Len(t, errs, 1)
	require.Len(t, readings, 3)
	require.Equal(t, "ALT", readings[2].Name)
	require.InDelta(t, 12.5, readings[2].Value, 1e-9)
}

func TestEncodeDecodeSport(t *testing.T) {
	pkt, err := EncodeSport([]string{"0x0500", "3000"})
	require.NoError(t, err)
	require.Equal(t, sport.NewData(sensor.SportRPM, 3000), pkt)

	pkt, err = EncodeSport([]string{"0xf105", "0xffffffff"})
	require.NoError(t, err)
	require.Equal(t, int32(-1), pkt.Value)

	pkt, err = EncodeSport([]string{"ALT=-1.5"})
	require.NoError(t, err)
	readings, errs := DecodeSport(pkt.Bytes())
	require.Empty(t, errs)
	require.Len(t, readings, 1)
	require.Equal(t, "ALT", readings[0].Name)
	require.InDelta(t, -1.5, readings[0].Value, 1e-9)

	poll, err := sport.EncodePoll(0x12)
	require.NoError(t, err)
	readings, errs = DecodeSport(append(append(poll, pkt.Bytes()...), sport.PollStart, 0x01))
	require.Equal(t, []error{sport.ErrPhysicalID}, errs)
	require.Len(t, readings, 1)
	require.Equal(t, uint32(0x12), readings[0].PhysicalID)

	bad := pkt.Bytes()
	bad[7]++
	_, errs = DecodeSport(bad)
	require.Equal(t, []error{sport.ErrChecksum}, errs)

	for _, args := range [][]string{nil, {"1", "2", "3"}, {"0x10000", "1"}, {"ALT=x"}} {
		_, err = EncodeSport(args)
		require.Error(t, err, "%v", args)
	}
}

func TestEncodeCell(t *testing.T) {
	enc, err := EncodeCell([]string{"4.2", "3"})
	require.NoError(t, err)
	require.Equal(t, uint8(3), enc.ID)
	frames, errs := hub.Decode(enc.Hub)
	require.Empty(t, errs)
	require.Len(t, frames, 1)
	require.Equal(t, byte(sensor.HubCellVolt), frames[0].ID)
	pkt, err := sport.DecodePacket(enc.Sport)
	require.NoError(t, err)
	require.Equal(t, uint16(sensor.SportCells), pkt.ID)

	_, err = EncodeCell([]string{"9"})
	require.Error(t, err)
	_, err = EncodeCell(nil)
	require.Error(t, err)
}

func TestDecodeGPS(t *testing.T) {
	pos, err := DecodeGPS([]string{"4807", "1234"})
	require.NoError(t, err)
	require.Equal(t, 48, pos.Degrees.Degrees)
	require.Equal(t, 7, pos.Degrees.Minutes)
	require.InDelta(t, 7.404, pos.Degrees.Seconds, 1e-9)
	require.InDelta(t, 48+7.0/60+7.404/3600, pos.Decimal, 1e-9)

	_, err = DecodeGPS([]string{"1"})
	require.Error(t, err)
}

func TestFormatDescriptor(t *testing.T) {
	d, ok := sensor.Sport.Lookup(sensor.SportVFAS)
	require.True(t, ok)
	require.Equal(t, "sport 0x0210 VFAS           unsigned-scaled 1/100 V", FormatDescriptor(d))
}
