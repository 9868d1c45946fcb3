package hub

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	require.NoError(t, enc.WriteCell(3, 3.7))
	require.Equal(t, []byte{0x5e, 0x06, 0x37, 0x3a, 0x5e}, buf.Bytes())

	buf.Reset()
	require.NoError(t, enc.WriteFixedPoint(sensor.HubAltB, sensor.HubAltA, -12.5, 100))
	require.Equal(t, []byte{
		0x5e, 0x10, 0xf4, 0xff, 0x5e,
		0x5e, 0x21, 0x32, 0x00, 0x5e,
	}, buf.Bytes())

	frames, errs := Decode(buf.Bytes())
	require.Empty(t, errs)
	require.Len(t, frames, 2)
	require.Equal(t, -12.5, value.JoinFixedPoint(frames[0].Int16(), frames[1].Value, 100))
}

func TestEncoderWriteReading(t *testing.T) {
	testCases := []struct {
		name   string
		id     uint16
		value  float64
		frames []Frame
	}{
		{"temperature", sensor.HubTemp1, -20, []Frame{{ID: 0x02, Value: 0xffec}}},
		{"acceleration", sensor.HubAccZ, 0.981, []Frame{{ID: 0x26, Value: 981}}},
		{"rpm", sensor.HubRPM, 60000, []Frame{{ID: 0x03, Value: 60000}}},
		{"course", sensor.HubGPSCourseB, 359.99, []Frame{{ID: 0x14, Value: 359}, {ID: 0x1c, Value: 99}}},
		{"fas voltage", sensor.HubVoltageB, 12.3, []Frame{{ID: 0x3a, Value: 6}, {ID: 0x3b, Value: 4}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := sensor.Hub.Lookup(tc.id)
			require.True(t, ok)
			var buf bytes.Buffer
			require.NoError(t, NewEncoder(&buf).WriteReading(d, tc.value))
			frames, errs := Decode(buf.Bytes())
			require.Empty(t, errs)
			require.Equal(t, tc.frames, frames)
		})
	}
}

func TestEncoderWriteReadingErrors(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	d, _ := sensor.Hub.Lookup(sensor.HubAltA)
	require.Equal(t, ErrUnsupportedKind, enc.WriteReading(d, 1))
	d, _ = sensor.Hub.Lookup(sensor.HubGPSDM)
	require.Equal(t, ErrUnsupportedKind, enc.WriteReading(d, 1))
	d, _ = sensor.Hub.Lookup(sensor.HubAccX)
	require.IsType(t, &value.RangeError{}, enc.WriteReading(d, 33))
	require.IsType(t, &value.RangeError{}, enc.WriteCell(1, 9))
	require.Zero(t, buf.Len())
}
