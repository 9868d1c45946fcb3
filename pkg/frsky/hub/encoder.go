package hub

import (
	"io"

	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

// Encoder writes frames to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteFrame writes one frame.
func (e *Encoder) WriteFrame(f Frame) error {
	_, err := f.WriteTo(e.w)
	return err
}

// WriteValue writes a preformatted value.
func (e *Encoder) WriteValue(id byte, v int16) error {
	return e.WriteFrame(Frame{ID: id, Value: uint16(v)})
}

// WriteFixedPoint writes v as two frames, the integer part on idB and the
// scaled fractional part on idA.
func (e *Encoder) WriteFixedPoint(idB, idA byte, v float64, scale int) error {
	before, after, err := value.SplitFixedPoint(v, scale)
	if err != nil {
		return err
	}
	if err = e.WriteValue(idB, before); err != nil {
		return err
	}
	return e.WriteFrame(Frame{ID: idA, Value: after})
}

// WriteCell writes a LiPo cell voltage on the CELL_VOLT id.
func (e *Encoder) WriteCell(id uint8, volts float64) error {
	v, err := value.PackHubCell(id, volts)
	if err != nil {
		return err
	}
	return e.WriteFrame(Frame{ID: sensor.HubCellVolt, Value: v})
}

// WriteReading quantizes v following the descriptor and writes the
// resulting frame(s). Two-id quantities must be given their Before
// descriptor.
func (e *Encoder) WriteReading(d *sensor.Descriptor, v float64) error {
	switch d.Kind {
	case sensor.SignedScaled, sensor.UnsignedScaled:
		raw, err := d.Quantize(v)
		if err != nil {
			return err
		}
		return e.WriteFrame(Frame{ID: byte(d.ID), Value: uint16(raw)})
	case sensor.BeforeAfter:
		if d.Part != sensor.Before {
			return ErrUnsupportedKind
		}
		return e.WriteFixedPoint(byte(d.ID), byte(d.Pair), v, int(d.Scale))
	case sensor.FASVoltage:
		if d.Part != sensor.Before {
			return ErrUnsupportedKind
		}
		b, a, err := value.EncodeFASVoltage(v)
		if err != nil {
			return err
		}
		if err = e.WriteFrame(Frame{ID: byte(d.ID), Value: b}); err != nil {
			return err
		}
		return e.WriteFrame(Frame{ID: byte(d.Pair), Value: a})
	}
	return ErrUnsupportedKind
}
