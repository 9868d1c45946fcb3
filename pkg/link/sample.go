package link

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

// Sample is a physical value to be sent for a sensor.
type Sample struct {
	Sensor *sensor.Descriptor
	Value  float64
	// Index is the cell id of cell voltages, or 1 for the longitude of a
	// Smart Port GPS coordinate.
	Index uint8
}

// ParseSample parses NAME[:INDEX]=VALUE against a catalog. GPS_LAT and
// GPS_LONG name the two halves of the Smart Port GPS_LONG_LATI sensor.
func ParseSample(c *sensor.Catalog, s string) (Sample, error) {
	var smp Sample
	pos := strings.IndexByte(s, '=')
	if pos < 0 {
		return smp, fmt.Errorf("invalid sample %q, expect NAME=VALUE", s)
	}
	name, val := s[:pos], s[pos+1:]
	if p := strings.IndexByte(name, ':'); p >= 0 {
		index, err := strconv.ParseUint(name[p+1:], 0, 4)
		if err != nil {
			return smp, fmt.Errorf("invalid index of %q: %v", name, err)
		}
		name, smp.Index = name[:p], uint8(index)
	}
	switch strings.ToUpper(name) {
	case "GPS_LAT":
		name = "GPS_LONG_LATI"
	case "GPS_LONG":
		name, smp.Index = "GPS_LONG_LATI", 1
	}
	d, ok := c.ByName(name)
	if !ok {
		return smp, fmt.Errorf("unknown %s sensor %q", c.Protocol(), name)
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return smp, fmt.Errorf("invalid value of %s: %v", name, err)
	}
	smp.Sensor, smp.Value = d, v
	return smp, nil
}

// String implements fmt.Stringer.
func (s Sample) String() string {
	if s.Sensor.Kind == sensor.CellVoltage {
		return fmt.Sprintf("%s:%d=%v", s.Sensor.Name, s.Index, s.Value)
	}
	return fmt.Sprintf("%s=%v", s.Sensor.Name, s.Value)
}

// SportPacket encodes the sample as a Smart Port data packet.
func (s Sample) SportPacket() (sport.Packet, error) {
	d := s.Sensor
	if d.Protocol != sensor.ProtocolSport {
		return sport.Packet{}, fmt.Errorf("%s is not a Smart Port sensor", d.Name)
	}
	var raw uint32
	var err error
	switch d.Kind {
	case sensor.SignedScaled, sensor.UnsignedScaled:
		var v int32
		v, err = d.Quantize(s.Value)
		raw = uint32(v)
	case sensor.CellVoltage:
		raw, err = value.PackSportCell(s.Index, s.Value)
	case sensor.GPSCoord:
		raw, err = value.PackSportGPS(s.Value, s.Index == 1)
	default:
		err = fmt.Errorf("%s: %s values can't be sampled", d.Name, d.Kind)
	}
	if err != nil {
		return sport.Packet{}, err
	}
	return sport.NewData(d.ID, int32(raw)), nil
}

// WriteHub writes the sample as D frame(s).
func (s Sample) WriteHub(enc *hub.Encoder) error {
	d := s.Sensor
	if d.Protocol != sensor.ProtocolHub {
		return fmt.Errorf("%s is not a D sensor", d.Name)
	}
	if d.Kind == sensor.CellVoltage {
		return enc.WriteCell(s.Index, s.Value)
	}
	return enc.WriteReading(d, s.Value)
}
