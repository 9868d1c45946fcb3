package telemetry

import (
	"strings"
	"time"

	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

func newReading(p sensor.Protocol, id uint16, raw int32, at time.Time) *Reading {
	return &Reading{
		Protocol:  p.String(),
		SensorID:  uint32(id),
		Raw:       raw,
		Value:     float64(raw),
		Timestamp: at.UnixNano(),
	}
}

func (m *Reading) describe(d *sensor.Descriptor) {
	m.Name, m.Unit = d.Name, d.Unit
}

// FromFrame converts a single D frame. Halves of two-id quantities come out
// with their raw part as value, use Assembler to join them.
func FromFrame(f hub.Frame, at time.Time) *Reading {
	d, ok := sensor.Hub.Lookup(uint16(f.ID))
	if !ok {
		return newReading(sensor.ProtocolHub, uint16(f.ID), int32(f.Value), at)
	}
	r := newReading(sensor.ProtocolHub, d.ID, int32(f.Value), at)
	r.describe(d)
	switch d.Kind {
	case sensor.SignedScaled, sensor.UnsignedScaled:
		r.Value, _ = d.Physical(int32(f.Value))
	case sensor.CellVoltage:
		id, volts := value.UnpackHubCell(f.Value)
		r.Index, r.Value = uint32(id), volts
	case sensor.BeforeAfter, sensor.FASVoltage:
		if d.Part == sensor.Before {
			r.Raw = int32(f.Int16())
			r.Value = float64(r.Raw)
		}
	}
	return r
}

// FromPacket converts a Smart Port data packet answered by physicalID. A
// CELLS packet yields one reading per cell it carries, a GPS_LONG_LATI
// packet is named GPS_LAT or GPS_LONG.
func FromPacket(pkt sport.Packet, physicalID uint8, at time.Time) []*Reading {
	r := newReading(sensor.ProtocolSport, pkt.ID, pkt.Value, at)
	r.PhysicalID = uint32(physicalID)
	d, ok := sensor.Sport.Lookup(pkt.ID)
	if !ok {
		return []*Reading{r}
	}
	r.describe(d)
	switch d.Kind {
	case sensor.SignedScaled, sensor.UnsignedScaled:
		r.Value, _ = d.Physical(pkt.Value)
	case sensor.CellVoltage:
		cells := value.UnpackSportCells(pkt.Uint32())
		r.Index, r.Value = uint32(cells.ID), cells.Volts[0]
		if cells.Count <= cells.ID+1 {
			return []*Reading{r}
		}
		next := *r
		next.Index, next.Value = r.Index+1, cells.Volts[1]
		return []*Reading{r, &next}
	case sensor.GPSCoord:
		deg, longitude := value.UnpackSportGPS(pkt.Uint32())
		r.Value, r.Name = deg, "GPS_LAT"
		if longitude {
			r.Name = "GPS_LONG"
		}
	case sensor.GPSDateTime:
		r.Value = float64(pkt.Uint32())
		if _, _, _, isDate := value.UnpackSportDateTime(pkt.Uint32()); isDate {
			r.Name = "GPS_DATE"
		} else {
			r.Name = "GPS_TIME"
		}
	}
	return []*Reading{r}
}

// Assembler joins the two halves of D quantities sent over two ids. The
// before part is expected first; an after part without a pending before
// part is passed through unjoined.
type Assembler struct {
	pending map[uint16]uint16
}

// Add converts a frame and, when it completes a two-id quantity, appends
// the joined reading named after the quantity (e.g. ALT for ALT_B/ALT_A).
func (a *Assembler) Add(f hub.Frame, at time.Time) []*Reading {
	r := FromFrame(f, at)
	d, ok := sensor.Hub.Lookup(uint16(f.ID))
	if !ok || (d.Kind != sensor.BeforeAfter && d.Kind != sensor.FASVoltage) {
		return []*Reading{r}
	}
	if d.Part == sensor.Before {
		if a.pending == nil {
			a.pending = make(map[uint16]uint16)
		}
		a.pending[d.ID] = f.Value
		return []*Reading{r}
	}
	before, ok := a.pending[d.Pair]
	if !ok {
		return []*Reading{r}
	}
	delete(a.pending, d.Pair)
	bd, _ := sensor.Hub.Lookup(d.Pair)
	joined := newReading(sensor.ProtocolHub, bd.ID, int32(int16(before)), at)
	joined.Name, joined.Unit = strings.TrimSuffix(bd.Name, "_B"), bd.Unit
	if d.Kind == sensor.FASVoltage {
		joined.Value = value.DecodeFASVoltage(before, f.Value)
	} else {
		joined.Value = value.JoinFixedPoint(int16(before), f.Value, int(d.Scale))
	}
	return []*Reading{r, joined}
}

// Reset drops pending halves.
func (a *Assembler) Reset() {
	a.pending = nil
}
