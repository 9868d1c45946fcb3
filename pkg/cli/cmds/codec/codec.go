// Package codec provides the encode/decode commands of frskycli.
package codec

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/frsky/value"
	"github.com/robotalks/frsky.go/pkg/link"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

func parseID(s string, max uint64) (uint64, error) {
	id, err := strconv.ParseUint(s, 0, 16)
	if err == nil && id > max {
		err = fmt.Errorf("id 0x%x out of range", id)
	}
	return id, err
}

// EncodeHub encodes either ID VALUE (raw 16-bit value) or a list of
// NAME[:INDEX]=VALUE samples into D frames.
func EncodeHub(args []string) ([]byte, error) {
	var buf bytes.Buffer
	if len(args) == 2 && !strings.Contains(args[0], "=") {
		id, err := parseID(args[0], 0xff)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(args[1], 0, 17)
		if err != nil || v < -0x8000 || v > 0xffff {
			return nil, fmt.Errorf("invalid 16-bit value %q", args[1])
		}
		return hub.Frame{ID: byte(id), Value: uint16(v)}.Bytes(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("ID VALUE or NAME=VALUE required")
	}
	enc := hub.NewEncoder(&buf)
	for _, arg := range args {
		s, err := link.ParseSample(sensor.Hub, arg)
		if err != nil {
			return nil, err
		}
		if err = s.WriteHub(enc); err != nil {
			return nil, fmt.Errorf("%s: %v", s, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeHub decodes a D byte stream into readings, reporting framing
// errors inline.
func DecodeHub(data []byte) (readings []*telemetry.Reading, errs []error) {
	var p hub.Parser
	var a telemetry.Assembler
	now := time.Now()
	for _, b := range data {
		pr := p.Parse(b)
		if pr.Err != nil {
			errs = append(errs, pr.Err)
		}
		if pr.Frame != nil {
			readings = append(readings, a.Add(*pr.Frame, now)...)
		}
	}
	if st := p.State(); st != hub.StateWaitStart && st != hub.StateReadID {
		errs = append(errs, &hub.FramingError{Reason: "incomplete frame"})
	}
	return
}

// EncodeSport encodes either ID VALUE (raw 32-bit value) or a
// NAME[:INDEX]=VALUE sample into a Smart Port data packet.
func EncodeSport(args []string) (sport.Packet, error) {
	switch {
	case len(args) == 2 && !strings.Contains(args[0], "="):
		id, err := parseID(args[0], 0xffff)
		if err != nil {
			return sport.Packet{}, err
		}
		v, err := strconv.ParseInt(args[1], 0, 33)
		if err != nil || v < -0x80000000 || v > 0xffffffff {
			return sport.Packet{}, fmt.Errorf("invalid 32-bit value %q", args[1])
		}
		return sport.NewData(uint16(id), int32(uint32(v))), nil
	case len(args) == 1:
		s, err := link.ParseSample(sensor.Sport, args[0])
		if err != nil {
			return sport.Packet{}, err
		}
		return s.SportPacket()
	}
	return sport.Packet{}, fmt.Errorf("ID VALUE or NAME=VALUE required")
}

// DecodeSport decodes either a bare 8-byte packet or bus traffic with
// polls.
func DecodeSport(data []byte) (readings []*telemetry.Reading, errs []error) {
	now := time.Now()
	if len(data) == sport.PacketSize && data[0] != sport.PollStart {
		pkt, err := sport.DecodePacket(data)
		if err != nil {
			return nil, []error{err}
		}
		return telemetry.FromPacket(pkt, 0, now), nil
	}
	var p sport.Parser
	for _, b := range data {
		pr := p.Parse(b)
		if pr.Err != nil {
			errs = append(errs, pr.Err)
		}
		if pr.Packet != nil && !pr.Packet.IsEmpty() {
			readings = append(readings, telemetry.FromPacket(*pr.Packet, pr.Poll.PhysicalID, now)...)
		}
	}
	return
}

// CellEncoding is a cell voltage in both wire layouts.
type CellEncoding struct {
	ID    uint8   `json:"id"`
	Volts float64 `json:"volts"`
	Hub   []byte  `json:"d"`
	Sport []byte  `json:"sport"`
}

// EncodeCell encodes VOLTS [ID].
func EncodeCell(args []string) (*CellEncoding, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("VOLTS required")
	}
	volts, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, err
	}
	enc := &CellEncoding{Volts: volts}
	if len(args) > 1 {
		id, err := strconv.ParseUint(args[1], 0, 4)
		if err != nil {
			return nil, err
		}
		enc.ID = uint8(id)
	}
	hv, err := value.PackHubCell(enc.ID, volts)
	if err != nil {
		return nil, err
	}
	sv, err := value.PackSportCell(enc.ID, volts)
	if err != nil {
		return nil, err
	}
	enc.Hub = hub.Frame{ID: sensor.HubCellVolt, Value: hv}.Bytes()
	enc.Sport = sport.NewData(sensor.SportCells, int32(sv)).Bytes()
	return enc, nil
}

// GPSPosition is a D GPS coordinate.
type GPSPosition struct {
	Before  int16     `json:"before"`
	After   uint16    `json:"after"`
	Degrees value.DMS `json:"dms"`
	Decimal float64   `json:"decimal"`
}

// DecodeGPS converts the D before/after parts of a coordinate.
func DecodeGPS(args []string) (*GPSPosition, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("BEFORE AFTER required")
	}
	bp, err := strconv.ParseInt(args[0], 0, 16)
	if err != nil {
		return nil, err
	}
	ap, err := strconv.ParseUint(args[1], 0, 16)
	if err != nil {
		return nil, err
	}
	pos := &GPSPosition{Before: int16(bp), After: uint16(ap)}
	pos.Degrees = value.DegreesMinutesSeconds(pos.Before, pos.After)
	pos.Decimal = float64(pos.Degrees.Degrees) + float64(pos.Degrees.Minutes)/60 + pos.Degrees.Seconds/3600
	return pos, nil
}
