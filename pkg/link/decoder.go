package link

import (
	"context"
	"time"

	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

// HubDecoder decodes a D stream, joining two-id quantities.
type HubDecoder struct {
	parser    hub.Parser
	assembler telemetry.Assembler
}

// Decode implements Decoder.
func (d *HubDecoder) Decode(ctx context.Context, b byte, at time.Time) ([]*telemetry.Reading, error) {
	pr := d.parser.Parse(b)
	if pr.Err != nil {
		d.assembler.Reset()
		return nil, pr.Err
	}
	if pr.Frame == nil {
		return nil, nil
	}
	return d.assembler.Add(*pr.Frame, at), nil
}

// SportDecoder decodes the traffic of a Smart Port bus. With a Responder
// it also answers the polls of the Responder's physical id.
type SportDecoder struct {
	Responder *Responder

	parser sport.Parser
}

// Decode implements Decoder.
func (d *SportDecoder) Decode(ctx context.Context, b byte, at time.Time) ([]*telemetry.Reading, error) {
	pr := d.parser.Parse(b)
	switch {
	case pr.Err != nil:
		return nil, pr.Err
	case pr.Packet != nil:
		if pr.Packet.IsEmpty() {
			return nil, nil
		}
		return telemetry.FromPacket(*pr.Packet, pr.Poll.PhysicalID, at), nil
	case pr.Poll != nil && d.Responder != nil:
		return nil, d.Responder.Answer(*pr.Poll)
	}
	return nil, nil
}
