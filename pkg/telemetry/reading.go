// Package telemetry turns decoded frames and packets into Readings and
// ships them around.
package telemetry

import (
	"context"
	"time"

	"github.com/golang/protobuf/proto"
)

// Reading is one decoded sensor value.
type Reading struct {
	Protocol   string  `protobuf:"bytes,1,opt,name=protocol,proto3" json:"protocol,omitempty"`
	SensorID   uint32  `protobuf:"varint,2,opt,name=sensor_id,json=sensorId,proto3" json:"sensor_id,omitempty"`
	Name       string  `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Raw        int32   `protobuf:"varint,4,opt,name=raw,proto3" json:"raw,omitempty"`
	Value      float64 `protobuf:"fixed64,5,opt,name=value,proto3" json:"value,omitempty"`
	Unit       string  `protobuf:"bytes,6,opt,name=unit,proto3" json:"unit,omitempty"`
	Index      uint32  `protobuf:"varint,7,opt,name=index,proto3" json:"index,omitempty"`
	PhysicalID uint32  `protobuf:"varint,8,opt,name=physical_id,json=physicalId,proto3" json:"physical_id,omitempty"`
	Timestamp  int64   `protobuf:"varint,9,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Reading) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Reading) Reset() { *m = Reading{} }

// String implements proto.Message.
func (m *Reading) String() string { return proto.CompactTextString(m) }

// Time returns the reception time.
func (m *Reading) Time() time.Time {
	return time.Unix(0, m.Timestamp)
}

// Encode serializes the reading.
func (m *Reading) Encode() ([]byte, error) {
	return proto.Marshal(m)
}

// DecodeReading parses a serialized reading.
func DecodeReading(payload []byte) (*Reading, error) {
	m := &Reading{}
	if err := proto.Unmarshal(payload, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadingHandler is called when a reading is decoded.
type ReadingHandler interface {
	HandleReading(context.Context, *Reading)
}

// HandleReadingFunc is func type of ReadingHandler.
type HandleReadingFunc func(context.Context, *Reading)

// HandleReading implements ReadingHandler.
func (f HandleReadingFunc) HandleReading(ctx context.Context, r *Reading) {
	f(ctx, r)
}
