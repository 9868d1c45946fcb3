package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/robotalks/frsky.go/pkg/mqtt"
)

// Topic returns the topic of a reading relative to the queue prefix:
// <node>/<protocol>/<sensor>. Unknown sensors are named by hex id.
func Topic(node string, r *Reading) string {
	name := strings.ToLower(r.Name)
	if name == "" {
		name = fmt.Sprintf("0x%04x", r.SensorID)
	}
	if strings.HasPrefix(name, "cell") {
		name = fmt.Sprintf("%s/%d", name, r.Index)
	}
	return node + "/" + r.Protocol + "/" + name
}

// ReadingsFilter subscribes to all readings of a node, or of all nodes
// when node is empty.
func ReadingsFilter(node string) string {
	if node == "" {
		node = "+"
	}
	return node + "/#"
}

// Publisher publishes readings as protobuf messages.
type Publisher struct {
	Queue *mqtt.Queue
	Node  string
}

// HandleReading implements ReadingHandler.
func (p *Publisher) HandleReading(ctx context.Context, r *Reading) {
	payload, err := r.Encode()
	if err != nil {
		glog.Errorf("encode reading %s: %v", r.Name, err)
		return
	}
	topic := Topic(p.Node, r)
	glog.V(2).Infof("PUB %q %s", topic, r)
	p.Queue.Pub(topic, payload)
}

// Subscribe decodes readings published under filter and passes them to h.
func Subscribe(ctx context.Context, q *mqtt.Queue, filter string, h ReadingHandler) *mqtt.Subscription {
	return q.Sub(filter, func(topic string, payload []byte) {
		r, err := DecodeReading(payload)
		if err != nil {
			glog.Warningf("drop %q: %v", topic, err)
			return
		}
		h.HandleReading(ctx, r)
	})
}
