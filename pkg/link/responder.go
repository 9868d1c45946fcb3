package link

import (
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/frsky.go/pkg/frsky/sport"
)

// Responder answers the Smart Port polls of one physical id, one packet
// per poll, with the empty answer when nothing is pending.
type Responder struct {
	PhysicalID uint8
	Writer     io.Writer
	// Refill is called when the queue runs empty.
	Refill func() []sport.Packet

	lock    sync.Mutex
	pending []sport.Packet
}

// NewResponder creates a Responder for a physical id.
func NewResponder(w io.Writer, physicalID uint8) (*Responder, error) {
	if _, err := sport.PhysicalID(physicalID); err != nil {
		return nil, err
	}
	return &Responder{PhysicalID: physicalID, Writer: w}, nil
}

// Push queues packets.
func (r *Responder) Push(pkts ...sport.Packet) {
	r.lock.Lock()
	r.pending = append(r.pending, pkts...)
	r.lock.Unlock()
}

// Pending returns the number of queued packets.
func (r *Responder) Pending() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.pending)
}

func (r *Responder) next() (sport.Packet, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.pending) == 0 && r.Refill != nil {
		r.pending = r.Refill()
	}
	if len(r.pending) == 0 {
		return sport.Packet{}, false
	}
	pkt := r.pending[0]
	r.pending = r.pending[1:]
	return pkt, true
}

// Answer writes the answer if the poll is addressed to the Responder.
func (r *Responder) Answer(poll sport.Poll) error {
	if poll.PhysicalID != r.PhysicalID {
		return nil
	}
	pkt, ok := r.next()
	if !ok {
		answer := sport.EmptyAnswer()
		_, err := r.Writer.Write(answer[:])
		return err
	}
	glog.V(2).Infof("answer 0x%02x: %04x=%d", poll.PhysicalID, pkt.ID, pkt.Value)
	_, err := pkt.WriteTo(r.Writer)
	return err
}
