package link

import (
	"context"
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

// DefaultInterval is the default period of D transmissions.
const DefaultInterval = 200 * time.Millisecond

// Transmitter periodically writes samples as D frames, the way a sensor
// hub feeds the receiver.
type Transmitter struct {
	Writer   io.Writer
	Interval time.Duration
	// Samples returns the samples of one round.
	Samples func() []Sample
}

// Run implements framework.Runnable.
func (t *Transmitter) Run(ctx context.Context) error {
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	enc := hub.NewEncoder(t.Writer)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := t.transmit(enc); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (t *Transmitter) transmit(enc *hub.Encoder) error {
	for _, s := range t.Samples() {
		err := s.WriteHub(enc)
		if _, isRange := err.(*value.RangeError); isRange || err == hub.ErrUnsupportedKind || err == sensor.ErrNotScalar {
			glog.Warningf("skip %s: %v", s, err)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
