// Package link connects a telemetry bus to the decoders.
//
// A Link reads the raw byte stream of a D or Smart Port bus from a serial
// port (or a websocket bridge to one), feeds it through a Decoder and hands
// the resulting readings to a telemetry.ReadingHandler. Protocol errors are
// counted and logged, I/O errors stop the Link.
package link

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/frsky.go/pkg/frsky/hub"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

// Decoder turns bus bytes into readings.
type Decoder interface {
	Decode(ctx context.Context, b byte, at time.Time) ([]*telemetry.Reading, error)
}

// Stats counts link traffic.
type Stats struct {
	Bytes          uint64
	Readings       uint64
	FramingErrors  uint64
	ChecksumErrors uint64
}

// Link reads a telemetry bus.
type Link struct {
	ReadWriter io.ReadWriter
	Decoder    Decoder
	Handler    telemetry.ReadingHandler
	// ReadTimeout is set when Read returns on timeout (e.g. a serial port
	// with a read timeout) so the loop can check ctx without a goroutine.
	ReadTimeout bool

	stats Stats
}

// New creates a Link.
func New(rw io.ReadWriter, dec Decoder) *Link {
	return &Link{ReadWriter: rw, Decoder: dec}
}

// Stats returns a snapshot of the counters.
func (l *Link) Stats() Stats {
	return Stats{
		Bytes:          atomic.LoadUint64(&l.stats.Bytes),
		Readings:       atomic.LoadUint64(&l.stats.Readings),
		FramingErrors:  atomic.LoadUint64(&l.stats.FramingErrors),
		ChecksumErrors: atomic.LoadUint64(&l.stats.ChecksumErrors),
	}
}

// Run reads and decodes until ctx is done or the stream fails.
func (l *Link) Run(ctx context.Context) error {
	if l.ReadTimeout {
		buf := make([]byte, 1)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			n, err := l.ReadWriter.Read(buf)
			if err != nil && !os.IsTimeout(err) {
				return err
			}
			if n == 0 {
				continue
			}
			if err = l.decode(ctx, buf[0]); err != nil {
				return err
			}
		}
	}

	byteCh, errCh := make(chan byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go l.readLoop(subCtx, byteCh, errCh)
	for {
		select {
		case b := <-byteCh:
			if err := l.decode(ctx, b); err != nil {
				return err
			}
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Link) readLoop(ctx context.Context, byteCh chan byte, errCh chan error) {
	buf := make([]byte, 1)
	for {
		n, err := l.ReadWriter.Read(buf)
		if err != nil {
			errCh <- err
			return
		}
		if n == 0 {
			continue
		}
		select {
		case byteCh <- buf[0]:
		case <-ctx.Done():
			return
		}
	}
}

func (l *Link) decode(ctx context.Context, b byte) error {
	atomic.AddUint64(&l.stats.Bytes, 1)
	readings, err := l.Decoder.Decode(ctx, b, time.Now())
	if err != nil {
		switch err.(type) {
		case *hub.FramingError:
			atomic.AddUint64(&l.stats.FramingErrors, 1)
		default:
			if err != sport.ErrChecksum && err != sport.ErrPhysicalID {
				return err
			}
			atomic.AddUint64(&l.stats.ChecksumErrors, 1)
		}
		glog.V(1).Infof("byte 0x%02x: %v", b, err)
	}
	for _, r := range readings {
		atomic.AddUint64(&l.stats.Readings, 1)
		glog.V(2).Infof("reading %s", r)
		if h := l.Handler; h != nil {
			h.HandleReading(ctx, r)
		}
	}
	return nil
}
