package main

import (
	"context"
	"flag"
	"strings"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/frsky.go/pkg/framework"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/link"
)

type sampleList []string

func (l *sampleList) String() string {
	return strings.Join(*l, ",")
}

func (l *sampleList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

var (
	values     sampleList
	physicalID uint
	interval   = link.DefaultInterval
)

func init() {
	link.SetupFlags()
	flag.Var(&values, "value", "Sensor value NAME[:INDEX]=VALUE, repeatable.")
	flag.UintVar(&physicalID, "physical-id", physicalID, "Smart Port physical id to answer.")
	flag.DurationVar(&interval, "interval", interval, "D transmission interval.")
}

// sampler keeps the samples being sent, cycling through them.
type sampler struct {
	lock    sync.Mutex
	samples []link.Sample
}

func (s *sampler) all() []link.Sample {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]link.Sample(nil), s.samples...)
}

func (s *sampler) packets() []sport.Packet {
	samples := s.all()
	pkts := make([]sport.Packet, 0, len(samples))
	for _, smp := range samples {
		pkt, err := smp.SportPacket()
		if err != nil {
			glog.Warningf("skip %s: %v", smp, err)
			continue
		}
		pkts = append(pkts, pkt)
	}
	return pkts
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := link.NewConfig()
	p, err := link.ParseProtocol(conf.Protocol)
	if err != nil {
		glog.Exit(err)
	}
	var smp sampler
	for _, v := range values {
		s, err := link.ParseSample(sensor.ForProtocol(p), v)
		if err != nil {
			glog.Exit(err)
		}
		smp.samples = append(smp.samples, s)
	}
	if len(smp.samples) == 0 {
		glog.Exit("at least one -value required")
	}

	r := fx.NewRunner().HandleSignals()
	if p == sensor.ProtocolHub {
		port, err := conf.Open()
		if err != nil {
			glog.Exitf("open %s: %v", conf.Port, err)
		}
		tx := &link.Transmitter{Writer: port, Interval: interval, Samples: smp.all}
		r.Go(fx.NamedRun("transmitter", fx.RunFunc(func(ctx context.Context) error {
			return fx.RunWithContextCloser(ctx, port, func() error { return tx.Run(ctx) })
		})))
	} else {
		responder, err := link.NewResponder(nil, uint8(physicalID))
		if err != nil {
			glog.Exit(err)
		}
		responder.Refill = smp.packets
		l, port, err := conf.NewLink(responder)
		if err != nil {
			glog.Exitf("open %s: %v", conf.Port, err)
		}
		r.Go(fx.NamedRun("responder", fx.RunFunc(func(ctx context.Context) error {
			return fx.RunWithContextCloser(ctx, port, func() error { return l.Run(ctx) })
		})))
	}
	glog.Infof("simulating %d %s sensor values on %s", len(smp.samples), p, conf.Port)
	if err = r.Wait(); err != nil {
		glog.Exit(err)
	}
}
