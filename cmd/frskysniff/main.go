package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/frsky.go/pkg/cli/sh"
	fx "github.com/robotalks/frsky.go/pkg/framework"
	"github.com/robotalks/frsky.go/pkg/link"
	"github.com/robotalks/frsky.go/pkg/mqtt"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

var (
	mqttURL       string
	node          string
	statsInterval = time.Minute
)

func init() {
	link.SetupFlags()
	if val := os.Getenv("FRSKY_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "Publish readings to this MQTT broker URL.")
	flag.StringVar(&node, "node", node, "Node id in topics, machine id by default.")
	flag.DurationVar(&statsInterval, "stats", statsInterval, "Interval of logging bus counters, 0 to disable.")
}

type printer struct{}

func (printer) HandleReading(ctx context.Context, r *telemetry.Reading) {
	glog.Info(sh.FormatReading(r))
}

type handlers []telemetry.ReadingHandler

func (hs handlers) HandleReading(ctx context.Context, r *telemetry.Reading) {
	for _, h := range hs {
		h.HandleReading(ctx, r)
	}
}

func newPublisher() (*telemetry.Publisher, error) {
	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		return nil, err
	}
	if err = q.Connect(); err != nil {
		return nil, err
	}
	if node == "" {
		if node, err = mqtt.NodeID(); err != nil {
			q.Close()
			return nil, err
		}
	}
	glog.Infof("publishing to %s as %s", mqttURL, node)
	return &telemetry.Publisher{Queue: q, Node: node}, nil
}

func logStats(l *link.Link) fx.Runnable {
	return fx.RunFunc(func(ctx context.Context) error {
		ticker := time.NewTicker(statsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				st := l.Stats()
				glog.Infof("bytes %d readings %d framing errors %d checksum errors %d",
					st.Bytes, st.Readings, st.FramingErrors, st.ChecksumErrors)
			}
		}
	})
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := link.NewConfig()
	l, port, err := conf.NewLink(nil)
	if err != nil {
		glog.Exitf("open %s: %v", conf.Port, err)
	}
	hs := handlers{printer{}}
	if mqttURL != "" {
		pub, err := newPublisher()
		if err != nil {
			glog.Exitf("mqtt: %v", err)
		}
		defer pub.Queue.Close()
		hs = append(hs, pub)
	}
	l.Handler = hs

	glog.Infof("sniffing %s bus on %s", conf.Protocol, conf.Port)
	r := fx.NewRunner().HandleSignals()
	r.Go(fx.NamedRun("link", fx.RunFunc(func(ctx context.Context) error {
		return fx.RunWithContextCloser(ctx, port, func() error { return l.Run(ctx) })
	})))
	if statsInterval > 0 {
		r.Go(fx.NamedRun("stats", logStats(l)))
	}
	if err = r.Wait(); err != nil {
		glog.Exit(err)
	}
}
