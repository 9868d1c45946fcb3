package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/robotalks/frsky.go/pkg/cli/sh"
	"github.com/robotalks/frsky.go/pkg/mqtt"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

var (
	mqttURL = "mqtt://localhost:1883/frsky/"
	node    string
)

func init() {
	if val := os.Getenv("FRSKY_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&node, "node", node, "Only show readings of this node.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	telemetry.Subscribe(context.Background(), q, telemetry.ReadingsFilter(node),
		telemetry.HandleReadingFunc(func(ctx context.Context, r *telemetry.Reading) {
			log.Printf("%s #%d", sh.FormatReading(r), r.PhysicalID)
		}))
	<-(chan struct{})(nil)
}
