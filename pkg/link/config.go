package link

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
)

// Config defines how to reach the telemetry bus.
type Config struct {
	// Port is a serial device path or a ws:// or wss:// bridge URL.
	Port     string
	Protocol string
	// Baud overrides the protocol baud rate when not zero.
	Baud        int
	ReadTimeout time.Duration
}

// Protocol baud rates.
const (
	HubBaud   = 9600
	SportBaud = 57600
)

var defaultConfig = Config{
	Port:        "/dev/ttyUSB0",
	Protocol:    sensor.ProtocolSport.String(),
	ReadTimeout: 100 * time.Millisecond,
}

func init() {
	if val := os.Getenv("FRSKY_PORT"); val != "" {
		defaultConfig.Port = val
	}
	if val := os.Getenv("FRSKY_PROTOCOL"); val != "" {
		defaultConfig.Protocol = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial port or websocket URL of the bus.")
	flag.StringVar(&defaultConfig.Protocol, "protocol", defaultConfig.Protocol, "Bus protocol: d or sport.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate, 0 for the protocol default.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Serial read timeout.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// ParseProtocol parses a protocol name.
func ParseProtocol(name string) (sensor.Protocol, error) {
	switch strings.ToLower(name) {
	case "d", "hub":
		return sensor.ProtocolHub, nil
	case "sport", "s.port", "smartport":
		return sensor.ProtocolSport, nil
	}
	return 0, fmt.Errorf("unknown protocol %q", name)
}

// BaudRate returns the effective baud rate.
func (c *Config) BaudRate() (int, error) {
	if c.Baud > 0 {
		return c.Baud, nil
	}
	p, err := ParseProtocol(c.Protocol)
	if err != nil {
		return 0, err
	}
	if p == sensor.ProtocolHub {
		return HubBaud, nil
	}
	return SportBaud, nil
}

// IsWebsocket tells if the port is a websocket bridge.
func (c *Config) IsWebsocket() bool {
	return strings.HasPrefix(c.Port, "ws://") || strings.HasPrefix(c.Port, "wss://")
}

// Open opens the port.
func (c *Config) Open() (io.ReadWriteCloser, error) {
	if c.IsWebsocket() {
		conn, err := DialWebsocket(c.Port)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	baud, err := c.BaudRate()
	if err != nil {
		return nil, err
	}
	return OpenSerial(c.Port, baud, c.ReadTimeout)
}

// NewLink opens the port and creates a Link with the protocol decoder.
// The Responder, if not nil, answers Smart Port polls on the same port.
func (c *Config) NewLink(responder *Responder) (*Link, io.Closer, error) {
	p, err := ParseProtocol(c.Protocol)
	if err != nil {
		return nil, nil, err
	}
	port, err := c.Open()
	if err != nil {
		return nil, nil, err
	}
	var dec Decoder
	if p == sensor.ProtocolHub {
		dec = &HubDecoder{}
	} else {
		if responder != nil {
			responder.Writer = port
		}
		dec = &SportDecoder{Responder: responder}
	}
	l := New(port, dec)
	l.ReadTimeout = !c.IsWebsocket() && c.ReadTimeout > 0
	return l, port, nil
}
