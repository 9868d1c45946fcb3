package codec

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/frsky.go/pkg/cli/sh"
	"github.com/robotalks/frsky.go/pkg/frsky/sensor"
	"github.com/robotalks/frsky.go/pkg/frsky/sport"
	"github.com/robotalks/frsky.go/pkg/link"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

func printReadings(c *ishell.Context, readings []*telemetry.Reading, errs []error) {
	for _, err := range errs {
		c.Err(err)
	}
	if readings == nil {
		readings = []*telemetry.Reading{}
	}
	lines := make([]string, len(readings))
	for n, r := range readings {
		lines[n] = sh.FormatReading(r)
	}
	sh.Output(c, readings, lines...)
}

func printBytes(c *ishell.Context, b []byte) {
	sh.Output(c, sh.FormatHex(b), sh.FormatHex(b))
}

var (
	// HubEncodeCmd encodes D frames.
	HubEncodeCmd = ishell.Cmd{
		Name:    "hub.encode",
		Aliases: []string{"he"},
		Help:    "ID VALUE | NAME[:INDEX]=VALUE...",
		Func: func(c *ishell.Context) {
			out, err := EncodeHub(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			printBytes(c, out)
		},
	}

	// HubDecodeCmd decodes D frames.
	HubDecodeCmd = ishell.Cmd{
		Name:    "hub.decode",
		Aliases: []string{"hd"},
		Help:    "HEX-BYTES",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			readings, errs := DecodeHub(data)
			printReadings(c, readings, errs)
		},
	}

	// SportEncodeCmd encodes a Smart Port packet.
	SportEncodeCmd = ishell.Cmd{
		Name:    "sport.encode",
		Aliases: []string{"se"},
		Help:    "ID VALUE | NAME[:INDEX]=VALUE",
		Func: func(c *ishell.Context) {
			pkt, err := EncodeSport(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			printBytes(c, pkt.Bytes())
		},
	}

	// SportDecodeCmd decodes Smart Port packets.
	SportDecodeCmd = ishell.Cmd{
		Name:    "sport.decode",
		Aliases: []string{"sd"},
		Help:    "HEX-BYTES",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			readings, errs := DecodeSport(data)
			printReadings(c, readings, errs)
		},
	}

	// SportPollCmd prints poll frames.
	SportPollCmd = ishell.Cmd{
		Name:    "sport.poll",
		Aliases: []string{"sp"},
		Help:    "[PHYSICAL-ID]",
		Func: func(c *ishell.Context) {
			if len(c.Args) > 0 {
				id, err := parseID(c.Args[0], sport.MaxPhysicalID)
				if err != nil {
					c.Err(err)
					return
				}
				poll, _ := sport.EncodePoll(uint8(id))
				printBytes(c, poll)
				return
			}
			table := make(map[string]string)
			lines := make([]string, 0, sport.MaxPhysicalID+1)
			for n := uint8(0); n <= sport.MaxPhysicalID; n++ {
				b, _ := sport.PhysicalID(n)
				table[fmt.Sprintf("%d", n)] = fmt.Sprintf("%02x", b)
				lines = append(lines, fmt.Sprintf("%2d  0x%02x", n, b))
			}
			sh.Output(c, table, lines...)
		},
	}

	// SensorsCmd lists the catalog.
	SensorsCmd = ishell.Cmd{
		Name: "sensors",
		Help: "[d|sport]",
		Func: func(c *ishell.Context) {
			catalogs := []*sensor.Catalog{sensor.Hub, sensor.Sport}
			if len(c.Args) > 0 {
				p, err := link.ParseProtocol(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				catalogs = []*sensor.Catalog{sensor.ForProtocol(p)}
			}
			var descs []sensor.Descriptor
			var lines []string
			for _, cat := range catalogs {
				for _, d := range cat.All() {
					descs = append(descs, d)
					lines = append(lines, FormatDescriptor(&d))
				}
			}
			sh.Output(c, descs, lines...)
		},
	}

	// CellCmd encodes a cell voltage.
	CellCmd = ishell.Cmd{
		Name: "cell",
		Help: "VOLTS [ID]",
		Func: func(c *ishell.Context) {
			enc, err := EncodeCell(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, enc,
				"d:     "+sh.FormatHex(enc.Hub),
				"sport: "+sh.FormatHex(enc.Sport))
		},
	}

	// GPSCmd converts a D GPS coordinate.
	GPSCmd = ishell.Cmd{
		Name: "gps",
		Help: "BEFORE AFTER",
		Func: func(c *ishell.Context) {
			pos, err := DecodeGPS(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, pos, fmt.Sprintf("%d° %d' %.3f\" (%.6f)",
				pos.Degrees.Degrees, pos.Degrees.Minutes, pos.Degrees.Seconds, pos.Decimal))
		},
	}
)

// FormatDescriptor prints a descriptor for display.
func FormatDescriptor(d *sensor.Descriptor) string {
	var w strings.Builder
	fmt.Fprintf(&w, "%-5s 0x%04x %-14s %s", d.Protocol, d.ID, d.Name, d.Kind)
	if d.IsScalar() && d.Scale != 1 {
		fmt.Fprintf(&w, " 1/%v", d.Scale)
	}
	if d.Unit != "" {
		fmt.Fprintf(&w, " %s", d.Unit)
	}
	return w.String()
}

func init() {
	sh.AddCmds(
		&HubEncodeCmd,
		&HubDecodeCmd,
		&SportEncodeCmd,
		&SportDecodeCmd,
		&SportPollCmd,
		&SensorsCmd,
		&CellCmd,
		&GPSCmd,
	)
}
