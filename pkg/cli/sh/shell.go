// Package sh is the interactive shell of frskycli.
package sh

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/ishell"

	fx "github.com/robotalks/frsky.go/pkg/framework"
	"github.com/robotalks/frsky.go/pkg/link"
	"github.com/robotalks/frsky.go/pkg/telemetry"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell  *ishell.Shell
	Config *link.Config
	Bus    *BusConn
}

// BusConn is an opened bus being decoded in the background.
type BusConn struct {
	Cancel func()
	Link   *link.Link
	Port   io.Closer
	done   chan error
}

const (
	shellKey     = "$shell"
	closedPrompt = "[closed] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&PortsCmd,
		&OpenCmd,
		&CloseCmd,
		&StatsCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *link.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Output prints v as JSON in JSON mode, otherwise the text lines.
func Output(c *ishell.Context, v interface{}, lines ...string) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	for _, line := range lines {
		c.Println(line)
	}
}

// ParseHex parses bytes given as hex in one or more arguments, e.g.
// "5e 02 0a 00 5e" or "5e020a005e".
func ParseHex(args []string) ([]byte, error) {
	s := strings.Join(args, "")
	s = strings.NewReplacer(" ", "", ":", "", "0x", "", ",", "").Replace(s)
	if s == "" {
		return nil, fmt.Errorf("bytes required")
	}
	return hex.DecodeString(s)
}

// FormatHex prints bytes the way ParseHex reads them.
func FormatHex(b []byte) string {
	out := make([]string, len(b))
	for n, c := range b {
		out[n] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(out, " ")
}

// FormatReading prints a reading for display.
func FormatReading(r *telemetry.Reading) string {
	name := r.Name
	if name == "" {
		name = fmt.Sprintf("0x%04x", r.SensorID)
	}
	if strings.HasPrefix(name, "CELL") {
		name = fmt.Sprintf("%s[%d]", name, r.Index)
	}
	return fmt.Sprintf("%s %s = %v %s (raw %d)", r.Protocol, name, r.Value, r.Unit, r.Raw)
}

// Open opens the bus of the config and prints readings.
func (s *Shell) Open() error {
	l, port, err := s.Config.NewLink(nil)
	if err != nil {
		return err
	}
	s.Close()
	l.Handler = telemetry.HandleReadingFunc(func(ctx context.Context, r *telemetry.Reading) {
		s.Shell.Println(FormatReading(r))
	})
	bus := &BusConn{Link: l, Port: port, done: make(chan error, 1)}
	var ctx context.Context
	ctx, bus.Cancel = context.WithCancel(context.Background())
	go func() {
		bus.done <- fx.RunWithContextCloser(ctx, port, func() error { return l.Run(ctx) })
	}()
	s.Bus = bus
	s.Shell.SetPrompt(fmt.Sprintf("%s@%s > ", s.Config.Protocol, s.Config.Port))
	return nil
}

// Close closes the opened bus.
func (s *Shell) Close() error {
	if s.Bus == nil {
		return nil
	}
	s.Bus.Cancel()
	err := <-s.Bus.done
	s.Bus = nil
	s.Shell.SetPrompt(closedPrompt)
	if err == context.Canceled {
		return nil
	}
	return err
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		s.Close()
		return
	}
	log.Fatalln("command expected")
}

var (
	// PortsCmd lists serial ports.
	PortsCmd = ishell.Cmd{
		Name: "ports",
		Help: "list serial ports",
		Func: func(c *ishell.Context) {
			ports, err := link.SerialPorts()
			if err != nil {
				c.Err(err)
				return
			}
			if len(ports) == 0 {
				ports = []string{}
			}
			Output(c, ports, ports...)
		},
	}

	// OpenCmd opens the bus and prints decoded readings.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[PORT [PROTOCOL]]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) > 0 {
				s.Config.Port = c.Args[0]
			}
			if len(c.Args) > 1 {
				s.Config.Protocol = c.Args[1]
			}
			if err := s.Open(); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the bus.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "close the bus",
		Func: func(c *ishell.Context) {
			if err := ShellFrom(c).Close(); err != nil {
				c.Err(err)
			}
		},
	}

	// StatsCmd prints the traffic counters of the bus.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "print bus counters",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if s.Bus == nil {
				c.Err(fmt.Errorf("bus not opened"))
				return
			}
			st := s.Bus.Link.Stats()
			Output(c, st,
				fmt.Sprintf("bytes:           %d", st.Bytes),
				fmt.Sprintf("readings:        %d", st.Readings),
				fmt.Sprintf("framing errors:  %d", st.FramingErrors),
				fmt.Sprintf("checksum errors: %d", st.ChecksumErrors))
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(link.NewConfig()).Run(flag.Args()...)
}
