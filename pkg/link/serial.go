package link

import (
	"time"

	"go.bug.st/serial"
)

// OpenSerial opens a serial port at baud, 8N1. The FrSky buses use
// inverted logic levels, an inverter is expected between the bus and the
// port. A positive readTimeout makes Read return with no data after that
// long.
func OpenSerial(path string, baud int, readTimeout time.Duration) (serial.Port, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, err
	}
	if readTimeout > 0 {
		if err = port.SetReadTimeout(readTimeout); err != nil {
			port.Close()
			return nil, err
		}
	}
	return port, nil
}

// SerialPorts lists the serial ports of the system.
func SerialPorts() ([]string, error) {
	return serial.GetPortsList()
}
