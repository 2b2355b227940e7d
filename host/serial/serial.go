// Package serial opens the clock firmware's USB serial port.
package serial

import (
	"errors"
	"io"
	"time"
)

var (
	// ErrNilConfig is returned by Open without a configuration
	ErrNilConfig = errors.New("serial config cannot be nil")

	// ErrNoDevice is returned by Open when Config.Device is empty
	ErrNoDevice = errors.New("serial device not set")
)

// Port is a byte stream to the firmware. Tests substitute in-memory fakes.
type Port interface {
	io.ReadWriteCloser

	// Flush discards unread input and waits for pending output
	Flush() error
}

// Config describes the port to open
type Config struct {
	Device      string        // e.g. "/dev/ttyACM0" or "COM3"
	Baud        int           // USB CDC ignores it, a UART bridge does not
	ReadTimeout time.Duration // Bounds each Read so callers notice cancellation; 0 blocks
}

// DefaultConfig returns the configuration used for the clock firmware's USB port
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// ttyPort maps io.EOF from Read to a quiet line. On Linux a tty read that
// times out with no data comes back from os.File as (0, io.EOF); a tty has
// no real end of stream, and unplugging shows up as a different error.
type ttyPort struct {
	Port
}

// WrapTTY returns p with read timeouts reported as (n, nil)
func WrapTTY(p Port) Port {
	return ttyPort{Port: p}
}

func (p ttyPort) Read(b []byte) (int, error) {
	n, err := p.Port.Read(b)
	if errors.Is(err, io.EOF) {
		return n, nil
	}
	return n, err
}

func (c *Config) validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Device == "" {
		return ErrNoDevice
	}
	return nil
}
