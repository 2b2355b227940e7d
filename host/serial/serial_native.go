//go:build !wasm

package serial

import (
	"fmt"

	"github.com/tarm/serial"
)

// Open opens cfg.Device. The returned port reads a quiet line as (0, nil).
func Open(cfg *Config) (Port, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}
	return WrapTTY(port), nil
}
