// Package config loads the clock-host configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"segclock/host/serial"
)

// Display styles
const (
	StyleASCII   = "ascii"
	StyleCompact = "compact"
)

// Config is the on-disk clock-host configuration
type Config struct {
	Serial  Serial  `toml:"serial"`
	Display Display `toml:"display"`
}

// Serial describes how to reach the clock firmware
type Serial struct {
	Device        string `toml:"device"`
	Baud          int    `toml:"baud"`
	ReadTimeoutMS int    `toml:"read_timeout_ms"`
}

// Display controls how reported patterns are printed
type Display struct {
	Style       string `toml:"style"`
	ClearScreen bool   `toml:"clear_screen"`
}

// Default returns the built-in configuration
func Default() Config {
	def := serial.DefaultConfig("/dev/ttyACM0")
	return Config{
		Serial: Serial{
			Device:        def.Device,
			Baud:          def.Baud,
			ReadTimeoutMS: int(def.ReadTimeout / time.Millisecond),
		},
		Display: Display{
			Style:       StyleASCII,
			ClearScreen: true,
		},
	}
}

// DefaultPath returns the per-user configuration file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "clock-host.toml"
	}
	return filepath.Join(dir, "segclock", "clock-host.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Serial.Device = strings.TrimSpace(c.Serial.Device)
	c.Display.Style = strings.ToLower(strings.TrimSpace(c.Display.Style))
}

// Validate checks field ranges
func (c Config) Validate() error {
	var errs []error
	if c.Serial.Device == "" {
		errs = append(errs, errors.New("serial.device must be set"))
	}
	if c.Serial.Baud <= 0 {
		errs = append(errs, fmt.Errorf("serial.baud must be positive, got %d", c.Serial.Baud))
	}
	if c.Serial.ReadTimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("serial.read_timeout_ms must not be negative, got %d", c.Serial.ReadTimeoutMS))
	}
	switch c.Display.Style {
	case StyleASCII, StyleCompact:
	default:
		errs = append(errs, fmt.Errorf("display.style must be %q or %q, got %q", StyleASCII, StyleCompact, c.Display.Style))
	}
	return errors.Join(errs...)
}

// SerialConfig converts the serial section for serial.Open
func (c Config) SerialConfig() *serial.Config {
	return &serial.Config{
		Device:      c.Serial.Device,
		Baud:        c.Serial.Baud,
		ReadTimeout: time.Duration(c.Serial.ReadTimeoutMS) * time.Millisecond,
	}
}
