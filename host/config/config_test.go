package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clock-host.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StyleASCII, cfg.Display.Style)
	assert.True(t, cfg.Display.ClearScreen)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[serial]
device = " /dev/ttyUSB3 "
read_timeout_ms = 250

[display]
style = "Compact"
clear_screen = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB3", cfg.Serial.Device)
	assert.Equal(t, 115200, cfg.Serial.Baud, "unset keys keep defaults")
	assert.Equal(t, StyleCompact, cfg.Display.Style)
	assert.False(t, cfg.Display.ClearScreen)

	sc := cfg.SerialConfig()
	assert.Equal(t, "/dev/ttyUSB3", sc.Device)
	assert.Equal(t, 250*time.Millisecond, sc.ReadTimeout)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[serial]
devise = "/dev/ttyACM1"
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[serial]
baud = 0

[display]
style = "neon"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serial.baud")
	assert.Contains(t, err.Error(), "display.style")
}
