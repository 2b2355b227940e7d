package main

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"segclock/host/config"
	"segclock/host/serial"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     config.Config
	configErr  error

	logger *zap.Logger

	// openPort is replaced in tests
	openPort func(*serial.Config) (serial.Port, error)
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
		openPort:   serial.Open,
	}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		path := config.DefaultPath()
		if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) initLogger() error {
	if c.logger != nil {
		return nil
	}
	cfg := zap.NewProductionConfig()
	if c.verbose != nil && *c.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

func (c *commandContext) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

func (c *commandContext) syncLogger() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

// withPort opens the configured serial port for the duration of fn
func (c *commandContext) withPort(fn func(serial.Port) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	serialCfg := cfg.SerialConfig()
	port, err := c.openPort(serialCfg)
	if err != nil {
		return fmt.Errorf("open %s: %w", serialCfg.Device, err)
	}
	defer port.Close()

	c.log().Debug("serial port open", zap.String("device", serialCfg.Device), zap.Int("baud", serialCfg.Baud))
	return fn(port)
}
