package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Demo    DemoConfig    `toml:"demo"`
	Logging LoggingConfig `toml:"logging"`
	Profile ProfileConfig `toml:"profile"`
}

type DemoConfig struct {
	Entities int           `toml:"entities"` // extra entities driven by Run after the scripted scenario
	Lifetime int           `toml:"lifetime"` // ticks before an extra entity kills itself
	Interval time.Duration `toml:"interval"`
	Timeout  time.Duration `toml:"timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", "cpu" or "mem"
	Path string `toml:"path"`
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Demo.Entities < 0 {
		return fmt.Errorf("demo.entities must not be negative, got %d", c.Demo.Entities)
	}
	if c.Demo.Lifetime < 1 {
		return fmt.Errorf("demo.lifetime must be at least 1, got %d", c.Demo.Lifetime)
	}
	if c.Demo.Interval <= 0 {
		return fmt.Errorf("demo.interval must be positive, got %s", c.Demo.Interval)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("profile.mode must be cpu or mem, got %q", c.Profile.Mode)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Demo: DemoConfig{
			Entities: 0,
			Lifetime: 5,
			Interval: 10 * time.Millisecond,
			Timeout:  10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}
