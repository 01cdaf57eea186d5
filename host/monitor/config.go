package monitor

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nrftimer/host/serial"
)

// Config is the monitor's YAML configuration file
type Config struct {
	Serial serial.Config `yaml:"serial"`

	// Record is the path of a CBOR recording, empty to disable
	Record string `yaml:"record"`

	// LogLevel is debug, info, warn or error
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	// Buffer is the capacity of the snapshot channel
	Buffer int `yaml:"buffer"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

func DefaultConfig() *Config {
	return &Config{
		Serial:   *serial.DefaultConfig("/dev/ttyACM0"),
		LogLevel: "info",
		Buffer:   16,
	}
}

// ParseConfig reads YAML over the defaults
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the configuration file at path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Serial.Device == "" {
		return fmt.Errorf("%w: serial.device is empty", ErrInvalidConfig)
	}
	if c.Serial.Baud <= 0 {
		return fmt.Errorf("%w: serial.baud %d", ErrInvalidConfig, c.Serial.Baud)
	}
	if c.Serial.ReadTimeout < 0 {
		return fmt.Errorf("%w: serial.read_timeout_ms %d", ErrInvalidConfig, c.Serial.ReadTimeout)
	}
	if c.Buffer < 0 {
		return fmt.Errorf("%w: buffer %d", ErrInvalidConfig, c.Buffer)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
