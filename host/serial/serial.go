package serial

import (
	"io"
)

// Port is a byte stream to the firmware. Tests substitute an in-memory
// implementation.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data not yet read or transmitted
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string `yaml:"device"`

	// Baud rate. USB CDC ignores it.
	Baud int `yaml:"baud"`

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int `yaml:"read_timeout_ms"`
}

// DefaultConfig returns the settings the nRF52840 firmware expects
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
