package monitor

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("record: run.cbor\n"))
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Device)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, "run.cbor", cfg.Record)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 16, cfg.Buffer)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
serial:
  device: /dev/ttyUSB1
  baud: 1000000
  read_timeout_ms: 20
log_level: debug
log_json: true
buffer: 4
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB1", cfg.Serial.Device)
	assert.Equal(t, 1000000, cfg.Serial.Baud)
	assert.Equal(t, 20, cfg.Serial.ReadTimeout)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 4, cfg.Buffer)

	level, err := ParseLevel(cfg.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestConfigValidation(t *testing.T) {
	for name, doc := range map[string]string{
		"no device":    "serial: {device: \"\"}",
		"zero baud":    "serial: {baud: 0}",
		"bad level":    "log_level: loud",
		"negative buf": "buffer: -1",
		"neg timeout":  "serial: {read_timeout_ms: -5}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
