package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[slot_service]
url = "http://127.0.0.1:8000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.SlotService.Timeout)
	assert.Equal(t, "role", cfg.Session.RoleClaim)
	assert.Equal(t, "dayGridMonth", cfg.Calendar.InitialView)
	assert.Equal(t, "dayGridMonth,timeGridWeek,timeGridDay", cfg.Calendar.ToolbarRight)
	assert.Equal(t, "green", cfg.Calendar.AvailableColor)
	assert.False(t, cfg.Booking.SingleFlight)
}

func TestLoadReadsAllSections(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "meetly"

[slot_service]
url = "http://backend:8000"
timeout = 2

[calendar]
initial_view = "timeGridWeek"
booked_color = "gray"

[booking]
single_flight = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "meetly", cfg.Metrics.ServiceName)
	assert.Equal(t, "http://backend:8000", cfg.SlotService.URL)
	assert.Equal(t, 2, cfg.SlotService.Timeout)
	assert.Equal(t, "timeGridWeek", cfg.Calendar.InitialView)
	assert.Equal(t, "gray", cfg.Calendar.BookedColor)
	assert.True(t, cfg.Booking.SingleFlight)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLOT_SERVICE_URL", "http://from-env:8000")
	t.Setenv("SESSION_JWT_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, `
[slot_service]
url = "http://from-file:8000"
`))
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8000", cfg.SlotService.URL)
	assert.Equal(t, "s3cret", cfg.Session.JWTSecret)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestLoadRequiresSlotServiceURL(t *testing.T) {
	t.Setenv("SLOT_SERVICE_URL", "")

	_, err := Load(writeConfig(t, `[server]
http_port = 8080
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, `[server
http_port = `))
	require.Error(t, err)
}
