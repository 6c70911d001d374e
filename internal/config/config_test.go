package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "10M", cfg.Server.BodyLimit)
	assert.Equal(t, float64(20), cfg.Server.RateLimit)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "debug", cfg.Observability.GetLogLevel())
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PERSONAPI_PRIMARY__ENV", "production")
	t.Setenv("PERSONAPI_SERVER__PORT", "9090")
	t.Setenv("PERSONAPI_SERVER__READ_TIMEOUT", "5")
	t.Setenv("PERSONAPI_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PERSONAPI_OBSERVABILITY__LOGGING__FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "person-api.json")
	body := `{"server": {"port": "7070", "body_limit": "1M"}, "observability": {"logging": {"level": "warn"}}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv(ConfigFileEnv, path)
	// env still wins over the file
	t.Setenv("PERSONAPI_SERVER__BODY_LIMIT", "2M")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "2M", cfg.Server.BodyLimit)
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"PERSONAPI_OBSERVABILITY__LOGGING__LEVEL": "verbose"}},
		{"bad log format", map[string]string{"PERSONAPI_OBSERVABILITY__LOGGING__FORMAT": "xml"}},
		{"zero rate limit", map[string]string{"PERSONAPI_SERVER__RATE_LIMIT": "0"}},
		{"zero timeout", map[string]string{"PERSONAPI_SERVER__WRITE_TIMEOUT": "0"}},
		{"missing file", map[string]string{ConfigFileEnv: "/does/not/exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.File = "/tmp/person-api.log"
	cfg.Logging.MaxSizeMB = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}
