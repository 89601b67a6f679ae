package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CONFIG_DIR", "/tmp/lifebook-config")

		cfg := NewConfig()

		assert.Equal(t, int32(DefaultPort), cfg.HTTP.Port)
		assert.Equal(t, DefaultHost, cfg.HTTP.Host)
		assert.Equal(t, []string{"tauri://localhost", "http://localhost:1420"}, cfg.HTTP.AllowedOrigins)
		assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
		assert.Equal(t, "/tmp/lifebook-config", cfg.Paths.ConfigDir)
		assert.Equal(t, filepath.Join("/tmp/lifebook-config", "databases"), cfg.Paths.DefaultDatabaseDir)
		assert.Empty(t, cfg.Database.Path)
		assert.False(t, cfg.Database.LogSQL)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.False(t, cfg.Demo.Enabled)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("HOST", "0.0.0.0")
		t.Setenv("CONFIG_DIR", "/etc/lifebook")
		t.Setenv("DEFAULT_DATABASE_DIR", "/var/lib/lifebook")
		t.Setenv("DATABASE_PATH", "/srv/books.db")
		t.Setenv("DATABASE_LOG_SQL", "true")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
		t.Setenv("DEMO_MODE", "true")

		cfg := NewConfig()

		assert.Equal(t, int32(9000), cfg.HTTP.Port)
		assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
		assert.Equal(t, "/var/lib/lifebook", cfg.Paths.DefaultDatabaseDir)
		assert.Equal(t, "/srv/books.db", cfg.Database.Path)
		assert.True(t, cfg.Database.LogSQL)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
		assert.True(t, cfg.Demo.Enabled)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTP:  HTTP{Port: 8188, Host: "127.0.0.1"},
			Paths: Paths{ConfigDir: "/etc/lifebook"},
			Log:   Log{Level: "info", Format: "json"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero port", func(c *Config) { c.HTTP.Port = 0 }, "PORT"},
		{"port out of range", func(c *Config) { c.HTTP.Port = 70000 }, "PORT"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
		{"empty config dir", func(c *Config) { c.Paths.ConfigDir = "" }, "CONFIG_DIR"},
		{"negative shutdown timeout", func(c *Config) { c.Global.ShutdownTimeoutInSeconds = -1 }, "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
