package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Paths
		Database
		Log
		Demo
	}

	HTTP struct {
		Port           int32
		Host           string
		AllowedOrigins []string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Paths struct {
		ConfigDir          string // Directory holding settings.json
		DefaultDatabaseDir string // Default for database.database_directory
	}

	Database struct {
		Path   string // Overrides <database_directory>/lifebook.db when set
		LogSQL bool
	}

	Log struct {
		Level  string
		Format string // "json" or "console"
	}

	Demo struct {
		Enabled bool // In-memory books and settings, nothing touches disk
	}
)

// defaultConfigDir returns <user config dir>/lifebook, falling back to a
// relative directory when the platform reports none.
func defaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "./" + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// splitList parses a comma separated env value, dropping empty items.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("cors_allowed_origins", DefaultAllowedOrigins)

	v.SetDefault("config_dir", defaultConfigDir())
	v.SetDefault("default_database_dir", "")
	v.SetDefault("database_path", "")
	v.SetDefault("database_log_sql", false)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("demo_mode", false)

	configDir := v.GetString("CONFIG_DIR")
	defaultDatabaseDir := v.GetString("DEFAULT_DATABASE_DIR")
	if defaultDatabaseDir == "" {
		defaultDatabaseDir = filepath.Join(configDir, DatabasesDirName)
	}

	return &Config{
		HTTP: HTTP{
			Port:           v.GetInt32("PORT"),
			Host:           v.GetString("HOST"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Paths: Paths{
			ConfigDir:          configDir,
			DefaultDatabaseDir: defaultDatabaseDir,
		},
		Database: Database{
			Path:   v.GetString("DATABASE_PATH"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
	}
}

// Validate reports configuration values the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.HTTP.Port))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	if c.Paths.ConfigDir == "" {
		errs = append(errs, errors.New("CONFIG_DIR must not be empty"))
	}
	if c.Global.ShutdownTimeoutInSeconds < 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_IN_SECONDS must not be negative"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
