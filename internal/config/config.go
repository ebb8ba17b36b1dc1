package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

// Server holds the HTTP listener settings.
type Server struct {
	// Mode is "dev" (gin debug, relaxed) or "prod" (gin release).
	Mode     string `mapstructure:"mode" default:"dev"`
	HTTPPort int    `mapstructure:"http_port" default:"8087"`
}

// Auth guards the provider API with bearer tokens issued by the host
// platform. When enabled, JWTSecretFile must point at the shared HMAC
// secret.
type Auth struct {
	Enabled       bool   `mapstructure:"enabled" default:"false"`
	JWTSecretFile string `mapstructure:"jwt_secret_file"`
}

// Database locates the DuckDB file holding connection profiles and
// provider settings. ":memory:" keeps everything ephemeral.
type Database struct {
	Path string `mapstructure:"path" default:":memory:"`
}

// Configuration is the full service configuration.
type Configuration struct {
	Server   Server   `mapstructure:"server"`
	Auth     Auth     `mapstructure:"auth"`
	Database Database `mapstructure:"database"`

	LogLevel  string `mapstructure:"log_level" default:"info"`
	LogFormat string `mapstructure:"log_format" default:"json"`
}

// Default returns a configuration populated from the default tags.
func Default() *Configuration {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		// default tags are static; a failure here is a programming error
		panic(err)
	}
	return cfg
}

// configKeys are the mapstructure paths viper resolves. Viper only consults
// the environment for keys it knows about, so every key must be bound
// explicitly for the HPALM_* variables to apply.
var configKeys = []string{
	"server.mode",
	"server.http_port",
	"auth.enabled",
	"auth.jwt_secret_file",
	"database.path",
	"log_level",
	"log_format",
}

// Load reads the configuration file at path (optional) and the HPALM_*
// environment, layered over the defaults.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix("HPALM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Configuration) Validate() error {
	switch c.Server.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid server mode %q: must be dev or prod", c.Server.Mode)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}

	if c.Auth.Enabled && c.Auth.JWTSecretFile == "" {
		return fmt.Errorf("auth is enabled but no jwt secret file is configured")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}

	return nil
}

// DebugMap returns the configuration as a map safe for structured logging.
func (c *Configuration) DebugMap() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"mode":      c.Server.Mode,
			"http_port": c.Server.HTTPPort,
		},
		"auth": map[string]any{
			"enabled":         c.Auth.Enabled,
			"jwt_secret_file": c.Auth.JWTSecretFile,
		},
		"database": map[string]any{
			"path": c.Database.Path,
		},
		"log_level":  c.LogLevel,
		"log_format": c.LogFormat,
	}
}
