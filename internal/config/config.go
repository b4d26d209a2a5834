// Package config loads server configuration from the XDG config directory,
// the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"todolists/internal/logging"
	"todolists/internal/session"
)

const (
	// AppName is the application directory name.
	AppName = "todolists"

	// ConfigFileName is the config file looked up in the config directory.
	ConfigFileName = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. TODOLISTS_SESSION_STORE.
	EnvPrefix = "TODOLISTS"
)

// Session store kinds.
const (
	StoreMemory = "memory"
	StoreCookie = "cookie"
)

// Config holds the server settings.
type Config struct {
	Addr      string          `mapstructure:"addr"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// SessionConfig selects and tunes the session store.
type SessionConfig struct {
	Store      string        `mapstructure:"store"`
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	Secure     bool          `mapstructure:"secure"`
	IdleTTL    time.Duration `mapstructure:"idle_ttl"`
}

// RateLimitConfig tunes the per-client limiter.
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr: "127.0.0.1:4567",
		Session: SessionConfig{
			Store:      StoreMemory,
			CookieName: "todolists_session",
			IdleTTL:    24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// SetDefaults registers every key with its default on v, so environment
// overrides apply even when no config file exists.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("addr", d.Addr)

	v.SetDefault("session.store", d.Session.Store)
	v.SetDefault("session.secret", d.Session.Secret)
	v.SetDefault("session.cookie_name", d.Session.CookieName)
	v.SetDefault("session.secure", d.Session.Secure)
	v.SetDefault("session.idle_ttl", d.Session.IdleTTL)

	v.SetDefault("ratelimit.enabled", d.RateLimit.Enabled)
	v.SetDefault("ratelimit.rps", d.RateLimit.RPS)
	v.SetDefault("ratelimit.burst", d.RateLimit.Burst)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// NewViper returns a viper instance with defaults, environment overrides and
// the config file applied. If configFile is empty, config.yaml is looked up
// in DefaultConfigDir and a missing file is not an error.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(strings.TrimSuffix(ConfigFileName, filepath.Ext(ConfigFileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}

	switch c.Session.Store {
	case StoreMemory, StoreCookie:
	default:
		errs = append(errs, fmt.Errorf("session.store: unknown store %q (want %s or %s)", c.Session.Store, StoreMemory, StoreCookie))
	}
	// An empty secret means one is generated at startup.
	if c.Session.Store == StoreCookie && c.Session.Secret != "" && len(c.Session.Secret) < session.MinSecretLength {
		errs = append(errs, fmt.Errorf("session.secret: must be at least %d bytes", session.MinSecretLength))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name must not be empty"))
	}
	if c.Session.IdleTTL <= 0 {
		errs = append(errs, errors.New("session.idle_ttl must be positive"))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			errs = append(errs, errors.New("ratelimit.rps must be positive"))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, errors.New("ratelimit.burst must be positive"))
		}
	}

	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// LogOptions converts the log settings for logging.New.
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = c.Log.Level
	opts.Format = c.Log.Format
	return opts
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultConfigFile returns the path of the config file in DefaultConfigDir.
func DefaultConfigFile() string {
	return filepath.Join(DefaultConfigDir(), ConfigFileName)
}
