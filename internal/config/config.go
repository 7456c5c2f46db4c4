// Package config loads settings for gtc-admin and gtc-console from defaults,
// an optional YAML file, GTC_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GTC_API_BASE_URL.
const EnvPrefix = "GTC"

// Config holds every setting of the admin tools.
type Config struct {
	API     APIConfig
	Console ConsoleConfig
	List    ListConfig
	Log     LogConfig
}

// APIConfig points the tools at the trading-platform backend.
type APIConfig struct {
	BaseURL string        // API base including /api/v1
	Timeout time.Duration // Per-request timeout; 0 disables it
}

// ConsoleConfig configures the web console.
type ConsoleConfig struct {
	Addr          string // Listen address (default ":8090")
	DBPath        string // SQLite session database (":memory:" for testing)
	SecureCookies bool   // Set the Secure flag on the session cookie
	SessionCache  int    // Controllers kept in memory, one per session
	SessionTTL    time.Duration
}

// ListConfig holds list paging settings.
type ListConfig struct {
	PerPage int
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api/v1",
		},
		Console: ConsoleConfig{
			Addr:         ":8090",
			DBPath:       defaultDBPath(),
			SessionCache: 256,
			SessionTTL:   24 * time.Hour,
		},
		List: ListConfig{PerPage: 10},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gtc-console.db"
	}
	return filepath.Join(home, ".gtc", "console.db")
}

// New returns a viper instance seeded with the defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("console.addr", d.Console.Addr)
	v.SetDefault("console.db_path", d.Console.DBPath)
	v.SetDefault("console.secure_cookies", d.Console.SecureCookies)
	v.SetDefault("console.session_cache", d.Console.SessionCache)
	v.SetDefault("console.session_ttl", d.Console.SessionTTL)
	v.SetDefault("list.per_page", d.List.PerPage)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlag binds a config key to a command-line flag. A flag the user set
// overrides the file and environment.
func BindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	return v.BindPFlag(key, flag)
}

// Load reads file (if non-empty) into v and returns the resulting config.
// With no file, ./gtc.yaml and ~/.gtc/gtc.yaml are tried; their absence is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("gtc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gtc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Console: ConsoleConfig{
			Addr:          v.GetString("console.addr"),
			DBPath:        v.GetString("console.db_path"),
			SecureCookies: v.GetBool("console.secure_cookies"),
			SessionCache:  v.GetInt("console.session_cache"),
			SessionTTL:    v.GetDuration("console.session_ttl"),
		},
		List: ListConfig{PerPage: v.GetInt("list.per_page")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the tools cannot run with.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.List.PerPage <= 0 {
		return fmt.Errorf("list.per_page must be positive, got %d", c.List.PerPage)
	}
	if c.Console.SessionCache <= 0 {
		return fmt.Errorf("console.session_cache must be positive, got %d", c.Console.SessionCache)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	return nil
}
