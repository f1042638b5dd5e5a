// Package config loads cryptoquote settings from defaults, an optional YAML
// file and CRYPTOQUOTE_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "CRYPTOQUOTE"

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	CryptoCompare CryptoCompareConfig `mapstructure:"cryptocompare"`
	Catalog       CatalogConfig       `mapstructure:"catalog"`
	Widget        WidgetConfig        `mapstructure:"widget"`
	Log           LogConfig           `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: "debug", "release", "test"
}

type CryptoCompareConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 disables the timeout
}

type CatalogConfig struct {
	Limit             int    `mapstructure:"limit"`
	ReferenceCurrency string `mapstructure:"reference_currency"`
}

type Currency struct {
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

type WidgetConfig struct {
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	Currencies     []Currency    `mapstructure:"currencies"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`       // "debug", "info", "warn", "error"
	Format     string `mapstructure:"format"`      // "text" or "json"
	OutputFile string `mapstructure:"output_file"` // optional, rotated
}

// Load searches ./config and $HOME/.cryptoquote for config.yaml. A missing
// file is not an error.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".cryptoquote"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("cryptocompare.base_url", "https://min-api.cryptocompare.com/data")
	v.SetDefault("cryptocompare.api_key", "")
	v.SetDefault("cryptocompare.timeout", "0s")

	v.SetDefault("catalog.limit", 10)
	v.SetDefault("catalog.reference_currency", "USD")

	v.SetDefault("widget.notice_duration", "2s")
	v.SetDefault("widget.session_ttl", "30m")
	v.SetDefault("widget.sweep_interval", "1m")
	v.SetDefault("widget.currencies", []map[string]string{
		{"code": "USD", "name": "US Dollar"},
		{"code": "EUR", "name": "Euro"},
		{"code": "GBP", "name": "Pound Sterling"},
		{"code": "MXN", "name": "Mexican Peso"},
	})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output_file", "")
}

func (c *Config) Validate() error {
	switch {
	case c.Server.Port == "":
		return fmt.Errorf("server.port cannot be empty")
	case c.Server.Mode != "debug" && c.Server.Mode != "release" && c.Server.Mode != "test":
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	case c.Catalog.Limit <= 0:
		return fmt.Errorf("catalog.limit must be positive, got %d", c.Catalog.Limit)
	case c.Catalog.ReferenceCurrency == "":
		return fmt.Errorf("catalog.reference_currency cannot be empty")
	case c.CryptoCompare.Timeout < 0:
		return fmt.Errorf("cryptocompare.timeout cannot be negative")
	case c.Widget.NoticeDuration <= 0:
		return fmt.Errorf("widget.notice_duration must be positive")
	case c.Widget.SessionTTL <= 0:
		return fmt.Errorf("widget.session_ttl must be positive")
	case c.Widget.SweepInterval <= 0:
		return fmt.Errorf("widget.sweep_interval must be positive")
	case len(c.Widget.Currencies) == 0:
		return fmt.Errorf("widget.currencies cannot be empty")
	}
	return nil
}
