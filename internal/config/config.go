package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
)

type Config struct {
	Layout        LayoutConfig        `mapstructure:"layout"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Server        ServerConfig        `mapstructure:"server"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// LayoutConfig is the default canvas used when a command or request does not override it.
type LayoutConfig struct {
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
	Padding float64 `mapstructure:"padding"`
}

func (l LayoutConfig) Options() layout.Options {
	return layout.Options{Width: l.Width, Height: l.Height, Padding: l.Padding}
}

type ElasticsearchConfig struct {
	Addresses []string      `mapstructure:"addresses"`
	Username  string        `mapstructure:"username"`
	Password  string        `mapstructure:"password"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// CacheEntries caps how many distinct canvas geometries are kept per bundle.
	CacheEntries int64 `mapstructure:"cache_entries"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Width:   1400,
			Height:  700,
			Padding: 4,
		},
		Elasticsearch: ElasticsearchConfig{
			Addresses: []string{"http://localhost:9200"},
			Timeout:   30 * time.Second,
		},
		Server: ServerConfig{
			Addr:         ":8081",
			CacheEntries: 64,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c *Config) Validate() error {
	if err := c.Layout.Options().Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if len(c.Elasticsearch.Addresses) == 0 {
		return errors.New("elasticsearch: at least one address is required")
	}
	if c.Elasticsearch.Timeout <= 0 {
		return fmt.Errorf("elasticsearch: timeout must be positive, got %s", c.Elasticsearch.Timeout)
	}
	if c.Server.Addr == "" {
		return errors.New("server: addr is required")
	}
	if c.Server.CacheEntries <= 0 {
		return fmt.Errorf("server: cache_entries must be positive, got %d", c.Server.CacheEntries)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	return nil
}
