package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "DIAGVIEWER"

// Load reads configPath, or diagviewer.yaml from the usual locations when it is empty.
// Environment variables such as DIAGVIEWER_LAYOUT_WIDTH override the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("diagviewer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/diagviewer")
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return parseConfig(v)
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("layout.width", d.Layout.Width)
	v.SetDefault("layout.height", d.Layout.Height)
	v.SetDefault("layout.padding", d.Layout.Padding)

	v.SetDefault("elasticsearch.addresses", d.Elasticsearch.Addresses)
	v.SetDefault("elasticsearch.username", d.Elasticsearch.Username)
	v.SetDefault("elasticsearch.password", d.Elasticsearch.Password)
	v.SetDefault("elasticsearch.timeout", d.Elasticsearch.Timeout)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.cache_entries", d.Server.CacheEntries)

	v.SetDefault("logging.level", d.Logging.Level)
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
