package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or postgres
	DSN    string `mapstructure:"dsn"`    // file path for sqlite, connection string for postgres
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config holds the full application configuration
type Config struct {
	Debug     bool           `mapstructure:"debug"`
	Database  DatabaseConfig `mapstructure:"database"`
	Server    ServerConfig   `mapstructure:"server"`
	MediaRoot string         `mapstructure:"media_root"`
	ViaCEPURL string         `mapstructure:"viacep_url"`
}

// Addr returns the host:port the HTTP server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from an optional config.yaml in the working
// directory, overridden by IMOBICRM_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("debug", false)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "imobiliaria.db")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("media_root", "media")
	v.SetDefault("viacep_url", "https://viacep.com.br/ws")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("IMOBICRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
