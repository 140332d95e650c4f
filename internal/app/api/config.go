package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the settings for the API process.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads an optional petstore.yaml plus PETSTORE_-prefixed
// environment overrides, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8090")
	v.SetDefault("server.mode", "release")
	v.SetDefault("seed.enabled", true)

	v.SetConfigName("petstore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/petstore")

	v.SetEnvPrefix("PETSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server.addr must not be empty")
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("server.mode must be one of debug, release, test")
	}
	return cfg, nil
}
