// Package config loads application settings from the environment.
//
// Variables use the ORDERS_ prefix and map onto the Config struct via
// dot-delimited keys, e.g. ORDERS_SERVER_PORT -> server.port. A .env
// file, if present, is loaded first via godotenv's autoload.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
	Seed   bool         `koanf:"seed"`
}

type ServerConfig struct {
	Port string `koanf:"port" validate:"required"`
	Mode string `koanf:"mode" validate:"required,oneof=debug release test"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

// Load reads, unmarshals and validates the configuration. Unset
// variables keep their defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "release",
		},
		Log:  LogConfig{Level: "info"},
		Seed: true,
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("ORDERS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "ORDERS_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
