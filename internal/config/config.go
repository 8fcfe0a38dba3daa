// Package config loads application configuration by layering defaults, an
// optional YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage backend selectors.
const (
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
)

// Config holds application level configuration.
type Config struct {
	ServerPort  string `koanf:"server_port"`
	Backend     string `koanf:"backend"`
	MySQLDSN    string `koanf:"mysql_dsn"`
	SwaggerHost string `koanf:"swagger_host"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		ServerPort: "8080",
		Backend:    BackendMemory,
		MySQLDSN:   "user:password@tcp(localhost:3306)/sportive?charset=utf8mb4&parseTime=True&loc=Local",
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SPORTIVE_CONFIG is set
//  3. env (prefix SPORTIVE_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SPORTIVE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: SPORTIVE_SERVER_PORT, SPORTIVE_BACKEND, ...
	envProvider := env.Provider("SPORTIVE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "sportive_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Backend != BackendMemory && cfg.Backend != BackendMySQL {
		return nil, errors.New("backend must be memory or mysql")
	}
	if cfg.Backend == BackendMySQL && cfg.MySQLDSN == "" {
		return nil, errors.New("mysql_dsn must not be empty")
	}
	return &cfg, nil
}
