// Package config loads the labscout runtime configuration from a YAML file.
// Every field has a default, so a missing file yields a working single-process
// setup: in-memory sessions, no archive, info-level logs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the labscout servers.
type Config struct {
	Listen     string      `yaml:"listen"`
	LogLevel   string      `yaml:"log_level"`
	ArchiveDir string      `yaml:"archive_dir"`
	Redis      RedisConfig `yaml:"redis"`
}

// RedisConfig enables Redis-backed intake sessions when Addr is set.
// Without it the servers fall back to the in-memory store.
type RedisConfig struct {
	Addr       string        `yaml:"addr"`
	Password   string        `yaml:"password"`
	DB         int           `yaml:"db"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Redis: RedisConfig{
			SessionTTL: 30 * time.Minute,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Redis.SessionTTL < 0 {
		return cfg, fmt.Errorf("config %s: redis.session_ttl must not be negative", path)
	}
	return cfg, nil
}
