package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigFile = "./config.yaml"

// Load assembles the configuration from three layers, each overriding
// the previous: struct defaults, an optional YAML file, and environment
// variables. The file is taken from CONFIG_PATH when set; otherwise
// ./config.yaml is tried and silently skipped when absent. A CONFIG_PATH
// pointing at a missing file is an error, since the operator asked for it.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configFile()
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: load environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func configFile() (path string, explicit bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigFile, false
}
