package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// searchPaths are tried in order when CONFIG_PATH is unset.
var searchPaths = []string{"config.yaml", "config/wortschatz.yaml"}

// Load builds the configuration from, in increasing priority, env-default
// tags, the YAML file and environment variables.
//
// The file is CONFIG_PATH when set, and it must then exist. Otherwise the
// first existing entry of searchPaths is used. With no file at all the
// configuration comes from the environment alone.
func Load() (*Config, error) {
	path, err := resolvePath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath() (string, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: CONFIG_PATH %s: %w", path, err)
		}
		return path, nil
	}

	for _, path := range searchPaths {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: %s: %w", path, err)
		}
	}
	return "", nil
}
