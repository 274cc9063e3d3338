package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is used when CONFIG_PATH is not set.
const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables,
// with env taking precedence over the file and env-default tags filling
// the gaps. The file path comes from CONFIG_PATH. When CONFIG_PATH is
// unset and ./config.yaml does not exist, env and defaults alone are used;
// an explicitly named file that is missing is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	err := cleanenv.ReadConfig(path, &cfg)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
