package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigFile is read when present; it is never required.
const defaultConfigFile = "./config.yaml"

// Load builds the csv2json configuration. The YAML file is chosen in this
// order: the -config flag value (path), the CONFIG_PATH env, ./config.yaml.
// A file named by the flag or CONFIG_PATH must exist; ./config.yaml may be
// absent, in which case only env vars and env-default tags apply.
// Env vars always win over values from the file.
func Load(path string) (*Config, error) {
	path, required := resolvePath(path)

	var cfg Config
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePath reports the config file to read and whether it was named
// explicitly.
func resolvePath(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env, true
	}
	return defaultConfigFile, false
}
