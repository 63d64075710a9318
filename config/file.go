package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/masinc/search-cli/log"
	"github.com/morikuni/failure/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the config file inside Dir
	FileName = "config.yaml"

	// EnvPath overrides the config file location
	EnvPath = "SEARCH_CONFIG"
)

// Dir returns ~/.config/search on every platform.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", failure.Translate(err, ErrIO,
			failure.Message("Cannot determine home directory"),
		)
	}
	return filepath.Join(home, ".config", "search"), nil
}

// Path returns the config file path, honoring SEARCH_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Init creates the config file with Default when it does not exist yet.
// It reports whether a file was created.
func Init(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, failure.Translate(err, ErrIO,
			failure.Message(fmt.Sprintf("Cannot access config file: %s", path)),
			failure.Context{"path": path},
		)
	}

	log.Debug("Creating default config file", "path", path)
	if err := Save(path, Default()); err != nil {
		return false, failure.Wrap(err)
	}
	return true, nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, failure.Translate(err, ErrIO,
			failure.Message(fmt.Sprintf("Cannot read config file: %s", path)),
			failure.Context{"path": path},
		)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, failure.Wrap(err, failure.Context{"path": path})
	}

	log.Debug("Loaded config", "path", path, "providers", len(cfg.Providers))
	return cfg, nil
}

// Parse decodes a YAML config document and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, failure.Translate(err, ErrParse,
			failure.Message(fmt.Sprintf("Cannot parse config file: %v", err)),
		)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, failure.Wrap(err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, failure.Translate(err, ErrParse,
			failure.Message("Cannot encode config"),
		)
	}
	return data, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return failure.Translate(err, ErrIO,
			failure.Message(fmt.Sprintf("Cannot create config directory: %s", filepath.Dir(path))),
			failure.Context{"path": path},
		)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return failure.Wrap(err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return failure.Translate(err, ErrIO,
			failure.Message(fmt.Sprintf("Cannot write config file: %s", path)),
			failure.Context{"path": path},
		)
	}
	return nil
}
