// Package config loads the shared CLI configuration: a TOML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"squire/pkg/client"
)

// Config holds the connection settings shared by the squire binaries.
type Config struct {
	Token   string `toml:"token" env:"SQUIRE_TOKEN"`
	BaseURL string `toml:"base_url" env:"SQUIRE_BASE_URL"`
}

// DefaultPath is ~/.config/squire/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "squire", "config.toml"), nil
}

// Load reads the TOML file at path (the default path when empty), then
// applies environment overrides. A missing file is not an error so the
// binaries stay usable with SQUIRE_TOKEN alone.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to environment only
	default:
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// Client assembles the API client from the configuration.
func (c Config) Client() (*client.BotClient, error) {
	builder := client.NewBuilder().WithToken(c.Token)
	if c.BaseURL != "" {
		builder = builder.WithBaseURL(c.BaseURL)
	}
	botClient, err := builder.Build()
	if errors.Is(err, client.ErrNoToken) {
		return nil, errors.New("no API token: set token in the config file or SQUIRE_TOKEN")
	}
	return botClient, err
}
