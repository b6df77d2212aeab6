package main

import (
	"squire/internal/config"
	"squire/pkg/client"
)

// buildClient loads the config at cfgPath and assembles the API client.
func buildClient(cfgPath string) (*client.BotClient, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return cfg.Client()
}
