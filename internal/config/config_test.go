package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"squire/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := writeConfig(t, "token = \"lip_file\"\nbase_url = \"http://localhost:9663\"\n")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Token != "lip_file" {
			t.Errorf("Token = %q, want lip_file", cfg.Token)
		}
		if cfg.BaseURL != "http://localhost:9663" {
			t.Errorf("BaseURL = %q", cfg.BaseURL)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "token = \"lip_file\"\n")
		t.Setenv("SQUIRE_TOKEN", "lip_env")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Token != "lip_env" {
			t.Errorf("Token = %q, want the environment to win", cfg.Token)
		}
	})

	t.Run("missing file leaves environment only", func(t *testing.T) {
		t.Setenv("SQUIRE_TOKEN", "lip_env")

		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Token != "lip_env" {
			t.Errorf("Token = %q, want lip_env", cfg.Token)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, "token = [broken")

		if _, err := config.Load(path); err == nil {
			t.Error("Load succeeded on malformed toml")
		}
	})
}

func TestClientRequiresToken(t *testing.T) {
	_, err := config.Config{BaseURL: "http://localhost:9663"}.Client()
	if err == nil {
		t.Fatal("Client succeeded without a token")
	}
	if !strings.Contains(err.Error(), "SQUIRE_TOKEN") {
		t.Errorf("error %q does not point at the token sources", err)
	}
}
