package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLOUDFLARE_API_TOKEN",
		"CLOUDFLARE_API_KEY",
		"CLOUDFLARE_EMAIL",
		"CLOUDFLARE_API_BASE_URL",
		"CFDNSCTL_STATE_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_token: file-token\nbase_url: https://cf.internal/client/v4\nstate_file: /tmp/cfdnsctl-session.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.APIToken != "file-token" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
	if cfg.BaseURL != "https://cf.internal/client/v4" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.StateFile != "/tmp/cfdnsctl-session.yaml" {
		t.Errorf("StateFile = %q", cfg.StateFile)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDFLARE_API_TOKEN", "env-token")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_token: file-token\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.APIToken != "env-token" {
		t.Errorf("APIToken = %q, want env override", cfg.APIToken)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDFLARE_API_TOKEN", "tok")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.BaseURL != cloudflare.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.StateFile == "" {
		t.Error("StateFile default not applied")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, domain.ErrConfigReadFailed) {
		t.Errorf("Load() = %v, want ErrConfigReadFailed", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("\tapi_token"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, domain.ErrConfigParseFailed) {
		t.Errorf("Load() = %v, want ErrConfigParseFailed", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"token", Config{APIToken: "t"}, false},
		{"key and email", Config{APIKey: "k", APIEmail: "a@b.c"}, false},
		{"key without email", Config{APIKey: "k"}, true},
		{"nothing", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrMissingCredential) {
				t.Errorf("Validate() = %v, want ErrMissingCredential", err)
			}
		})
	}
}
