package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
)

// Config carries credentials and paths. Values come from an optional
// yaml file, overridden by environment variables (a .env file is
// honored when present).
type Config struct {
	APIToken  string `yaml:"api_token"`
	APIKey    string `yaml:"api_key"`
	APIEmail  string `yaml:"api_email"`
	BaseURL   string `yaml:"base_url"`
	StateFile string `yaml:"state_file"`
}

// Load reads the config file at path, or the default location when
// path is empty. A missing default file is fine; a missing explicit
// one is not.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// no config file, environment only
	default:
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigReadFailed, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CLOUDFLARE_API_TOKEN"); v != "" {
		c.APIToken = v
	}
	if v := os.Getenv("CLOUDFLARE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("CLOUDFLARE_EMAIL"); v != "" {
		c.APIEmail = v
	}
	if v := os.Getenv("CLOUDFLARE_API_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("CFDNSCTL_STATE_FILE"); v != "" {
		c.StateFile = v
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = cloudflare.DefaultBaseURL
	}
	if c.StateFile == "" {
		c.StateFile = filepath.Join(configDir(), "session.yaml")
	}
}

// Credentials returns the API credentials this config selects.
func (c *Config) Credentials() cloudflare.Credentials {
	return cloudflare.Credentials{
		APIToken: c.APIToken,
		APIKey:   c.APIKey,
		Email:    c.APIEmail,
	}
}

func (c *Config) Validate() error {
	return c.Credentials().Validate()
}

func defaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "cfdnsctl")
	}
	return ".cfdnsctl"
}
