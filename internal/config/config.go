// Package config loads kvscope configuration from a YAML file, merged
// over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultNotifyTTL is the notification auto-dismiss delay used when the
// config file does not set one.
const DefaultNotifyTTL = Duration(3 * time.Second)

// Duration wraps time.Duration so YAML can carry it as a string like "3s".
type Duration time.Duration

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"3s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML encodes the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds all kvscope settings.
type Config struct {
	// Store is the stash path: a SQLite file path, or ":memory:".
	Store string `yaml:"store"`

	// NotifyTTL is how long notifications stay visible.
	NotifyTTL Duration `yaml:"notify_ttl"`

	Suggest SuggestConfig `yaml:"suggest"`
}

// SuggestConfig configures the generative suggestion service.
type SuggestConfig struct {
	// Endpoint is the chat-completion URL. Empty disables suggestions.
	Endpoint string `yaml:"endpoint"`

	// Model names the model to request.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the bearer token.
	APIKeyEnv string `yaml:"api_key_env"`
}

// Default returns a Config with sensible defaults: a stash under the user
// home directory and a 3-second notification TTL.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Store:     filepath.Join(home, ".kvscope", "stash.db"),
		NotifyTTL: DefaultNotifyTTL,
		Suggest: SuggestConfig{
			Model:     "gpt-4o-mini",
			APIKeyEnv: "KVSCOPE_API_KEY",
		},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Store != "" {
		c.Store = source.Store
	}
	if source.NotifyTTL > 0 {
		c.NotifyTTL = source.NotifyTTL
	}
	if source.Suggest.Endpoint != "" {
		c.Suggest.Endpoint = source.Suggest.Endpoint
	}
	if source.Suggest.Model != "" {
		c.Suggest.Model = source.Suggest.Model
	}
	if source.Suggest.APIKeyEnv != "" {
		c.Suggest.APIKeyEnv = source.Suggest.APIKeyEnv
	}
}

// Load reads a YAML config file and merges it over Default(). A missing
// file is not an error - defaults apply unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// APIKey resolves the suggestion bearer token from the configured
// environment variable. Empty when unset.
func (c *Config) APIKey() string {
	if c.Suggest.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Suggest.APIKeyEnv)
}
