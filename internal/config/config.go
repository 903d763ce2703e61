// Package config loads the portal configuration from a YAML file overlaid
// with DATAROOM_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DATAROOM_*). The access password is
// normally supplied only through DATAROOM_ACCESS_PASSWORD.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DATAROOM_ACCESS_PASSWORD -> access_password, etc.
	if err := k.Load(env.Provider("DATAROOM_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DATAROOM_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. The access
// password is never written.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validModes is the set of recognized delivery modes.
var validModes = map[DeliveryMode]bool{
	ModeSlides:   true,
	ModeEmbedded: true,
}

// Validate checks that the configuration contains valid values. An unset
// access password is deliberately not a validation error: the verification
// endpoint reports it as a server fault at request time.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.AssetRoot == "" {
		return fmt.Errorf("asset_root is required")
	}

	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one language must be configured")
	}

	for lang, lc := range c.Languages {
		if !lang.Valid() {
			return fmt.Errorf("unknown language %q", lang)
		}
		if !validModes[lc.Content.Mode] {
			return fmt.Errorf("language %s: invalid content mode %q: must be slides or embedded", lang, lc.Content.Mode)
		}
		if lc.Content.Mode == ModeEmbedded && lc.Content.EmbedURL == "" {
			return fmt.Errorf("language %s: embedded mode requires embed_url", lang)
		}
		if lc.Content.Mode == ModeSlides && lc.Content.SlidesDir == "" {
			return fmt.Errorf("language %s: slides mode requires slides_dir", lang)
		}
	}

	return nil
}

// HasPassword reports whether an access password is configured, without
// exposing the value.
func (c *Config) HasPassword() bool {
	return c.AccessPassword != ""
}
