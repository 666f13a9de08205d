// Package config defines the project configuration for the pairlex
// CLI: tab width and language selection overrides, loaded from a YAML
// file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/pairlex/pkg/lexer"
)

// DefaultFileName is the config file looked up in the working
// directory when no --config flag is given.
const DefaultFileName = ".pairlex.yml"

// Config controls how files are scanned.
type Config struct {
	// TabWidth is the width of a tab for indentation computation.
	// Must be between 1 and 255. Defaults to 4.
	TabWidth int `yaml:"tab_width"`

	// DefaultLanguage is used when detection fails. Empty means
	// "skip undetected files".
	DefaultLanguage string `yaml:"default_language"`

	// Languages overrides language detection per file extension
	// (lowercase, with leading dot), e.g. ".inc": "c".
	Languages map[string]string `yaml:"languages"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{TabWidth: 4}
}

// Load reads and validates a configuration file. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the given path, or DefaultFileName if it exists,
// or falls back to the built-in defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}
	return Default(), nil
}

// Validate checks field ranges and that every configured language is
// registered.
func (c *Config) Validate() error {
	var errs []error

	if c.TabWidth < 1 || c.TabWidth > 255 {
		errs = append(errs, fmt.Errorf("tab_width must be between 1 and 255, got %d", c.TabWidth))
	}

	if c.DefaultLanguage != "" {
		if _, ok := lexer.Lookup(c.DefaultLanguage); !ok {
			errs = append(errs, fmt.Errorf("default_language %q is not a known language", c.DefaultLanguage))
		}
	}

	for ext, lang := range c.Languages {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("language override key %q must start with a dot", ext))
		}
		if _, ok := lexer.Lookup(lang); !ok {
			errs = append(errs, fmt.Errorf("language override %q -> %q is not a known language", ext, lang))
		}
	}

	return errors.Join(errs...)
}

// LanguageForExtension returns the configured override for a file
// extension (with leading dot), or "".
func (c *Config) LanguageForExtension(ext string) string {
	return c.Languages[strings.ToLower(ext)]
}
