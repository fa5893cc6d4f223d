package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/promptforge/internal/catalog"
)

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds the user's selections between sessions
type Config struct {
	Language   string            `yaml:"language"`
	Model      string            `yaml:"model"`
	UseCase    string            `yaml:"use_case"`
	FormValues map[string]string `yaml:"form_values,omitempty"`
	Theme      string            `yaml:"theme"`

	CatalogPath string `yaml:"catalog_path,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Language:   string(catalog.DefaultLanguage),
		Model:      "gpt-4o",
		UseCase:    "coding",
		FormValues: map[string]string{},
		Theme:      ThemeLight,
		LogLevel:   "info",
	}
}

func ConfigDir() (string, error) {
	if dir := os.Getenv("PROMPTFORGE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptforge"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath is where the TUI writes its log
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "promptforge.log"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. It returns nil, nil when none exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.FormValues == nil {
		cfg.FormValues = map[string]string{}
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Normalize replaces selections the catalog does not know with defaults.
// It reports whether anything changed.
func (c *Config) Normalize(cat *catalog.Catalog) bool {
	def := DefaultConfig()
	changed := false

	if !catalog.Language(c.Language).Supported() {
		c.Language = def.Language
		changed = true
	}
	if cat.Model(c.Model) == nil {
		c.Model = def.Model
		if cat.Model(c.Model) == nil && len(cat.Models) > 0 {
			c.Model = cat.Models[0].ID
		}
		changed = true
	}
	if cat.UseCase(c.UseCase) == nil {
		c.UseCase = def.UseCase
		if cat.UseCase(c.UseCase) == nil && len(cat.UseCases) > 0 {
			c.UseCase = cat.UseCases[0].ID
		}
		c.FormValues = map[string]string{}
		changed = true
	}
	if c.Theme != ThemeLight && c.Theme != ThemeDark {
		c.Theme = def.Theme
		changed = true
	}
	if c.FormValues == nil {
		c.FormValues = map[string]string{}
	}

	return changed
}

// Lang returns the selected language
func (c *Config) Lang() catalog.Language {
	return catalog.Language(c.Language)
}
