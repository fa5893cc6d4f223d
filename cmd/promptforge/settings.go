package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sant0-9/promptforge/internal/catalog"
	"github.com/sant0-9/promptforge/internal/config"
	"github.com/sant0-9/promptforge/internal/logging"
)

// settings merges the saved config with command line flags
type settings struct {
	config      *config.Config
	catalog     *catalog.Catalog
	catalogPath string
	level       string
	// langOverride comes from --lang and is never written back to config
	langOverride catalog.Language
}

func loadSettings(c *cli.Context) (*settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &settings{config: cfg, level: cfg.LogLevel}

	if lang := flagString(c, "lang"); lang != "" {
		l, err := catalog.ParseLanguage(lang)
		if err != nil {
			return nil, err
		}
		s.langOverride = l
	}
	if level := flagString(c, "log-level"); level != "" {
		s.level = level
	}

	s.catalogPath = flagString(c, "catalog")
	if s.catalogPath == "" {
		s.catalogPath = cfg.CatalogPath
	}
	if s.catalogPath == "" {
		s.catalog, err = catalog.Load()
	} else {
		s.catalog, err = catalog.LoadFile(s.catalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cfg.Normalize(s.catalog)
	return s, nil
}

func (s *settings) logLevel() string {
	if s.level == "" {
		return "info"
	}
	return s.level
}

func (s *settings) lang() catalog.Language {
	if s.langOverride != "" {
		return s.langOverride
	}
	return s.config.Lang()
}

// flagString returns the innermost non-empty value of a flag. Flags like
// --lang exist both globally and on subcommands.
func flagString(c *cli.Context, name string) string {
	for _, ctx := range c.Lineage() {
		if v := ctx.String(name); v != "" {
			return v
		}
	}
	return ""
}

// withSettings loads settings, points logs at stderr and runs fn
func withSettings(fn func(*cli.Context, *settings) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		s, err := loadSettings(c)
		if err != nil {
			return err
		}
		logging.Console(s.logLevel())
		return fn(c, s)
	}
}
