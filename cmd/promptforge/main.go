package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/sant0-9/promptforge/internal/config"
	"github.com/sant0-9/promptforge/internal/forge"
	"github.com/sant0-9/promptforge/internal/logging"
	"github.com/sant0-9/promptforge/internal/tui"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                      "promptforge",
		Usage:                     "Assemble model-tuned prompts from a few form fields",
		Version:                   version,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "Load models, scenarios and translations from `FILE`",
				EnvVars: []string{"PROMPTFORGE_CATALOG"},
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Output language (en, it, fr, de)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			generateCommand(),
			modelsCommand(),
			useCasesCommand(),
			templatesCommand(),
			catalogCommand(),
		},
	}
}

func runTUI(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}

	logPath, err := config.LogPath()
	if err != nil {
		return err
	}
	closer, err := logging.File(logPath, s.logLevel())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	log.Info().
		Str("version", version).
		Str("lang", string(s.lang())).
		Bool("custom_catalog", s.catalogPath != "").
		Msg("starting")

	p := tea.NewProgram(
		tui.NewApp(forge.New(s.catalog), s.config, tui.WithLanguage(s.langOverride)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		return err
	}
	return nil
}
