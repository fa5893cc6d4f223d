package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/sant0-9/promptforge/internal/catalog"
	"github.com/sant0-9/promptforge/internal/forge"
)

const listWidth = 72

var writeClipboard = clipboard.WriteAll

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Print an assembled prompt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Target model `ID` (defaults to the saved selection)",
			},
			&cli.StringFlag{
				Name:    "use-case",
				Aliases: []string{"u"},
				Usage:   "Scenario `ID` (coding, writing, analysis, roleplay)",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Output language (en, it, fr, de)",
			},
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "Field value as `KEY=VALUE`, repeatable",
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Start from template `ID`",
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Also copy the prompt to the clipboard",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the prompt to `FILE` instead of stdout",
			},
		},
		Action: withSettings(runGenerate),
	}
}

func runGenerate(c *cli.Context, s *settings) error {
	lang := s.lang()
	req := forge.Request{
		ModelID:   s.config.Model,
		UseCaseID: s.config.UseCase,
		Values:    map[string]string{},
		Language:  lang,
	}

	if id := c.String("template"); id != "" {
		tpl := s.catalog.Resolve(lang).Template(id)
		if tpl == nil {
			return fmt.Errorf("unknown template: %s", id)
		}
		req.UseCaseID = tpl.UseCaseID
		if tpl.ModelID != "" {
			req.ModelID = tpl.ModelID
		}
		for k, v := range tpl.Values {
			req.Values[k] = v
		}
	}

	if c.IsSet("model") {
		req.ModelID = c.String("model")
	}
	if c.IsSet("use-case") {
		req.UseCaseID = c.String("use-case")
	}
	values, err := parseValues(c.StringSlice("set"))
	if err != nil {
		return err
	}
	for k, v := range values {
		req.Values[k] = v
	}

	if s.catalog.Model(req.ModelID) == nil {
		log.Warn().Str("model", req.ModelID).Msg("unknown model, prompt has no model instructions")
	}
	if s.catalog.UseCase(req.UseCaseID) == nil {
		log.Warn().Str("use_case", req.UseCaseID).Msg("unknown use case, prompt has no task context")
	}

	res := forge.New(s.catalog).Preview(req)
	log.Debug().
		Str("model", req.ModelID).
		Str("use_case", req.UseCaseID).
		Int("tokens", res.Tokens).
		Int("context_limit", res.ContextLimit).
		Msg("prompt generated")

	if path := c.String("out"); path != "" {
		if err := os.WriteFile(path, []byte(res.Prompt), 0644); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
		log.Info().Str("path", path).Int("tokens", res.Tokens).Msg("prompt written")
	} else {
		fmt.Fprint(c.App.Writer, res.Prompt)
	}

	if c.Bool("copy") {
		if err := writeClipboard(res.Prompt); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		log.Info().Msg("prompt copied to clipboard")
	}
	return nil
}

// parseValues turns KEY=VALUE pairs into field values
func parseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	var errs []error
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			errs = append(errs, fmt.Errorf("invalid --set %q: want KEY=VALUE", p))
			continue
		}
		values[k] = v
	}
	return values, errors.Join(errs...)
}

func modelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "List target models by provider",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "long",
				Usage: "Show descriptions and strengths",
			},
		},
		Action: withSettings(func(c *cli.Context, s *settings) error {
			printModels(c.App.Writer, s.catalog.Resolve(s.lang()), c.Bool("long"))
			return nil
		}),
	}
}

func printModels(w io.Writer, r *catalog.Resolved, long bool) {
	for _, g := range r.ModelsByProvider() {
		fmt.Fprintln(w, g.Provider)
		for _, m := range g.Models {
			fmt.Fprintf(w, "  %-22s %s\n", m.ID, m.Name)
			if !long {
				continue
			}
			fmt.Fprintln(w, block(m.Description, 6))
			if len(m.Strengths) > 0 {
				fmt.Fprintln(w, block(strings.Join(m.Strengths, " · "), 6))
			}
		}
	}
}

func useCasesCommand() *cli.Command {
	return &cli.Command{
		Name:  "usecases",
		Usage: "List scenarios and their fields",
		Action: withSettings(func(c *cli.Context, s *settings) error {
			printUseCases(c.App.Writer, s.catalog.Resolve(s.lang()))
			return nil
		}),
	}
}

func printUseCases(w io.Writer, r *catalog.Resolved) {
	for _, uc := range r.UseCases {
		fmt.Fprintf(w, "%-10s %s\n", uc.ID, uc.Name)
		for _, f := range uc.Fields {
			line := fmt.Sprintf("  %-20s %-9s %s", f.Key, f.Kind, f.Label)
			if len(f.Options) > 0 {
				line += " [" + strings.Join(f.Options, ", ") + "]"
			}
			fmt.Fprintln(w, line)
		}
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "List ready-made templates",
		Action: withSettings(func(c *cli.Context, s *settings) error {
			printTemplates(c.App.Writer, s.catalog.Resolve(s.lang()))
			return nil
		}),
	}
}

func printTemplates(w io.Writer, r *catalog.Resolved) {
	for _, t := range r.Templates {
		target := t.UseCaseID
		if t.ModelID != "" {
			target += " / " + t.ModelID
		}
		fmt.Fprintf(w, "%-18s %s (%s)\n", t.ID, t.Name, target)
		if t.Description != "" {
			fmt.Fprintln(w, block(t.Description, 4))
		}
	}
}

// block wraps text to the listing width and indents it
func block(text string, n uint) string {
	return indent.String(wordwrap.String(text, listWidth-int(n)), n)
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Work with catalog files",
		Subcommands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Check a catalog file for errors",
				ArgsUsage: "FILE",
				Action:    runCatalogValidate,
			},
		},
	}
}

func runCatalogValidate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("usage: promptforge catalog validate FILE")
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Catalog is valid: %d models, %d use cases, %d templates\n",
		len(cat.Models), len(cat.UseCases), len(cat.Templates))
	return nil
}
