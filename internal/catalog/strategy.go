package catalog

import (
	"fmt"
	"strings"
)

// Strategy is the per-model rule for the instructions section of a prompt.
// It is either a LiteralTemplate or a StructuredLines.
type Strategy interface {
	isStrategy()
}

// LiteralTemplate is emitted verbatim
type LiteralTemplate struct {
	Text string
}

// StructuredLines is rendered as header, intro and bulleted lines.
// Header and Lines may contain {{placeholder}} tokens.
type StructuredLines struct {
	Header string
	Intro  string
	Lines  []string
}

func (LiteralTemplate) isStrategy() {}
func (StructuredLines) isStrategy() {}

// strategyEntry is the on-disk shape of a strategy
type strategyEntry struct {
	Format   string   `yaml:"format,omitempty"`
	Template string   `yaml:"template,omitempty"`
	Header   string   `yaml:"header,omitempty"`
	Intro    string   `yaml:"intro,omitempty"`
	Lines    []string `yaml:"lines,omitempty"`
}

func (e strategyEntry) strategy() (Strategy, error) {
	switch e.Format {
	case "xml", "literal":
		if e.Template == "" {
			return nil, fmt.Errorf("format %q requires a template", e.Format)
		}
		if strings.Contains(e.Template, "{{") {
			return nil, fmt.Errorf("literal template must not contain placeholders")
		}
		return LiteralTemplate{Text: e.Template}, nil
	case "", "lines":
		if e.Template != "" {
			return nil, fmt.Errorf("template set without a literal format")
		}
		// Intros are emitted verbatim
		if strings.Contains(e.Intro, "{{") {
			return nil, fmt.Errorf("intro must not contain placeholders")
		}
		return StructuredLines{Header: e.Header, Intro: e.Intro, Lines: e.Lines}, nil
	default:
		return nil, fmt.Errorf("unknown strategy format: %q", e.Format)
	}
}
