package forge

import (
	"strings"

	"github.com/sant0-9/promptforge/internal/catalog"
)

// placeholders returns a replacer for the {{token}} syntax used by
// structured strategies.
func (e *Engine) placeholders(lang catalog.Language, t catalog.TranslationSet) *strings.Replacer {
	return strings.NewReplacer(
		"{{core}}", t.Core,
		"{{context}}", t.Context,
		"{{task}}", t.Task,
		"{{user}}", t.User,
		"{{gen}}", t.Gen,
		"{{identity}}", e.cat.Phrase("identity", lang),
		"{{logic}}", e.cat.Phrase("logic", lang),
		"{{noApology}}", e.cat.Phrase("noApology", lang),
	)
}

// instructions renders the model section. Unknown models yield "".
func (e *Engine) instructions(modelID string, lang catalog.Language, t catalog.TranslationSet) string {
	switch s := e.cat.Strategy(modelID).(type) {
	case catalog.LiteralTemplate:
		return s.Text
	case catalog.StructuredLines:
		r := e.placeholders(lang, t)

		var parts []string
		if s.Header != "" {
			parts = append(parts, r.Replace(s.Header))
		}
		if s.Intro != "" {
			parts = append(parts, s.Intro)
		}
		if len(s.Lines) > 0 {
			bullets := make([]string, len(s.Lines))
			for i, line := range s.Lines {
				bullets[i] = "- " + r.Replace(line)
			}
			parts = append(parts, strings.Join(bullets, "\n"))
		}
		return strings.Join(parts, "\n")
	default:
		return ""
	}
}
