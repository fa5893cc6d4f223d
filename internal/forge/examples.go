package forge

import (
	"strings"

	"github.com/sant0-9/promptforge/internal/catalog"
)

const codeFence = "```"

// examplesFor returns the few-shot pairs for a use case, falling back to the
// default language when lang has no entry. An explicit empty list for lang
// means no examples.
func (e *Engine) examplesFor(useCaseID string, lang catalog.Language) []catalog.Example {
	byLang := e.cat.Examples[useCaseID]
	if ex, ok := byLang[lang]; ok {
		return ex
	}
	return byLang[catalog.DefaultLanguage]
}

// fewShot renders the examples block, or "" when there are none
func (e *Engine) fewShot(useCaseID string, lang catalog.Language, t catalog.TranslationSet) string {
	examples := e.examplesFor(useCaseID, lang)
	if len(examples) == 0 {
		return ""
	}

	formatted := make([]string, len(examples))
	for i, ex := range examples {
		response := ex.Response
		if !strings.Contains(response, codeFence) {
			response = `"` + response + `"`
		}
		formatted[i] = "**" + t.UserRequest + "**\n" +
			`"` + ex.Request + `"` + "\n\n" +
			"**" + t.IdealResponse + "**\n" +
			response
	}

	return "### " + t.FewShotHeader + "\n\n" + strings.Join(formatted, "\n\n")
}
