// Package forge assembles system prompts from a catalog.
//
// Generate is total: every combination of model, use case and form values
// produces a prompt. Missing lookups degrade to empty sections or fixed
// default values. An Engine only reads its catalog and is safe for
// concurrent use.
package forge

import (
	"strings"

	"github.com/sant0-9/promptforge/internal/catalog"
)

// Engine builds prompts from an immutable catalog
type Engine struct {
	cat *catalog.Catalog
}

// New creates an engine over cat. The catalog must not be modified afterwards.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog returns the catalog the engine reads from
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Generate assembles the prompt for a model, use case and form values in lang.
// User-entered values are inserted verbatim.
func (e *Engine) Generate(modelID, useCaseID string, values map[string]string, lang catalog.Language) string {
	t := e.cat.TranslationSet(lang)

	var blocks []string
	if instr := e.instructions(modelID, lang, t); instr != "" {
		blocks = append(blocks, instr)
	}

	task := "### " + t.Task
	if ctx := e.taskContext(useCaseID, values, lang); ctx != "" {
		task += "\n" + ctx
	}
	blocks = append(blocks, t.Divider, task)

	if fs := e.fewShot(useCaseID, lang, t); fs != "" {
		blocks = append(blocks, t.Divider, fs)
	}

	user := t.Awaiting
	if extra := values[ExtraInstructionsKey]; extra != "" {
		user = t.Extra + " " + extra
	}
	blocks = append(blocks,
		t.Divider, "### "+t.User+"\n"+user,
		t.Divider, "### "+t.Gen+"\n"+e.cat.Footer.In(lang),
	)

	return strings.Join(blocks, "\n\n") + "\n"
}

// Request is one generation call
type Request struct {
	ModelID   string
	UseCaseID string
	Values    map[string]string
	Language  catalog.Language
}

// Result is a generated prompt with its size relative to the target model
type Result struct {
	Prompt       string
	Tokens       int
	ContextLimit int
}

// Preview generates the prompt and measures it
func (e *Engine) Preview(req Request) Result {
	prompt := e.Generate(req.ModelID, req.UseCaseID, req.Values, req.Language)
	return Result{
		Prompt:       prompt,
		Tokens:       EstimateTokens(prompt),
		ContextLimit: ContextLimit(req.ModelID),
	}
}
