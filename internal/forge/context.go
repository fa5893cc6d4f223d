package forge

import (
	"strings"

	"github.com/sant0-9/promptforge/internal/catalog"
)

// Use-case ids with a task-context layout
const (
	UseCaseCoding   = "coding"
	UseCaseWriting  = "writing"
	UseCaseAnalysis = "analysis"
	UseCaseRoleplay = "roleplay"
)

// ExtraInstructionsKey is the free-text field copied into the user section
const ExtraInstructionsKey = "extraInstructions"

// contextLine maps a form value onto a labelled line
type contextLine struct {
	label string // context label key
	field string // form field key
	def   string // used when the field is empty
}

var layouts = map[string][]contextLine{
	UseCaseCoding: {
		{label: "lang", field: "language", def: "N/A"},
		{label: "frame", field: "framework", def: "N/A"},
		{label: "exp", field: "level", def: "Senior"},
		{label: "prob", field: "problem", def: "N/A"},
	},
	UseCaseWriting: {
		{label: "topic", field: "topic", def: "General"},
		{label: "aud", field: "audience", def: "General"},
		{label: "tone", field: "tone", def: "Neutral"},
	},
	UseCaseAnalysis: {
		{label: "data", field: "dataDescription", def: "General"},
		{label: "objective", field: "objective", def: "Insight"},
	},
	UseCaseRoleplay: {
		{label: "character", field: "character", def: "Assistant"},
		{label: "scenario", field: "scenario", def: "Conversation"},
	},
}

// taskContext renders the labelled field values and the use-case
// requirements. Unknown use cases yield "".
func (e *Engine) taskContext(useCaseID string, values map[string]string, lang catalog.Language) string {
	layout, ok := layouts[useCaseID]
	if !ok {
		return ""
	}
	label := func(key string) string { return e.cat.ContextLabel(lang, key) }

	lines := make([]string, 0, len(layout)+2)
	lines = append(lines, label("task")+": "+label("kind_"+useCaseID))
	for _, l := range layout {
		v := values[l.field]
		if v == "" {
			v = l.def
		}
		lines = append(lines, label(l.label)+": "+v)
	}

	lines = append(lines, label("req")+":")
	for _, r := range e.cat.Requirements[useCaseID].In(lang) {
		lines = append(lines, "- "+r)
	}
	return strings.Join(lines, "\n")
}
