package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadBuiltin(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Len(t, cat.Models, 30)
	assert.Len(t, cat.UseCases, 4)
	assert.NotEmpty(t, cat.Templates)

	for _, m := range cat.Models {
		assert.NotNil(t, cat.Strategy(m.ID), "model %s has no strategy", m.ID)
	}
	for _, tpl := range cat.Templates {
		assert.NotNil(t, cat.UseCase(tpl.UseCaseID), "template %s", tpl.ID)
		if tpl.ModelID != "" {
			assert.NotNil(t, cat.Model(tpl.ModelID), "template %s", tpl.ID)
		}
	}

	_, literal := cat.Strategy("claude-3-opus").(LiteralTemplate)
	assert.True(t, literal)
	_, structured := cat.Strategy("gpt-4o").(StructuredLines)
	assert.True(t, structured)
}

func TestTextFallback(t *testing.T) {
	txt := Text{English: "hello", Italian: "ciao"}

	assert.Equal(t, "ciao", txt.In(Italian))
	assert.Equal(t, "hello", txt.In(German))
	assert.Equal(t, "hello", txt.In(Language("xx")))
	assert.Equal(t, "", Text(nil).In(English))

	list := TextList{English: {"a", "b"}, French: {"c"}}
	assert.Equal(t, []string{"c"}, list.In(French))
	assert.Equal(t, []string{"a", "b"}, list.In(German))
}

func TestTextUnmarshal(t *testing.T) {
	var doc struct {
		Plain     Text     `yaml:"plain"`
		Localized Text     `yaml:"localized"`
		List      TextList `yaml:"list"`
		ByLang    TextList `yaml:"by_lang"`
	}
	src := `
plain: just english
localized: {en: one, de: eins}
list: [x, y]
by_lang: {it: [uno]}
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, Text{English: "just english"}, doc.Plain)
	assert.Equal(t, "eins", doc.Localized.In(German))
	assert.Equal(t, []string{"x", "y"}, doc.List.In(Italian))
	assert.Equal(t, []string{"uno"}, doc.ByLang.In(Italian))
	assert.Empty(t, doc.ByLang.In(English))
}

func TestLookup(t *testing.T) {
	table := map[Language]map[string]string{
		English: {"a": "A", "b": "B"},
		German:  {"a": "Ä"},
	}

	assert.Equal(t, "Ä", Lookup(table, German, "a"))
	assert.Equal(t, "B", Lookup(table, German, "b"))
	assert.Equal(t, "A", Lookup(table, French, "a"))
	assert.Equal(t, "", Lookup(table, German, "missing"))
}

func TestParseLanguage(t *testing.T) {
	for _, info := range Languages {
		lang, err := ParseLanguage(string(info.ID))
		require.NoError(t, err)
		assert.Equal(t, info.ID, lang)
	}

	_, err := ParseLanguage("es")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	const models = `
models:
  - {id: m1, name: M1}
`
	const rest = `
use_cases:
  - id: coding
    fields:
      - {key: a, kind: text}
translations:
  en: {task: TASK}
`
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "duplicate model",
			src:     models + "  - {id: m1, name: again}\n" + rest,
			wantErr: "duplicate model id: m1",
		},
		{
			name:    "template with unknown use case",
			src:     models + rest + "templates:\n  - {id: t1, use_case: cooking}\n",
			wantErr: "template t1: unknown use case: cooking",
		},
		{
			name:    "template with unknown model",
			src:     models + rest + "templates:\n  - {id: t1, use_case: coding, model: ghost}\n",
			wantErr: "template t1: unknown model: ghost",
		},
		{
			name:    "strategy for unknown model",
			src:     models + rest + "strategies:\n  ghost: {header: x}\n",
			wantErr: "strategy for unknown model: ghost",
		},
		{
			name:    "literal strategy without template",
			src:     models + rest + "strategies:\n  m1: {format: xml}\n",
			wantErr: `strategy m1: format "xml" requires a template`,
		},
		{
			name:    "unknown strategy format",
			src:     models + rest + "strategies:\n  m1: {format: json, template: \"{}\"}\n",
			wantErr: `strategy m1: unknown strategy format: "json"`,
		},
		{
			name:    "unsupported language",
			src:     models + rest + "footer: {en: ok, es: hola}\n",
			wantErr: `footer: unsupported language "es"`,
		},
		{
			name:    "placeholder in intro",
			src:     models + rest + "strategies:\n  m1: {intro: \"Read the {{context}}\"}\n",
			wantErr: "strategy m1: intro must not contain placeholders",
		},
		{
			name:    "placeholder in literal template",
			src:     models + rest + "strategies:\n  m1: {format: literal, template: \"<x>{{core}}</x>\"}\n",
			wantErr: "strategy m1: literal template must not contain placeholders",
		},
		{
			name:    "unsupported language in strengths",
			src:     "models:\n  - {id: m1, name: M1, strengths: {xx: [a]}}\n" + rest,
			wantErr: `model m1 strengths: unsupported language "xx"`,
		},
		{
			name:    "unsupported language in use case name",
			src:     models + "use_cases:\n  - {id: writing, name: {zz: Schreiben}}\ntranslations:\n  en: {task: TASK}\n",
			wantErr: `use case writing name: unsupported language "zz"`,
		},
		{
			name:    "unsupported language in field label",
			src:     models + "use_cases:\n  - id: roleplay\n    fields:\n      - {key: b, kind: text, label: {qq: L}}\ntranslations:\n  en: {task: TASK}\n",
			wantErr: `use case roleplay: field b label: unsupported language "qq"`,
		},
		{
			name:    "unsupported language in template",
			src:     models + rest + "templates:\n  - {id: t1, use_case: coding, name: {en: T, xx: T}, description: {yy: D}, values: {a: {zz: v}}}\n",
			wantErr: `template t1 name: unsupported language "xx"`,
		},
		{
			name:    "unsupported language in template description",
			src:     models + rest + "templates:\n  - {id: t1, use_case: coding, description: {yy: D}}\n",
			wantErr: `template t1 description: unsupported language "yy"`,
		},
		{
			name:    "unsupported language in template value",
			src:     models + rest + "templates:\n  - {id: t1, use_case: coding, values: {a: {zz: v}}}\n",
			wantErr: `template t1 value a: unsupported language "zz"`,
		},
		{
			name:    "unsupported language in phrases",
			src:     models + rest + "phrases:\n  identity: {xx: Ich}\n",
			wantErr: `phrase identity: unsupported language "xx"`,
		},
		{
			name:    "unsupported language in requirements",
			src:     models + rest + "requirements:\n  coding: {xx: [r1]}\n",
			wantErr: `requirements coding: unsupported language "xx"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Parse([]byte(models + rest))
	assert.NoError(t, err)
}

func TestValidateFields(t *testing.T) {
	src := `
use_cases:
  - id: writing
    fields:
      - {key: tone, kind: select}
      - {key: tone, kind: text}
      - {key: mood, kind: slider}
translations:
  en: {task: TASK}
`
	_, err := Parse([]byte(src))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "select field tone has no options")
	assert.Contains(t, err.Error(), "duplicate field key: tone")
	assert.Contains(t, err.Error(), `field mood has unknown kind "slider"`)
}

func TestValidateRequiresDefaultTranslations(t *testing.T) {
	_, err := Parse([]byte("translations:\n  de: {task: AUFGABE}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translations missing default language en")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("translations:\n  en: {task: T}\n"), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "T", cat.TranslationSet(German).Task)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("models: [\n"), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
