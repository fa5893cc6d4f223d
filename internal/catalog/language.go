package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Language is a supported output language code
type Language string

const (
	English Language = "en"
	Italian Language = "it"
	French  Language = "fr"
	German  Language = "de"
)

// DefaultLanguage is used when a value is missing for the requested language
const DefaultLanguage = English

// LanguageInfo describes a language for selection lists
type LanguageInfo struct {
	ID   Language
	Name string
	Flag string
}

var Languages = []LanguageInfo{
	{ID: English, Name: "English", Flag: "🇺🇸"},
	{ID: Italian, Name: "Italiano", Flag: "🇮🇹"},
	{ID: French, Name: "Français", Flag: "🇫🇷"},
	{ID: German, Name: "Deutsch", Flag: "🇩🇪"},
}

// Supported reports whether lang is one of the configured languages
func (l Language) Supported() bool {
	for _, info := range Languages {
		if info.ID == l {
			return true
		}
	}
	return false
}

// ParseLanguage returns the Language for code, or an error if it is not supported
func ParseLanguage(code string) (Language, error) {
	lang := Language(code)
	if !lang.Supported() {
		return "", fmt.Errorf("unsupported language: %q", code)
	}
	return lang, nil
}

// Lookup is the two-level dictionary lookup: the requested language first,
// then the default language. Missing in both yields "".
func Lookup(table map[Language]map[string]string, lang Language, key string) string {
	if v := table[lang][key]; v != "" {
		return v
	}
	return table[DefaultLanguage][key]
}

// Text is a string with per-language variants
type Text map[Language]string

// In returns the value for lang, falling back to the default language
func (t Text) In(lang Language) string {
	if v := t[lang]; v != "" {
		return v
	}
	return t[DefaultLanguage]
}

// UnmarshalYAML accepts either a plain scalar (stored as the default
// language value) or a language-keyed mapping.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Text{DefaultLanguage: node.Value}
		return nil
	}
	var m map[Language]string
	if err := node.Decode(&m); err != nil {
		return err
	}
	*t = m
	return nil
}

// TextList is a list of strings with per-language variants
type TextList map[Language][]string

// In returns the list for lang, falling back to the default language
func (t TextList) In(lang Language) []string {
	if v := t[lang]; len(v) > 0 {
		return v
	}
	return t[DefaultLanguage]
}

// UnmarshalYAML accepts either a plain sequence (default language) or a
// language-keyed mapping of sequences.
func (t *TextList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = TextList{DefaultLanguage: list}
		return nil
	}
	var m map[Language][]string
	if err := node.Decode(&m); err != nil {
		return err
	}
	*t = m
	return nil
}
