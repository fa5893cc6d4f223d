package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var builtin []byte

// FieldKind is the input widget used for a field
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
)

// Model describes a target LLM
type Model struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Provider    string   `yaml:"provider"`
	Description Text     `yaml:"description"`
	Strengths   TextList `yaml:"strengths"`
}

// Field is one input of a use-case form
type Field struct {
	Key         string    `yaml:"key"`
	Label       Text      `yaml:"label"`
	Placeholder string    `yaml:"placeholder"`
	Kind        FieldKind `yaml:"kind"`
	Options     []string  `yaml:"options,omitempty"`
	Hint        string    `yaml:"hint,omitempty"`
}

// UseCase is a scenario category with its form fields
type UseCase struct {
	ID     string  `yaml:"id"`
	Name   Text    `yaml:"name"`
	Icon   string  `yaml:"icon"`
	Fields []Field `yaml:"fields"`
}

// Template pre-fills a use-case form
type Template struct {
	ID          string          `yaml:"id"`
	Name        Text            `yaml:"name"`
	Description Text            `yaml:"description"`
	UseCaseID   string          `yaml:"use_case"`
	ModelID     string          `yaml:"model,omitempty"`
	Values      map[string]Text `yaml:"values"`
}

// Example is a few-shot request/response pair
type Example struct {
	Request  string `yaml:"request"`
	Response string `yaml:"response"`
}

// Catalog holds every static table. It is built once by Load, LoadFile or
// Parse and must not be mutated afterwards.
type Catalog struct {
	Models        []Model
	UseCases      []UseCase
	Templates     []Template
	Strategies    map[string]Strategy
	Phrases       map[string]Text
	Translations  map[Language]map[string]string
	ContextLabels map[Language]map[string]string
	Requirements  map[string]TextList
	Examples      map[string]map[Language][]Example
	Footer        Text
	UI            map[Language]map[string]string
}

type document struct {
	Models        []Model                           `yaml:"models"`
	UseCases      []UseCase                         `yaml:"use_cases"`
	Templates     []Template                        `yaml:"templates"`
	Strategies    map[string]strategyEntry          `yaml:"strategies"`
	Phrases       map[string]Text                   `yaml:"phrases"`
	Translations  map[Language]map[string]string    `yaml:"translations"`
	ContextLabels map[Language]map[string]string    `yaml:"context_labels"`
	Requirements  map[string]TextList               `yaml:"requirements"`
	Examples      map[string]map[Language][]Example `yaml:"examples"`
	Footer        Text                              `yaml:"footer"`
	UI            map[Language]map[string]string    `yaml:"ui"`
}

// Load returns the catalog compiled into the binary
func Load() (*Catalog, error) {
	return Parse(builtin)
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := &Catalog{
		Models:        doc.Models,
		UseCases:      doc.UseCases,
		Templates:     doc.Templates,
		Strategies:    make(map[string]Strategy, len(doc.Strategies)),
		Phrases:       doc.Phrases,
		Translations:  doc.Translations,
		ContextLabels: doc.ContextLabels,
		Requirements:  doc.Requirements,
		Examples:      doc.Examples,
		Footer:        doc.Footer,
		UI:            doc.UI,
	}

	var errs []error
	for id, entry := range doc.Strategies {
		s, err := entry.strategy()
		if err != nil {
			errs = append(errs, fmt.Errorf("strategy %s: %w", id, err))
			continue
		}
		cat.Strategies[id] = s
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks cross-table references. All violations are reported.
func (c *Catalog) Validate() error {
	var errs []error

	models := make(map[string]bool, len(c.Models))
	for _, m := range c.Models {
		if m.ID == "" {
			errs = append(errs, errors.New("model with empty id"))
			continue
		}
		if models[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate model id: %s", m.ID))
		}
		models[m.ID] = true
		errs = append(errs, checkLanguages("model "+m.ID+" description", keysOf(m.Description))...)
		errs = append(errs, checkLanguages("model "+m.ID+" strengths", keysOf(m.Strengths))...)
	}

	useCases := make(map[string]bool, len(c.UseCases))
	for _, uc := range c.UseCases {
		if useCases[uc.ID] {
			errs = append(errs, fmt.Errorf("duplicate use case id: %s", uc.ID))
		}
		useCases[uc.ID] = true
		errs = append(errs, checkLanguages("use case "+uc.ID+" name", keysOf(uc.Name))...)

		keys := make(map[string]bool, len(uc.Fields))
		for _, f := range uc.Fields {
			if keys[f.Key] {
				errs = append(errs, fmt.Errorf("use case %s: duplicate field key: %s", uc.ID, f.Key))
			}
			keys[f.Key] = true
			errs = append(errs, checkLanguages("use case "+uc.ID+": field "+f.Key+" label", keysOf(f.Label))...)
			switch f.Kind {
			case FieldText, FieldTextarea:
			case FieldSelect:
				if len(f.Options) == 0 {
					errs = append(errs, fmt.Errorf("use case %s: select field %s has no options", uc.ID, f.Key))
				}
			default:
				errs = append(errs, fmt.Errorf("use case %s: field %s has unknown kind %q", uc.ID, f.Key, f.Kind))
			}
		}
	}

	for _, t := range c.Templates {
		if !useCases[t.UseCaseID] {
			errs = append(errs, fmt.Errorf("template %s: unknown use case: %s", t.ID, t.UseCaseID))
		}
		if t.ModelID != "" && !models[t.ModelID] {
			errs = append(errs, fmt.Errorf("template %s: unknown model: %s", t.ID, t.ModelID))
		}
		errs = append(errs, checkLanguages("template "+t.ID+" name", keysOf(t.Name))...)
		errs = append(errs, checkLanguages("template "+t.ID+" description", keysOf(t.Description))...)
		for key, v := range t.Values {
			errs = append(errs, checkLanguages("template "+t.ID+" value "+key, keysOf(v))...)
		}
	}

	for id := range c.Strategies {
		if !models[id] {
			errs = append(errs, fmt.Errorf("strategy for unknown model: %s", id))
		}
	}

	errs = append(errs, checkLanguages("translations", keysOf(c.Translations))...)
	errs = append(errs, checkLanguages("context_labels", keysOf(c.ContextLabels))...)
	errs = append(errs, checkLanguages("footer", keysOf(c.Footer))...)
	errs = append(errs, checkLanguages("ui", keysOf(c.UI))...)
	for id, ex := range c.Examples {
		errs = append(errs, checkLanguages("examples "+id, keysOf(ex))...)
	}
	for key, p := range c.Phrases {
		errs = append(errs, checkLanguages("phrase "+key, keysOf(p))...)
	}
	for id, req := range c.Requirements {
		errs = append(errs, checkLanguages("requirements "+id, keysOf(req))...)
	}

	if _, ok := c.Translations[DefaultLanguage]; !ok {
		errs = append(errs, fmt.Errorf("translations missing default language %s", DefaultLanguage))
	}

	return errors.Join(errs...)
}

func keysOf[V any](m map[Language]V) []Language {
	out := make([]Language, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func checkLanguages(where string, langs []Language) []error {
	var errs []error
	for _, l := range langs {
		if !l.Supported() {
			errs = append(errs, fmt.Errorf("%s: unsupported language %q", where, l))
		}
	}
	return errs
}

// Model returns the model with id, or nil
func (c *Catalog) Model(id string) *Model {
	for i := range c.Models {
		if c.Models[i].ID == id {
			return &c.Models[i]
		}
	}
	return nil
}

// UseCase returns the use case with id, or nil
func (c *Catalog) UseCase(id string) *UseCase {
	for i := range c.UseCases {
		if c.UseCases[i].ID == id {
			return &c.UseCases[i]
		}
	}
	return nil
}

// Template returns the template with id, or nil
func (c *Catalog) Template(id string) *Template {
	for i := range c.Templates {
		if c.Templates[i].ID == id {
			return &c.Templates[i]
		}
	}
	return nil
}

// Strategy returns the instruction strategy for a model, or nil
func (c *Catalog) Strategy(modelID string) Strategy {
	return c.Strategies[modelID]
}

// Phrase returns a shared cross-model phrase in lang
func (c *Catalog) Phrase(key string, lang Language) string {
	return c.Phrases[key].In(lang)
}
