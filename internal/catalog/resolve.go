package catalog

// ResolvedModel is a Model with every string in one language
type ResolvedModel struct {
	ID          string
	Name        string
	Provider    string
	Description string
	Strengths   []string
}

// ResolvedField is a Field with its label in one language
type ResolvedField struct {
	Key         string
	Label       string
	Placeholder string
	Kind        FieldKind
	Options     []string
	Hint        string
}

// ResolvedUseCase is a UseCase with every string in one language
type ResolvedUseCase struct {
	ID     string
	Name   string
	Icon   string
	Fields []ResolvedField
}

// ResolvedTemplate is a Template with every string in one language
type ResolvedTemplate struct {
	ID          string
	Name        string
	Description string
	UseCaseID   string
	ModelID     string
	Values      map[string]string
}

// TranslationSet holds the section labels used by the assembler
type TranslationSet struct {
	Core          string
	Context       string
	Task          string
	User          string
	Gen           string
	Divider       string
	FewShotHeader string
	UserRequest   string
	IdealResponse string
	Awaiting      string
	Extra         string
}

// Resolved is the catalog seen through one language
type Resolved struct {
	Language     Language
	Models       []ResolvedModel
	UseCases     []ResolvedUseCase
	Templates    []ResolvedTemplate
	Translations TranslationSet
	UI           map[string]string
}

// Resolve returns display-ready tables for lang. Missing strings fall back
// to the default language one value at a time.
func (c *Catalog) Resolve(lang Language) *Resolved {
	r := &Resolved{
		Language:     lang,
		Models:       make([]ResolvedModel, 0, len(c.Models)),
		UseCases:     make([]ResolvedUseCase, 0, len(c.UseCases)),
		Templates:    make([]ResolvedTemplate, 0, len(c.Templates)),
		Translations: c.TranslationSet(lang),
		UI:           c.uiStrings(lang),
	}

	for _, m := range c.Models {
		r.Models = append(r.Models, m.resolve(lang))
	}
	for _, uc := range c.UseCases {
		r.UseCases = append(r.UseCases, uc.resolve(lang))
	}
	for _, t := range c.Templates {
		r.Templates = append(r.Templates, t.resolve(lang))
	}
	return r
}

// TranslationSet returns the section labels for lang
func (c *Catalog) TranslationSet(lang Language) TranslationSet {
	get := func(key string) string { return Lookup(c.Translations, lang, key) }
	return TranslationSet{
		Core:          get("core"),
		Context:       get("context"),
		Task:          get("task"),
		User:          get("user"),
		Gen:           get("gen"),
		Divider:       get("divider"),
		FewShotHeader: get("few_shot_header"),
		UserRequest:   get("user_request"),
		IdealResponse: get("ideal_response"),
		Awaiting:      get("awaiting"),
		Extra:         get("extra"),
	}
}

// ContextLabel returns a task-context label for lang
func (c *Catalog) ContextLabel(lang Language, key string) string {
	return Lookup(c.ContextLabels, lang, key)
}

// UIString returns a presentation label for lang
func (c *Catalog) UIString(lang Language, key string) string {
	return Lookup(c.UI, lang, key)
}

func (c *Catalog) uiStrings(lang Language) map[string]string {
	out := make(map[string]string, len(c.UI[DefaultLanguage]))
	for key := range c.UI[DefaultLanguage] {
		out[key] = c.UIString(lang, key)
	}
	for key, v := range c.UI[lang] {
		out[key] = v
	}
	return out
}

// ProviderGroup is a provider with its models, in catalog order
type ProviderGroup struct {
	Provider string
	Models   []ResolvedModel
}

// ModelsByProvider groups resolved models by provider, keeping the order in
// which providers first appear. Models without a provider go to "Other".
func (r *Resolved) ModelsByProvider() []ProviderGroup {
	var groups []ProviderGroup
	index := make(map[string]int)
	for _, m := range r.Models {
		p := m.Provider
		if p == "" {
			p = "Other"
		}
		i, ok := index[p]
		if !ok {
			i = len(groups)
			index[p] = i
			groups = append(groups, ProviderGroup{Provider: p})
		}
		groups[i].Models = append(groups[i].Models, m)
	}
	return groups
}

// UseCase returns the resolved use case with id, or nil
func (r *Resolved) UseCase(id string) *ResolvedUseCase {
	for i := range r.UseCases {
		if r.UseCases[i].ID == id {
			return &r.UseCases[i]
		}
	}
	return nil
}

// Model returns the resolved model with id, or nil
func (r *Resolved) Model(id string) *ResolvedModel {
	for i := range r.Models {
		if r.Models[i].ID == id {
			return &r.Models[i]
		}
	}
	return nil
}

// Template returns the resolved template with id, or nil
func (r *Resolved) Template(id string) *ResolvedTemplate {
	for i := range r.Templates {
		if r.Templates[i].ID == id {
			return &r.Templates[i]
		}
	}
	return nil
}

func (m Model) resolve(lang Language) ResolvedModel {
	return ResolvedModel{
		ID:          m.ID,
		Name:        m.Name,
		Provider:    m.Provider,
		Description: m.Description.In(lang),
		Strengths:   m.Strengths.In(lang),
	}
}

func (uc UseCase) resolve(lang Language) ResolvedUseCase {
	fields := make([]ResolvedField, 0, len(uc.Fields))
	for _, f := range uc.Fields {
		fields = append(fields, ResolvedField{
			Key:         f.Key,
			Label:       f.Label.In(lang),
			Placeholder: f.Placeholder,
			Kind:        f.Kind,
			Options:     f.Options,
			Hint:        f.Hint,
		})
	}
	return ResolvedUseCase{
		ID:     uc.ID,
		Name:   uc.Name.In(lang),
		Icon:   uc.Icon,
		Fields: fields,
	}
}

func (t Template) resolve(lang Language) ResolvedTemplate {
	values := make(map[string]string, len(t.Values))
	for k, v := range t.Values {
		values[k] = v.In(lang)
	}
	return ResolvedTemplate{
		ID:          t.ID,
		Name:        t.Name.In(lang),
		Description: t.Description.In(lang),
		UseCaseID:   t.UseCaseID,
		ModelID:     t.ModelID,
		Values:      values,
	}
}
