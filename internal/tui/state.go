package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sant0-9/promptforge/internal/catalog"
	"github.com/sant0-9/promptforge/internal/config"
	"github.com/sant0-9/promptforge/internal/forge"
)

// panel is the focused area of the forge view
type panel int

const (
	panelLanguage panel = iota
	panelModel
	panelUseCase
	panelFields
)

const fieldWidth = 48

type state struct {
	// Config
	config   *config.Config
	engine   *forge.Engine
	resolved *catalog.Resolved

	// Forge view
	focus      panel
	langIndex  int
	modelIndex int // index into modelOrder
	modelOrder []catalog.ResolvedModel
	useCase    int
	fields     []*formField
	fieldIndex int

	// Templates view
	templateIndex int

	// Result
	generating bool
	genSeq     int // bumped per generation; stale results are dropped
	result     forge.Result
	spinner    spinner.Model
	viewport   viewport.Model

	// Transient status line
	status    string
	statusErr bool
	statusSeq int
}

func newState(engine *forge.Engine, cfg *config.Config) *state {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := &state{
		config:   cfg,
		engine:   engine,
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}
	s.resolve()
	s.selectModel(cfg.Model)
	s.selectUseCase(cfg.UseCase)
	s.fields = buildForm(s.activeUseCase(), cfg.FormValues, fieldWidth)
	return s
}

// resolve re-reads the catalog in the configured language
func (s *state) resolve() {
	lang := s.config.Lang()
	s.resolved = s.engine.Catalog().Resolve(lang)

	s.langIndex = 0
	for i, info := range catalog.Languages {
		if info.ID == lang {
			s.langIndex = i
		}
	}

	s.modelOrder = s.modelOrder[:0]
	for _, g := range s.resolved.ModelsByProvider() {
		s.modelOrder = append(s.modelOrder, g.Models...)
	}
}

func (s *state) selectModel(id string) {
	for i, m := range s.modelOrder {
		if m.ID == id {
			s.modelIndex = i
			s.config.Model = id
			return
		}
	}
}

func (s *state) selectUseCase(id string) {
	for i, uc := range s.resolved.UseCases {
		if uc.ID == id {
			s.useCase = i
			s.config.UseCase = id
			return
		}
	}
}

func (s *state) activeModel() *catalog.ResolvedModel {
	if s.modelIndex < 0 || s.modelIndex >= len(s.modelOrder) {
		return nil
	}
	return &s.modelOrder[s.modelIndex]
}

func (s *state) activeUseCase() *catalog.ResolvedUseCase {
	if s.useCase < 0 || s.useCase >= len(s.resolved.UseCases) {
		return nil
	}
	return &s.resolved.UseCases[s.useCase]
}

// resetForm clears all field values and the last result
func (s *state) resetForm() {
	s.config.FormValues = map[string]string{}
	s.fields = buildForm(s.activeUseCase(), nil, fieldWidth)
	s.fieldIndex = 0
	s.result = forge.Result{}
	s.cancelGeneration()
}

// cancelGeneration discards a pending generation
func (s *state) cancelGeneration() {
	s.genSeq++
	s.generating = false
}

// syncValues copies the form inputs into the config
func (s *state) syncValues() {
	s.config.FormValues = formValues(s.fields)
}

func (s *state) request() forge.Request {
	s.syncValues()
	values := make(map[string]string, len(s.config.FormValues))
	for k, v := range s.config.FormValues {
		values[k] = v
	}
	return forge.Request{
		ModelID:   s.config.Model,
		UseCaseID: s.config.UseCase,
		Values:    values,
		Language:  s.config.Lang(),
	}
}

// ui returns a presentation label in the current language
func (s *state) ui(key string) string {
	if v := s.resolved.UI[key]; v != "" {
		return v
	}
	return key
}
