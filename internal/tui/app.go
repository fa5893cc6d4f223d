package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/rs/zerolog/log"

	"github.com/sant0-9/promptforge/internal/catalog"
	"github.com/sant0-9/promptforge/internal/config"
	"github.com/sant0-9/promptforge/internal/forge"
)

type view int

const (
	viewLanding view = iota
	viewForge
	viewTemplates
	viewResult
	viewHelp
)

const (
	// forgeDelay is how long the "Forging..." state is shown
	forgeDelay = 600 * time.Millisecond
	// statusTTL is how long transient status lines stay visible
	statusTTL = 2 * time.Second
)

type App struct {
	width    int
	height   int
	view     view
	prevView view
	state    *state
	st       styles
	quitting bool

	copy func(string) error
	save func(*config.Config) error

	// lang overrides the saved language for this session only. savedLang
	// is what gets persisted until the user picks a language themselves.
	lang      catalog.Language
	savedLang string
}

// Option customises an App
type Option func(*App)

// WithClipboard replaces the system clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(a *App) { a.copy = fn }
}

// WithSaver replaces how selections are persisted
func WithSaver(fn func(*config.Config) error) Option {
	return func(a *App) { a.save = fn }
}

// WithLanguage starts the session in lang without saving it as the
// preferred language
func WithLanguage(lang catalog.Language) Option {
	return func(a *App) { a.lang = lang }
}

func NewApp(engine *forge.Engine, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize(engine.Catalog())

	a := &App{
		view: viewLanding,
		copy: clipboard.WriteAll,
		save: (*config.Config).Save,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.lang.Supported() && string(a.lang) != cfg.Language {
		a.savedLang = cfg.Language
		cfg.Language = string(a.lang)
	}

	a.state = newState(engine, cfg)
	a.st = newStyles(cfg.Theme)
	return a
}

type generatedMsg struct {
	seq    int
	result forge.Result
}
type copyResultMsg struct{ err error }
type clearStatusMsg struct{ seq int }
type saveErrorMsg struct{ error }

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutResult()

	case spinner.TickMsg:
		if !a.state.generating {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case generatedMsg:
		if msg.seq != a.state.genSeq {
			return a, nil
		}
		a.state.generating = false
		a.state.result = msg.result
		a.layoutResult()
		a.state.viewport.GotoTop()
		a.view = viewResult
		log.Info().
			Str("model", a.state.config.Model).
			Str("use_case", a.state.config.UseCase).
			Str("lang", a.state.config.Language).
			Int("tokens", msg.result.Tokens).
			Msg("prompt generated")
		return a, nil

	case copyResultMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("copy to clipboard failed")
			return a, a.setStatus(a.state.ui("copy_failed")+": "+msg.err.Error(), true)
		}
		return a, a.setStatus(a.state.ui("copied"), false)

	case clearStatusMsg:
		if msg.seq == a.state.statusSeq {
			a.state.status = ""
			a.state.statusErr = false
		}
		return a, nil

	case saveErrorMsg:
		log.Warn().Err(msg.error).Msg("could not save selections")
		return a, nil
	}

	// Forward everything else to the focused input
	switch a.view {
	case viewForge:
		if a.state.focus == panelFields && len(a.state.fields) > 0 {
			cmds = append(cmds, a.state.fields[a.state.fieldIndex].Update(msg))
		}
	case viewResult:
		var cmd tea.Cmd
		a.state.viewport, cmd = a.state.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey processes a key press. It reports whether the key was consumed;
// unconsumed keys are forwarded to the focused input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		return a.quit(), true
	}

	if key.Matches(msg, keys.Help) && a.view != viewHelp {
		a.prevView = a.view
		a.view = viewHelp
		return nil, true
	}

	switch a.view {
	case viewLanding:
		switch {
		case key.Matches(msg, keys.Back):
			return a.quit(), true
		case key.Matches(msg, keys.Enter):
			a.view = viewForge
			return nil, true
		}
		return nil, true

	case viewHelp:
		if key.Matches(msg, keys.Back, keys.Enter) {
			a.view = a.prevView
		}
		return nil, true

	case viewTemplates:
		return a.handleTemplatesKey(msg), true

	case viewResult:
		return a.handleResultKey(msg)

	case viewForge:
		return a.handleForgeKey(msg)
	}

	return nil, false
}

func (a *App) handleForgeKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state

	switch {
	case key.Matches(msg, keys.Back):
		a.blurField()
		s.cancelGeneration()
		a.view = viewLanding
		return a.persist(), true
	case key.Matches(msg, keys.Generate):
		return a.generate(), true
	case key.Matches(msg, keys.Templates):
		a.blurField()
		s.cancelGeneration()
		a.view = viewTemplates
		return nil, true
	case key.Matches(msg, keys.Theme):
		return a.toggleTheme(), true
	case key.Matches(msg, keys.Tab):
		return a.moveFocus(1), true
	case key.Matches(msg, keys.ShiftTab):
		return a.moveFocus(-1), true
	}

	if s.focus == panelFields {
		if len(s.fields) == 0 {
			return nil, false
		}
		f := s.fields[s.fieldIndex]
		textarea := f.def.Kind == catalog.FieldTextarea
		switch msg.Type {
		case tea.KeyUp:
			if !textarea {
				return a.moveFocus(-1), true
			}
		case tea.KeyDown:
			if !textarea {
				return a.moveFocus(1), true
			}
		case tea.KeyLeft:
			if f.def.Kind == catalog.FieldSelect {
				f.Cycle(-1)
				s.syncValues()
				return nil, true
			}
		case tea.KeyRight:
			if f.def.Kind == catalog.FieldSelect {
				f.Cycle(1)
				s.syncValues()
				return nil, true
			}
		case tea.KeyEnter:
			if !textarea {
				return a.generate(), true
			}
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Up, keys.Left):
		return a.changeSelection(-1), true
	case key.Matches(msg, keys.Down, keys.Right):
		return a.changeSelection(1), true
	case key.Matches(msg, keys.Enter):
		return a.generate(), true
	}
	return nil, true
}

func (a *App) handleTemplatesKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	n := len(s.resolved.Templates)

	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForge
	case key.Matches(msg, keys.Up):
		if s.templateIndex > 0 {
			s.templateIndex--
		}
	case key.Matches(msg, keys.Down):
		if s.templateIndex < n-1 {
			s.templateIndex++
		}
	case key.Matches(msg, keys.Enter):
		if n > 0 {
			return a.applyTemplate(s.resolved.Templates[s.templateIndex])
		}
	}
	return nil
}

func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back, keys.Edit):
		a.view = viewForge
		return nil, true
	case key.Matches(msg, keys.Copy):
		return a.copyResult(), true
	case key.Matches(msg, keys.Generate):
		return a.generate(), true
	case key.Matches(msg, keys.Theme):
		return a.toggleTheme(), true
	}
	return nil, false
}

// moveFocus walks the panels and then the form fields, wrapping around
func (a *App) moveFocus(delta int) tea.Cmd {
	s := a.state
	count := int(panelFields) + len(s.fields)
	pos := int(s.focus)
	if s.focus == panelFields {
		pos += s.fieldIndex
	}
	pos = ((pos+delta)%count + count) % count

	a.blurField()
	if pos < int(panelFields) {
		s.focus = panel(pos)
		return nil
	}
	s.focus = panelFields
	s.fieldIndex = pos - int(panelFields)
	return s.fields[s.fieldIndex].Focus()
}

func (a *App) blurField() {
	s := a.state
	if s.focus == panelFields && s.fieldIndex < len(s.fields) {
		s.fields[s.fieldIndex].Blur()
	}
	s.syncValues()
}

// changeSelection moves the selection of the focused panel
func (a *App) changeSelection(delta int) tea.Cmd {
	s := a.state

	switch s.focus {
	case panelLanguage:
		n := len(catalog.Languages)
		s.langIndex = ((s.langIndex+delta)%n + n) % n
		s.config.Language = string(catalog.Languages[s.langIndex].ID)
		a.savedLang = ""
		s.resolve()
		s.selectModel(s.config.Model)
		s.selectUseCase(s.config.UseCase)
		s.resetForm()

	case panelModel:
		n := len(s.modelOrder)
		if n == 0 {
			return nil
		}
		s.modelIndex = ((s.modelIndex+delta)%n + n) % n
		s.config.Model = s.modelOrder[s.modelIndex].ID

	case panelUseCase:
		n := len(s.resolved.UseCases)
		if n == 0 {
			return nil
		}
		s.useCase = ((s.useCase+delta)%n + n) % n
		s.config.UseCase = s.resolved.UseCases[s.useCase].ID
		s.resetForm()
	}

	return a.persist()
}

func (a *App) applyTemplate(t catalog.ResolvedTemplate) tea.Cmd {
	s := a.state

	s.selectUseCase(t.UseCaseID)
	if t.ModelID != "" {
		s.selectModel(t.ModelID)
	}
	s.fields = buildForm(s.activeUseCase(), t.Values, fieldWidth)
	s.syncValues()
	s.cancelGeneration()

	log.Debug().Str("template", t.ID).Msg("template applied")

	a.view = viewForge
	s.focus = panelFields
	s.fieldIndex = 0
	var focus tea.Cmd
	if len(s.fields) > 0 {
		focus = s.fields[0].Focus()
	}
	return tea.Batch(focus, a.persist())
}

func (a *App) generate() tea.Cmd {
	s := a.state
	if s.generating {
		return nil
	}
	req := s.request()
	s.generating = true
	s.genSeq++
	seq := s.genSeq

	engine := s.engine
	return tea.Batch(
		s.spinner.Tick,
		a.persist(),
		tea.Tick(forgeDelay, func(time.Time) tea.Msg {
			return generatedMsg{seq: seq, result: engine.Preview(req)}
		}),
	)
}

func (a *App) copyResult() tea.Cmd {
	prompt := a.state.result.Prompt
	if prompt == "" {
		return nil
	}
	write := a.copy
	return func() tea.Msg {
		return copyResultMsg{err: write(prompt)}
	}
}

func (a *App) toggleTheme() tea.Cmd {
	cfg := a.state.config
	if cfg.Theme == config.ThemeDark {
		cfg.Theme = config.ThemeLight
	} else {
		cfg.Theme = config.ThemeDark
	}
	a.st = newStyles(cfg.Theme)
	return a.persist()
}

func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	s := a.state
	s.statusSeq++
	s.status = text
	s.statusErr = isErr
	seq := s.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// persist saves a snapshot of the selections in the background
func (a *App) persist() tea.Cmd {
	snapshot := a.snapshot()
	save := a.save
	return func() tea.Msg {
		if err := save(snapshot); err != nil {
			return saveErrorMsg{err}
		}
		return nil
	}
}

func (a *App) snapshot() *config.Config {
	a.state.syncValues()
	cfg := *a.state.config
	if a.savedLang != "" {
		cfg.Language = a.savedLang
	}
	cfg.FormValues = make(map[string]string, len(a.state.config.FormValues))
	for k, v := range a.state.config.FormValues {
		cfg.FormValues[k] = v
	}
	return &cfg
}

func (a *App) quit() tea.Cmd {
	if err := a.save(a.snapshot()); err != nil {
		log.Warn().Err(err).Msg("could not save selections")
	}
	a.quitting = true
	return tea.Quit
}

// layoutResult sizes the result viewport and re-wraps the prompt
func (a *App) layoutResult() {
	s := a.state
	width := min(90, a.width-4)
	if width < 20 {
		width = 20
	}
	height := a.height - 8
	if height < 5 {
		height = 5
	}
	s.viewport.Width = width
	s.viewport.Height = height
	if s.result.Prompt != "" {
		inner := width - 4
		s.viewport.SetContent(wrap.String(wordwrap.String(s.result.Prompt, inner), inner))
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewLanding:
		return a.renderLanding()
	case viewForge:
		return a.renderForge()
	case viewTemplates:
		return a.renderTemplates()
	case viewResult:
		return a.renderResult()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderLanding()
	}
}
