package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/promptforge/internal/catalog"
	"github.com/sant0-9/promptforge/internal/config"
	"github.com/sant0-9/promptforge/internal/forge"
)

type recorder struct {
	copied []string
	saved  []*config.Config
	err    error
}

func newTestApp(t *testing.T, cfg *config.Config, opts ...Option) (*App, *recorder) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	rec := &recorder{}
	app := NewApp(forge.New(cat), cfg, append([]Option{
		WithClipboard(func(s string) error {
			rec.copied = append(rec.copied, s)
			return rec.err
		}),
		WithSaver(func(c *config.Config) error {
			rec.saved = append(rec.saved, c)
			return nil
		}),
	}, opts...)...)
	app.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return app, rec
}

func press(a *App, k tea.KeyType) {
	a.Update(tea.KeyMsg{Type: k})
}

func typeRunes(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewAppNormalizesConfig(t *testing.T) {
	cfg := &config.Config{Language: "xx", Model: "nope", UseCase: "nope", Theme: "neon"}
	app, _ := newTestApp(t, cfg)

	assert.Equal(t, "en", app.state.config.Language)
	assert.Equal(t, "gpt-4o", app.state.config.Model)
	assert.Equal(t, "coding", app.state.config.UseCase)
	assert.Equal(t, viewLanding, app.view)
	require.NotNil(t, app.state.activeModel())
	assert.Equal(t, "gpt-4o", app.state.activeModel().ID)
}

func TestNewAppRestoresFormValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FormValues = map[string]string{"language": "Go", "level": "Senior", "unknown": "x"}
	app, _ := newTestApp(t, cfg)

	assert.Equal(t, map[string]string{"language": "Go", "level": "Senior"}, formValues(app.state.fields))
}

func TestLandingEnter(t *testing.T) {
	app, _ := newTestApp(t, nil)

	press(app, tea.KeyEnter)
	assert.Equal(t, viewForge, app.view)

	press(app, tea.KeyEsc)
	assert.Equal(t, viewLanding, app.view)
}

func TestHelpReturnsToPreviousView(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)

	press(app, tea.KeyF1)
	assert.Equal(t, viewHelp, app.view)

	press(app, tea.KeyEsc)
	assert.Equal(t, viewForge, app.view)
}

func TestTabWalksPanelsAndFields(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	require.Equal(t, panelLanguage, app.state.focus)

	press(app, tea.KeyTab)
	assert.Equal(t, panelModel, app.state.focus)
	press(app, tea.KeyTab)
	assert.Equal(t, panelUseCase, app.state.focus)
	press(app, tea.KeyTab)
	assert.Equal(t, panelFields, app.state.focus)
	assert.Equal(t, 0, app.state.fieldIndex)

	press(app, tea.KeyShiftTab)
	assert.Equal(t, panelUseCase, app.state.focus)

	// Wraps from the first panel to the last field
	press(app, tea.KeyShiftTab)
	press(app, tea.KeyShiftTab)
	press(app, tea.KeyShiftTab)
	assert.Equal(t, panelFields, app.state.focus)
	assert.Equal(t, len(app.state.fields)-1, app.state.fieldIndex)
}

func TestTypingFillsField(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.state.focus = panelUseCase
	press(app, tea.KeyTab)
	require.Equal(t, panelFields, app.state.focus)

	// "j" and "k" are text here, not navigation
	typeRunes(app, "Go jk")
	app.blurField()

	assert.Equal(t, "Go jk", app.state.config.FormValues["language"])
}

func TestModelChange(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.state.focus = panelModel
	before := app.state.config.Model

	press(app, tea.KeyDown)
	assert.NotEqual(t, before, app.state.config.Model)
	assert.Equal(t, app.state.activeModel().ID, app.state.config.Model)

	press(app, tea.KeyUp)
	assert.Equal(t, before, app.state.config.Model)
}

func TestUseCaseChangeResetsForm(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.state.fields[0].SetValue("Rust")
	app.state.syncValues()
	app.state.result = forge.Result{Prompt: "old"}
	require.NotEmpty(t, app.state.config.FormValues)

	app.state.focus = panelUseCase
	press(app, tea.KeyDown)

	assert.Equal(t, "writing", app.state.config.UseCase)
	assert.Empty(t, app.state.config.FormValues)
	assert.Empty(t, app.state.result.Prompt)

	var keys []string
	for _, f := range app.state.fields {
		keys = append(keys, f.def.Key)
	}
	assert.Equal(t, []string{"topic", "audience", "tone", "extraInstructions"}, keys)
}

func TestLanguageChangeResetsForm(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.state.fields[0].SetValue("Rust")
	app.state.syncValues()

	app.state.focus = panelLanguage
	press(app, tea.KeyDown)

	assert.Equal(t, "it", app.state.config.Language)
	assert.Equal(t, catalog.Italian, app.state.resolved.Language)
	assert.Empty(t, app.state.config.FormValues)
	assert.Equal(t, "gpt-4o", app.state.config.Model)
	assert.Equal(t, "coding", app.state.config.UseCase)

	// Wraps backwards past English
	press(app, tea.KeyUp)
	press(app, tea.KeyUp)
	assert.Equal(t, "de", app.state.config.Language)
}

func TestApplyTemplate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "de"
	cfg.UseCase = "writing"
	app, _ := newTestApp(t, cfg)
	press(app, tea.KeyEnter)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, viewTemplates, app.view)

	idx := -1
	for i, tpl := range app.state.resolved.Templates {
		if tpl.ID == "code-review" {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	for app.state.templateIndex < idx {
		press(app, tea.KeyDown)
	}
	press(app, tea.KeyEnter)

	assert.Equal(t, viewForge, app.view)
	assert.Equal(t, "coding", app.state.config.UseCase)
	assert.Equal(t, "gpt-4.1", app.state.config.Model)
	assert.Equal(t, "gpt-4.1", app.state.activeModel().ID)
	assert.Equal(t, panelFields, app.state.focus)
	assert.Equal(t, app.state.resolved.Templates[idx].Values, app.state.config.FormValues)
}

func TestTemplatesEscape(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	press(app, tea.KeyUp)
	assert.Equal(t, 0, app.state.templateIndex)

	press(app, tea.KeyEsc)
	assert.Equal(t, viewForge, app.view)
	assert.Equal(t, "coding", app.state.config.UseCase)
}

func TestGenerate(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.state.fields[0].SetValue("Go")

	cmd := app.generate()
	require.NotNil(t, cmd)
	assert.True(t, app.state.generating)
	assert.Nil(t, app.generate(), "generate while forging is a no-op")

	res := app.state.engine.Preview(app.state.request())
	assert.Contains(t, res.Prompt, "Language: Go")

	app.Update(generatedMsg{seq: app.state.genSeq, result: res})
	assert.False(t, app.state.generating)
	assert.Equal(t, viewResult, app.view)
	assert.Equal(t, res, app.state.result)
	assert.NotEmpty(t, app.state.viewport.View())

	press(app, tea.KeyEsc)
	assert.Equal(t, viewForge, app.view)
	assert.Equal(t, "Go", app.state.fields[0].Value(), "editing keeps the form")
}

func TestStaleGenerationDropped(t *testing.T) {
	t.Run("scenario changed", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		press(app, tea.KeyEnter)
		app.state.fields[0].SetValue("Go")

		require.NotNil(t, app.generate())
		stale := generatedMsg{
			seq:    app.state.genSeq,
			result: app.state.engine.Preview(app.state.request()),
		}

		app.state.focus = panelUseCase
		app.changeSelection(1)
		assert.False(t, app.state.generating)
		require.NotEqual(t, "coding", app.state.config.UseCase)

		app.Update(stale)
		assert.Equal(t, viewForge, app.view)
		assert.Empty(t, app.state.result.Prompt)
		assert.NotNil(t, app.generate(), "a new generation can start")
	})

	t.Run("back to landing", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		press(app, tea.KeyEnter)

		require.NotNil(t, app.generate())
		stale := generatedMsg{
			seq:    app.state.genSeq,
			result: app.state.engine.Preview(app.state.request()),
		}

		press(app, tea.KeyEsc)
		require.Equal(t, viewLanding, app.view)

		app.Update(stale)
		assert.Equal(t, viewLanding, app.view)
		assert.Empty(t, app.state.result.Prompt)
	})
}

func TestCopy(t *testing.T) {
	app, rec := newTestApp(t, nil)
	assert.Nil(t, app.copyResult(), "nothing to copy")

	app.state.result = forge.Result{Prompt: "hello"}
	msg := app.copyResult()()
	assert.Equal(t, []string{"hello"}, rec.copied)

	app.Update(msg)
	assert.Equal(t, app.state.ui("copied"), app.state.status)
	assert.False(t, app.state.statusErr)
}

func TestCopyFailure(t *testing.T) {
	app, rec := newTestApp(t, nil)
	rec.err = errors.New("no clipboard")
	app.state.result = forge.Result{Prompt: "hello"}

	app.Update(app.copyResult()())
	assert.True(t, app.state.statusErr)
	assert.True(t, strings.HasSuffix(app.state.status, "no clipboard"))
	assert.Contains(t, app.renderStatus("hints"), "no clipboard")
}

func TestClearStatusRespectsSequence(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app.setStatus("first", false)
	app.setStatus("second", false)

	app.Update(clearStatusMsg{seq: 1})
	assert.Equal(t, "second", app.state.status)

	app.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, app.state.status)
	assert.Contains(t, app.renderStatus("hints"), "hints")
}

func TestToggleTheme(t *testing.T) {
	app, _ := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	require.Equal(t, config.ThemeLight, app.state.config.Theme)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, config.ThemeDark, app.state.config.Theme)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, config.ThemeLight, app.state.config.Theme)
}

func TestPersistSavesSnapshot(t *testing.T) {
	app, rec := newTestApp(t, nil)
	app.state.fields[0].SetValue("Go")

	msg := app.persist()()
	assert.Nil(t, msg)
	require.Len(t, rec.saved, 1)
	assert.Equal(t, "Go", rec.saved[0].FormValues["language"])

	// Later edits don't leak into the saved copy
	app.state.config.FormValues["language"] = "Rust"
	assert.Equal(t, "Go", rec.saved[0].FormValues["language"])
}

func TestQuitSaves(t *testing.T) {
	app, rec := newTestApp(t, nil)
	press(app, tea.KeyEnter)
	app.state.fields[0].SetValue("Zig")

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, app.quitting)
	require.Len(t, rec.saved, 1)
	assert.Equal(t, "Zig", rec.saved[0].FormValues["language"])
	assert.Empty(t, app.View())
}

func TestLanguageOverrideNotSaved(t *testing.T) {
	t.Run("kept out of snapshots", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Language = "fr"
		app, rec := newTestApp(t, cfg, WithLanguage(catalog.German))

		assert.Equal(t, "de", app.state.config.Language)
		assert.Equal(t, catalog.German, app.state.request().Language)

		app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.Len(t, rec.saved, 1)
		assert.Equal(t, "fr", rec.saved[0].Language)
	})

	t.Run("own choice is saved", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Language = "fr"
		app, rec := newTestApp(t, cfg, WithLanguage(catalog.German))
		press(app, tea.KeyEnter)

		app.state.focus = panelLanguage
		app.changeSelection(-1)
		require.Equal(t, "fr", app.state.config.Language)
		app.changeSelection(-1)
		require.Equal(t, "it", app.state.config.Language)

		app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotEmpty(t, rec.saved)
		assert.Equal(t, "it", rec.saved[len(rec.saved)-1].Language)
	})

	t.Run("unsupported ignored", func(t *testing.T) {
		app, _ := newTestApp(t, nil, WithLanguage("xx"))
		assert.Equal(t, "en", app.state.config.Language)
		assert.Empty(t, app.savedLang)
	})
}

func TestLandingAndHelpContent(t *testing.T) {
	app, _ := newTestApp(t, nil)

	landing := app.View()
	assert.Contains(t, landing, app.state.ui("how_title"))
	assert.Contains(t, landing, app.state.ui("step_1_title"))
	assert.Contains(t, landing, app.state.ui("step_4_title"))

	app.view = viewHelp
	help := app.View()
	assert.Contains(t, help, app.state.ui("faq_title"))
	assert.Contains(t, help, app.state.ui("faq_1_q"))
	assert.Contains(t, help, "Is PromptForge free?")
}

func TestViewsRender(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.state.result = app.state.engine.Preview(app.state.request())
	app.layoutResult()

	for _, v := range []view{viewLanding, viewForge, viewTemplates, viewResult, viewHelp} {
		app.view = v
		assert.NotEmpty(t, app.View())
	}
}

func TestCycle(t *testing.T) {
	f := newFormField(catalog.ResolvedField{
		Key:     "tone",
		Kind:    catalog.FieldSelect,
		Options: []string{"Formal", "Casual"},
	}, fieldWidth)

	assert.Equal(t, "", f.Value())
	f.Cycle(1)
	assert.Equal(t, "Formal", f.Value())
	f.Cycle(1)
	assert.Equal(t, "Casual", f.Value())
	f.Cycle(1)
	assert.Equal(t, "", f.Value())
	f.Cycle(-1)
	assert.Equal(t, "Casual", f.Value())

	f.SetValue("Formal")
	assert.Equal(t, "Formal", f.Value())
	f.SetValue("Shouty")
	assert.Equal(t, "", f.Value())
}

func TestFormValuesSkipsEmpty(t *testing.T) {
	uc := &catalog.ResolvedUseCase{
		ID: "x",
		Fields: []catalog.ResolvedField{
			{Key: "a", Kind: catalog.FieldText},
			{Key: "b", Kind: catalog.FieldTextarea},
		},
	}
	fields := buildForm(uc, map[string]string{"a": "1"}, fieldWidth)
	assert.Equal(t, map[string]string{"a": "1"}, formValues(fields))
	assert.Nil(t, buildForm(nil, nil, fieldWidth))
}
