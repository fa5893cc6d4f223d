package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/promptforge/internal/catalog"
)

// formField is one editable input of the active use case
type formField struct {
	def    catalog.ResolvedField
	input  textinput.Model
	area   textarea.Model
	option int // selected option for select fields, -1 when unset
}

func newFormField(def catalog.ResolvedField, width int) *formField {
	f := &formField{def: def, option: -1}

	switch def.Kind {
	case catalog.FieldTextarea:
		f.area = textarea.New()
		f.area.Placeholder = def.Placeholder
		f.area.ShowLineNumbers = false
		f.area.CharLimit = 4000
		f.area.SetWidth(width)
		f.area.SetHeight(3)
	case catalog.FieldSelect:
	default:
		f.input = textinput.New()
		f.input.Placeholder = def.Placeholder
		f.input.CharLimit = 200
		f.input.Width = width
	}
	return f
}

func (f *formField) Value() string {
	switch f.def.Kind {
	case catalog.FieldTextarea:
		return f.area.Value()
	case catalog.FieldSelect:
		if f.option < 0 || f.option >= len(f.def.Options) {
			return ""
		}
		return f.def.Options[f.option]
	default:
		return f.input.Value()
	}
}

// SetValue sets the field. Select fields accept only one of their options;
// anything else leaves them unset.
func (f *formField) SetValue(v string) {
	switch f.def.Kind {
	case catalog.FieldTextarea:
		f.area.SetValue(v)
	case catalog.FieldSelect:
		f.option = -1
		for i, opt := range f.def.Options {
			if opt == v {
				f.option = i
			}
		}
	default:
		f.input.SetValue(v)
	}
}

// Cycle moves a select field through unset and its options
func (f *formField) Cycle(delta int) {
	if f.def.Kind != catalog.FieldSelect || len(f.def.Options) == 0 {
		return
	}
	n := len(f.def.Options) + 1
	f.option = ((f.option+1+delta)%n+n)%n - 1
}

func (f *formField) Focus() tea.Cmd {
	switch f.def.Kind {
	case catalog.FieldTextarea:
		return f.area.Focus()
	case catalog.FieldSelect:
		return nil
	default:
		return f.input.Focus()
	}
}

func (f *formField) Blur() {
	switch f.def.Kind {
	case catalog.FieldTextarea:
		f.area.Blur()
	case catalog.FieldSelect:
	default:
		f.input.Blur()
	}
}

func (f *formField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.def.Kind {
	case catalog.FieldTextarea:
		f.area, cmd = f.area.Update(msg)
	case catalog.FieldSelect:
	default:
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *formField) View(st styles, focused bool) string {
	switch f.def.Kind {
	case catalog.FieldTextarea:
		return f.area.View()
	case catalog.FieldSelect:
		v := f.Value()
		if v == "" {
			v = st.subtitle.Render(f.def.Placeholder)
		}
		if focused {
			return st.selected.Render("< ") + v + st.selected.Render(" >")
		}
		return "  " + v
	default:
		return f.input.View()
	}
}

// buildForm creates inputs for a use case and fills them from values
func buildForm(uc *catalog.ResolvedUseCase, values map[string]string, width int) []*formField {
	if uc == nil {
		return nil
	}
	fields := make([]*formField, 0, len(uc.Fields))
	for _, def := range uc.Fields {
		f := newFormField(def, width)
		f.SetValue(values[def.Key])
		fields = append(fields, f)
	}
	return fields
}

// formValues collects the non-empty field values
func formValues(fields []*formField) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if v := f.Value(); v != "" {
			out[f.def.Key] = v
		}
	}
	return out
}
