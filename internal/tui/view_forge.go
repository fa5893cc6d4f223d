package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptforge/internal/catalog"
)

func (a *App) renderForge() string {
	s := a.state
	var b strings.Builder

	// Header
	title := a.st.title.Render(s.ui("app_name"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	subtitle := a.st.subtitle.Render(s.ui("subtitle"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	left := lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderLanguagePanel(),
		a.renderModelPanel(),
		a.renderUseCasePanel(),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", a.renderFieldsPanel())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, columns))
	b.WriteString("\n\n")

	// Status bar
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderStatus(
		"[Tab] Next  [Up/Down] Select  [Ctrl+G] "+s.ui("generate")+"  [Ctrl+T] "+s.ui("templates")+"  [Ctrl+L] "+s.ui("theme")+"  [F1] Help",
	)))

	return a.centerVertically(b.String())
}

// panelBox renders a titled box, highlighted when the panel has focus
func (a *App) panelBox(p panel, title, body string, width int) string {
	style := a.st.box
	if a.state.focus == p {
		style = a.st.activeBox
	}
	heading := a.st.subtitle.Render(title)
	if a.state.focus == p {
		heading = a.st.title.Render(title)
	}
	return style.Width(width).Render(heading + "\n" + body)
}

func (a *App) renderLanguagePanel() string {
	s := a.state
	var parts []string
	for i, info := range catalog.Languages {
		label := fmt.Sprintf("%s %s", info.Flag, strings.ToUpper(string(info.ID)))
		if i == s.langIndex {
			label = a.st.selected.Render("[" + label + "]")
		} else {
			label = a.st.subtitle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return a.panelBox(panelLanguage, s.ui("language"), strings.Join(parts, " "), 40)
}

// renderModelPanel lists providers, expanding only the one that holds the
// selected model
func (a *App) renderModelPanel() string {
	s := a.state
	active := s.activeModel()

	var lines []string
	for _, g := range s.resolved.ModelsByProvider() {
		open := false
		for _, m := range g.Models {
			if active != nil && m.ID == active.ID {
				open = true
			}
		}
		if !open {
			lines = append(lines, a.st.subtitle.Render(fmt.Sprintf("+ %s (%d)", g.Provider, len(g.Models))))
			continue
		}
		lines = append(lines, a.st.text.Render("- "+g.Provider))
		for _, m := range g.Models {
			if m.ID == active.ID {
				lines = append(lines, a.st.selected.Render("  > "+m.Name))
			} else {
				lines = append(lines, a.st.subtitle.Render("    "+m.Name))
			}
		}
	}

	if active != nil {
		lines = append(lines, "")
		lines = append(lines, a.st.subtitle.Render(truncate(active.Description, 36)))
		lines = append(lines, a.st.subtitle.Render(truncate(strings.Join(active.Strengths, " · "), 36)))
	}

	return a.panelBox(panelModel, s.ui("target_model"), strings.Join(lines, "\n"), 40)
}

func (a *App) renderUseCasePanel() string {
	s := a.state
	var lines []string
	for i, uc := range s.resolved.UseCases {
		if i == s.useCase {
			lines = append(lines, a.st.selected.Render(fmt.Sprintf("> [%s] %s", uc.Icon, uc.Name)))
		} else {
			lines = append(lines, a.st.subtitle.Render(fmt.Sprintf("  [%s] %s", uc.Icon, uc.Name)))
		}
	}
	return a.panelBox(panelUseCase, s.ui("scenario"), strings.Join(lines, "\n"), 40)
}

func (a *App) renderFieldsPanel() string {
	s := a.state
	uc := s.activeUseCase()
	if uc == nil {
		return a.panelBox(panelFields, "", a.st.subtitle.Render(s.ui("placeholder_desc")), fieldWidth+4)
	}

	var parts []string
	for i, f := range s.fields {
		focused := s.focus == panelFields && i == s.fieldIndex
		label := a.st.subtitle.Render(f.def.Label)
		if focused {
			label = a.st.title.Render(f.def.Label)
		}
		parts = append(parts, label)
		parts = append(parts, f.View(a.st, focused))
		if f.def.Hint != "" && focused {
			parts = append(parts, a.st.subtitle.Render(f.def.Hint))
		}
		parts = append(parts, "")
	}

	if s.generating {
		parts = append(parts, a.st.selected.Render(s.spinner.View()+" "+s.ui("generating")))
	} else {
		parts = append(parts, a.st.subtitle.Render("[Ctrl+G] "+s.ui("generate")))
	}

	return a.panelBox(panelFields, uc.Name, strings.Join(parts, "\n"), fieldWidth+4)
}

// renderStatus shows a transient status line if one is set, otherwise hints
func (a *App) renderStatus(hints string) string {
	s := a.state
	switch {
	case s.status != "" && s.statusErr:
		return a.st.err.Render(s.status)
	case s.status != "":
		return a.st.success.Render(s.status)
	default:
		return a.st.statusBar.Render(hints)
	}
}
