package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	s := a.state
	var b strings.Builder

	// Title
	title := a.st.title.Render(s.ui("result"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	// Target model and size
	modelName := s.config.Model
	if m := s.activeModel(); m != nil {
		modelName = m.Name
	}
	info := fmt.Sprintf("%s %s  ·  ~%d %s / %d",
		s.ui("optimized_for"), modelName, s.result.Tokens, s.ui("tokens"), s.result.ContextLimit)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.st.subtitle.Render(info)))
	b.WriteString("\n\n")

	// Result box
	body := s.viewport.View()
	if s.result.Prompt == "" {
		body = a.st.subtitle.Render(s.ui("placeholder_title") + "\n" + s.ui("placeholder_desc"))
	}
	resultBox := a.st.activeBox.
		Width(s.viewport.Width).
		Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	// Status bar
	scroll := ""
	if s.viewport.TotalLineCount() > s.viewport.Height {
		scroll = fmt.Sprintf("%3.f%%  ", s.viewport.ScrollPercent()*100)
	}
	status := a.renderStatus(scroll + "[Up/Down] Scroll  [c] " + s.ui("copy") + "  [e] Edit  [Ctrl+G] " + s.ui("generate") + "  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
