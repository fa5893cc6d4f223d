package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderTemplates() string {
	s := a.state
	var b strings.Builder

	title := a.st.title.Render(s.ui("select_template"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	for i, t := range s.resolved.Templates {
		uc := s.resolved.UseCase(t.UseCaseID)
		scenario := t.UseCaseID
		if uc != nil {
			scenario = uc.Name
		}
		target := ""
		if m := s.resolved.Model(t.ModelID); m != nil {
			target = " · " + m.Name
		}

		cursor := "  "
		if i == s.templateIndex {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %s%s", cursor, truncate(t.Name, 24), scenario, target)
		if i == s.templateIndex {
			line = a.st.selected.Render(line)
			line += "\n" + a.st.subtitle.Render("    "+truncate(t.Description, 56))
		} else {
			line = a.st.subtitle.Render(line)
		}
		lines = append(lines, line)
	}

	listBox := a.st.box.
		Width(min(64, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	instructions := a.st.statusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] " + s.ui("close"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
