package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
 ███████╗ ██████╗ ██████╗  ██████╗ ███████╗
 ██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
 █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
 ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
 ██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
 ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

const landingSteps = 4

func (a *App) renderLanding() string {
	s := a.state

	// Logo
	logoRendered := a.st.logo.Render(logo)

	// Hero
	title := a.st.title.Render(s.ui("hero_title"))
	subtitle := a.st.subtitle.Render(s.ui("hero_sub"))

	// Features
	var features []string
	for _, k := range []string{"feature_model", "feature_privacy", "feature_language"} {
		features = append(features, "  * "+s.ui(k))
	}
	featureBox := a.st.box.
		Width(min(60, a.width-4)).
		Render(strings.Join(features, "\n"))

	// How it works
	var steps []string
	for i := 1; i <= landingSteps; i++ {
		n := strconv.Itoa(i)
		steps = append(steps, "  "+n+". "+
			a.st.selected.Render(s.ui("step_"+n+"_title"))+": "+
			s.ui("step_"+n+"_desc"))
	}
	stepsBox := a.st.box.
		Width(min(60, a.width-4)).
		Render(strings.Join(steps, "\n"))

	cta := a.st.selected.Render("\n" + s.ui("cta"))

	// Status bar
	statusBar := a.st.statusBar.Render("[Enter] Start  [F1] Help  [Esc] Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		title,
		subtitle,
		"",
		featureBox,
		"",
		a.st.subtitle.Render(s.ui("how_title")),
		stepsBox,
		cta,
	)

	// Center content on screen (leave room for status bar)
	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
