package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const faqEntries = 3

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := a.st.title.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Forge view
	forge := []string{
		"  Tab / Shift+Tab  Move between panels and fields",
		"  Up / Down        Change language, model or scenario",
		"  Left / Right     Cycle options of a choice field",
		"  Enter, Ctrl+G    Generate the prompt",
		"  Ctrl+T           Open templates",
		"  Ctrl+L           Toggle light/dark theme",
	}

	forgeTitle := a.st.subtitle.Render("Forge")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, forgeTitle))
	b.WriteString("\n\n")

	forgeBox := a.st.box.
		Width(60).
		Render(strings.Join(forge, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, forgeBox))
	b.WriteString("\n\n")

	// Result view
	result := []string{
		"  c                Copy prompt to clipboard",
		"  e, Esc           Back to the form",
		"  Up / Down        Scroll",
	}

	resultTitle := a.st.subtitle.Render("Result")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultTitle))
	b.WriteString("\n\n")

	resultBox := a.st.box.
		Width(60).
		Render(strings.Join(result, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	// FAQ
	var faq []string
	for i := 1; i <= faqEntries; i++ {
		n := strconv.Itoa(i)
		faq = append(faq,
			"  "+a.st.selected.Render(a.state.ui("faq_"+n+"_q")),
			indent.String(wordwrap.String(a.state.ui("faq_"+n+"_a"), 52), 4),
		)
	}

	faqTitle := a.st.subtitle.Render(a.state.ui("faq_title"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, faqTitle))
	b.WriteString("\n\n")

	faqBox := a.st.box.
		Width(60).
		Render(strings.Join(faq, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, faqBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := a.st.statusBar.Render("[Esc] Back  [Ctrl+C] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
