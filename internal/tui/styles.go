package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptforge/internal/config"
)

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	success   lipgloss.Color
	err       lipgloss.Color
	muted     lipgloss.Color
	text      lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#818CF8"),
		secondary: lipgloss.Color("#06B6D4"),
		success:   lipgloss.Color("#10B981"),
		err:       lipgloss.Color("#EF4444"),
		muted:     lipgloss.Color("#6B7280"),
		text:      lipgloss.Color("#F9FAFB"),
	}
	lightPalette = palette{
		primary:   lipgloss.Color("#4F46E5"),
		secondary: lipgloss.Color("#0E7490"),
		success:   lipgloss.Color("#047857"),
		err:       lipgloss.Color("#B91C1C"),
		muted:     lipgloss.Color("#64748B"),
		text:      lipgloss.Color("#1F2937"),
	}
)

type styles struct {
	logo      lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	text      lipgloss.Style
	selected  lipgloss.Style
	box       lipgloss.Style
	activeBox lipgloss.Style
	statusBar lipgloss.Style
	success   lipgloss.Style
	err       lipgloss.Style
}

func newStyles(theme string) styles {
	p := lightPalette
	if theme == config.ThemeDark {
		p = darkPalette
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Padding(0, 1)

	return styles{
		logo: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		subtitle: lipgloss.NewStyle().
			Foreground(p.muted),
		text: lipgloss.NewStyle().
			Foreground(p.text),
		selected: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		box:       box,
		activeBox: box.BorderForeground(p.primary),
		statusBar: lipgloss.NewStyle().
			Foreground(p.muted),
		success: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		err: lipgloss.NewStyle().
			Foreground(p.err).
			Bold(true),
	}
}
