package timer

import "github.com/charmbracelet/lipgloss"

type styles struct {
	base      lipgloss.Style
	session   lipgloss.Style
	brk       lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	err       lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	sessionColor := lipgloss.Color("#B0DB43")
	breakColor := lipgloss.Color("#12EAEA")
	mainColor := lipgloss.Color("#FFFFFF")
	hintColor := lipgloss.Color("#7D7D7D")

	if !darkTheme {
		sessionColor = lipgloss.Color("#4B7A00")
		breakColor = lipgloss.Color("#00707A")
		mainColor = lipgloss.Color("#000000")
		hintColor = lipgloss.Color("#5C5C5C")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		session:   lipgloss.NewStyle().Bold(true).Foreground(sessionColor).MarginRight(1),
		brk:       lipgloss.NewStyle().Bold(true).Foreground(breakColor).MarginRight(1),
		main:      lipgloss.NewStyle().Bold(true).Foreground(mainColor),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
		hint:      lipgloss.NewStyle().Foreground(hintColor),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}
