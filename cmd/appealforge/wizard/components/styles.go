package components

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("36")).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("160")).
		Bold(true)

	GuidanceStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("33")).
		PaddingLeft(2).
		Foreground(lipgloss.Color("252"))

	FooterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
)
