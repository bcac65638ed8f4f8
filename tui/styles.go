package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f4f1de")).
			Background(lipgloss.Color("#3d405b")).
			Padding(0, 2).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(28)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8d99ae")).
				Italic(true)

	PIStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3d405b"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e07a5f"))

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(2).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#81b29a"))

	ActiveButtonStyle = ButtonStyle.
				Bold(true).
				Background(lipgloss.Color("#e07a5f"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8d99ae")).
			Padding(0, 1).
			MarginTop(1)

	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#3d405b")).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8d99ae")).
			MarginTop(1)
)
