package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Prompt  lipgloss.Style
	Cursor  lipgloss.Style
	Index   lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

var DefaultTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CBA6F7")),
	Cursor:  lipgloss.NewStyle().Reverse(true),
	Index:   lipgloss.NewStyle().Faint(true),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
}

// PlainTheme renders without colour or emphasis.
var PlainTheme = Theme{
	Title:   lipgloss.NewStyle(),
	Label:   lipgloss.NewStyle(),
	Value:   lipgloss.NewStyle(),
	Prompt:  lipgloss.NewStyle(),
	Cursor:  lipgloss.NewStyle(),
	Index:   lipgloss.NewStyle(),
	Hint:    lipgloss.NewStyle(),
	Error:   lipgloss.NewStyle(),
	Success: lipgloss.NewStyle(),
}

// ThemeByName returns the named theme, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "plain", "none":
		return PlainTheme
	default:
		return DefaultTheme
	}
}
