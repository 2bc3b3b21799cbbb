package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used by the game screens.
type Theme struct {
	Title   lipgloss.Style
	Rule    lipgloss.Style
	Body    lipgloss.Style
	Option  lipgloss.Style
	Notice  lipgloss.Style
	Success lipgloss.Style
	Help    lipgloss.Style
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Body:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Option:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// HighContrastTheme drops color in favor of bold monochrome; the
// bracketed heading transform carries the emphasis instead.
func HighContrastTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Rule:    plain,
		Body:    plain,
		Option:  plain,
		Notice:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Bold(true),
		Help:    plain,
	}
}
