package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rafathanna/invento-app/internal/config"
	"github.com/rafathanna/invento-app/internal/domain/documents"
)

// ANSI escapes for plain printf output.
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// lipgloss styles shared by the interactive views. applyTheme rebuilds them
// from the persisted preferences before any view renders.
var (
	titleStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	boxStyle     lipgloss.Style
	helpStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
)

func applyTheme(prefs *config.Preferences) {
	accent := lipgloss.Color(prefs.AccentColor)

	help := lipgloss.Color("241")
	if prefs.DarkMode {
		help = lipgloss.Color("245")
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(accent).Padding(0, 1)
	accentStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
	helpStyle = lipgloss.NewStyle().Foreground(help)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
}

// statusColor picks the ANSI color for an invoice status.
func statusColor(s documents.Status) string {
	switch s {
	case documents.StatusCompleted:
		return Green
	case documents.StatusCancelled:
		return Red
	}
	return Yellow
}
