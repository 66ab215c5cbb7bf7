package tui

import "github.com/charmbracelet/lipgloss"

// styles are the lipgloss styles derived from one skin.
type styles struct {
	base      lipgloss.Style
	dim       lipgloss.Style
	accent    lipgloss.Style
	title     lipgloss.Style
	badge     lipgloss.Style
	glitch    lipgloss.Style
	number    lipgloss.Style
	label     lipgloss.Style
	tickerBar lipgloss.Style
	link      lipgloss.Style
}

func newStyles(s Skin) styles {
	fg := lipgloss.Color(s.Foreground)
	return styles{
		base:      lipgloss.NewStyle().Foreground(fg),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(s.Dim)),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(s.Accent)),
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color(s.Accent)).Bold(true),
		badge:     lipgloss.NewStyle().Foreground(lipgloss.Color(s.Background)).Background(lipgloss.Color(s.Alert)).Bold(true).Padding(0, 1),
		glitch:    lipgloss.NewStyle().Foreground(lipgloss.Color(s.Glitch)),
		number:    lipgloss.NewStyle().Foreground(fg).Bold(true),
		label:     lipgloss.NewStyle().Foreground(fg).Bold(true),
		tickerBar: lipgloss.NewStyle().Foreground(lipgloss.Color(s.Background)).Background(fg),
		link:      lipgloss.NewStyle().Foreground(lipgloss.Color(s.Accent)).Underline(true),
	}
}
