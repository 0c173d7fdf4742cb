package segments

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	group      lipgloss.Style
	resource   lipgloss.Style
	selected   lipgloss.Style
	resourceID lipgloss.Style
	branch     lipgloss.Style
	badge      lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		group:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		resource:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		resourceID: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		branch:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
