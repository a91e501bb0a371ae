package assessment

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/afyajamii/afya-cli/internal/domain"
)

type styles struct {
	title         lipgloss.Style
	header        lipgloss.Style
	label         lipgloss.Style
	detail        lipgloss.Style
	section       lipgloss.Style
	bold          lipgloss.Style
	badgeCritical lipgloss.Style
	badgeWarning  lipgloss.Style
	badgeNormal   lipgloss.Style
	barBracket    lipgloss.Style
	barFill       lipgloss.Style
	barEmpty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:         lipgloss.NewStyle().Bold(true),
		header:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:       lipgloss.NewStyle().MarginTop(1),
		bold:          lipgloss.NewStyle().Bold(true),
		badgeCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		badgeWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		badgeNormal:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		barBracket:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func (s styles) badge(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeverityCritical:
		return s.badgeCritical
	case domain.SeverityWarning:
		return s.badgeWarning
	default:
		return s.badgeNormal
	}
}
