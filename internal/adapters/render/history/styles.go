package history

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/afyajamii/afya-cli/internal/domain"
)

type styles struct {
	title         lipgloss.Style
	header        lipgloss.Style
	entry         lipgloss.Style
	label         lipgloss.Style
	detail        lipgloss.Style
	section       lipgloss.Style
	empty         lipgloss.Style
	bold          lipgloss.Style
	badgeCritical lipgloss.Style
	badgeWarning  lipgloss.Style
	badgeNormal   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:         lipgloss.NewStyle().Bold(true),
		header:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		entry:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:       lipgloss.NewStyle().MarginTop(1),
		empty:         lipgloss.NewStyle().Faint(true),
		bold:          lipgloss.NewStyle().Bold(true),
		badgeCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		badgeWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		badgeNormal:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
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
