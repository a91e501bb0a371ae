package assessment

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/afyajamii/afya-cli/internal/adapters/render/markup"
	"github.com/afyajamii/afya-cli/internal/domain"
)

const (
	confidenceBarWidth = 24
	featureBarWidth    = 12
)

func renderView(result domain.VitalsResult, s styles) string {
	assessment := result.Assessment
	percent := assessment.ProbabilityPercent()

	lines := []string{
		s.title.Render("Risk Assessment Results"),
	}
	if !result.Timestamp.IsZero() {
		lines = append(lines, s.header.Render("Based on vitals submitted "+formatTimestamp(result.Timestamp)))
	}

	badge := s.badge(assessment.Severity())
	lines = append(lines,
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("Risk Level: "),
			badge.Render(assessment.RiskLabel),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("Confidence: "),
			renderBar(float64(percent), confidenceBarWidth, s),
			" ",
			s.detail.Render(fmt.Sprintf("%d%%", percent)),
		),
	)

	if importances := assessment.SortedImportances(); len(importances) > 0 {
		lines = append(lines, s.section.Render(s.title.Render("Key Health Indicators")))
		for _, importance := range importances {
			lines = append(lines, renderImportance(importance, s))
		}
	}

	if result.Advice.Text != "" {
		lines = append(lines,
			s.section.Render(s.title.Render("AI Health Advice")),
			markup.Render(result.Advice.Text, s.bold),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderImportance(importance domain.FeatureImportance, s styles) string {
	percent := math.Round(importance.Weight * 100)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.label.Render(fmt.Sprintf("%-14s ", importance.Feature)),
		renderBar(percent, featureBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%.0f%%", percent)),
	)
}

func renderBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatTimestamp(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
