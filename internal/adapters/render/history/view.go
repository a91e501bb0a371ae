package history

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/afyajamii/afya-cli/internal/adapters/render/markup"
	"github.com/afyajamii/afya-cli/internal/application"
	"github.com/afyajamii/afya-cli/internal/domain"
)

func renderView(history application.History, s styles) string {
	lines := []string{
		s.title.Render("Your Health History"),
		s.header.Render(fmt.Sprintf("vitals: %d  conversations: %d", len(history.Vitals), len(history.Conversations))),
		s.section.Render(s.title.Render("Vitals History")),
	}

	if len(history.Vitals) == 0 {
		lines = append(lines, s.empty.Render("No vitals history yet. Submit your first vitals assessment!"))
	}
	for _, record := range history.Vitals {
		lines = append(lines, renderVitalsRecord(record, s))
	}

	lines = append(lines, s.section.Render(s.title.Render("Conversations")))
	if len(history.Conversations) == 0 {
		lines = append(lines, s.empty.Render("No conversation history yet. Start chatting with the AI!"))
	}
	for _, turn := range history.Conversations {
		lines = append(lines, renderConversation(turn, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderVitalsRecord(record domain.VitalsRecord, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.entry.Render(fmt.Sprintf("#%d %s", record.ID, formatDate(record.CreatedAt))),
			"  ",
			s.badge(domain.SeverityForLabel(record.RiskLabel)).Render(record.RiskLabel),
		),
		s.detail.Render(fmt.Sprintf(
			"age %.0f  bp %.0f/%.0f  hr %.0f bpm  bs %.1f mmol/L  temp %.1f%s  risk %.1f%%",
			record.Age,
			record.SystolicBP,
			record.DiastolicBP,
			record.HeartRate,
			record.BloodSugar,
			record.BodyTemp,
			record.BodyTempUnit.Symbol(),
			record.Probability*100,
		)),
	}

	if record.PatientHistory != "" {
		parts = append(parts, s.label.Render("history: ")+s.detail.Render(record.PatientHistory))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderConversation(turn domain.ConversationTurn, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.entry.Render(fmt.Sprintf("#%d %s", turn.ID, formatDate(turn.CreatedAt))),
		s.label.Render("You: ")+s.detail.Render(turn.Question),
		s.label.Render("AI:  ")+markup.Render(turn.Response, s.bold),
	)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}

	return t.Format("Jan 2, 2006 15:04")
}
