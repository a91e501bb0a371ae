// Package markup renders the backend's **-delimited advice markup with
// lipgloss, one styled segment per span.
package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/afyajamii/afya-cli/internal/domain"
)

func Render(text string, bold lipgloss.Style) string {
	var builder strings.Builder
	for _, span := range domain.ParseAdviceMarkup(text) {
		if span.Kind == domain.SpanBold {
			builder.WriteString(bold.Render(span.Text))
			continue
		}
		builder.WriteString(span.Text)
	}

	return builder.String()
}
