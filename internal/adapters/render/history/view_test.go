package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afyajamii/afya-cli/internal/application"
	"github.com/afyajamii/afya-cli/internal/domain"
)

func TestRenderEmptyHistory(t *testing.T) {
	output, err := Render(application.History{})
	require.NoError(t, err)

	assert.Contains(t, output, "Your Health History")
	assert.Contains(t, output, "No vitals history yet.")
	assert.Contains(t, output, "No conversation history yet.")
}

func TestRenderVitalsRecordWithOneDecimalPercent(t *testing.T) {
	history := application.History{
		Vitals: []domain.VitalsRecord{{
			ID:           3,
			CreatedAt:    time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
			Age:          28,
			SystolicBP:   120,
			DiastolicBP:  80,
			BloodSugar:   5.5,
			BodyTemp:     36.5,
			BodyTempUnit: domain.UnitCelsius,
			HeartRate:    72,
			RiskLabel:    "low risk",
			Probability:  0.084,
		}},
	}

	output, err := Render(history)
	require.NoError(t, err)
	assert.Contains(t, output, "#3")
	assert.Contains(t, output, "low risk")
	assert.Contains(t, output, "8.4%")
	assert.Contains(t, output, "120/80")
}

func TestRenderConversationStripsMarkup(t *testing.T) {
	history := application.History{
		Conversations: []domain.ConversationTurn{{
			ID:        5,
			CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			Question:  "Is mild nausea normal?",
			Response:  "Usually **yes** in the first trimester.",
		}},
	}

	output, err := Render(history)
	require.NoError(t, err)
	assert.Contains(t, output, "Is mild nausea normal?")
	assert.Contains(t, output, "yes")
	assert.NotContains(t, output, "**")
}

func TestRenderPatientHistoryLine(t *testing.T) {
	history := application.History{
		Vitals: []domain.VitalsRecord{{
			ID:             1,
			RiskLabel:      "medium risk",
			PatientHistory: "previous c-section",
		}},
	}

	output, err := Render(history)
	require.NoError(t, err)
	assert.Contains(t, output, "previous c-section")
}
