package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityForLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected Severity
	}{
		{"high risk", SeverityCritical},
		{"High Risk", SeverityCritical},
		{"VERY HIGH", SeverityCritical},
		{"medium risk", SeverityWarning},
		{"Moderate", SeverityWarning},
		{"MEDIUM", SeverityWarning},
		{"low risk", SeverityNormal},
		{"normal", SeverityNormal},
		{"", SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeverityForLabel(tt.label))
		})
	}
}

func TestProbabilityPercentRounds(t *testing.T) {
	assert.Equal(t, 87, RiskAssessment{Probability: 0.874}.ProbabilityPercent())
	assert.Equal(t, 88, RiskAssessment{Probability: 0.875}.ProbabilityPercent())
	assert.Equal(t, 0, RiskAssessment{}.ProbabilityPercent())
	assert.Equal(t, 100, RiskAssessment{Probability: 1}.ProbabilityPercent())
}

func TestSortedImportancesDescending(t *testing.T) {
	assessment := RiskAssessment{
		FeatureImportances: map[string]float64{
			"Age":        0.12,
			"SystolicBP": 0.41,
			"BS":         0.41,
			"HeartRate":  0.06,
		},
	}

	importances := assessment.SortedImportances()
	require.Len(t, importances, 4)
	assert.Equal(t, "BS", importances[0].Feature)
	assert.Equal(t, "SystolicBP", importances[1].Feature)
	assert.Equal(t, "Age", importances[2].Feature)
	assert.Equal(t, "HeartRate", importances[3].Feature)
}

func TestParseAdviceMarkupAlternatesSpans(t *testing.T) {
	spans := ParseAdviceMarkup("Stay **hydrated** and rest **often**.")

	require.Len(t, spans, 5)
	assert.Equal(t, Span{Kind: SpanPlain, Text: "Stay "}, spans[0])
	assert.Equal(t, Span{Kind: SpanBold, Text: "hydrated"}, spans[1])
	assert.Equal(t, Span{Kind: SpanPlain, Text: " and rest "}, spans[2])
	assert.Equal(t, Span{Kind: SpanBold, Text: "often"}, spans[3])
	assert.Equal(t, Span{Kind: SpanPlain, Text: "."}, spans[4])
}

func TestParseAdviceMarkupUnmatchedTrailingDelimiterIsPlain(t *testing.T) {
	spans := ParseAdviceMarkup("Take your **iron supplement")

	require.Len(t, spans, 2)
	assert.Equal(t, Span{Kind: SpanPlain, Text: "Take your "}, spans[0])
	assert.Equal(t, Span{Kind: SpanPlain, Text: "iron supplement"}, spans[1])
}

func TestParseAdviceMarkupNoDelimiters(t *testing.T) {
	spans := ParseAdviceMarkup("Plain advice only.")

	require.Len(t, spans, 1)
	assert.Equal(t, Span{Kind: SpanPlain, Text: "Plain advice only."}, spans[0])
}

func TestParseAdviceMarkupLeadingBold(t *testing.T) {
	spans := ParseAdviceMarkup("**Important:** see a clinician.")

	require.Len(t, spans, 2)
	assert.Equal(t, Span{Kind: SpanBold, Text: "Important:"}, spans[0])
	assert.Equal(t, Span{Kind: SpanPlain, Text: " see a clinician."}, spans[1])
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{Username: "amina"}.Authenticated())
	assert.True(t, Session{Token: "tok"}.Authenticated())
}

func TestParseAccountType(t *testing.T) {
	for _, valid := range []string{"pregnant", "postnatal", "general"} {
		parsed, err := ParseAccountType(valid)
		require.NoError(t, err)
		assert.Equal(t, AccountType(valid), parsed)
	}

	_, err := ParseAccountType("clinician")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported account type")
}
