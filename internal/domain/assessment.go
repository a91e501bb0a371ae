package domain

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Severity buckets a backend risk label into one of three presentation tiers.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityNormal   Severity = "normal"
)

// SeverityForLabel matches by case-insensitive substring. Anything that is not
// recognizably high or medium risk, including an empty label, is normal.
func SeverityForLabel(label string) Severity {
	lower := strings.ToLower(label)
	if strings.Contains(lower, "high") {
		return SeverityCritical
	}
	if strings.Contains(lower, "medium") || strings.Contains(lower, "moderate") {
		return SeverityWarning
	}
	return SeverityNormal
}

type FeatureImportance struct {
	Feature string
	Weight  float64
}

// RiskAssessment is the ML half of a vitals response. FeatureImportances
// weights are backend-assigned and carry no guarantee of summing to 1.
type RiskAssessment struct {
	RiskLabel          string
	Probability        float64
	FeatureImportances map[string]float64
}

func (a RiskAssessment) Severity() Severity {
	return SeverityForLabel(a.RiskLabel)
}

// ProbabilityPercent rounds to a whole percentage for the live assessment
// view. History rows format one decimal instead.
func (a RiskAssessment) ProbabilityPercent() int {
	return int(math.Round(a.Probability * 100))
}

// SortedImportances returns the importances in descending weight order, ties
// broken by feature name so rendering is deterministic.
func (a RiskAssessment) SortedImportances() []FeatureImportance {
	importances := make([]FeatureImportance, 0, len(a.FeatureImportances))
	for feature, weight := range a.FeatureImportances {
		importances = append(importances, FeatureImportance{Feature: feature, Weight: weight})
	}

	sort.Slice(importances, func(i, j int) bool {
		if importances[i].Weight != importances[j].Weight {
			return importances[i].Weight > importances[j].Weight
		}
		return importances[i].Feature < importances[j].Feature
	})

	return importances
}

type Advice struct {
	Text      string
	Timestamp time.Time
}

// VitalsResult is the full backend response to a vitals submission.
type VitalsResult struct {
	UserID       int64
	SubmissionID int64
	Timestamp    time.Time
	Assessment   RiskAssessment
	Advice       Advice
}
