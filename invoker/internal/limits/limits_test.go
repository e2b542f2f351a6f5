package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestClassify_DefaultBridge(t *testing.T) {
	tests := []struct {
		freq      float64
		want      string
		threshold float64
	}{
		{0, SeverityNormal, 0},
		{2.0, SeverityNormal, 0},
		{3.69, SeverityNormal, 0},
		{3.7, SeverityWarning, 3.7},
		{4.5, SeverityWarning, 3.7},
		{7.0, SeverityCritical, 7.0},
		{8.5, SeverityCritical, 7.0},
	}
	for _, tc := range tests {
		got := Classify(tc.freq, DefaultBridge())
		assert.Equal(t, tc.want, got.Severity, "freq %.2f", tc.freq)
		assert.Equal(t, tc.threshold, got.Threshold, "freq %.2f", tc.freq)
	}
}

func TestClassify_TwoSided(t *testing.T) {
	l := Limits{
		MinCritical: ptr(0.5),
		MinAlert:    ptr(1.0),
		MaxAlert:    ptr(5.0),
		MaxCritical: ptr(9.0),
	}

	assert.Equal(t, SeverityCritical, Classify(0.2, l).Severity)
	assert.Equal(t, SeverityWarning, Classify(0.8, l).Severity)
	assert.Equal(t, SeverityNormal, Classify(3.0, l).Severity)
	assert.Equal(t, SeverityWarning, Classify(5.0, l).Severity)
	assert.Equal(t, SeverityCritical, Classify(9.1, l).Severity)
}

func TestClassify_MaxWinsOverMin(t *testing.T) {
	// Overlapping limits: the maximum side is checked first.
	l := Limits{MinCritical: ptr(10), MaxAlert: ptr(4)}

	got := Classify(6, l)
	assert.Equal(t, SeverityWarning, got.Severity)
	assert.Equal(t, 4.0, got.Threshold)
}

func TestClassify_NoLimits(t *testing.T) {
	assert.Equal(t, Result{Severity: SeverityNormal}, Classify(100, Limits{}))
}
