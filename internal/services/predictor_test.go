package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

// stubScorer returns a fixed distribution, so ranking and tie-break
// behavior can be pinned down exactly.
type stubScorer struct {
	classes []string
	probs   []float64
}

func (s *stubScorer) Classes() []string { return s.classes }

func (s *stubScorer) PredictProba(features []float64) ([]float64, error) {
	if s.probs == nil {
		return nil, fmt.Errorf("no probabilities configured")
	}
	return s.probs, nil
}

func TestPredictRole_VariantsCollapseToOneRole(t *testing.T) {
	classifier := &stubScorer{
		classes: []string{"A_select", "A_reject", "B_select"},
		probs:   []float64{0.5, 0.3, 0.2},
	}

	prediction, err := PredictRole(classifier, nil)
	require.NoError(t, err)

	assert.Equal(t, "A_select", prediction.RawLabel)
	assert.Equal(t, "A", prediction.Role)
	assert.Equal(t, 0.5, prediction.Confidence)

	// "A" absorbs both of its variants, so only 2 roles remain
	require.Len(t, prediction.TopRoles, 2)
	assert.Equal(t, models.RoleMatch{Role: "A", Confidence: 0.5}, prediction.TopRoles[0])
	assert.Equal(t, models.RoleMatch{Role: "B", Confidence: 0.2}, prediction.TopRoles[1])
}

func TestPredictRole_WalksPastTopThreeRawClasses(t *testing.T) {
	classifier := &stubScorer{
		classes: []string{"A_select", "A_reject", "B_select", "B_reject", "C_select"},
		probs:   []float64{0.30, 0.25, 0.20, 0.15, 0.10},
	}

	prediction, err := PredictRole(classifier, nil)
	require.NoError(t, err)

	// The third distinct role sits beyond the top 3 raw classes and must
	// still be found.
	require.Len(t, prediction.TopRoles, 3)
	assert.Equal(t, "A", prediction.TopRoles[0].Role)
	assert.Equal(t, "B", prediction.TopRoles[1].Role)
	assert.Equal(t, "C", prediction.TopRoles[2].Role)
	assert.Equal(t, 0.10, prediction.TopRoles[2].Confidence)
}

func TestPredictRole_NoDuplicatesAndDescendingOrder(t *testing.T) {
	classifier := &stubScorer{
		classes: []string{"Data Analyst", "Software Engineer", "Product Manager", "Designer"},
		probs:   []float64{0.1, 0.4, 0.3, 0.2},
	}

	prediction, err := PredictRole(classifier, nil)
	require.NoError(t, err)

	require.Len(t, prediction.TopRoles, 3)
	seen := make(map[string]bool)
	for i, match := range prediction.TopRoles {
		assert.False(t, seen[match.Role], "duplicate role %q", match.Role)
		seen[match.Role] = true
		if i > 0 {
			assert.GreaterOrEqual(t, prediction.TopRoles[i-1].Confidence, match.Confidence)
		}
	}
	assert.Equal(t, "Software Engineer", prediction.TopRoles[0].Role)
}

func TestPredictRole_TiesKeepClassOrder(t *testing.T) {
	classifier := &stubScorer{
		classes: []string{"A", "B", "C"},
		probs:   []float64{0.4, 0.3, 0.3},
	}

	prediction, err := PredictRole(classifier, nil)
	require.NoError(t, err)

	// B and C are tied; the classifier's internal class order decides
	assert.Equal(t, "B", prediction.TopRoles[1].Role)
	assert.Equal(t, "C", prediction.TopRoles[2].Role)
}

func TestPredictRole_ConfidenceUsesRawLabelOnly(t *testing.T) {
	// Both variants of "A" together carry 0.6, but only the predicted raw
	// label's 0.35 is reported.
	classifier := &stubScorer{
		classes: []string{"A_select", "A_reject", "B_select"},
		probs:   []float64{0.35, 0.25, 0.40},
	}

	prediction, err := PredictRole(classifier, nil)
	require.NoError(t, err)

	assert.Equal(t, "B_select", prediction.RawLabel)
	assert.Equal(t, "B", prediction.Role)
	assert.Equal(t, 0.40, prediction.Confidence)
}

func TestPredictSuitability(t *testing.T) {
	model := &stubScorer{
		classes: []string{"reject", "select"},
		probs:   []float64{0.25, 0.75},
	}

	suitability, err := PredictSuitability(model, nil)
	require.NoError(t, err)

	assert.Equal(t, "select", suitability.Label)
	assert.Equal(t, 0.75, suitability.Confidence)
	assert.True(t, suitability.IsSuitable)
}

func TestPredictSuitability_Reject(t *testing.T) {
	model := &stubScorer{
		classes: []string{"reject", "select"},
		probs:   []float64{0.9, 0.1},
	}

	suitability, err := PredictSuitability(model, nil)
	require.NoError(t, err)

	assert.Equal(t, "reject", suitability.Label)
	assert.Equal(t, 0.9, suitability.Confidence)
	assert.False(t, suitability.IsSuitable)
}

func TestIsSelectedLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"select", true},
		{"Selected", true},
		{"HIRE", true},
		{"do not hire", true},
		{"reject", false},
		{"pass", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSelectedLabel(tt.label), "label: %q", tt.label)
	}
}

func TestBuildRecommendation(t *testing.T) {
	tests := []struct {
		name       string
		isSuitable bool
		confidence float64
		want       string
	}{
		{"strong at boundary", true, 0.80, "Strong candidate match."},
		{"strong above boundary", true, 0.95, "Strong candidate match."},
		{"good at boundary", true, 0.60, "Good candidate match."},
		{"good below strong", true, 0.79, "Good candidate match."},
		{"review below good", true, 0.59, "Review candidate properly"},
		{"review near zero", true, 0.01, "Review candidate properly"},
		{"not suitable ignores confidence", false, 0.99, "Not a good fit"},
		{"not suitable low confidence", false, 0.10, "Not a good fit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildRecommendation(tt.isSuitable, tt.confidence))
		})
	}
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 87.65, RoundPercent(0.876543))
	assert.Equal(t, 80.0, RoundPercent(0.8))
	assert.Equal(t, 0.0, RoundPercent(0))
	assert.Equal(t, 100.0, RoundPercent(1))
	assert.Equal(t, 33.33, RoundPercent(1.0/3.0))
}
