package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"alfredoptarigan/resume-screener/internal/artifacts"
	"alfredoptarigan/resume-screener/internal/models"
)

// RolePrediction is the outcome of scoring a feature vector against the
// multi-class role classifier.
type RolePrediction struct {
	// RawLabel is the predicted class exactly as the classifier names it,
	// possibly carrying a _select/_reject variant suffix.
	RawLabel string
	// Role is the normalized role name with any suffix stripped.
	Role string
	// Confidence is the probability mass of the raw predicted label. When
	// several raw labels collapse to the same role, only the originally
	// predicted label's probability is reported.
	Confidence float64
	// TopRoles is the de-duplicated ranking of up to 3 distinct roles.
	TopRoles []models.RoleMatch
}

// SuitabilityPrediction is the select/reject decision of a role-specific
// binary model.
type SuitabilityPrediction struct {
	Label      string
	Confidence float64
	IsSuitable bool
}

// PredictRole scores the vector, picks the top class, and derives the
// ranked role list. Ranking walks the full probability-sorted class list,
// keeps the first occurrence of each distinct normalized role, and stops
// once 3 roles are collected. Ties keep the classifier's class order.
func PredictRole(classifier artifacts.Scorer, vector []float64) (*RolePrediction, error) {
	probabilities, err := classifier.PredictProba(vector)
	if err != nil {
		return nil, fmt.Errorf("failed to score role classifier: %w", err)
	}

	classes := classifier.Classes()
	if len(probabilities) != len(classes) {
		return nil, fmt.Errorf("classifier returned %d probabilities for %d classes", len(probabilities), len(classes))
	}

	predictedIdx := 0
	for i, p := range probabilities {
		if p > probabilities[predictedIdx] {
			predictedIdx = i
		}
	}
	rawLabel := classes[predictedIdx]

	indices := make([]int, len(classes))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return probabilities[indices[a]] > probabilities[indices[b]]
	})

	var topRoles []models.RoleMatch
	seen := make(map[string]bool)
	for _, idx := range indices {
		role := artifacts.NormalizeRole(classes[idx])
		if seen[role] {
			// _select/_reject variants of a role already ranked
			continue
		}
		seen[role] = true
		topRoles = append(topRoles, models.RoleMatch{
			Role:       role,
			Confidence: probabilities[idx],
		})
		if len(topRoles) >= 3 {
			break
		}
	}

	return &RolePrediction{
		RawLabel:   rawLabel,
		Role:       artifacts.NormalizeRole(rawLabel),
		Confidence: probabilities[predictedIdx],
		TopRoles:   topRoles,
	}, nil
}

// PredictSuitability scores the role-specific binary model. The candidate
// is suitable iff the predicted label contains "select" or "hire",
// case-insensitively.
func PredictSuitability(model artifacts.Scorer, vector []float64) (*SuitabilityPrediction, error) {
	probabilities, err := model.PredictProba(vector)
	if err != nil {
		return nil, fmt.Errorf("failed to score suitability model: %w", err)
	}

	classes := model.Classes()
	if len(probabilities) != len(classes) {
		return nil, fmt.Errorf("suitability model returned %d probabilities for %d classes", len(probabilities), len(classes))
	}

	predictedIdx := 0
	for i, p := range probabilities {
		if p > probabilities[predictedIdx] {
			predictedIdx = i
		}
	}
	label := classes[predictedIdx]

	return &SuitabilityPrediction{
		Label:      label,
		Confidence: probabilities[predictedIdx],
		IsSuitable: IsSelectedLabel(label),
	}, nil
}

// IsSelectedLabel reports whether a suitability label means the candidate
// should be taken forward.
func IsSelectedLabel(label string) bool {
	lower := strings.ToLower(label)
	return strings.Contains(lower, "select") || strings.Contains(lower, "hire")
}

// BuildRecommendation maps a suitability decision to its fixed tier string.
// Both tier boundaries are inclusive.
func BuildRecommendation(isSuitable bool, confidence float64) string {
	if !isSuitable {
		return "Not a good fit"
	}
	switch {
	case confidence >= 0.8:
		return "Strong candidate match."
	case confidence >= 0.6:
		return "Good candidate match."
	default:
		return "Review candidate properly"
	}
}

// RoundPercent converts a probability to a percentage rounded to 2 decimal
// places.
func RoundPercent(probability float64) float64 {
	return math.Round(probability*100*100) / 100
}
