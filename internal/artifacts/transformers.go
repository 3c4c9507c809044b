package artifacts

import (
	"fmt"
	"strings"
)

// ExperienceScaler is a standard scaler fit on years of experience.
type ExperienceScaler struct {
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

func (s *ExperienceScaler) Transform(years float64) float64 {
	if s.Scale == 0 {
		return 0
	}
	return (years - s.Mean) / s.Scale
}

// EducationEncoder maps an education category to the integer code assigned
// at training time. Unseen categories are an error; the feature encoder is
// responsible for substituting the fallback code.
type EducationEncoder struct {
	ClassLabels []string `json:"classes"`
}

func (e *EducationEncoder) Transform(category string) (int, error) {
	for i, label := range e.ClassLabels {
		if label == category {
			return i, nil
		}
	}
	return 0, fmt.Errorf("education category %q not seen during training", category)
}

// SkillsVectorizer is a count vectorizer over comma-joined skill strings.
// The vocabulary maps each skill term to its column index; the output width
// is fixed by the vocabulary size.
type SkillsVectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
}

func (v *SkillsVectorizer) Width() int {
	return len(v.Vocabulary)
}

func (v *SkillsVectorizer) Transform(skills string) []float64 {
	counts := make([]float64, len(v.Vocabulary))
	for _, token := range strings.Split(skills, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if idx, ok := v.Vocabulary[token]; ok && idx < len(counts) {
			counts[idx]++
		}
	}
	return counts
}
