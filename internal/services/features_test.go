package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/artifacts"
)

func testBundle() *artifacts.Bundle {
	return &artifacts.Bundle{
		Scaler: &artifacts.ExperienceScaler{Mean: 2, Scale: 2},
		Encoder: &artifacts.EducationEncoder{
			ClassLabels: []string{"Bachelor Of Science", "not found"},
		},
		Vectorizer: &artifacts.SkillsVectorizer{
			Vocabulary: map[string]int{"python": 0, "sql": 1, "aws": 2},
		},
	}
}

func TestFeatureEncoder_ColumnOrder(t *testing.T) {
	encoder := NewFeatureEncoder(testBundle())

	profile := &ResumeProfile{
		Education:       "Bachelor Of Science",
		ExperienceYears: 4,
		Skills:          "python, aws",
	}

	vector := encoder.Encode(profile)
	require.Len(t, vector, 5)

	// [scaled experience | education code | skill counts]
	assert.Equal(t, 1.0, vector[0]) // (4-2)/2
	assert.Equal(t, 0.0, vector[1])
	assert.Equal(t, []float64{1, 0, 1}, vector[2:])
}

func TestFeatureEncoder_NotFoundEducationUsesLowercaseSentinel(t *testing.T) {
	encoder := NewFeatureEncoder(testBundle())

	profile := &ResumeProfile{
		Education:       NotFound,
		ExperienceYears: 2,
		Skills:          "sql",
	}

	vector := encoder.Encode(profile)
	// "Not Found" is passed to the encoder as "not found", which the
	// training set contains at code 1
	assert.Equal(t, 1.0, vector[1])
}

func TestFeatureEncoder_UnseenEducationFallsBackToZero(t *testing.T) {
	encoder := NewFeatureEncoder(testBundle())

	profile := &ResumeProfile{
		Education:       "Doctorate Of Philosophy",
		ExperienceYears: 0,
		Skills:          NoSkills,
	}

	vector := encoder.Encode(profile)
	assert.Equal(t, 0.0, vector[1])
}

func TestFeatureEncoder_NoSkillsVectorizesEmptyString(t *testing.T) {
	encoder := NewFeatureEncoder(testBundle())

	profile := &ResumeProfile{
		Education:       "not found",
		ExperienceYears: 0,
		Skills:          NoSkills,
	}

	vector := encoder.Encode(profile)
	// The sentinel must not reach the vectorizer as literal text; with no
	// skills every count column is zero
	assert.Equal(t, []float64{0, 0, 0}, vector[2:])
}

func TestFeatureEncoder_WidthMatchesBundle(t *testing.T) {
	bundle := testBundle()
	encoder := NewFeatureEncoder(bundle)

	vector := encoder.Encode(&ResumeProfile{
		Name:      NotFound,
		Education: NotFound,
		Skills:    NoSkills,
	})

	assert.Len(t, vector, bundle.FeatureWidth())
}
