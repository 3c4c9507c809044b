package services

import (
	"log"

	"alfredoptarigan/resume-screener/internal/artifacts"
)

// FeatureEncoder turns a resume profile into the fixed-schema numeric
// vector the classifiers were trained on: [scaled experience | encoded
// education | skill counts]. Column order and width must match the
// training-time artifacts exactly.
type FeatureEncoder struct {
	scaler     *artifacts.ExperienceScaler
	encoder    *artifacts.EducationEncoder
	vectorizer *artifacts.SkillsVectorizer
}

func NewFeatureEncoder(bundle *artifacts.Bundle) *FeatureEncoder {
	return &FeatureEncoder{
		scaler:     bundle.Scaler,
		encoder:    bundle.Encoder,
		vectorizer: bundle.Vectorizer,
	}
}

// Encode never fails: the experience and skills transforms accept any
// input, and an education category the encoder has not seen falls back to
// code 0 rather than propagating the error.
func (e *FeatureEncoder) Encode(profile *ResumeProfile) []float64 {
	experience := e.scaler.Transform(float64(profile.ExperienceYears))

	education := profile.Education
	if education == NotFound {
		education = "not found"
	}
	educationCode, err := e.encoder.Transform(education)
	if err != nil {
		log.Printf("⚠️  Education category not in training set, using fallback: %v\n", err)
		educationCode = 0
	}

	// The empty-skills sentinel vectorizes as an empty string, not as the
	// literal text "None".
	skills := profile.Skills
	if skills == NoSkills {
		skills = ""
	}
	skillCounts := e.vectorizer.Transform(skills)

	vector := make([]float64, 0, 2+len(skillCounts))
	vector = append(vector, experience, float64(educationCode))
	vector = append(vector, skillCounts...)
	return vector
}
