package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Bundle holds every pre-trained artifact the pipeline scores against.
// Loaded once at startup and treated as immutable for the process lifetime;
// no component mutates it after Load returns.
type Bundle struct {
	RoleClassifier *LinearClassifier
	RoleModels     map[string]*LinearClassifier
	Scaler         *ExperienceScaler
	Encoder        *EducationEncoder
	Vectorizer     *SkillsVectorizer
}

// Load reads the exported JSON artifacts from dir.
func Load(dir string) (*Bundle, error) {
	b := &Bundle{}

	if err := readJSON(filepath.Join(dir, "role_classifier.json"), &b.RoleClassifier); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "role_models.json"), &b.RoleModels); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "experience_scaler.json"), &b.Scaler); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "education_encoder.json"), &b.Encoder); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "skills_vectorizer.json"), &b.Vectorizer); err != nil {
		return nil, err
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("artifact bundle is inconsistent: %w", err)
	}

	return b, nil
}

func readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse artifact %s: %w", filepath.Base(path), err)
	}
	return nil
}

// FeatureWidth returns the feature vector width the bundle was trained on:
// scaled experience and encoded education, then one column per vocabulary term.
func (b *Bundle) FeatureWidth() int {
	return 2 + b.Vectorizer.Width()
}

// SuitabilityModel looks up the role-specific binary model for a plain role
// name.
func (b *Bundle) SuitabilityModel(role string) (Scorer, bool) {
	model, ok := b.RoleModels[role]
	if !ok {
		return nil, false
	}
	return model, true
}

// Validate cross-checks the bundle: every model must score vectors of the
// width fixed by the transformers, and every role the classifier can predict
// must have a role-specific suitability model. A mismatch here is a
// training/deployment bug that would otherwise only surface per request.
func (b *Bundle) Validate() error {
	if b.RoleClassifier == nil || b.Scaler == nil || b.Encoder == nil || b.Vectorizer == nil {
		return fmt.Errorf("bundle is missing artifacts")
	}
	if len(b.RoleModels) == 0 {
		return fmt.Errorf("bundle has no role-specific models")
	}

	if err := b.RoleClassifier.validate(); err != nil {
		return fmt.Errorf("role classifier: %w", err)
	}

	width := b.FeatureWidth()
	if got := b.RoleClassifier.FeatureWidth(); got != width {
		return fmt.Errorf("role classifier expects width %d, transformers produce %d", got, width)
	}

	for role, model := range b.RoleModels {
		if err := model.validate(); err != nil {
			return fmt.Errorf("role model %q: %w", role, err)
		}
		if got := model.FeatureWidth(); got != width {
			return fmt.Errorf("role model %q expects width %d, transformers produce %d", role, got, width)
		}
	}

	for _, label := range b.RoleClassifier.Classes() {
		role := NormalizeRole(label)
		if _, ok := b.RoleModels[role]; !ok {
			return fmt.Errorf("no role-specific model for predicted role %q (class %q)", role, label)
		}
	}

	if len(b.Encoder.ClassLabels) == 0 {
		return fmt.Errorf("education encoder has no classes")
	}

	return nil
}
