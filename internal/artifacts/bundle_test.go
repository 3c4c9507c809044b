package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func writeTestArtifacts(t *testing.T, dir string) {
	t.Helper()
	writeArtifact(t, dir, "role_classifier.json", `{
		"classes": ["Data Analyst_select", "Data Analyst_reject", "Software Engineer_select"],
		"coefficients": [[0.5, 0.1, 1.0, 0.0], [-0.5, 0.0, -1.0, 0.0], [0.2, 0.0, 0.0, 1.5]],
		"intercepts": [0.1, -0.1, 0.0]
	}`)
	writeArtifact(t, dir, "role_models.json", `{
		"Data Analyst": {
			"classes": ["reject", "select"],
			"coefficients": [[0.3, 0.2, 1.1, 0.0]],
			"intercepts": [-0.2]
		},
		"Software Engineer": {
			"classes": ["reject", "select"],
			"coefficients": [[0.4, 0.1, 0.0, 1.2]],
			"intercepts": [0.0]
		}
	}`)
	writeArtifact(t, dir, "experience_scaler.json", `{"mean": 3.5, "scale": 2.1}`)
	writeArtifact(t, dir, "education_encoder.json", `{"classes": ["Bachelor Of Science", "Master Of Science", "not found"]}`)
	writeArtifact(t, dir, "skills_vectorizer.json", `{"vocabulary": {"python": 0, "sql": 1}}`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)

	bundle, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, bundle.FeatureWidth())
	assert.Len(t, bundle.RoleModels, 2)
	assert.Equal(t, 3.5, bundle.Scaler.Mean)

	model, ok := bundle.SuitabilityModel("Data Analyst")
	require.True(t, ok)
	assert.Equal(t, []string{"reject", "select"}, model.Classes())

	_, ok = bundle.SuitabilityModel("Product Manager")
	assert.False(t, ok)
}

func TestLoad_MissingArtifactFile(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "skills_vectorizer.json")))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills_vectorizer.json")
}

func TestValidate_RoleWithoutModel(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	// Classifier knows a role the model set does not cover
	writeArtifact(t, dir, "role_classifier.json", `{
		"classes": ["Data Analyst_select", "Product Manager_select"],
		"coefficients": [[0.5, 0.1, 1.0, 0.0], [0.2, 0.0, 0.0, 1.5]],
		"intercepts": [0.1, 0.0]
	}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product Manager")
}

func TestValidate_WidthMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	// Vocabulary grows to 3 terms but the models were trained on width 4
	writeArtifact(t, dir, "skills_vectorizer.json", `{"vocabulary": {"python": 0, "sql": 1, "aws": 2}}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestExperienceScaler(t *testing.T) {
	scaler := &ExperienceScaler{Mean: 2, Scale: 2}
	assert.Equal(t, 1.0, scaler.Transform(4))
	assert.Equal(t, -1.0, scaler.Transform(0))

	// Degenerate scale never divides by zero
	flat := &ExperienceScaler{Mean: 2, Scale: 0}
	assert.Equal(t, 0.0, flat.Transform(10))
}

func TestEducationEncoder(t *testing.T) {
	encoder := &EducationEncoder{ClassLabels: []string{"Bachelor Of Science", "not found"}}

	code, err := encoder.Transform("not found")
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	_, err = encoder.Transform("Doctorate")
	require.Error(t, err)
}

func TestSkillsVectorizer(t *testing.T) {
	vectorizer := &SkillsVectorizer{Vocabulary: map[string]int{"python": 0, "sql": 1, "aws": 2}}

	assert.Equal(t, []float64{1, 0, 1}, vectorizer.Transform("python, aws"))
	assert.Equal(t, []float64{1, 0, 0}, vectorizer.Transform(" Python "))
	assert.Equal(t, []float64{0, 0, 0}, vectorizer.Transform(""))
	assert.Equal(t, []float64{0, 2, 0}, vectorizer.Transform("sql, sql"))
	assert.Equal(t, []float64{0, 0, 0}, vectorizer.Transform("rust, golang"))
}
