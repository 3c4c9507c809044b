package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "John Smith\njohn.smith@email.com\n555-123-4567\nBachelor of Science in Computer Science.\n5 years experience in python, sql, aws."

func TestExtractResumeInfo_FullResume(t *testing.T) {
	profile := ExtractResumeInfo(sampleResume)
	require.NotNil(t, profile)

	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, "john.smith@email.com", profile.Email)
	assert.Equal(t, "555-123-4567", profile.Phone)
	assert.Contains(t, profile.Education, "Bachelor Of Science In Computer Science")
	assert.Equal(t, 5, profile.ExperienceYears)
	assert.Equal(t, "python, sql, aws", profile.Skills)
}

func TestExtractResumeInfo_BlankText(t *testing.T) {
	profile := ExtractResumeInfo("\n\n   \n")

	assert.Equal(t, NotFound, profile.Name)
	assert.Equal(t, NotFound, profile.Email)
	assert.Equal(t, NotFound, profile.Phone)
	assert.Equal(t, NotFound, profile.Education)
	assert.Equal(t, 0, profile.ExperienceYears)
	assert.Equal(t, NoSkills, profile.Skills)
}

func TestExtractResumeInfo_NoRecognizableFields(t *testing.T) {
	profile := ExtractResumeInfo("hello world\nthis is plain text without anything useful")

	assert.Equal(t, "Hello World", profile.Name)
	assert.Equal(t, NotFound, profile.Email)
	assert.Equal(t, NotFound, profile.Phone)
	assert.Equal(t, NotFound, profile.Education)
	assert.Equal(t, 0, profile.ExperienceYears)
	assert.Equal(t, NoSkills, profile.Skills)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain name", "John Smith\nrest", "John Smith"},
		{"concatenated tokens get a boundary", "JohnSmith\nrest", "John Smith"},
		{"uppercase is normalized", "JOHN SMITH\nrest", "John Smith"},
		{"leading blank lines are skipped", "\n  \nJane Doe\nrest", "Jane Doe"},
		{"first line wins even when not a name", "Curriculum vitae\nJane Doe", "Curriculum Vitae"},
		{"empty text", "", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane+cv@example.co.uk", ExtractEmail("contact: jane+cv@example.co.uk or by phone"))
	assert.Equal(t, "a@b.com", ExtractEmail("a@b.com c@d.org"))
	assert.Equal(t, NotFound, ExtractEmail("no address here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"call 555-123-4567 anytime", "555-123-4567"},
		{"call (555) 123-4567 anytime", "(555) 123-4567"},
		{"call 555.123.4567 anytime", "555.123.4567"},
		{"call 5551234567 anytime", "5551234567"},
		{"no number", NotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPhone(tt.text), "text: %q", tt.text)
	}
}

func TestExtractEducation(t *testing.T) {
	text := "Jane Doe\nMaster of Science in Statistics. Worked at Acme."
	assert.Equal(t, "Master Of Science In Statistics", ExtractEducation(text))
}

func TestExtractEducation_KeepsOriginalCaseSource(t *testing.T) {
	text := "studied for a BSc in physics\nother line"
	assert.Equal(t, "Studied For A Bsc In Physics", ExtractEducation(text))
}

func TestExtractEducation_NoFallbackAfterFirstKeyword(t *testing.T) {
	// "bachelor" appears only inside a sentence over the 200-char cap, so
	// its per-sentence pass finds nothing. Extraction commits to the first
	// matched keyword and never retries with "msc", even though that one
	// would succeed.
	longSentence := strings.Repeat("filler ", 30) + "bachelor of arts " + strings.Repeat("filler ", 10)
	text := longSentence + "\nmsc in physics"
	require.GreaterOrEqual(t, len(longSentence), 200)

	assert.Equal(t, NotFound, ExtractEducation(text))
}

func TestExtractEducation_SkipsOversizedSentences(t *testing.T) {
	long := strings.Repeat("x", 250) + " bachelor of arts"
	text := long + ".\nbachelor of science"
	assert.Equal(t, "Bachelor Of Science", ExtractEducation(text))
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"5 years experience", 5},
		{"10+ years of work", 10},
		{"3-5 years in data", 3},
		{"7 Years Experience", 7},
		{"one year of study", 0},
		{"worked a long time", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractExperienceYears(tt.text), "text: %q", tt.text)
	}
}

func TestExtractSkills_KeywordListOrder(t *testing.T) {
	// Appearance order in the text is aws, python, sql; the output follows
	// the fixed keyword-list order instead.
	text := "worked with aws, then python, finally sql"
	assert.Equal(t, "python, sql, aws", ExtractSkills(text))
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "ready" must not fire the single-letter "r" keyword
	assert.Equal(t, NoSkills, ExtractSkills("ready for anything"))
	assert.Equal(t, "r", ExtractSkills("statistical analysis in r and excel sheets")[:1])
}

func TestExtractSkills_MultiWordAndCase(t *testing.T) {
	text := "Experienced in Machine Learning, Power BI and Node.js"
	assert.Equal(t, "machine learning", strings.Split(ExtractSkills(text), ", ")[0])
	assert.Contains(t, ExtractSkills(text), "power bi")
	assert.Contains(t, ExtractSkills(text), "node.js")
}

func TestExtractSkills_None(t *testing.T) {
	assert.Equal(t, NoSkills, ExtractSkills("gardening and cooking"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Bachelor Of Science", titleCase("bachelor of science"))
	assert.Equal(t, "John Smith", titleCase("JOHN SMITH"))
	assert.Equal(t, "Jane-Anne", titleCase("jane-anne"))
}
