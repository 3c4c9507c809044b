package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// NotFound is the sentinel for text fields no heuristic could resolve.
const NotFound = "Not Found"

// NoSkills is the sentinel for resumes with no recognized skill keyword.
const NoSkills = "None"

// ResumeProfile holds the facts extracted from one resume. Every field is
// always populated: heuristics that find nothing fall back to their typed
// default, so downstream stages never branch on missing data.
type ResumeProfile struct {
	Name            string
	Email           string
	Phone           string
	Education       string
	ExperienceYears int
	Skills          string
}

// degreeKeywords is scanned in order; education extraction commits to the
// first keyword present anywhere in the text and never falls back to the
// next one, even when the per-sentence pass for that keyword finds nothing.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "diploma", "degree",
	"bsc", "msc", "ba", "ma", "b.sc", "m.sc",
}

// skillKeywords is the fixed vocabulary of recognized skills. Extraction
// output preserves this order, not the order of appearance in the text.
var skillKeywords = []string{
	"python", "java", "javascript", "sql", "r", "c++", "c#",
	"machine learning", "deep learning", "data analysis", "statistics",
	"tableau", "power bi", "excel", "aws", "azure", "cloud",
	"git", "docker", "kubernetes", "tensorflow", "pytorch",
	"html", "css", "react", "angular", "node.js", "flask", "django",
}

var (
	emailPattern      = regexp.MustCompile(`\b[\w.+-]+@[\w.-]+\.\w+`)
	phonePattern      = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
	experiencePattern = regexp.MustCompile(`(\d+)\+?\s*(?:-\s*\d+)?\s*years?`)
	camelBoundary     = regexp.MustCompile(`([a-z])([A-Z])`)
	sentenceSplitter  = regexp.MustCompile(`[.\n]`)

	skillPatterns = compileSkillPatterns()
)

func compileSkillPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skillKeywords))
	for i, keyword := range skillKeywords {
		// Whole-word match so "r" does not fire on "ready"
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	}
	return patterns
}

// ExtractResumeInfo runs every field heuristic over the same text.
func ExtractResumeInfo(text string) *ResumeProfile {
	return &ResumeProfile{
		Name:            ExtractName(text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Education:       ExtractEducation(text),
		ExperienceYears: ExtractExperienceYears(text),
		Skills:          ExtractSkills(text),
	}
}

// ExtractName takes the first non-blank line of the resume, whether or not
// it looks like a name. Concatenated capitalized tokens get a word boundary
// inserted ("JohnSmith" -> "John Smith") before title-casing.
func ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = camelBoundary.ReplaceAllString(line, "$1 $2")
		return titleCase(line)
	}
	return NotFound
}

// ExtractEmail returns the first email address in the text.
func ExtractEmail(text string) string {
	if match := emailPattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// ExtractPhone returns the first North-American-style phone number.
func ExtractPhone(text string) string {
	if match := phonePattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// ExtractEducation returns the first sentence or line under 200 characters
// containing a degree keyword, title-cased. The lowercase and original-case
// copies of the text are split in lockstep so the match is case-insensitive
// but the returned snippet keeps its original characters.
func ExtractEducation(text string) string {
	textLower := strings.ToLower(text)

	for _, keyword := range degreeKeywords {
		if !strings.Contains(textLower, keyword) {
			continue
		}

		sentencesLower := sentenceSplitter.Split(textLower, -1)
		sentencesOriginal := sentenceSplitter.Split(text, -1)

		for i, sentence := range sentencesLower {
			if strings.Contains(sentence, keyword) && len(sentence) < 200 {
				return titleCase(strings.TrimSpace(sentencesOriginal[i]))
			}
		}
		break
	}

	return NotFound
}

// ExtractExperienceYears returns the first number immediately preceding
// "year"/"years", allowing a trailing "+" and a "3-5 years" style range.
// Ranges are not averaged; only the first number counts.
func ExtractExperienceYears(text string) int {
	match := experiencePattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return 0
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return years
}

// ExtractSkills returns the recognized skill keywords present in the text
// as whole words, comma-joined in keyword-list order.
func ExtractSkills(text string) string {
	textLower := strings.ToLower(text)

	var found []string
	for i, keyword := range skillKeywords {
		if skillPatterns[i].MatchString(textLower) {
			found = append(found, keyword)
		}
	}

	if len(found) == 0 {
		return NoSkills
	}
	return strings.Join(found, ", ")
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
