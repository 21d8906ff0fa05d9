package classifier

import (
	"testing"
	"time"

	"rudereminder/internal/domain/constant"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := map[string]constant.Category{
		"Go to the GYM":              constant.CategoryHealth,
		"finish report":              constant.CategoryWork,
		"call mom":                   constant.CategoryPersonal,
		"study for the exam":         constant.CategoryEducation,
		"pay rent":                   constant.CategoryFinance,
		"do the laundry":             constant.CategoryHousehold,
		"practice guitar":            constant.CategoryCreative,
		"stare at the wall":          constant.CategoryGeneral,
		"":                           constant.CategoryGeneral,
		"workout before the meeting": constant.CategoryHealth, // health is checked first
	}
	for text, want := range cases {
		assert.Equal(t, want, Categorize(text), text)
	}
}

func TestUrgencyOf(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, constant.UrgencyHigh, UrgencyOf(now.Add(30*time.Minute), now))
	assert.Equal(t, constant.UrgencyHigh, UrgencyOf(now.Add(-time.Minute), now))
	assert.Equal(t, constant.UrgencyMedium, UrgencyOf(now.Add(5*time.Hour), now))
	assert.Equal(t, constant.UrgencyLow, UrgencyOf(now.Add(48*time.Hour), now))
}

func TestExtractActionWords(t *testing.T) {
	assert.Equal(t, []string{"call", "email"}, ExtractActionWords("Call the bank, then email and call again"))
	assert.Empty(t, ExtractActionWords("relax"))
	assert.Equal(t, []string{"finish"}, ExtractActionWords("finish report"))
}

func TestActionVocabularyMatchesPattern(t *testing.T) {
	for _, verb := range ActionVerbs {
		assert.Equal(t, []string{verb}, ExtractActionWords(verb))
	}
}
