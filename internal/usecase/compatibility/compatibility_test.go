package compatibility

import (
	"testing"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hiking", "coffee"}, Tokenize("Hiking,  COFFEE "))
	assert.Equal(t, []string{"coffee"}, Tokenize("coffee, Coffee, coffee"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" , , "))
}

func TestScoreSymmetric(t *testing.T) {
	a := &domain.Profile{
		Interests: "hiking, coffee, gaming",
		Major:     strPtr("Biology"),
		ClassYear: strPtr("2026"),
		Badges:    []string{"early bird", "foodie"},
		IcebreakerAnswers: domain.IcebreakerAnswers{
			"q1": "tacos",
			"q2": "beach",
		},
	}
	b := &domain.Profile{
		Interests: "coffee, reading",
		Major:     strPtr("biology "),
		ClassYear: strPtr("2027"),
		Badges:    []string{"foodie"},
		IcebreakerAnswers: domain.IcebreakerAnswers{
			"q1": "tacos",
			"q2": "mountains",
		},
	}

	ab := Score(a, b)
	ba := Score(b, a)
	assert.Equal(t, ab.Score, ba.Score)
	assert.Equal(t, ab.SharedInterests, ba.SharedInterests)
	assert.Equal(t, ab.IcebreakerMatches, ba.IcebreakerMatches)
	assert.Equal(t, ab.BadgeOverlap, ba.BadgeOverlap)
}

func TestScoreSharedInterests(t *testing.T) {
	a := &domain.Profile{Interests: "hiking, coffee"}
	b := &domain.Profile{Interests: "coffee, gaming"}

	res := Score(a, b)
	assert.Equal(t, []string{"coffee"}, res.SharedInterests)
}

func TestScoreWeighting(t *testing.T) {
	// Everything overlaps: one interest, same major, one shared icebreaker
	// answer, one badge, same class year.
	a := &domain.Profile{
		Interests:         "chess",
		Major:             strPtr("Math"),
		ClassYear:         strPtr("2026"),
		Badges:            []string{"night owl"},
		IcebreakerAnswers: domain.IcebreakerAnswers{"q1": "pizza"},
	}
	b := &domain.Profile{
		Interests:         "chess",
		Major:             strPtr("math"),
		ClassYear:         strPtr("2026"),
		Badges:            []string{"night owl"},
		IcebreakerAnswers: domain.IcebreakerAnswers{"q1": "pizza"},
	}

	res := Score(a, b)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "Amazing Match", res.Label)
	assert.True(t, res.SameMajor)
	assert.Equal(t, 1, res.IcebreakerMatches)
	assert.Equal(t, 1, res.BadgeOverlap)
}

func TestScoreEmptyProfiles(t *testing.T) {
	// No interests and no badges drop those weights; major and class year
	// stay in the denominator and contribute nothing.
	res := Score(&domain.Profile{}, &domain.Profile{})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, "New Discovery", res.Label)
	assert.Empty(t, res.SharedInterests)
}

func TestScoreMajorInsensitiveClassYearVerbatim(t *testing.T) {
	a := &domain.Profile{Major: strPtr(" Computer Science "), ClassYear: strPtr("2026")}
	b := &domain.Profile{Major: strPtr("computer science"), ClassYear: strPtr(" 2026")}

	res := Score(a, b)
	assert.True(t, res.SameMajor)
	// Class year is compared verbatim, so the padded value does not count.
	// Only the major's 15 of the 25 always-counted points land.
	assert.Equal(t, 60, res.Score)
}

func TestScoreMissingMajorCountsAgainst(t *testing.T) {
	a := &domain.Profile{ClassYear: strPtr("2026")}
	b := &domain.Profile{ClassYear: strPtr("2026")}

	// 10 of 25: class year matches, absent majors still weigh in.
	res := Score(a, b)
	assert.Equal(t, 40, res.Score)
}

func TestScoreBounds(t *testing.T) {
	profiles := []*domain.Profile{
		{},
		{Interests: "a, b, c", Badges: []string{"x"}},
		{Interests: "c", Major: strPtr("Art"), ClassYear: strPtr("2028")},
		{IcebreakerAnswers: domain.IcebreakerAnswers{"q1": "1", "q2": "2"}},
	}
	for _, a := range profiles {
		for _, b := range profiles {
			res := Score(a, b)
			assert.GreaterOrEqual(t, res.Score, 0)
			assert.LessOrEqual(t, res.Score, 100)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Amazing Match"},
		{80, "Amazing Match"},
		{79, "Great Match"},
		{60, "Great Match"},
		{59, "Good Match"},
		{40, "Good Match"},
		{39, "Some Common Ground"},
		{20, "Some Common Ground"},
		{19, "New Discovery"},
		{0, "New Discovery"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.score), "score=%d", tt.score)
	}
}
