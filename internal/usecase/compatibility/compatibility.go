package compatibility

import (
	"math"
	"sort"
	"strings"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
)

// Weights of the individual signals. Interests and badges only enter the
// denominator when both profiles actually carry data for them; major and
// class year are always counted, and each icebreaker question answered by
// both sides adds its own weight.
const (
	weightInterests          = 35.0
	weightMajor              = 15.0
	weightIcebreakerQuestion = 10.0
	weightBadges             = 20.0
	weightClassYear          = 10.0
)

// Result is a display-only explanation of match quality. It never gates or
// orders the swipe deck.
type Result struct {
	Score             int      `json:"score"`
	Label             string   `json:"label"`
	SharedInterests   []string `json:"shared_interests"`
	SameMajor         bool     `json:"same_major"`
	IcebreakerMatches int      `json:"icebreaker_matches"`
	BadgeOverlap      int      `json:"badge_overlap"`
}

// Score computes a 0-100 compatibility score between two profiles as a
// weighted percentage of their shared attributes. It is symmetric in its
// arguments.
func Score(a, b *domain.Profile) Result {
	var num, den float64
	res := Result{SharedInterests: []string{}}

	// Shared interests: Jaccard over the tokenized interest strings.
	aTokens := Tokenize(a.Interests)
	bTokens := Tokenize(b.Interests)
	if union := unionSize(aTokens, bTokens); union > 0 {
		shared := intersection(aTokens, bTokens)
		res.SharedInterests = shared
		num += weightInterests * float64(len(shared)) / float64(union)
		den += weightInterests
	}

	// Same major: the weight stays in the denominator even without data, so
	// missing majors count against the score rather than being skipped.
	den += weightMajor
	if sameText(a.Major, b.Major) {
		res.SameMajor = true
		num += weightMajor
	}

	// Icebreakers: each question answered by both sides is its own signal.
	for q, aAnswer := range a.IcebreakerAnswers {
		bAnswer, ok := b.IcebreakerAnswers[q]
		if !ok {
			continue
		}
		den += weightIcebreakerQuestion
		if aAnswer == bAnswer {
			res.IcebreakerMatches++
			num += weightIcebreakerQuestion
		}
	}

	// Badge overlap, same shape as interests.
	aBadges := dedupe(a.Badges)
	bBadges := dedupe(b.Badges)
	if union := unionSize(aBadges, bBadges); union > 0 {
		shared := intersection(aBadges, bBadges)
		res.BadgeOverlap = len(shared)
		num += weightBadges * float64(len(shared)) / float64(union)
		den += weightBadges
	}

	// Class year, counted like major but compared verbatim.
	den += weightClassYear
	if a.ClassYear != nil && b.ClassYear != nil && *a.ClassYear != "" && *a.ClassYear == *b.ClassYear {
		num += weightClassYear
	}

	if den == 0 {
		res.Label = Label(0)
		return res
	}
	score := int(math.Round(100 * num / den))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	res.Score = score
	res.Label = Label(score)
	return res
}

// Label maps a score to its quality tier. Boundaries are inclusive on the
// lower bound of each tier.
func Label(score int) string {
	switch {
	case score >= 80:
		return "Amazing Match"
	case score >= 60:
		return "Great Match"
	case score >= 40:
		return "Good Match"
	case score >= 20:
		return "Some Common Ground"
	default:
		return "New Discovery"
	}
}

// Tokenize splits a free-text comma-separated interest string into
// lowercased, trimmed, deduplicated tokens.
func Tokenize(interests string) []string {
	parts := strings.Split(interests, ",")
	seen := make(map[string]bool, len(parts))
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func intersection(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, item := range b {
		inB[item] = true
	}
	shared := make([]string, 0)
	for _, item := range a {
		if inB[item] {
			shared = append(shared, item)
		}
	}
	sort.Strings(shared)
	return shared
}

func unionSize(a, b []string) int {
	seen := make(map[string]bool, len(a)+len(b))
	for _, item := range a {
		seen[item] = true
	}
	for _, item := range b {
		seen[item] = true
	}
	return len(seen)
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	at := strings.ToLower(strings.TrimSpace(*a))
	bt := strings.ToLower(strings.TrimSpace(*b))
	return at != "" && at == bt
}
