package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMPATIBILITY SCORING
//
// A mentor and a mentee are compared on three signals:
// 1. Shared competencies (dominant, weight 5)
// 2. Shared hobbies (weight 1)
// 3. Mentee course covered by mentor competencies (flat bonus 3)
//
// The raw score is reported alongside a percentage against the nominal
// maximum. Scoring is pure and deterministic.
// ══════════════════════════════════════════════════════════════════════════════

const (
	competencyWeight = 5
	hobbyWeight      = 1
	courseBonus      = 3

	// maxRawScore is the nominal ceiling used for the percentage view.
	// Raw scores above it are possible with large tag lists; Percent clamps.
	maxRawScore = 45
)

// MentorTraits is the mentor side of a comparison.
type MentorTraits struct {
	Competencies []string
	Hobbies      []string
}

// MenteeTraits is the mentee side of a comparison.
type MenteeTraits struct {
	Competencies []string
	Hobbies      []string
	Course       string
}

// Result is the outcome of scoring one mentor against one mentee.
type Result struct {
	// Raw is the weighted compatibility score.
	Raw int

	// SharedCompetencies are the competency tags present on both sides,
	// normalized and sorted.
	SharedCompetencies []string

	// SharedHobbies are the hobby tags present on both sides, normalized
	// and sorted.
	SharedHobbies []string

	// CourseCovered reports whether the mentee's course appears among the
	// mentor's competencies.
	CourseCovered bool
}

// Percent maps the raw score onto 0-100 against the nominal maximum,
// rounding half away from zero and clamping the result.
func (r Result) Percent() int {
	p := int(math.Round(float64(r.Raw) / maxRawScore * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Evidence renders the human-readable reasons behind the score.
func (r Result) Evidence() []string {
	evidence := make([]string, 0, len(r.SharedCompetencies)+len(r.SharedHobbies)+1)
	for _, c := range r.SharedCompetencies {
		evidence = append(evidence, fmt.Sprintf("shared competency: %s", c))
	}
	for _, h := range r.SharedHobbies {
		evidence = append(evidence, fmt.Sprintf("shared hobby: %s", h))
	}
	if r.CourseCovered {
		evidence = append(evidence, "course covered by mentor competencies")
	}
	return evidence
}

// Scorer computes the compatibility of a mentor and a mentee.
type Scorer interface {
	Score(mentor MentorTraits, mentee MenteeTraits) Result
}

// ══════════════════════════════════════════════════════════════════════════════
// LITERAL SCORER (default)
// ══════════════════════════════════════════════════════════════════════════════

// LiteralScorer compares tags by exact membership after lower-casing.
// "Machine Learning" and "machine learning" match; "ml" does not.
type LiteralScorer struct{}

// NewLiteralScorer creates the default scorer.
func NewLiteralScorer() LiteralScorer { return LiteralScorer{} }

// Score implements Scorer.
func (LiteralScorer) Score(mentor MentorTraits, mentee MenteeTraits) Result {
	mentorComp := normalizeTags(mentor.Competencies)
	mentorHobby := normalizeTags(mentor.Hobbies)

	sharedComp := intersect(mentorComp, mentee.Competencies)
	sharedHobby := intersect(mentorHobby, mentee.Hobbies)

	course := strings.TrimSpace(Normalize(mentee.Course))
	_, covered := mentorComp[course]
	if course == "" {
		covered = false
	}

	raw := competencyWeight*len(sharedComp) + hobbyWeight*len(sharedHobby)
	if covered {
		raw += courseBonus
	}

	return Result{
		Raw:                raw,
		SharedCompetencies: sharedComp,
		SharedHobbies:      sharedHobby,
		CourseCovered:      covered,
	}
}

// intersect returns the normalized tags from list that exist in set,
// deduplicated and sorted.
func intersect(set map[string]struct{}, list []string) []string {
	seen := make(map[string]struct{})
	shared := make([]string, 0)
	for _, t := range list {
		t = strings.TrimSpace(Normalize(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		if _, ok := set[t]; ok {
			seen[t] = struct{}{}
			shared = append(shared, t)
		}
	}
	sort.Strings(shared)
	return shared
}

// ══════════════════════════════════════════════════════════════════════════════
// TOKEN SCORER (alternate strategy)
// ══════════════════════════════════════════════════════════════════════════════

// TokenScorer compares tags by word-token overlap instead of whole-tag
// equality, so "machine learning" and "deep learning" share a point of
// contact. A tag fully contained as a substring of the other side's text
// scores the containment bonus; otherwise the token intersection counts.
// Selected with the scorer strategy setting.
type TokenScorer struct{}

// NewTokenScorer creates the token overlap scorer.
func NewTokenScorer() TokenScorer { return TokenScorer{} }

// Score implements Scorer.
func (TokenScorer) Score(mentor MentorTraits, mentee MenteeTraits) Result {
	sharedComp := tokenShared(mentor.Competencies, mentee.Competencies)
	sharedHobby := tokenShared(mentor.Hobbies, mentee.Hobbies)

	course := strings.TrimSpace(Normalize(mentee.Course))
	covered := course != "" && tokenContains(mentor.Competencies, course)

	raw := competencyWeight*len(sharedComp) + hobbyWeight*len(sharedHobby)
	if covered {
		raw += courseBonus
	}

	return Result{
		Raw:                raw,
		SharedCompetencies: sharedComp,
		SharedHobbies:      sharedHobby,
		CourseCovered:      covered,
	}
}

// tokenShared returns the mentee tags that overlap any mentor tag, either
// by substring containment or by sharing at least one word token.
func tokenShared(mentorTags, menteeTags []string) []string {
	mentorText := Normalize(strings.Join(mentorTags, " "))
	mentorTokens := Tokenize(mentorText)

	seen := make(map[string]struct{})
	shared := make([]string, 0)
	for _, tag := range menteeTags {
		norm := strings.TrimSpace(Normalize(tag))
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		if strings.Contains(mentorText, norm) || overlaps(mentorTokens, Tokenize(norm)) {
			seen[norm] = struct{}{}
			shared = append(shared, norm)
		}
	}
	sort.Strings(shared)
	return shared
}

// tokenContains reports whether text is a substring of any tag or shares
// a word token with the tag list.
func tokenContains(tags []string, text string) bool {
	joined := Normalize(strings.Join(tags, " "))
	if strings.Contains(joined, text) {
		return true
	}
	return overlaps(Tokenize(joined), Tokenize(text))
}

func overlaps(a, b map[string]struct{}) bool {
	for t := range b {
		if _, ok := a[t]; ok {
			return true
		}
	}
	return false
}
