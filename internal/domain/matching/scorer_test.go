package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Machine-Learning, data  science!")
	assert.Len(t, tokens, 4)
	assert.Contains(t, tokens, "machine")
	assert.Contains(t, tokens, "learning")
	assert.Contains(t, tokens, "data")
	assert.Contains(t, tokens, "science")

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("---"))
}

func TestLiteralScorer_WeightedScore(t *testing.T) {
	scorer := NewLiteralScorer()

	mentor := MentorTraits{
		Competencies: []string{"python", "data"},
		Hobbies:      []string{"chess"},
	}
	mentee := MenteeTraits{
		Competencies: []string{"python"},
		Hobbies:      []string{"chess", "hiking"},
		Course:       "data",
	}

	result := scorer.Score(mentor, mentee)

	// 5*1 shared competency + 1*1 shared hobby + 3 course bonus
	assert.Equal(t, 9, result.Raw)
	assert.Equal(t, []string{"python"}, result.SharedCompetencies)
	assert.Equal(t, []string{"chess"}, result.SharedHobbies)
	assert.True(t, result.CourseCovered)
	assert.Equal(t, 20, result.Percent())
}

func TestLiteralScorer_CaseInsensitive(t *testing.T) {
	scorer := NewLiteralScorer()

	result := scorer.Score(
		MentorTraits{Competencies: []string{"Machine Learning"}},
		MenteeTraits{Competencies: []string{"machine learning"}},
	)

	assert.Equal(t, 5, result.Raw)
	assert.Equal(t, []string{"machine learning"}, result.SharedCompetencies)
}

func TestLiteralScorer_NoPartialTagMatch(t *testing.T) {
	scorer := NewLiteralScorer()

	result := scorer.Score(
		MentorTraits{Competencies: []string{"machine learning"}},
		MenteeTraits{Competencies: []string{"machine"}},
	)

	assert.Equal(t, 0, result.Raw)
	assert.Empty(t, result.SharedCompetencies)
}

func TestLiteralScorer_EmptyTraits(t *testing.T) {
	scorer := NewLiteralScorer()

	result := scorer.Score(MentorTraits{}, MenteeTraits{})

	assert.Equal(t, 0, result.Raw)
	assert.Equal(t, 0, result.Percent())
	assert.False(t, result.CourseCovered)
	assert.Empty(t, result.Evidence())
}

func TestLiteralScorer_DuplicateTagsCountOnce(t *testing.T) {
	scorer := NewLiteralScorer()

	result := scorer.Score(
		MentorTraits{Competencies: []string{"go", "go"}},
		MenteeTraits{Competencies: []string{"go", "GO", "go"}},
	)

	assert.Equal(t, 5, result.Raw)
	assert.Equal(t, []string{"go"}, result.SharedCompetencies)
}

func TestResult_PercentClamped(t *testing.T) {
	// 10 shared competencies exceed the nominal ceiling.
	over := Result{Raw: 50}
	assert.Equal(t, 100, over.Percent())

	zero := Result{Raw: 0}
	assert.Equal(t, 0, zero.Percent())
}

func TestResult_Evidence(t *testing.T) {
	r := Result{
		SharedCompetencies: []string{"python"},
		SharedHobbies:      []string{"chess"},
		CourseCovered:      true,
	}

	evidence := r.Evidence()
	assert.Equal(t, []string{
		"shared competency: python",
		"shared hobby: chess",
		"course covered by mentor competencies",
	}, evidence)
}

func TestTokenScorer_ParityOnExactTags(t *testing.T) {
	literal := NewLiteralScorer()
	token := NewTokenScorer()

	mentor := MentorTraits{
		Competencies: []string{"python", "statistics"},
		Hobbies:      []string{"chess"},
	}
	mentee := MenteeTraits{
		Competencies: []string{"python"},
		Hobbies:      []string{"chess"},
		Course:       "statistics",
	}

	assert.Equal(t, literal.Score(mentor, mentee).Raw, token.Score(mentor, mentee).Raw)
}

func TestTokenScorer_PartialOverlap(t *testing.T) {
	scorer := NewTokenScorer()

	result := scorer.Score(
		MentorTraits{Competencies: []string{"machine learning"}},
		MenteeTraits{Competencies: []string{"deep learning"}},
	)

	// "learning" token shared across tags
	assert.Equal(t, 5, result.Raw)
	assert.Equal(t, []string{"deep learning"}, result.SharedCompetencies)
}

func TestTokenScorer_CourseSubstring(t *testing.T) {
	scorer := NewTokenScorer()

	result := scorer.Score(
		MentorTraits{Competencies: []string{"software engineering"}},
		MenteeTraits{Course: "engineering"},
	)

	assert.True(t, result.CourseCovered)
	assert.Equal(t, 3, result.Raw)
}
