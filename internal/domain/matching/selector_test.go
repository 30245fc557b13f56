package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

func TestSelector_RanksDescendingByScore(t *testing.T) {
	selector := NewSelector(NewLiteralScorer())

	weak := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Hobbies: []string{"chess"}}}
	strong := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Competencies: []string{"python", "go"}}}
	mid := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Competencies: []string{"python"}}}

	mentee := MenteeTraits{
		Competencies: []string{"python", "go"},
		Hobbies:      []string{"chess"},
	}

	candidates, err := selector.SelectCandidates(mentee, []MentorCandidate{weak, strong, mid}, SelectionOptions{TopK: 3})
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, strong.MentorID, candidates[0].MentorID)
	assert.Equal(t, 10, candidates[0].Result.Raw)
	assert.Equal(t, mid.MentorID, candidates[1].MentorID)
	assert.Equal(t, weak.MentorID, candidates[2].MentorID)
}

func TestSelector_StableOrderOnTies(t *testing.T) {
	selector := NewSelector(NewLiteralScorer())

	first := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Competencies: []string{"go"}}}
	second := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Competencies: []string{"go"}}}

	mentee := MenteeTraits{Competencies: []string{"go"}}

	candidates, err := selector.SelectCandidates(mentee, []MentorCandidate{first, second}, SelectionOptions{TopK: 2})
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Equal scores keep pool order.
	assert.Equal(t, first.MentorID, candidates[0].MentorID)
	assert.Equal(t, second.MentorID, candidates[1].MentorID)
}

func TestSelector_TopKTruncates(t *testing.T) {
	selector := NewSelector(NewLiteralScorer())

	pool := make([]MentorCandidate, 5)
	for i := range pool {
		pool[i] = MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Competencies: []string{"go"}}}
	}

	candidates, err := selector.SelectCandidates(MenteeTraits{Competencies: []string{"go"}}, pool, SelectionOptions{TopK: 2})
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestSelector_MinScoreFallbackKeepsBest(t *testing.T) {
	selector := NewSelector(NewLiteralScorer())

	low := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Hobbies: []string{"chess"}}}
	none := MentorCandidate{MentorID: uuid.New()}

	mentee := MenteeTraits{Hobbies: []string{"chess"}}

	// Both score below 5; a non-empty pool still yields the best candidate.
	candidates, err := selector.SelectCandidates(mentee, []MentorCandidate{none, low}, SelectionOptions{TopK: 3, MinScore: 5})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, low.MentorID, candidates[0].MentorID)
}

func TestSelector_EmptyPool(t *testing.T) {
	selector := NewSelector(NewLiteralScorer())

	_, err := selector.SelectCandidates(MenteeTraits{}, nil, DefaultSelectionOptions())
	assert.ErrorIs(t, err, shared.ErrNoEligibleMentors)
	assert.True(t, shared.IsConflict(err))
}

func TestSelector_Best(t *testing.T) {
	selector := NewSelector(NewLiteralScorer())

	strong := MentorCandidate{MentorID: uuid.New(), Traits: MentorTraits{Competencies: []string{"go"}}}
	weak := MentorCandidate{MentorID: uuid.New()}

	best, err := selector.Best(MenteeTraits{Competencies: []string{"go"}}, []MentorCandidate{weak, strong})
	require.NoError(t, err)
	assert.Equal(t, strong.MentorID, best.MentorID)
}
