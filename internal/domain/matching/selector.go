package matching

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CANDIDATE SELECTION
//
// The selector ranks an eligible mentor pool against one mentee. The pool
// is pre-filtered by the caller (active mentors without an active
// mentorship or pending request); the selector only orders and trims it.
// ══════════════════════════════════════════════════════════════════════════════

// MentorCandidate is one eligible mentor entering selection.
type MentorCandidate struct {
	MentorID uuid.UUID
	Traits   MentorTraits
}

// Candidate is a ranked selection result.
type Candidate struct {
	MentorID uuid.UUID
	Result   Result
}

// SelectionOptions tune the selector.
type SelectionOptions struct {
	// TopK caps the number of candidates returned. Zero or negative
	// means no cap.
	TopK int

	// MinScore drops candidates scoring below it. If the filter empties
	// a non-empty pool, the single best candidate is kept instead so a
	// mentee is never left without a proposal.
	MinScore int
}

// DefaultSelectionOptions returns the standard selection tuning.
func DefaultSelectionOptions() SelectionOptions {
	return SelectionOptions{TopK: 3, MinScore: 1}
}

// Selector ranks eligible mentors for a mentee.
type Selector struct {
	scorer Scorer
}

// NewSelector creates a Selector using the given scoring strategy.
func NewSelector(scorer Scorer) *Selector {
	return &Selector{scorer: scorer}
}

// SelectCandidates scores every mentor in the pool against the mentee,
// sorts descending by raw score (stable, pool order breaks ties), applies
// the min-score filter with single-best fallback, and truncates to TopK.
// An empty pool returns ErrNoEligibleMentors.
func (s *Selector) SelectCandidates(mentee MenteeTraits, pool []MentorCandidate, opts SelectionOptions) ([]Candidate, error) {
	if len(pool) == 0 {
		return nil, shared.ErrNoEligibleMentors
	}

	ranked := make([]Candidate, 0, len(pool))
	for _, mc := range pool {
		ranked = append(ranked, Candidate{
			MentorID: mc.MentorID,
			Result:   s.scorer.Score(mc.Traits, mentee),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Raw > ranked[j].Result.Raw
	})

	filtered := ranked[:0:0]
	for _, c := range ranked {
		if c.Result.Raw >= opts.MinScore {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		// Nothing cleared the bar; keep the best candidate anyway.
		filtered = ranked[:1]
	}

	if opts.TopK > 0 && len(filtered) > opts.TopK {
		filtered = filtered[:opts.TopK]
	}
	return filtered, nil
}

// Best returns the single top candidate for the mentee.
func (s *Selector) Best(mentee MenteeTraits, pool []MentorCandidate) (Candidate, error) {
	candidates, err := s.SelectCandidates(mentee, pool, SelectionOptions{TopK: 1})
	if err != nil {
		return Candidate{}, err
	}
	return candidates[0], nil
}
