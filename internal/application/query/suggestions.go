package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUGGESTIONS QUERY
// Ranks eligible mentors for one mentee without creating anything.
// Used by admins to preview pairings before committing the queue.
// ══════════════════════════════════════════════════════════════════════════════

// Suggestion is one ranked mentor for a mentee.
type Suggestion struct {
	Mentor   MentorSummary `json:"mentor"`
	Score    int           `json:"score"`
	Percent  int           `json:"percent"`
	Evidence []string      `json:"evidence"`
}

// SuggestionsQuery asks for candidates for one mentee.
type SuggestionsQuery struct {
	MenteeID uuid.UUID

	// TopK and MinScore override the configured defaults when positive.
	TopK     int
	MinScore int

	// SameUniversity restricts the pool to the mentee's institution.
	SameUniversity bool
}

// SuggestionsHandler handles the SuggestionsQuery.
type SuggestionsHandler struct {
	mentors     profile.MentorRepository
	mentees     profile.MenteeRepository
	users       profile.UserRepository
	requests    matching.MatchRequestRepository
	mentorships matching.MentorshipRepository
	selector    *matching.Selector
	defaults    matching.SelectionOptions
}

// NewSuggestionsHandler creates a new handler.
func NewSuggestionsHandler(
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	users profile.UserRepository,
	requests matching.MatchRequestRepository,
	mentorships matching.MentorshipRepository,
	selector *matching.Selector,
	defaults matching.SelectionOptions,
) *SuggestionsHandler {
	return &SuggestionsHandler{
		mentors:     mentors,
		mentees:     mentees,
		users:       users,
		requests:    requests,
		mentorships: mentorships,
		selector:    selector,
		defaults:    defaults,
	}
}

// Handle ranks eligible mentors for the mentee.
func (h *SuggestionsHandler) Handle(ctx context.Context, q SuggestionsQuery) ([]Suggestion, error) {
	if q.MenteeID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "Suggestions", shared.ErrInvalidID, "mentee_id is required")
	}

	mentee, err := h.mentees.GetByID(ctx, q.MenteeID)
	if err != nil {
		return nil, err
	}

	opts := h.defaults
	if q.TopK > 0 {
		opts.TopK = q.TopK
	}
	if q.MinScore > 0 {
		opts.MinScore = q.MinScore
	}

	pool, index, err := h.eligiblePool(ctx, mentee, q.SameUniversity)
	if err != nil {
		return nil, err
	}

	candidates, err := h.selector.SelectCandidates(
		matching.MenteeTraits{Competencies: mentee.Competencies, Hobbies: mentee.Hobbies, Course: mentee.Course},
		pool,
		opts,
	)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		mentor := index[c.MentorID]
		user, err := h.users.GetByID(ctx, mentor.UserID)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, Suggestion{
			Mentor: MentorSummary{
				ID:           mentor.ID,
				Name:         user.FullName,
				CurrentTitle: mentor.CurrentTitle,
				Competencies: mentor.Competencies,
				PhotoURL:     mentor.PhotoURL,
			},
			Score:    c.Result.Raw,
			Percent:  c.Result.Percent(),
			Evidence: c.Result.Evidence(),
		})
	}
	return suggestions, nil
}

// eligiblePool returns active, unengaged mentors and an ID index.
func (h *SuggestionsHandler) eligiblePool(ctx context.Context, mentee *profile.Mentee, sameUniversity bool) ([]matching.MentorCandidate, map[uuid.UUID]*profile.Mentor, error) {
	filter := profile.ActiveOnly()
	if sameUniversity {
		if mentee.UniversityID == nil {
			return nil, nil, shared.ErrNoEligibleMentors
		}
		filter.UniversityID = mentee.UniversityID
	}

	mentors, err := h.mentors.GetAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	pool := make([]matching.MentorCandidate, 0, len(mentors))
	index := make(map[uuid.UUID]*profile.Mentor, len(mentors))
	for _, mentor := range mentors {
		free, err := h.mentorFree(ctx, mentor.ID)
		if err != nil {
			return nil, nil, err
		}
		if !free {
			continue
		}
		index[mentor.ID] = mentor
		pool = append(pool, matching.MentorCandidate{
			MentorID: mentor.ID,
			Traits:   matching.MentorTraits{Competencies: mentor.Competencies, Hobbies: mentor.Hobbies},
		})
	}
	return pool, index, nil
}

func (h *SuggestionsHandler) mentorFree(ctx context.Context, mentorID uuid.UUID) (bool, error) {
	active, err := h.mentorships.HasActiveForMentor(ctx, mentorID)
	if err != nil {
		return false, err
	}
	if active {
		return false, nil
	}
	pending, err := h.requests.HasPendingForMentor(ctx, mentorID)
	if err != nil {
		return false, err
	}
	return !pending, nil
}
