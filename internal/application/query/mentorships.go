package query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
)

// ══════════════════════════════════════════════════════════════════════════════
// MENTORSHIPS QUERY
// ══════════════════════════════════════════════════════════════════════════════

// MentorshipView is the read projection of a mentorship.
type MentorshipView struct {
	ID       uuid.UUID `json:"id"`
	MentorID uuid.UUID `json:"mentor_id"`
	MenteeID uuid.UUID `json:"mentee_id"`
	State    string    `json:"state"`

	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`

	MentorRating *int `json:"mentor_rating,omitempty"`
	MenteeRating *int `json:"mentee_rating,omitempty"`

	MentorEvaluation string `json:"mentor_evaluation,omitempty"`
	MenteeEvaluation string `json:"mentee_evaluation,omitempty"`
}

// MentorshipsHandler serves mentorship read operations.
type MentorshipsHandler struct {
	mentorships matching.MentorshipRepository
}

// NewMentorshipsHandler creates a new handler.
func NewMentorshipsHandler(mentorships matching.MentorshipRepository) *MentorshipsHandler {
	return &MentorshipsHandler{mentorships: mentorships}
}

// Get returns one mentorship by ID.
func (h *MentorshipsHandler) Get(ctx context.Context, id uuid.UUID) (MentorshipView, error) {
	mentorship, err := h.mentorships.GetByID(ctx, id)
	if err != nil {
		return MentorshipView{}, err
	}
	return toView(mentorship), nil
}

// List returns mentorships, optionally filtered by state.
func (h *MentorshipsHandler) List(ctx context.Context, state *matching.MentorshipState) ([]MentorshipView, error) {
	mentorships, err := h.mentorships.GetAll(ctx, state)
	if err != nil {
		return nil, err
	}
	views := make([]MentorshipView, 0, len(mentorships))
	for _, m := range mentorships {
		views = append(views, toView(m))
	}
	return views, nil
}

// ListByParticipant returns mentorships the profile takes part in.
func (h *MentorshipsHandler) ListByParticipant(ctx context.Context, profileID uuid.UUID) ([]MentorshipView, error) {
	mentorships, err := h.mentorships.GetByParticipant(ctx, profileID)
	if err != nil {
		return nil, err
	}
	views := make([]MentorshipView, 0, len(mentorships))
	for _, m := range mentorships {
		views = append(views, toView(m))
	}
	return views, nil
}

func toView(m *matching.Mentorship) MentorshipView {
	return MentorshipView{
		ID:               m.ID,
		MentorID:         m.MentorID,
		MenteeID:         m.MenteeID,
		State:            string(m.State),
		StartedAt:        m.StartedAt,
		EndedAt:          m.EndedAt,
		MentorRating:     m.MentorRating,
		MenteeRating:     m.MenteeRating,
		MentorEvaluation: m.MentorEvaluation,
		MenteeEvaluation: m.MenteeEvaluation,
	}
}
