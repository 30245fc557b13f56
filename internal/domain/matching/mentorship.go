package matching

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MENTORSHIP
// An accepted pairing. At most one active mentorship per mentor and per
// mentee; the partial unique indexes in persistence back this invariant
// under the accept transaction.
// ══════════════════════════════════════════════════════════════════════════════

// MentorshipState is the lifecycle state of a mentorship.
type MentorshipState string

const (
	// MentorshipStateActive is an ongoing mentorship.
	MentorshipStateActive MentorshipState = "active"

	// MentorshipStateConcluded ended normally. Terminal.
	MentorshipStateConcluded MentorshipState = "concluded"

	// MentorshipStateCancelled was stopped early. Terminal.
	MentorshipStateCancelled MentorshipState = "cancelled"
)

// IsValid reports whether the state is a known state.
func (s MentorshipState) IsValid() bool {
	switch s {
	case MentorshipStateActive, MentorshipStateConcluded, MentorshipStateCancelled:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the state allows no further transitions.
func (s MentorshipState) IsFinal() bool {
	return s == MentorshipStateConcluded || s == MentorshipStateCancelled
}

// Mentorship is an accepted mentor-mentee pairing with its evaluations.
type Mentorship struct {
	ID       uuid.UUID
	MentorID uuid.UUID
	MenteeID uuid.UUID
	State    MentorshipState

	StartedAt time.Time
	EndedAt   *time.Time

	// Ratings are 1-5, nil until the party submits one.
	MentorRating *int
	MenteeRating *int

	// Free-text evaluations submitted at conclusion.
	MentorEvaluation string
	MenteeEvaluation string
}

// NewMentorship creates an active mentorship starting now.
func NewMentorship(mentorID, menteeID uuid.UUID) (*Mentorship, error) {
	if mentorID == uuid.Nil || menteeID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "NewMentorship", shared.ErrInvalidID, "mentor and mentee ids are required")
	}
	return &Mentorship{
		ID:        uuid.New(),
		MentorID:  mentorID,
		MenteeID:  menteeID,
		State:     MentorshipStateActive,
		StartedAt: time.Now().UTC(),
	}, nil
}

// IsActive reports whether the mentorship is ongoing.
func (m *Mentorship) IsActive() bool {
	return m.State == MentorshipStateActive
}

// Conclude ends the mentorship normally, stamping the end date.
func (m *Mentorship) Conclude() error {
	if m.State.IsFinal() {
		return shared.NewDomainError("matching", "Conclude", shared.ErrStateTransition, "mentorship already finalized")
	}
	now := time.Now().UTC()
	m.State = MentorshipStateConcluded
	m.EndedAt = &now
	return nil
}

// Cancel stops the mentorship early, stamping the end date.
func (m *Mentorship) Cancel() error {
	if m.State.IsFinal() {
		return shared.NewDomainError("matching", "Cancel", shared.ErrStateTransition, "mentorship already finalized")
	}
	now := time.Now().UTC()
	m.State = MentorshipStateCancelled
	m.EndedAt = &now
	return nil
}

// RateByMentor records the mentor's 1-5 rating of the mentorship.
func (m *Mentorship) RateByMentor(rating int) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("matching", "Rate", shared.ErrInvalidInput, "rating must be between 1 and 5")
	}
	m.MentorRating = &rating
	return nil
}

// RateByMentee records the mentee's 1-5 rating of the mentorship.
func (m *Mentorship) RateByMentee(rating int) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("matching", "Rate", shared.ErrInvalidInput, "rating must be between 1 and 5")
	}
	m.MenteeRating = &rating
	return nil
}

// Involves reports whether the given profile takes part in the mentorship.
func (m *Mentorship) Involves(profileID uuid.UUID) bool {
	return m.MentorID == profileID || m.MenteeID == profileID
}
