package matching

import (
	"context"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Contracts for matching storage. Implementations live in
// infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// MatchRequestRepository defines operations for match requests.
type MatchRequestRepository interface {
	// Create stores a new request.
	Create(ctx context.Context, request *MatchRequest) error

	// GetByID returns a request by ID.
	// Returns ErrRequestNotFound if the request does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*MatchRequest, error)

	// Update persists a state change.
	Update(ctx context.Context, request *MatchRequest) error

	// Delete hard-deletes a request.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAll returns requests, optionally filtered by state.
	GetAll(ctx context.Context, state *RequestState) ([]*MatchRequest, error)

	// GetPendingByParticipant returns pending requests referencing the
	// mentor or the mentee.
	GetPendingByParticipant(ctx context.Context, mentorID, menteeID uuid.UUID) ([]*MatchRequest, error)

	// HasPendingForMentor reports whether the mentor has a pending request.
	HasPendingForMentor(ctx context.Context, mentorID uuid.UUID) (bool, error)

	// HasPendingForMentee reports whether the mentee has a pending request.
	HasPendingForMentee(ctx context.Context, menteeID uuid.UUID) (bool, error)

	// DeletePendingByParticipant removes every pending request that
	// references the mentor or the mentee, except the one with keepID.
	// Returns the IDs of the removed requests.
	DeletePendingByParticipant(ctx context.Context, mentorID, menteeID, keepID uuid.UUID) ([]uuid.UUID, error)
}

// MentorshipRepository defines operations for mentorships.
type MentorshipRepository interface {
	// Create stores a new mentorship.
	Create(ctx context.Context, mentorship *Mentorship) error

	// GetByID returns a mentorship by ID.
	// Returns ErrMentorshipNotFound if the mentorship does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Mentorship, error)

	// Update persists state, rating, and evaluation changes.
	Update(ctx context.Context, mentorship *Mentorship) error

	// GetAll returns mentorships, optionally filtered by state.
	GetAll(ctx context.Context, state *MentorshipState) ([]*Mentorship, error)

	// GetByParticipant returns mentorships the profile takes part in,
	// on either side.
	GetByParticipant(ctx context.Context, profileID uuid.UUID) ([]*Mentorship, error)

	// HasActiveForMentor reports whether the mentor has an active mentorship.
	HasActiveForMentor(ctx context.Context, mentorID uuid.UUID) (bool, error)

	// HasActiveForMentee reports whether the mentee has an active mentorship.
	HasActiveForMentee(ctx context.Context, menteeID uuid.UUID) (bool, error)
}

// MeetingRepository defines operations for held and upcoming meetings.
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, meeting *Meeting) error
	GetMeeting(ctx context.Context, id uuid.UUID) (*Meeting, error)
	UpdateMeeting(ctx context.Context, meeting *Meeting) error
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
	GetMeetingsByParticipant(ctx context.Context, profileID uuid.UUID) ([]*Meeting, error)

	CreateUpcoming(ctx context.Context, meeting *UpcomingMeeting) error
	GetUpcoming(ctx context.Context, id uuid.UUID) (*UpcomingMeeting, error)
	DeleteUpcoming(ctx context.Context, id uuid.UUID) error
	GetUpcomingByParticipant(ctx context.Context, profileID uuid.UUID) ([]*UpcomingMeeting, error)
}

// CertificateRepository defines operations for certificates.
type CertificateRepository interface {
	Create(ctx context.Context, certificate *Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByMentee(ctx context.Context, menteeID uuid.UUID) ([]*Certificate, error)
}

// ══════════════════════════════════════════════════════════════════════════════
// UNIT OF WORK
// The accept cascade mutates the request, creates the mentorship, and
// deletes competing requests atomically.
// ══════════════════════════════════════════════════════════════════════════════

// UnitOfWork exposes transaction-scoped repositories.
type UnitOfWork interface {
	// Requests returns the request repository bound to the transaction.
	Requests() MatchRequestRepository

	// Mentorships returns the mentorship repository bound to the transaction.
	Mentorships() MentorshipRepository

	// Commit commits the transaction.
	Commit(ctx context.Context) error

	// Rollback aborts the transaction. Safe to call after Commit.
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory begins transactions.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
