package matching

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MATCH REQUEST
// A pending proposal pairing one mentor with one mentee. Accepting it
// starts a mentorship and removes every competing pending request; the
// request rows themselves are the audit trail of proposals.
// ══════════════════════════════════════════════════════════════════════════════

// RequestState is the lifecycle state of a match request.
type RequestState string

const (
	// RequestStatePending awaits an admin decision.
	RequestStatePending RequestState = "pending"

	// RequestStateAccepted was approved; a mentorship exists.
	RequestStateAccepted RequestState = "accepted"

	// RequestStateRejected was declined. Terminal.
	RequestStateRejected RequestState = "rejected"
)

// IsValid reports whether the state is a known state.
func (s RequestState) IsValid() bool {
	switch s {
	case RequestStatePending, RequestStateAccepted, RequestStateRejected:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the state allows no further transitions.
func (s RequestState) IsFinal() bool {
	return s == RequestStateAccepted || s == RequestStateRejected
}

// MatchRequest pairs a mentor with a mentee, carrying the compatibility
// score and evidence computed at creation time.
type MatchRequest struct {
	ID        uuid.UUID
	MentorID  uuid.UUID
	MenteeID  uuid.UUID
	State     RequestState
	Score     int
	Evidence  []string
	CreatedAt time.Time
}

// NewMatchRequestParams holds the data to create a MatchRequest.
type NewMatchRequestParams struct {
	MentorID uuid.UUID
	MenteeID uuid.UUID
	Score    int
	Evidence []string
}

// NewMatchRequest creates a pending request.
func NewMatchRequest(params NewMatchRequestParams) (*MatchRequest, error) {
	if params.MentorID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "NewMatchRequest", shared.ErrInvalidID, "mentor id is required")
	}
	if params.MenteeID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "NewMatchRequest", shared.ErrInvalidID, "mentee id is required")
	}
	if params.Score < 0 {
		return nil, shared.NewDomainError("matching", "NewMatchRequest", shared.ErrInvalidInput, "score cannot be negative")
	}
	return &MatchRequest{
		ID:        uuid.New(),
		MentorID:  params.MentorID,
		MenteeID:  params.MenteeID,
		State:     RequestStatePending,
		Score:     params.Score,
		Evidence:  params.Evidence,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// IsPending reports whether the request still awaits a decision.
func (r *MatchRequest) IsPending() bool {
	return r.State == RequestStatePending
}

// Accept marks the request accepted. The caller is responsible for
// creating the mentorship and removing competing pending requests inside
// the same transaction.
func (r *MatchRequest) Accept() error {
	if r.State != RequestStatePending {
		return shared.ErrRequestNotPending
	}
	r.State = RequestStateAccepted
	return nil
}

// Reject marks the request rejected. Rejecting an already rejected
// request is a no-op; any other non-pending state is a transition error.
func (r *MatchRequest) Reject() error {
	if r.State == RequestStateRejected {
		return nil
	}
	if r.State != RequestStatePending {
		return shared.ErrRequestNotPending
	}
	r.State = RequestStateRejected
	return nil
}

// References reports whether the request involves the given mentor or
// mentee. Used by the accept cascade to find competing requests.
func (r *MatchRequest) References(mentorID, menteeID uuid.UUID) bool {
	return r.MentorID == mentorID || r.MenteeID == menteeID
}
