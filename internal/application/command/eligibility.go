// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ELIGIBILITY
// A participant enters a new pairing only while it has neither an active
// mentorship nor a pending request. Both creation and acceptance check
// this, acceptance again inside the transaction.
// ══════════════════════════════════════════════════════════════════════════════

// EligibilityChecker answers whether a participant can enter a new pairing.
type EligibilityChecker struct {
	requests    matching.MatchRequestRepository
	mentorships matching.MentorshipRepository
}

// NewEligibilityChecker creates an EligibilityChecker over the given repos.
func NewEligibilityChecker(requests matching.MatchRequestRepository, mentorships matching.MentorshipRepository) *EligibilityChecker {
	return &EligibilityChecker{requests: requests, mentorships: mentorships}
}

// MentorFree returns ErrMentorBusy if the mentor has an active mentorship
// or a pending request.
func (e *EligibilityChecker) MentorFree(ctx context.Context, mentorID uuid.UUID) error {
	active, err := e.mentorships.HasActiveForMentor(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("eligibility: mentor mentorship check: %w", err)
	}
	if active {
		return shared.ErrMentorBusy
	}

	pending, err := e.requests.HasPendingForMentor(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("eligibility: mentor request check: %w", err)
	}
	if pending {
		return shared.ErrMentorBusy
	}
	return nil
}

// MenteeFree returns ErrMenteeBusy if the mentee has an active mentorship
// or a pending request.
func (e *EligibilityChecker) MenteeFree(ctx context.Context, menteeID uuid.UUID) error {
	active, err := e.mentorships.HasActiveForMentee(ctx, menteeID)
	if err != nil {
		return fmt.Errorf("eligibility: mentee mentorship check: %w", err)
	}
	if active {
		return shared.ErrMenteeBusy
	}

	pending, err := e.requests.HasPendingForMentee(ctx, menteeID)
	if err != nil {
		return fmt.Errorf("eligibility: mentee request check: %w", err)
	}
	if pending {
		return shared.ErrMenteeBusy
	}
	return nil
}
