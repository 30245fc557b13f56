package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPROVE ACCOUNT COMMAND
// Flips the active flag on a mentor or mentee profile. Approval admits
// the profile into the matching pool; revocation withdraws it.
// ══════════════════════════════════════════════════════════════════════════════

// AccountKind names the profile type being approved.
type AccountKind string

const (
	AccountKindMentor AccountKind = "mentor"
	AccountKindMentee AccountKind = "mentee"
)

// IsValid reports whether the kind is known.
func (k AccountKind) IsValid() bool {
	return k == AccountKindMentor || k == AccountKindMentee
}

// ApproveAccountCommand approves or revokes one profile.
type ApproveAccountCommand struct {
	// Kind selects mentor or mentee.
	Kind AccountKind

	// ProfileID is the mentor or mentee profile ID.
	ProfileID uuid.UUID

	// Approve sets the target state: true activates, false revokes.
	Approve bool
}

// Validate validates the command.
func (c ApproveAccountCommand) Validate() error {
	if !c.Kind.IsValid() {
		return shared.NewDomainError("profile", "ApproveAccount", shared.ErrInvalidInput, fmt.Sprintf("unknown account kind: %s", c.Kind))
	}
	if c.ProfileID == uuid.Nil {
		return shared.NewDomainError("profile", "ApproveAccount", shared.ErrInvalidID, "profile_id is required")
	}
	return nil
}

// ApproveAccountResult reports the new state.
type ApproveAccountResult struct {
	ProfileID uuid.UUID
	UserID    uuid.UUID
	Active    bool
	Events    []shared.Event
}

// IdentityInvalidator drops cached identities after approval changes.
type IdentityInvalidator interface {
	InvalidateIdentity(ctx context.Context, userID uuid.UUID)
}

// ApproveAccountHandler handles the ApproveAccountCommand.
type ApproveAccountHandler struct {
	mentors     profile.MentorRepository
	mentees     profile.MenteeRepository
	invalidator IdentityInvalidator
	log         *logger.Logger
}

// NewApproveAccountHandler creates a new handler. invalidator may be nil.
func NewApproveAccountHandler(
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	invalidator IdentityInvalidator,
	log *logger.Logger,
) *ApproveAccountHandler {
	return &ApproveAccountHandler{
		mentors:     mentors,
		mentees:     mentees,
		invalidator: invalidator,
		log:         log.With(logger.Component("command.approve_account")),
	}
}

// Handle executes the approve account command.
func (h *ApproveAccountHandler) Handle(ctx context.Context, cmd ApproveAccountCommand) (*ApproveAccountResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var userID uuid.UUID
	switch cmd.Kind {
	case AccountKindMentor:
		mentor, err := h.mentors.GetByID(ctx, cmd.ProfileID)
		if err != nil {
			return nil, err
		}
		if cmd.Approve {
			mentor.Approve()
		} else {
			mentor.Revoke()
		}
		if err := h.mentors.Update(ctx, mentor); err != nil {
			return nil, fmt.Errorf("approve_account: failed to save mentor: %w", err)
		}
		userID = mentor.UserID

	case AccountKindMentee:
		mentee, err := h.mentees.GetByID(ctx, cmd.ProfileID)
		if err != nil {
			return nil, err
		}
		if cmd.Approve {
			mentee.Approve()
		} else {
			mentee.Revoke()
		}
		if err := h.mentees.Update(ctx, mentee); err != nil {
			return nil, fmt.Errorf("approve_account: failed to save mentee: %w", err)
		}
		userID = mentee.UserID
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateIdentity(ctx, userID)
	}

	eventType := shared.EventAccountApproved
	if !cmd.Approve {
		eventType = shared.EventAccountRevoked
	}

	h.log.Info("account approval changed",
		logger.String("kind", string(cmd.Kind)),
		logger.String("profile_id", cmd.ProfileID.String()),
		logger.Bool("active", cmd.Approve),
	)

	return &ApproveAccountResult{
		ProfileID: cmd.ProfileID,
		UserID:    userID,
		Active:    cmd.Approve,
		Events:    []shared.Event{shared.NewBaseEvent(eventType, cmd.ProfileID.String())},
	}, nil
}
