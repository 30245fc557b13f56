package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE MENTORSHIP COMMAND
// Covers state changes (conclude, cancel) and the ratings/evaluations
// each party submits along the way.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateMentorshipCommand mutates one mentorship. Nil fields are left
// untouched.
type UpdateMentorshipCommand struct {
	// MentorshipID is the mentorship to update.
	MentorshipID uuid.UUID

	// State transitions the mentorship when set. Only "concluded" and
	// "cancelled" are accepted; reverting to active is not.
	State *matching.MentorshipState

	MentorRating *int
	MenteeRating *int

	MentorEvaluation *string
	MenteeEvaluation *string
}

// Validate validates the command.
func (c UpdateMentorshipCommand) Validate() error {
	if c.MentorshipID == uuid.Nil {
		return shared.NewDomainError("matching", "UpdateMentorship", shared.ErrInvalidID, "mentorship_id is required")
	}
	if c.State != nil {
		if !c.State.IsValid() {
			return shared.NewDomainError("matching", "UpdateMentorship", shared.ErrInvalidInput, fmt.Sprintf("unknown state: %s", *c.State))
		}
		if *c.State == matching.MentorshipStateActive {
			return shared.NewDomainError("matching", "UpdateMentorship", shared.ErrStateTransition, "mentorship cannot be reactivated")
		}
	}
	return nil
}

// UpdateMentorshipResult reports the updated mentorship.
type UpdateMentorshipResult struct {
	MentorshipID uuid.UUID
	State        matching.MentorshipState
	Events       []shared.Event
}

// UpdateMentorshipHandler handles the UpdateMentorshipCommand.
type UpdateMentorshipHandler struct {
	mentorships matching.MentorshipRepository
	log         *logger.Logger
}

// NewUpdateMentorshipHandler creates a new handler.
func NewUpdateMentorshipHandler(mentorships matching.MentorshipRepository, log *logger.Logger) *UpdateMentorshipHandler {
	return &UpdateMentorshipHandler{
		mentorships: mentorships,
		log:         log.With(logger.Component("command.update_mentorship")),
	}
}

// Handle executes the update mentorship command.
func (h *UpdateMentorshipHandler) Handle(ctx context.Context, cmd UpdateMentorshipCommand) (*UpdateMentorshipResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	mentorship, err := h.mentorships.GetByID(ctx, cmd.MentorshipID)
	if err != nil {
		return nil, err
	}

	events := make([]shared.Event, 0, 1)

	if cmd.State != nil && *cmd.State != mentorship.State {
		switch *cmd.State {
		case matching.MentorshipStateConcluded:
			if err := mentorship.Conclude(); err != nil {
				return nil, err
			}
			events = append(events, shared.NewBaseEvent(shared.EventMentorshipConcluded, mentorship.ID.String()))
		case matching.MentorshipStateCancelled:
			if err := mentorship.Cancel(); err != nil {
				return nil, err
			}
			events = append(events, shared.NewBaseEvent(shared.EventMentorshipCancelled, mentorship.ID.String()))
		}
	}

	if cmd.MentorRating != nil {
		if err := mentorship.RateByMentor(*cmd.MentorRating); err != nil {
			return nil, err
		}
	}
	if cmd.MenteeRating != nil {
		if err := mentorship.RateByMentee(*cmd.MenteeRating); err != nil {
			return nil, err
		}
	}
	if cmd.MentorEvaluation != nil {
		mentorship.MentorEvaluation = *cmd.MentorEvaluation
	}
	if cmd.MenteeEvaluation != nil {
		mentorship.MenteeEvaluation = *cmd.MenteeEvaluation
	}

	if err := h.mentorships.Update(ctx, mentorship); err != nil {
		return nil, fmt.Errorf("update_mentorship: failed to save: %w", err)
	}

	h.log.Info("mentorship updated",
		logger.MentorshipID(mentorship.ID.String()),
		logger.String("state", string(mentorship.State)),
	)

	return &UpdateMentorshipResult{
		MentorshipID: mentorship.ID,
		State:        mentorship.State,
		Events:       events,
	}, nil
}
