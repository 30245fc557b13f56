package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACCEPT MATCH REQUEST COMMAND
// Accepting a pending request starts a mentorship and removes every other
// pending request that references either participant. The state change,
// the mentorship row, and the cascade all commit in one transaction.
// ══════════════════════════════════════════════════════════════════════════════

// AcceptMatchRequestCommand accepts a pending request.
type AcceptMatchRequestCommand struct {
	// RequestID is the request to accept.
	RequestID uuid.UUID
}

// Validate validates the command.
func (c AcceptMatchRequestCommand) Validate() error {
	if c.RequestID == uuid.Nil {
		return shared.NewDomainError("matching", "AcceptRequest", shared.ErrInvalidID, "request_id is required")
	}
	return nil
}

// AcceptMatchRequestResult contains the started mentorship and the
// requests removed by the cascade.
type AcceptMatchRequestResult struct {
	MentorshipID  uuid.UUID
	MentorID      uuid.UUID
	MenteeID      uuid.UUID
	SupersededIDs []uuid.UUID
	Events        []shared.Event
}

// AcceptMatchRequestHandler handles the AcceptMatchRequestCommand.
type AcceptMatchRequestHandler struct {
	uowFactory matching.UnitOfWorkFactory
	mentors    profile.MentorRepository
	mentees    profile.MenteeRepository
	log        *logger.Logger
}

// NewAcceptMatchRequestHandler creates a new handler.
func NewAcceptMatchRequestHandler(
	uowFactory matching.UnitOfWorkFactory,
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	log *logger.Logger,
) *AcceptMatchRequestHandler {
	return &AcceptMatchRequestHandler{
		uowFactory: uowFactory,
		mentors:    mentors,
		mentees:    mentees,
		log:        log.With(logger.Component("command.accept_request")),
	}
}

// Handle executes the accept command.
func (h *AcceptMatchRequestHandler) Handle(ctx context.Context, cmd AcceptMatchRequestCommand) (*AcceptMatchRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.uowFactory.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("accept_request: begin transaction: %w", err)
	}
	defer uow.Rollback(ctx)

	requests := uow.Requests()
	mentorships := uow.Mentorships()

	request, err := requests.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := request.Accept(); err != nil {
		return nil, err
	}

	// Re-check eligibility inside the transaction; the pool may have
	// moved since the request was created.
	if err := h.recheck(ctx, mentorships, request); err != nil {
		return nil, err
	}

	mentorship, err := matching.NewMentorship(request.MentorID, request.MenteeID)
	if err != nil {
		return nil, err
	}
	if err := mentorships.Create(ctx, mentorship); err != nil {
		return nil, fmt.Errorf("accept_request: failed to create mentorship: %w", err)
	}

	if err := requests.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("accept_request: failed to update request: %w", err)
	}

	superseded, err := requests.DeletePendingByParticipant(ctx, request.MentorID, request.MenteeID, request.ID)
	if err != nil {
		return nil, fmt.Errorf("accept_request: failed to remove competing requests: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("accept_request: commit: %w", err)
	}

	h.log.Info("match request accepted",
		logger.MatchRequestID(request.ID.String()),
		logger.MentorshipID(mentorship.ID.String()),
		logger.Int("superseded", len(superseded)),
	)

	supersededStr := make([]string, len(superseded))
	for i, id := range superseded {
		supersededStr[i] = id.String()
	}
	event := shared.NewRequestAcceptedEvent(
		request.ID.String(),
		mentorship.ID.String(),
		request.MentorID.String(),
		request.MenteeID.String(),
		supersededStr,
	)

	return &AcceptMatchRequestResult{
		MentorshipID:  mentorship.ID,
		MentorID:      request.MentorID,
		MenteeID:      request.MenteeID,
		SupersededIDs: superseded,
		Events:        []shared.Event{event},
	}, nil
}

// recheck verifies both participants are still approved and free of an
// active mentorship.
func (h *AcceptMatchRequestHandler) recheck(ctx context.Context, mentorships matching.MentorshipRepository, request *matching.MatchRequest) error {
	mentor, err := h.mentors.GetByID(ctx, request.MentorID)
	if err != nil {
		return err
	}
	if !mentor.Active {
		return shared.ErrMentorBusy
	}

	mentee, err := h.mentees.GetByID(ctx, request.MenteeID)
	if err != nil {
		return err
	}
	if !mentee.Active {
		return shared.ErrMenteeBusy
	}

	busy, err := mentorships.HasActiveForMentor(ctx, request.MentorID)
	if err != nil {
		return fmt.Errorf("accept_request: mentor mentorship check: %w", err)
	}
	if busy {
		return shared.ErrMentorBusy
	}

	busy, err = mentorships.HasActiveForMentee(ctx, request.MenteeID)
	if err != nil {
		return fmt.Errorf("accept_request: mentee mentorship check: %w", err)
	}
	if busy {
		return shared.ErrMenteeBusy
	}
	return nil
}
