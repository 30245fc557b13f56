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
// CREATE MATCH REQUEST COMMAND
// Pairs one mentor with one mentee as a pending proposal. Both sides must
// be approved and free; the compatibility score and evidence are computed
// here and frozen on the request.
// ══════════════════════════════════════════════════════════════════════════════

// CreateMatchRequestCommand contains the data to propose a pairing.
type CreateMatchRequestCommand struct {
	// MentorID is the mentor profile ID.
	MentorID uuid.UUID

	// MenteeID is the mentee profile ID.
	MenteeID uuid.UUID
}

// Validate validates the command.
func (c CreateMatchRequestCommand) Validate() error {
	if c.MentorID == uuid.Nil {
		return shared.NewDomainError("matching", "CreateRequest", shared.ErrInvalidID, "mentor_id is required")
	}
	if c.MenteeID == uuid.Nil {
		return shared.NewDomainError("matching", "CreateRequest", shared.ErrInvalidID, "mentee_id is required")
	}
	return nil
}

// CreateMatchRequestResult contains the created request.
type CreateMatchRequestResult struct {
	RequestID uuid.UUID
	Score     int
	Percent   int
	Evidence  []string
	Events    []shared.Event
}

// CreateMatchRequestHandler handles the CreateMatchRequestCommand.
type CreateMatchRequestHandler struct {
	mentors     profile.MentorRepository
	mentees     profile.MenteeRepository
	users       profile.UserRepository
	requests    matching.MatchRequestRepository
	eligibility *EligibilityChecker
	scorer      matching.Scorer
	notifier    MatchNotifier
	log         *logger.Logger
}

// NewCreateMatchRequestHandler creates a new handler.
func NewCreateMatchRequestHandler(
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	users profile.UserRepository,
	requests matching.MatchRequestRepository,
	eligibility *EligibilityChecker,
	scorer matching.Scorer,
	notifier MatchNotifier,
	log *logger.Logger,
) *CreateMatchRequestHandler {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CreateMatchRequestHandler{
		mentors:     mentors,
		mentees:     mentees,
		users:       users,
		requests:    requests,
		eligibility: eligibility,
		scorer:      scorer,
		notifier:    notifier,
		log:         log.With(logger.Component("command.create_request")),
	}
}

// Handle executes the create match request command.
func (h *CreateMatchRequestHandler) Handle(ctx context.Context, cmd CreateMatchRequestCommand) (*CreateMatchRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	mentor, err := h.mentors.GetByID(ctx, cmd.MentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.Active {
		return nil, shared.ErrMentorBusy
	}

	mentee, err := h.mentees.GetByID(ctx, cmd.MenteeID)
	if err != nil {
		return nil, err
	}
	if !mentee.Active {
		return nil, shared.ErrMenteeBusy
	}

	if err := h.eligibility.MentorFree(ctx, mentor.ID); err != nil {
		return nil, err
	}
	if err := h.eligibility.MenteeFree(ctx, mentee.ID); err != nil {
		return nil, err
	}

	score := h.scorer.Score(
		matching.MentorTraits{Competencies: mentor.Competencies, Hobbies: mentor.Hobbies},
		matching.MenteeTraits{Competencies: mentee.Competencies, Hobbies: mentee.Hobbies, Course: mentee.Course},
	)

	request, err := matching.NewMatchRequest(matching.NewMatchRequestParams{
		MentorID: mentor.ID,
		MenteeID: mentee.ID,
		Score:    score.Raw,
		Evidence: score.Evidence(),
	})
	if err != nil {
		return nil, err
	}

	if err := h.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create_request: failed to save: %w", err)
	}

	h.log.Info("match request created",
		logger.MatchRequestID(request.ID.String()),
		logger.MentorID(mentor.ID.String()),
		logger.MenteeID(mentee.ID.String()),
		logger.Score(score.Raw),
	)

	h.notifyMentor(ctx, mentor, mentee, score.Raw)

	event := shared.NewRequestCreatedEvent(request.ID.String(), mentor.ID.String(), mentee.ID.String(), score.Raw)

	return &CreateMatchRequestResult{
		RequestID: request.ID,
		Score:     score.Raw,
		Percent:   score.Percent(),
		Evidence:  request.Evidence,
		Events:    []shared.Event{event},
	}, nil
}

// notifyMentor sends the proposal mail. Best-effort.
func (h *CreateMatchRequestHandler) notifyMentor(ctx context.Context, mentor *profile.Mentor, mentee *profile.Mentee, score int) {
	mentorUser, err := h.users.GetByID(ctx, mentor.UserID)
	if err != nil {
		h.log.Warn("mentor account lookup for notification failed", logger.MentorID(mentor.ID.String()), logger.Err(err))
		return
	}
	menteeUser, err := h.users.GetByID(ctx, mentee.UserID)
	if err != nil {
		h.log.Warn("mentee account lookup for notification failed", logger.MenteeID(mentee.ID.String()), logger.Err(err))
		return
	}

	if err := h.notifier.MatchProposed(ctx, mentorUser.Email, mentorUser.FullName, menteeUser.FullName, score); err != nil {
		h.log.Warn("match notification failed", logger.Email(mentorUser.Email), logger.Err(err))
	}
}
