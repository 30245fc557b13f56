// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// PENDING QUEUE QUERY
// The admin review queue: every pending request joined with the mentor
// and mentee summaries it references. A request pointing at a profile
// that no longer resolves is skipped, not an error; the queue must stay
// readable while an admin cleans up.
// ══════════════════════════════════════════════════════════════════════════════

// MentorSummary is the mentor card shown in the queue.
type MentorSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CurrentTitle string    `json:"current_title"`
	Competencies []string  `json:"competencies"`
	PhotoURL     string    `json:"photo_url,omitempty"`
}

// MenteeSummary is the mentee card shown in the queue.
type MenteeSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Course    string    `json:"course"`
	Objective string    `json:"objective"`
	PhotoURL  string    `json:"photo_url,omitempty"`
}

// QueueEntry is one pending request with its joined summaries.
type QueueEntry struct {
	RequestID uuid.UUID     `json:"request_id"`
	State     string        `json:"state"`
	Score     int           `json:"score"`
	Percent   int           `json:"percent"`
	Evidence  []string      `json:"evidence"`
	Mentor    MentorSummary `json:"mentor"`
	Mentee    MenteeSummary `json:"mentee"`
	CreatedAt time.Time     `json:"created_at"`
}

// PendingQueueHandler builds the admin review queue.
type PendingQueueHandler struct {
	requests matching.MatchRequestRepository
	mentors  profile.MentorRepository
	mentees  profile.MenteeRepository
	users    profile.UserRepository
	log      *logger.Logger
}

// NewPendingQueueHandler creates a new handler.
func NewPendingQueueHandler(
	requests matching.MatchRequestRepository,
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	users profile.UserRepository,
	log *logger.Logger,
) *PendingQueueHandler {
	return &PendingQueueHandler{
		requests: requests,
		mentors:  mentors,
		mentees:  mentees,
		users:    users,
		log:      log.With(logger.Component("query.pending_queue")),
	}
}

// Handle returns the pending queue, newest first as the repository
// orders it.
func (h *PendingQueueHandler) Handle(ctx context.Context) ([]QueueEntry, error) {
	state := matching.RequestStatePending
	requests, err := h.requests.GetAll(ctx, &state)
	if err != nil {
		return nil, err
	}

	entries := make([]QueueEntry, 0, len(requests))
	for _, request := range requests {
		entry, err := h.assemble(ctx, request)
		if err != nil {
			if shared.IsNotFound(err) {
				h.log.Warn("queue entry references missing profile",
					logger.MatchRequestID(request.ID.String()),
					logger.Err(err),
				)
				continue
			}
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// assemble joins one request with its profile summaries.
func (h *PendingQueueHandler) assemble(ctx context.Context, request *matching.MatchRequest) (QueueEntry, error) {
	mentor, err := h.mentors.GetByID(ctx, request.MentorID)
	if err != nil {
		return QueueEntry{}, err
	}
	mentorUser, err := h.users.GetByID(ctx, mentor.UserID)
	if err != nil {
		return QueueEntry{}, err
	}

	mentee, err := h.mentees.GetByID(ctx, request.MenteeID)
	if err != nil {
		return QueueEntry{}, err
	}
	menteeUser, err := h.users.GetByID(ctx, mentee.UserID)
	if err != nil {
		return QueueEntry{}, err
	}

	return QueueEntry{
		RequestID: request.ID,
		State:     string(request.State),
		Score:     request.Score,
		Percent:   matching.Result{Raw: request.Score}.Percent(),
		Evidence:  request.Evidence,
		Mentor: MentorSummary{
			ID:           mentor.ID,
			Name:         mentorUser.FullName,
			CurrentTitle: mentor.CurrentTitle,
			Competencies: mentor.Competencies,
			PhotoURL:     mentor.PhotoURL,
		},
		Mentee: MenteeSummary{
			ID:        mentee.ID,
			Name:      menteeUser.FullName,
			Course:    mentee.Course,
			Objective: mentee.Objective,
			PhotoURL:  mentee.PhotoURL,
		},
		CreatedAt: request.CreatedAt,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// GET REQUEST QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetRequestHandler returns one request with its summaries.
type GetRequestHandler struct {
	queue    *PendingQueueHandler
	requests matching.MatchRequestRepository
}

// NewGetRequestHandler creates a new handler.
func NewGetRequestHandler(queue *PendingQueueHandler, requests matching.MatchRequestRepository) *GetRequestHandler {
	return &GetRequestHandler{queue: queue, requests: requests}
}

// Handle returns the request by ID, in queue-entry form. Unlike the
// queue listing, a dangling profile reference here is reported as
// not-found.
func (h *GetRequestHandler) Handle(ctx context.Context, requestID uuid.UUID) (QueueEntry, error) {
	request, err := h.requests.GetByID(ctx, requestID)
	if err != nil {
		return QueueEntry{}, err
	}
	return h.queue.assemble(ctx, request)
}
