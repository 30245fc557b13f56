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
// REJECT MATCH REQUEST COMMAND
// Rejection is terminal and idempotent: repeating it on an already
// rejected request succeeds without changing anything.
// ══════════════════════════════════════════════════════════════════════════════

// RejectMatchRequestCommand rejects a pending request.
type RejectMatchRequestCommand struct {
	// RequestID is the request to reject.
	RequestID uuid.UUID
}

// Validate validates the command.
func (c RejectMatchRequestCommand) Validate() error {
	if c.RequestID == uuid.Nil {
		return shared.NewDomainError("matching", "RejectRequest", shared.ErrInvalidID, "request_id is required")
	}
	return nil
}

// RejectMatchRequestResult reports the final state.
type RejectMatchRequestResult struct {
	RequestID uuid.UUID
	State     matching.RequestState
	Events    []shared.Event
}

// RejectMatchRequestHandler handles the RejectMatchRequestCommand.
type RejectMatchRequestHandler struct {
	requests matching.MatchRequestRepository
	log      *logger.Logger
}

// NewRejectMatchRequestHandler creates a new handler.
func NewRejectMatchRequestHandler(requests matching.MatchRequestRepository, log *logger.Logger) *RejectMatchRequestHandler {
	return &RejectMatchRequestHandler{
		requests: requests,
		log:      log.With(logger.Component("command.reject_request")),
	}
}

// Handle executes the reject command.
func (h *RejectMatchRequestHandler) Handle(ctx context.Context, cmd RejectMatchRequestCommand) (*RejectMatchRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	request, err := h.requests.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	wasRejected := request.State == matching.RequestStateRejected

	if err := request.Reject(); err != nil {
		return nil, err
	}

	events := make([]shared.Event, 0, 1)
	if !wasRejected {
		if err := h.requests.Update(ctx, request); err != nil {
			return nil, fmt.Errorf("reject_request: failed to save: %w", err)
		}
		h.log.Info("match request rejected", logger.MatchRequestID(request.ID.String()))
		events = append(events, shared.NewBaseEvent(shared.EventRequestRejected, request.ID.String()))
	}

	return &RejectMatchRequestResult{
		RequestID: request.ID,
		State:     request.State,
		Events:    events,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DELETE MATCH REQUEST COMMAND
// Hard delete, reserved for administrators.
// ══════════════════════════════════════════════════════════════════════════════

// DeleteMatchRequestCommand removes a request outright.
type DeleteMatchRequestCommand struct {
	// RequestID is the request to delete.
	RequestID uuid.UUID
}

// DeleteMatchRequestResult reports the deletion.
type DeleteMatchRequestResult struct {
	RequestID uuid.UUID
	Events    []shared.Event
}

// DeleteMatchRequestHandler handles the DeleteMatchRequestCommand.
type DeleteMatchRequestHandler struct {
	requests matching.MatchRequestRepository
	log      *logger.Logger
}

// NewDeleteMatchRequestHandler creates a new handler.
func NewDeleteMatchRequestHandler(requests matching.MatchRequestRepository, log *logger.Logger) *DeleteMatchRequestHandler {
	return &DeleteMatchRequestHandler{
		requests: requests,
		log:      log.With(logger.Component("command.delete_request")),
	}
}

// Handle executes the delete command.
func (h *DeleteMatchRequestHandler) Handle(ctx context.Context, cmd DeleteMatchRequestCommand) (*DeleteMatchRequestResult, error) {
	if cmd.RequestID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "DeleteRequest", shared.ErrInvalidID, "request_id is required")
	}

	// Existence check so deletion of a missing request reports not-found.
	if _, err := h.requests.GetByID(ctx, cmd.RequestID); err != nil {
		return nil, err
	}

	if err := h.requests.Delete(ctx, cmd.RequestID); err != nil {
		return nil, fmt.Errorf("delete_request: failed to delete: %w", err)
	}

	h.log.Info("match request deleted", logger.MatchRequestID(cmd.RequestID.String()))

	return &DeleteMatchRequestResult{
		RequestID: cmd.RequestID,
		Events:    []shared.Event{shared.NewBaseEvent(shared.EventRequestDeleted, cmd.RequestID.String())},
	}, nil
}
