package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPROVALS QUERY
// Lists signups awaiting admin approval.
// ══════════════════════════════════════════════════════════════════════════════

// PendingAccount is one unapproved signup.
type PendingAccount struct {
	ProfileID uuid.UUID `json:"profile_id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// ApprovalsHandler lists profiles awaiting approval.
type ApprovalsHandler struct {
	mentors profile.MentorRepository
	mentees profile.MenteeRepository
	users   profile.UserRepository
	log     *logger.Logger
}

// NewApprovalsHandler creates a new handler.
func NewApprovalsHandler(
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	users profile.UserRepository,
	log *logger.Logger,
) *ApprovalsHandler {
	return &ApprovalsHandler{
		mentors: mentors,
		mentees: mentees,
		users:   users,
		log:     log.With(logger.Component("query.approvals")),
	}
}

// Handle returns every unapproved mentor and mentee. Profiles whose
// account no longer resolves are skipped.
func (h *ApprovalsHandler) Handle(ctx context.Context) ([]PendingAccount, error) {
	accounts := make([]PendingAccount, 0)

	mentors, err := h.mentors.GetAll(ctx, profile.PendingApproval())
	if err != nil {
		return nil, err
	}
	for _, mentor := range mentors {
		user, err := h.users.GetByID(ctx, mentor.UserID)
		if err != nil {
			if shared.IsNotFound(err) {
				h.log.Warn("mentor profile without account", logger.MentorID(mentor.ID.String()))
				continue
			}
			return nil, err
		}
		accounts = append(accounts, PendingAccount{
			ProfileID: mentor.ID,
			UserID:    user.ID,
			Kind:      "mentor",
			Name:      user.FullName,
			Email:     user.Email,
		})
	}

	mentees, err := h.mentees.GetAll(ctx, profile.PendingApproval())
	if err != nil {
		return nil, err
	}
	for _, mentee := range mentees {
		user, err := h.users.GetByID(ctx, mentee.UserID)
		if err != nil {
			if shared.IsNotFound(err) {
				h.log.Warn("mentee profile without account", logger.MenteeID(mentee.ID.String()))
				continue
			}
			return nil, err
		}
		accounts = append(accounts, PendingAccount{
			ProfileID: mentee.ID,
			UserID:    user.ID,
			Kind:      "mentee",
			Name:      user.FullName,
			Email:     user.Email,
		})
	}

	return accounts, nil
}
