package command

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
// UNIVERSITY COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

// UniversityHandler handles university write operations.
type UniversityHandler struct {
	universities profile.UniversityRepository
	log          *logger.Logger
}

// NewUniversityHandler creates a new handler.
func NewUniversityHandler(universities profile.UniversityRepository, log *logger.Logger) *UniversityHandler {
	return &UniversityHandler{
		universities: universities,
		log:          log.With(logger.Component("command.university")),
	}
}

// Create registers a university.
func (h *UniversityHandler) Create(ctx context.Context, name string) (*profile.University, error) {
	university, err := profile.NewUniversity(name)
	if err != nil {
		return nil, err
	}
	if err := h.universities.Create(ctx, university); err != nil {
		return nil, err
	}
	h.log.Info("university created", logger.String("name", university.Name))
	return university, nil
}

// Rename changes a university's name.
func (h *UniversityHandler) Rename(ctx context.Context, id uuid.UUID, name string) (*profile.University, error) {
	university, err := h.universities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := university.Rename(name); err != nil {
		return nil, err
	}
	if err := h.universities.Update(ctx, university); err != nil {
		return nil, err
	}
	return university, nil
}

// Delete removes a university. Affiliated profiles stay, with the
// linkage cleared by the storage layer.
func (h *UniversityHandler) Delete(ctx context.Context, id uuid.UUID) error {
	return h.universities.Delete(ctx, id)
}

// ══════════════════════════════════════════════════════════════════════════════
// MEETING COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

// RecordMeetingCommand records a held meeting.
type RecordMeetingCommand struct {
	MentorID    uuid.UUID
	MenteeID    uuid.UUID
	HeldAt      time.Time
	DurationMin int
	Theme       string
	Topics      string
	Progress    string
	Notes       string
}

// UpdateMeetingCommand mutates a held meeting's record. Nil fields are
// left untouched.
type UpdateMeetingCommand struct {
	MeetingID uuid.UUID

	HeldAt      *time.Time
	DurationMin *int
	Theme       *string
	Topics      *string
	Progress    *string
	Notes       *string
}

// Validate validates the command.
func (c UpdateMeetingCommand) Validate() error {
	if c.MeetingID == uuid.Nil {
		return shared.NewDomainError("matching", "UpdateMeeting", shared.ErrInvalidID, "meeting_id is required")
	}
	if c.DurationMin != nil && *c.DurationMin < 0 {
		return shared.NewDomainError("matching", "UpdateMeeting", shared.ErrInvalidInput, "duration cannot be negative")
	}
	return nil
}

// ScheduleMeetingCommand proposes a future meeting.
type ScheduleMeetingCommand struct {
	MentorID    uuid.UUID
	MenteeID    uuid.UUID
	SuggestedAt time.Time
	Topic       string
}

// MeetingHandler handles meeting write operations.
type MeetingHandler struct {
	meetings matching.MeetingRepository
	log      *logger.Logger
}

// NewMeetingHandler creates a new handler.
func NewMeetingHandler(meetings matching.MeetingRepository, log *logger.Logger) *MeetingHandler {
	return &MeetingHandler{
		meetings: meetings,
		log:      log.With(logger.Component("command.meeting")),
	}
}

// Record stores a held meeting.
func (h *MeetingHandler) Record(ctx context.Context, cmd RecordMeetingCommand) (*matching.Meeting, error) {
	meeting, err := matching.NewMeeting(matching.NewMeetingParams{
		MentorID:    cmd.MentorID,
		MenteeID:    cmd.MenteeID,
		HeldAt:      cmd.HeldAt,
		DurationMin: cmd.DurationMin,
		Theme:       cmd.Theme,
		Topics:      cmd.Topics,
		Progress:    cmd.Progress,
		Notes:       cmd.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := h.meetings.CreateMeeting(ctx, meeting); err != nil {
		return nil, err
	}
	h.log.Info("meeting recorded",
		logger.MentorID(meeting.MentorID.String()),
		logger.MenteeID(meeting.MenteeID.String()),
	)
	return meeting, nil
}

// Update applies the set fields to a held meeting.
func (h *MeetingHandler) Update(ctx context.Context, cmd UpdateMeetingCommand) (*matching.Meeting, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	meeting, err := h.meetings.GetMeeting(ctx, cmd.MeetingID)
	if err != nil {
		return nil, err
	}

	if cmd.HeldAt != nil {
		meeting.HeldAt = *cmd.HeldAt
	}
	if cmd.DurationMin != nil {
		meeting.DurationMin = *cmd.DurationMin
	}
	if cmd.Theme != nil {
		meeting.Theme = *cmd.Theme
	}
	if cmd.Topics != nil {
		meeting.Topics = *cmd.Topics
	}
	if cmd.Progress != nil {
		meeting.Progress = *cmd.Progress
	}
	if cmd.Notes != nil {
		meeting.Notes = *cmd.Notes
	}

	if err := h.meetings.UpdateMeeting(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Delete removes a held meeting.
func (h *MeetingHandler) Delete(ctx context.Context, id uuid.UUID) error {
	return h.meetings.DeleteMeeting(ctx, id)
}

// Schedule proposes a future meeting.
func (h *MeetingHandler) Schedule(ctx context.Context, cmd ScheduleMeetingCommand) (*matching.UpcomingMeeting, error) {
	meeting, err := matching.NewUpcomingMeeting(cmd.MentorID, cmd.MenteeID, cmd.SuggestedAt, cmd.Topic)
	if err != nil {
		return nil, err
	}
	if err := h.meetings.CreateUpcoming(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Cancel removes a proposed meeting.
func (h *MeetingHandler) Cancel(ctx context.Context, id uuid.UUID) error {
	return h.meetings.DeleteUpcoming(ctx, id)
}

// ══════════════════════════════════════════════════════════════════════════════
// CERTIFICATE COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

// CertificateHandler handles certificate write operations.
type CertificateHandler struct {
	certificates matching.CertificateRepository
	mentees      profile.MenteeRepository
	log          *logger.Logger
}

// NewCertificateHandler creates a new handler.
func NewCertificateHandler(
	certificates matching.CertificateRepository,
	mentees profile.MenteeRepository,
	log *logger.Logger,
) *CertificateHandler {
	return &CertificateHandler{
		certificates: certificates,
		mentees:      mentees,
		log:          log.With(logger.Component("command.certificate")),
	}
}

// Issue records a completion certificate for a mentee.
func (h *CertificateHandler) Issue(ctx context.Context, menteeID uuid.UUID, year int) (*matching.Certificate, error) {
	if _, err := h.mentees.GetByID(ctx, menteeID); err != nil {
		return nil, err
	}

	certificate, err := matching.NewCertificate(menteeID, year)
	if err != nil {
		return nil, err
	}
	if err := h.certificates.Create(ctx, certificate); err != nil {
		return nil, err
	}
	h.log.Info("certificate issued",
		logger.MenteeID(menteeID.String()),
		logger.Int("year", year),
	)
	return certificate, nil
}

// Revoke removes a certificate record.
func (h *CertificateHandler) Revoke(ctx context.Context, id uuid.UUID) error {
	return h.certificates.Delete(ctx, id)
}
