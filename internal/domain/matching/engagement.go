package matching

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENGAGEMENT RECORDS
// Artifacts produced over the life of a mentorship: held meetings,
// scheduled meetings, and completion certificates.
// ══════════════════════════════════════════════════════════════════════════════

// Meeting is a mentoring session that already took place.
type Meeting struct {
	ID          uuid.UUID
	MentorID    uuid.UUID
	MenteeID    uuid.UUID
	HeldAt      time.Time
	DurationMin int
	Theme       string
	Topics      string
	Progress    string
	Notes       string
}

// NewMeetingParams holds the data to record a held meeting.
type NewMeetingParams struct {
	MentorID    uuid.UUID
	MenteeID    uuid.UUID
	HeldAt      time.Time
	DurationMin int
	Theme       string
	Topics      string
	Progress    string
	Notes       string
}

// NewMeeting records a held meeting.
func NewMeeting(params NewMeetingParams) (*Meeting, error) {
	if params.MentorID == uuid.Nil || params.MenteeID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "NewMeeting", shared.ErrInvalidID, "mentor and mentee ids are required")
	}
	if params.DurationMin < 0 {
		return nil, shared.NewDomainError("matching", "NewMeeting", shared.ErrInvalidInput, "duration cannot be negative")
	}
	held := params.HeldAt
	if held.IsZero() {
		held = time.Now().UTC()
	}
	return &Meeting{
		ID:          uuid.New(),
		MentorID:    params.MentorID,
		MenteeID:    params.MenteeID,
		HeldAt:      held,
		DurationMin: params.DurationMin,
		Theme:       params.Theme,
		Topics:      params.Topics,
		Progress:    params.Progress,
		Notes:       params.Notes,
	}, nil
}

// UpcomingMeeting is a session proposed for a future date.
type UpcomingMeeting struct {
	ID          uuid.UUID
	MentorID    uuid.UUID
	MenteeID    uuid.UUID
	SuggestedAt time.Time
	Topic       string
}

// NewUpcomingMeeting schedules a future meeting.
func NewUpcomingMeeting(mentorID, menteeID uuid.UUID, suggestedAt time.Time, topic string) (*UpcomingMeeting, error) {
	if mentorID == uuid.Nil || menteeID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "NewUpcomingMeeting", shared.ErrInvalidID, "mentor and mentee ids are required")
	}
	if suggestedAt.IsZero() {
		return nil, shared.NewDomainError("matching", "NewUpcomingMeeting", shared.ErrInvalidInput, "suggested date is required")
	}
	return &UpcomingMeeting{
		ID:          uuid.New(),
		MentorID:    mentorID,
		MenteeID:    menteeID,
		SuggestedAt: suggestedAt,
		Topic:       topic,
	}, nil
}

// Certificate records a mentee's completion of a program year.
type Certificate struct {
	ID       uuid.UUID
	MenteeID uuid.UUID
	Year     int
}

// NewCertificate issues a certificate record for a mentee.
func NewCertificate(menteeID uuid.UUID, year int) (*Certificate, error) {
	if menteeID == uuid.Nil {
		return nil, shared.NewDomainError("matching", "NewCertificate", shared.ErrInvalidID, "mentee id is required")
	}
	if year < 2000 {
		return nil, shared.NewDomainError("matching", "NewCertificate", shared.ErrInvalidInput, "year is out of range")
	}
	return &Certificate{
		ID:       uuid.New(),
		MenteeID: menteeID,
		Year:     year,
	}, nil
}
