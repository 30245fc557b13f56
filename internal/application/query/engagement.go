package query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENGAGEMENT QUERIES
// Read projections for universities, meetings, and certificates.
// ══════════════════════════════════════════════════════════════════════════════

// UniversityView is the read projection of a university.
type UniversityView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MeetingView is the read projection of a held meeting.
type MeetingView struct {
	ID          uuid.UUID `json:"id"`
	MentorID    uuid.UUID `json:"mentor_id"`
	MenteeID    uuid.UUID `json:"mentee_id"`
	HeldAt      time.Time `json:"held_at"`
	DurationMin int       `json:"duration_min"`
	Theme       string    `json:"theme,omitempty"`
	Topics      string    `json:"topics,omitempty"`
	Progress    string    `json:"progress,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// UpcomingMeetingView is the read projection of a proposed meeting.
type UpcomingMeetingView struct {
	ID          uuid.UUID `json:"id"`
	MentorID    uuid.UUID `json:"mentor_id"`
	MenteeID    uuid.UUID `json:"mentee_id"`
	SuggestedAt time.Time `json:"suggested_at"`
	Topic       string    `json:"topic,omitempty"`
}

// CertificateView is the read projection of a certificate.
type CertificateView struct {
	ID       uuid.UUID `json:"id"`
	MenteeID uuid.UUID `json:"mentee_id"`
	Year     int       `json:"year"`
}

// UniversitiesHandler serves university read operations.
type UniversitiesHandler struct {
	universities profile.UniversityRepository
}

// NewUniversitiesHandler creates a new handler.
func NewUniversitiesHandler(universities profile.UniversityRepository) *UniversitiesHandler {
	return &UniversitiesHandler{universities: universities}
}

// Get returns one university by ID.
func (h *UniversitiesHandler) Get(ctx context.Context, id uuid.UUID) (UniversityView, error) {
	university, err := h.universities.GetByID(ctx, id)
	if err != nil {
		return UniversityView{}, err
	}
	return UniversityView{ID: university.ID, Name: university.Name}, nil
}

// List returns all universities.
func (h *UniversitiesHandler) List(ctx context.Context) ([]UniversityView, error) {
	universities, err := h.universities.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UniversityView, 0, len(universities))
	for _, u := range universities {
		views = append(views, UniversityView{ID: u.ID, Name: u.Name})
	}
	return views, nil
}

// EngagementHandler serves meeting and certificate read operations.
type EngagementHandler struct {
	meetings     matching.MeetingRepository
	certificates matching.CertificateRepository
}

// NewEngagementHandler creates a new handler.
func NewEngagementHandler(
	meetings matching.MeetingRepository,
	certificates matching.CertificateRepository,
) *EngagementHandler {
	return &EngagementHandler{meetings: meetings, certificates: certificates}
}

// GetMeeting returns one held meeting by ID.
func (h *EngagementHandler) GetMeeting(ctx context.Context, id uuid.UUID) (MeetingView, error) {
	meeting, err := h.meetings.GetMeeting(ctx, id)
	if err != nil {
		return MeetingView{}, err
	}
	return toMeetingView(meeting), nil
}

// MeetingsByParticipant returns held meetings involving the profile.
func (h *EngagementHandler) MeetingsByParticipant(ctx context.Context, profileID uuid.UUID) ([]MeetingView, error) {
	meetings, err := h.meetings.GetMeetingsByParticipant(ctx, profileID)
	if err != nil {
		return nil, err
	}
	views := make([]MeetingView, 0, len(meetings))
	for _, m := range meetings {
		views = append(views, toMeetingView(m))
	}
	return views, nil
}

// GetUpcoming returns one proposed meeting by ID.
func (h *EngagementHandler) GetUpcoming(ctx context.Context, id uuid.UUID) (UpcomingMeetingView, error) {
	meeting, err := h.meetings.GetUpcoming(ctx, id)
	if err != nil {
		return UpcomingMeetingView{}, err
	}
	return toUpcomingView(meeting), nil
}

// UpcomingByParticipant returns proposed meetings involving the profile.
func (h *EngagementHandler) UpcomingByParticipant(ctx context.Context, profileID uuid.UUID) ([]UpcomingMeetingView, error) {
	meetings, err := h.meetings.GetUpcomingByParticipant(ctx, profileID)
	if err != nil {
		return nil, err
	}
	views := make([]UpcomingMeetingView, 0, len(meetings))
	for _, m := range meetings {
		views = append(views, toUpcomingView(m))
	}
	return views, nil
}

// GetCertificate returns one certificate by ID.
func (h *EngagementHandler) GetCertificate(ctx context.Context, id uuid.UUID) (CertificateView, error) {
	certificate, err := h.certificates.GetByID(ctx, id)
	if err != nil {
		return CertificateView{}, err
	}
	return toCertificateView(certificate), nil
}

// CertificatesByMentee returns a mentee's certificates.
func (h *EngagementHandler) CertificatesByMentee(ctx context.Context, menteeID uuid.UUID) ([]CertificateView, error) {
	certificates, err := h.certificates.GetByMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	views := make([]CertificateView, 0, len(certificates))
	for _, c := range certificates {
		views = append(views, toCertificateView(c))
	}
	return views, nil
}

func toMeetingView(m *matching.Meeting) MeetingView {
	return MeetingView{
		ID:          m.ID,
		MentorID:    m.MentorID,
		MenteeID:    m.MenteeID,
		HeldAt:      m.HeldAt,
		DurationMin: m.DurationMin,
		Theme:       m.Theme,
		Topics:      m.Topics,
		Progress:    m.Progress,
		Notes:       m.Notes,
	}
}

func toUpcomingView(m *matching.UpcomingMeeting) UpcomingMeetingView {
	return UpcomingMeetingView{
		ID:          m.ID,
		MentorID:    m.MentorID,
		MenteeID:    m.MenteeID,
		SuggestedAt: m.SuggestedAt,
		Topic:       m.Topic,
	}
}

func toCertificateView(c *matching.Certificate) CertificateView {
	return CertificateView{ID: c.ID, MenteeID: c.MenteeID, Year: c.Year}
}
