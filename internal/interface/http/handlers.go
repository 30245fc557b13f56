package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/application/auth"
	"github.com/mentoria-hub/mentoria-platform/internal/application/command"
	"github.com/mentoria-hub/mentoria-platform/internal/application/query"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH & READINESS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": int(s.Uptime().Seconds()),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	ready := true

	probe := func(name string, p Pinger) {
		if p == nil {
			return
		}
		if err := p.Ping(r.Context()); err != nil {
			checks[name] = "unavailable"
			ready = false
			return
		}
		checks[name] = "ok"
	}
	probe("postgres", s.deps.Postgres)
	probe("redis", s.deps.Redis)

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{"ready": ready, "checks": checks})
}

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATION
// ══════════════════════════════════════════════════════════════════════════════

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.Gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":    result.Token,
		"identity": result.Identity,
	})
}

type signupRequest struct {
	FullName     string     `json:"full_name"`
	CPF          string     `json:"cpf"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	BirthDate    *time.Time `json:"birth_date"`
	UniversityID *uuid.UUID `json:"university_id"`
	LinkedIn     string     `json:"linkedin"`
	PhotoURL     string     `json:"photo_url"`
	Competencies []string   `json:"competencies"`
	Hobbies      []string   `json:"hobbies"`
}

func (r signupRequest) base() auth.SignupCommand {
	return auth.SignupCommand{
		FullName:     r.FullName,
		CPF:          r.CPF,
		Email:        r.Email,
		Password:     r.Password,
		BirthDate:    r.BirthDate,
		UniversityID: r.UniversityID,
		LinkedIn:     r.LinkedIn,
		PhotoURL:     r.PhotoURL,
		Competencies: r.Competencies,
		Hobbies:      r.Hobbies,
	}
}

type signupMentorRequest struct {
	signupRequest
	Education       string `json:"education"`
	CurrentTitle    string `json:"current_title"`
	AreasOfActivity string `json:"areas_of_activity"`
}

func (s *Server) handleSignupMentor(w http.ResponseWriter, r *http.Request) {
	var req signupMentorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.Registrar.SignupMentor(r.Context(), auth.SignupMentorCommand{
		SignupCommand:   req.base(),
		Education:       req.Education,
		CurrentTitle:    req.CurrentTitle,
		AreasOfActivity: req.AreasOfActivity,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse(result))
}

type signupMenteeRequest struct {
	signupRequest
	Course     string `json:"course"`
	CourseYear int    `json:"course_year"`
	Semester   int    `json:"semester"`
	Objective  string `json:"objective"`
}

func (s *Server) handleSignupMentee(w http.ResponseWriter, r *http.Request) {
	var req signupMenteeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.Registrar.SignupMentee(r.Context(), auth.SignupMenteeCommand{
		SignupCommand: req.base(),
		Course:        req.Course,
		CourseYear:    req.CourseYear,
		Semester:      req.Semester,
		Objective:     req.Objective,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse(result))
}

func signupResponse(result *auth.SignupResult) map[string]any {
	return map[string]any{
		"user_id":    result.UserID,
		"profile_id": result.ProfileID,
		"role":       result.Role,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MATCHING
// ══════════════════════════════════════════════════════════════════════════════

type bulkMatchRequest struct {
	TopK           int  `json:"top_k"`
	MinScore       int  `json:"min_score"`
	SameUniversity bool `json:"same_university"`
}

func (s *Server) handleBulkMatch(w http.ResponseWriter, r *http.Request) {
	var req bulkMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.BulkMatch.Handle(r.Context(), command.BulkMatchCommand{
		TopK:           req.TopK,
		MinScore:       req.MinScore,
		SameUniversity: req.SameUniversity,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"processed":           result.Processed,
		"created":             result.Created,
		"skipped":             result.Skipped,
		"failed":              result.Failed,
		"created_request_ids": result.CreatedRequestIDs,
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	menteeID, err := queryUUID(r, "mentee_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if menteeID == nil {
		s.writeError(w, r, shared.NewDomainError("http", "Suggestions", shared.ErrInvalidInput, "mentee_id is required"))
		return
	}

	q := query.SuggestionsQuery{MenteeID: *menteeID}
	if v := r.URL.Query().Get("top_k"); v != "" {
		if q.TopK, err = strconv.Atoi(v); err != nil {
			s.writeError(w, r, shared.NewDomainError("http", "Suggestions", shared.ErrInvalidInput, "top_k must be an integer"))
			return
		}
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		if q.MinScore, err = strconv.Atoi(v); err != nil {
			s.writeError(w, r, shared.NewDomainError("http", "Suggestions", shared.ErrInvalidInput, "min_score must be an integer"))
			return
		}
	}
	q.SameUniversity = r.URL.Query().Get("same_university") == "true"

	suggestions, err := s.deps.Suggestions.Handle(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

type createRequestRequest struct {
	MentorID uuid.UUID `json:"mentor_id"`
	MenteeID uuid.UUID `json:"mentee_id"`
}

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.CreateRequest.Handle(r.Context(), command.CreateMatchRequestCommand{
		MentorID: req.MentorID,
		MenteeID: req.MenteeID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"request_id": result.RequestID,
		"score":      result.Score,
		"percent":    result.Percent,
		"evidence":   result.Evidence,
	})
}

// handleListRequests returns the pending queue. Non-admin callers get an
// empty list rather than a 403 so the client dashboard renders uniformly.
func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	identity, _ := callerIdentity(r.Context())
	if !identity.IsAdmin() {
		writeJSON(w, http.StatusOK, []query.QueueEntry{})
		return
	}

	entries, err := s.deps.PendingQueue.Handle(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entry, err := s.deps.GetRequest.Handle(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

type updateRequestRequest struct {
	State matching.RequestState `json:"state"`
}

// handleUpdateRequest resolves a pending request. Accepting starts the
// mentorship and supersedes the participants' other pending requests.
func (s *Server) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req updateRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	switch req.State {
	case matching.RequestStateAccepted:
		result, err := s.deps.AcceptRequest.Handle(r.Context(), command.AcceptMatchRequestCommand{RequestID: id})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"request_id":     id,
			"state":          matching.RequestStateAccepted,
			"mentorship_id":  result.MentorshipID,
			"superseded_ids": result.SupersededIDs,
		})
	case matching.RequestStateRejected:
		result, err := s.deps.RejectRequest.Handle(r.Context(), command.RejectMatchRequestCommand{RequestID: id})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"request_id": result.RequestID,
			"state":      result.State,
		})
	default:
		s.writeError(w, r, shared.NewDomainError("http", "UpdateRequest", shared.ErrInvalidInput, "state must be accepted or rejected"))
	}
}

func (s *Server) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.DeleteRequest.Handle(r.Context(), command.DeleteMatchRequestCommand{RequestID: id})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"request_id": result.RequestID})
}

// ══════════════════════════════════════════════════════════════════════════════
// ADMIN APPROVALS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleListApprovals(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.deps.Approvals.Handle(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

type approveAccountRequest struct {
	Kind      command.AccountKind `json:"kind"`
	ProfileID uuid.UUID           `json:"profile_id"`
	Approve   bool                `json:"approve"`
}

func (s *Server) handleApproveAccount(w http.ResponseWriter, r *http.Request) {
	var req approveAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.ApproveAccount.Handle(r.Context(), command.ApproveAccountCommand{
		Kind:      req.Kind,
		ProfileID: req.ProfileID,
		Approve:   req.Approve,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"profile_id": result.ProfileID,
		"user_id":    result.UserID,
		"active":     result.Active,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// MENTORSHIPS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleListMentorships(w http.ResponseWriter, r *http.Request) {
	participantID, err := queryUUID(r, "participant_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if participantID != nil {
		views, err := s.deps.Mentorships.ListByParticipant(r.Context(), *participantID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
		return
	}

	var state *matching.MentorshipState
	if v := r.URL.Query().Get("state"); v != "" {
		candidate := matching.MentorshipState(v)
		if !candidate.IsValid() {
			s.writeError(w, r, shared.NewDomainError("http", "ListMentorships", shared.ErrInvalidInput, "unknown mentorship state"))
			return
		}
		state = &candidate
	}

	views, err := s.deps.Mentorships.List(r.Context(), state)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetMentorship(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.Mentorships.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type updateMentorshipRequest struct {
	State            *matching.MentorshipState `json:"state"`
	MentorRating     *int                      `json:"mentor_rating"`
	MenteeRating     *int                      `json:"mentee_rating"`
	MentorEvaluation *string                   `json:"mentor_evaluation"`
	MenteeEvaluation *string                   `json:"mentee_evaluation"`
}

func (s *Server) handleUpdateMentorship(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req updateMentorshipRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.deps.UpdateMentorship.Handle(r.Context(), command.UpdateMentorshipCommand{
		MentorshipID:     id,
		State:            req.State,
		MentorRating:     req.MentorRating,
		MenteeRating:     req.MenteeRating,
		MentorEvaluation: req.MentorEvaluation,
		MenteeEvaluation: req.MenteeEvaluation,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mentorship_id": result.MentorshipID,
		"state":         result.State,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// UNIVERSITIES
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleListUniversities(w http.ResponseWriter, r *http.Request) {
	views, err := s.deps.UniversityViews.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.UniversityViews.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type universityRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateUniversity(w http.ResponseWriter, r *http.Request) {
	var req universityRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	university, err := s.deps.Universities.Create(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, query.UniversityView{ID: university.ID, Name: university.Name})
}

func (s *Server) handleUpdateUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req universityRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	university, err := s.deps.Universities.Rename(r.Context(), id, req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, query.UniversityView{ID: university.ID, Name: university.Name})
}

func (s *Server) handleDeleteUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.deps.Universities.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

// ══════════════════════════════════════════════════════════════════════════════
// MEETINGS
// ══════════════════════════════════════════════════════════════════════════════

type recordMeetingRequest struct {
	MentorID    uuid.UUID `json:"mentor_id"`
	MenteeID    uuid.UUID `json:"mentee_id"`
	HeldAt      time.Time `json:"held_at"`
	DurationMin int       `json:"duration_min"`
	Theme       string    `json:"theme"`
	Topics      string    `json:"topics"`
	Progress    string    `json:"progress"`
	Notes       string    `json:"notes"`
}

func (s *Server) handleRecordMeeting(w http.ResponseWriter, r *http.Request) {
	var req recordMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	meeting, err := s.deps.Meetings.Record(r.Context(), command.RecordMeetingCommand{
		MentorID:    req.MentorID,
		MenteeID:    req.MenteeID,
		HeldAt:      req.HeldAt,
		DurationMin: req.DurationMin,
		Theme:       req.Theme,
		Topics:      req.Topics,
		Progress:    req.Progress,
		Notes:       req.Notes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.Engagement.GetMeeting(r.Context(), meeting.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	participantID, err := queryUUID(r, "participant_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if participantID == nil {
		s.writeError(w, r, shared.NewDomainError("http", "ListMeetings", shared.ErrInvalidInput, "participant_id is required"))
		return
	}

	views, err := s.deps.Engagement.MeetingsByParticipant(r.Context(), *participantID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.Engagement.GetMeeting(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type updateMeetingRequest struct {
	HeldAt      *time.Time `json:"held_at"`
	DurationMin *int       `json:"duration_min"`
	Theme       *string    `json:"theme"`
	Topics      *string    `json:"topics"`
	Progress    *string    `json:"progress"`
	Notes       *string    `json:"notes"`
}

func (s *Server) handleUpdateMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req updateMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	meeting, err := s.deps.Meetings.Update(r.Context(), command.UpdateMeetingCommand{
		MeetingID:   id,
		HeldAt:      req.HeldAt,
		DurationMin: req.DurationMin,
		Theme:       req.Theme,
		Topics:      req.Topics,
		Progress:    req.Progress,
		Notes:       req.Notes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.Engagement.GetMeeting(r.Context(), meeting.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.deps.Meetings.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

type scheduleMeetingRequest struct {
	MentorID    uuid.UUID `json:"mentor_id"`
	MenteeID    uuid.UUID `json:"mentee_id"`
	SuggestedAt time.Time `json:"suggested_at"`
	Topic       string    `json:"topic"`
}

func (s *Server) handleScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	var req scheduleMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	meeting, err := s.deps.Meetings.Schedule(r.Context(), command.ScheduleMeetingCommand{
		MentorID:    req.MentorID,
		MenteeID:    req.MenteeID,
		SuggestedAt: req.SuggestedAt,
		Topic:       req.Topic,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.Engagement.GetUpcoming(r.Context(), meeting.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleListUpcoming(w http.ResponseWriter, r *http.Request) {
	participantID, err := queryUUID(r, "participant_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if participantID == nil {
		s.writeError(w, r, shared.NewDomainError("http", "ListUpcoming", shared.ErrInvalidInput, "participant_id is required"))
		return
	}

	views, err := s.deps.Engagement.UpcomingByParticipant(r.Context(), *participantID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCancelUpcoming(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.deps.Meetings.Cancel(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

// ══════════════════════════════════════════════════════════════════════════════
// CERTIFICATES
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleListCertificates(w http.ResponseWriter, r *http.Request) {
	menteeID, err := queryUUID(r, "mentee_id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if menteeID == nil {
		s.writeError(w, r, shared.NewDomainError("http", "ListCertificates", shared.ErrInvalidInput, "mentee_id is required"))
		return
	}

	views, err := s.deps.Engagement.CertificatesByMentee(r.Context(), *menteeID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.deps.Engagement.GetCertificate(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type issueCertificateRequest struct {
	MenteeID uuid.UUID `json:"mentee_id"`
	Year     int       `json:"year"`
}

func (s *Server) handleIssueCertificate(w http.ResponseWriter, r *http.Request) {
	var req issueCertificateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	certificate, err := s.deps.Certificates.Issue(r.Context(), req.MenteeID, req.Year)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, query.CertificateView{
		ID:       certificate.ID,
		MenteeID: certificate.MenteeID,
		Year:     certificate.Year,
	})
}

func (s *Server) handleRevokeCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.deps.Certificates.Revoke(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}
