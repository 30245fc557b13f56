package http

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentoria-hub/mentoria-platform/internal/application/auth"
	"github.com/mentoria-hub/mentoria-platform/internal/application/command"
	"github.com/mentoria-hub/mentoria-platform/internal/application/query"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// In-memory fakes backing a fully wired server. The store mirrors the
// database constraints that matter to the API surface: unique emails,
// at most one pending request and one active mentorship per participant.

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard, Level: logger.LevelError})
}

type memStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*profile.User
	admins       map[uuid.UUID]bool
	mentors      map[uuid.UUID]*profile.Mentor
	mentees      map[uuid.UUID]*profile.Mentee
	universities map[uuid.UUID]*profile.University
	requests     map[uuid.UUID]*matching.MatchRequest
	mentorships  map[uuid.UUID]*matching.Mentorship
	meetings     map[uuid.UUID]*matching.Meeting
	upcoming     map[uuid.UUID]*matching.UpcomingMeeting
	certificates map[uuid.UUID]*matching.Certificate
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uuid.UUID]*profile.User),
		admins:       make(map[uuid.UUID]bool),
		mentors:      make(map[uuid.UUID]*profile.Mentor),
		mentees:      make(map[uuid.UUID]*profile.Mentee),
		universities: make(map[uuid.UUID]*profile.University),
		requests:     make(map[uuid.UUID]*matching.MatchRequest),
		mentorships:  make(map[uuid.UUID]*matching.Mentorship),
		meetings:     make(map[uuid.UUID]*matching.Meeting),
		upcoming:     make(map[uuid.UUID]*matching.UpcomingMeeting),
		certificates: make(map[uuid.UUID]*matching.Certificate),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// profile repositories
// ─────────────────────────────────────────────────────────────────────────────

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(_ context.Context, u *profile.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return shared.ErrEmailTaken
		}
	}
	r.store.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*profile.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *profile.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[u.ID] = u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

// memRoleResolver resolves in the same precedence order as storage:
// admin first, then mentor, then mentee.
type memRoleResolver struct{ store *memStore }

func (r *memRoleResolver) ResolveRole(_ context.Context, userID uuid.UUID) (profile.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.admins[userID] {
		return profile.RoleAdmin, nil
	}
	for _, m := range r.store.mentors {
		if m.UserID == userID {
			return profile.RoleMentor, nil
		}
	}
	for _, m := range r.store.mentees {
		if m.UserID == userID {
			return profile.RoleMentee, nil
		}
	}
	return "", shared.ErrNoRoleLinkage
}

type memMentorRepo struct{ store *memStore }

func (r *memMentorRepo) Create(_ context.Context, m *profile.Mentor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.mentors[m.ID] = m
	return nil
}

func (r *memMentorRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Mentor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.mentors[id]
	if !ok {
		return nil, shared.ErrMentorNotFound
	}
	return m, nil
}

func (r *memMentorRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Mentor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentors {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, shared.ErrMentorNotFound
}

func (r *memMentorRepo) Update(_ context.Context, m *profile.Mentor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.mentors[m.ID]; !ok {
		return shared.ErrMentorNotFound
	}
	r.store.mentors[m.ID] = m
	return nil
}

func (r *memMentorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.mentors, id)
	return nil
}

func (r *memMentorRepo) GetAll(_ context.Context, filter profile.ListFilter) ([]*profile.Mentor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*profile.Mentor, 0)
	for _, m := range r.store.mentors {
		if filter.OnlyActive && !m.Active {
			continue
		}
		if filter.OnlyInactive && m.Active {
			continue
		}
		if filter.UniversityID != nil && (m.UniversityID == nil || *m.UniversityID != *filter.UniversityID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type memMenteeRepo struct{ store *memStore }

func (r *memMenteeRepo) Create(_ context.Context, m *profile.Mentee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.mentees[m.ID] = m
	return nil
}

func (r *memMenteeRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Mentee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.mentees[id]
	if !ok {
		return nil, shared.ErrMenteeNotFound
	}
	return m, nil
}

func (r *memMenteeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Mentee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentees {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, shared.ErrMenteeNotFound
}

func (r *memMenteeRepo) Update(_ context.Context, m *profile.Mentee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.mentees[m.ID]; !ok {
		return shared.ErrMenteeNotFound
	}
	r.store.mentees[m.ID] = m
	return nil
}

func (r *memMenteeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.mentees, id)
	return nil
}

func (r *memMenteeRepo) GetAll(_ context.Context, filter profile.ListFilter) ([]*profile.Mentee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*profile.Mentee, 0)
	for _, m := range r.store.mentees {
		if filter.OnlyActive && !m.Active {
			continue
		}
		if filter.OnlyInactive && m.Active {
			continue
		}
		if filter.UniversityID != nil && (m.UniversityID == nil || *m.UniversityID != *filter.UniversityID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type memUniversityRepo struct{ store *memStore }

func (r *memUniversityRepo) Create(_ context.Context, u *profile.University) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.universities[u.ID] = u
	return nil
}

func (r *memUniversityRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.University, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.universities[id]
	if !ok {
		return nil, shared.ErrUniversityNotFound
	}
	return u, nil
}

func (r *memUniversityRepo) GetAll(_ context.Context) ([]*profile.University, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*profile.University, 0, len(r.store.universities))
	for _, u := range r.store.universities {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUniversityRepo) Update(_ context.Context, u *profile.University) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.universities[u.ID]; !ok {
		return shared.ErrUniversityNotFound
	}
	r.store.universities[u.ID] = u
	return nil
}

func (r *memUniversityRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.universities[id]; !ok {
		return shared.ErrUniversityNotFound
	}
	delete(r.store.universities, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// matching repositories
// ─────────────────────────────────────────────────────────────────────────────

type memRequestRepo struct{ store *memStore }

func (r *memRequestRepo) Create(_ context.Context, req *matching.MatchRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.requests {
		if !existing.IsPending() {
			continue
		}
		if existing.MentorID == req.MentorID {
			return shared.ErrMentorBusy
		}
		if existing.MenteeID == req.MenteeID {
			return shared.ErrMenteeBusy
		}
	}
	cp := *req
	r.store.requests[req.ID] = &cp
	return nil
}

func (r *memRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.MatchRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.requests[id]
	if !ok {
		return nil, shared.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) Update(_ context.Context, req *matching.MatchRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[req.ID]; !ok {
		return shared.ErrRequestNotFound
	}
	cp := *req
	r.store.requests[req.ID] = &cp
	return nil
}

func (r *memRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[id]; !ok {
		return shared.ErrRequestNotFound
	}
	delete(r.store.requests, id)
	return nil
}

func (r *memRequestRepo) GetAll(_ context.Context, state *matching.RequestState) ([]*matching.MatchRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.MatchRequest, 0)
	for _, req := range r.store.requests {
		if state != nil && req.State != *state {
			continue
		}
		cp := *req
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRequestRepo) GetPendingByParticipant(_ context.Context, mentorID, menteeID uuid.UUID) ([]*matching.MatchRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.MatchRequest, 0)
	for _, req := range r.store.requests {
		if req.IsPending() && req.References(mentorID, menteeID) {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRequestRepo) HasPendingForMentor(_ context.Context, mentorID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, req := range r.store.requests {
		if req.IsPending() && req.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRequestRepo) HasPendingForMentee(_ context.Context, menteeID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, req := range r.store.requests {
		if req.IsPending() && req.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRequestRepo) DeletePendingByParticipant(_ context.Context, mentorID, menteeID, keepID uuid.UUID) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	removed := make([]uuid.UUID, 0)
	for id, req := range r.store.requests {
		if id == keepID || !req.IsPending() {
			continue
		}
		if req.References(mentorID, menteeID) {
			delete(r.store.requests, id)
			removed = append(removed, id)
		}
	}
	return removed, nil
}

type memMentorshipRepo struct{ store *memStore }

func (r *memMentorshipRepo) Create(_ context.Context, m *matching.Mentorship) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.mentorships {
		if !existing.IsActive() {
			continue
		}
		if existing.MentorID == m.MentorID {
			return shared.ErrMentorBusy
		}
		if existing.MenteeID == m.MenteeID {
			return shared.ErrMenteeBusy
		}
	}
	cp := *m
	r.store.mentorships[m.ID] = &cp
	return nil
}

func (r *memMentorshipRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.Mentorship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.mentorships[id]
	if !ok {
		return nil, shared.ErrMentorshipNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMentorshipRepo) Update(_ context.Context, m *matching.Mentorship) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.mentorships[m.ID]; !ok {
		return shared.ErrMentorshipNotFound
	}
	cp := *m
	r.store.mentorships[m.ID] = &cp
	return nil
}

func (r *memMentorshipRepo) GetAll(_ context.Context, state *matching.MentorshipState) ([]*matching.Mentorship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.Mentorship, 0)
	for _, m := range r.store.mentorships {
		if state != nil && m.State != *state {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMentorshipRepo) GetByParticipant(_ context.Context, profileID uuid.UUID) ([]*matching.Mentorship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.Mentorship, 0)
	for _, m := range r.store.mentorships {
		if m.Involves(profileID) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMentorshipRepo) HasActiveForMentor(_ context.Context, mentorID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentorships {
		if m.IsActive() && m.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memMentorshipRepo) HasActiveForMentee(_ context.Context, menteeID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentorships {
		if m.IsActive() && m.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}

type memMeetingRepo struct{ store *memStore }

func (r *memMeetingRepo) CreateMeeting(_ context.Context, m *matching.Meeting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.meetings[m.ID] = m
	return nil
}

func (r *memMeetingRepo) GetMeeting(_ context.Context, id uuid.UUID) (*matching.Meeting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.meetings[id]
	if !ok {
		return nil, shared.ErrMeetingNotFound
	}
	return m, nil
}

func (r *memMeetingRepo) UpdateMeeting(_ context.Context, m *matching.Meeting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.meetings[m.ID]; !ok {
		return shared.ErrMeetingNotFound
	}
	r.store.meetings[m.ID] = m
	return nil
}

func (r *memMeetingRepo) DeleteMeeting(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.meetings[id]; !ok {
		return shared.ErrMeetingNotFound
	}
	delete(r.store.meetings, id)
	return nil
}

func (r *memMeetingRepo) GetMeetingsByParticipant(_ context.Context, profileID uuid.UUID) ([]*matching.Meeting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.Meeting, 0)
	for _, m := range r.store.meetings {
		if m.MentorID == profileID || m.MenteeID == profileID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMeetingRepo) CreateUpcoming(_ context.Context, m *matching.UpcomingMeeting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.upcoming[m.ID] = m
	return nil
}

func (r *memMeetingRepo) GetUpcoming(_ context.Context, id uuid.UUID) (*matching.UpcomingMeeting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.upcoming[id]
	if !ok {
		return nil, shared.ErrMeetingNotFound
	}
	return m, nil
}

func (r *memMeetingRepo) DeleteUpcoming(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.upcoming[id]; !ok {
		return shared.ErrMeetingNotFound
	}
	delete(r.store.upcoming, id)
	return nil
}

func (r *memMeetingRepo) GetUpcomingByParticipant(_ context.Context, profileID uuid.UUID) ([]*matching.UpcomingMeeting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.UpcomingMeeting, 0)
	for _, m := range r.store.upcoming {
		if m.MentorID == profileID || m.MenteeID == profileID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memCertificateRepo struct{ store *memStore }

func (r *memCertificateRepo) Create(_ context.Context, c *matching.Certificate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.certificates[c.ID] = c
	return nil
}

func (r *memCertificateRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.Certificate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.certificates[id]
	if !ok {
		return nil, shared.ErrCertificateNotFound
	}
	return c, nil
}

func (r *memCertificateRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.certificates[id]; !ok {
		return shared.ErrCertificateNotFound
	}
	delete(r.store.certificates, id)
	return nil
}

func (r *memCertificateRepo) GetByMentee(_ context.Context, menteeID uuid.UUID) ([]*matching.Certificate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*matching.Certificate, 0)
	for _, c := range r.store.certificates {
		if c.MenteeID == menteeID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memUnitOfWork struct {
	store    *memStore
	txMu     *sync.Mutex
	released bool
}

type memUoWFactory struct {
	store *memStore
	txMu  sync.Mutex
}

func (f *memUoWFactory) Begin(context.Context) (matching.UnitOfWork, error) {
	f.txMu.Lock()
	return &memUnitOfWork{store: f.store, txMu: &f.txMu}, nil
}

func (u *memUnitOfWork) Requests() matching.MatchRequestRepository {
	return &memRequestRepo{store: u.store}
}

func (u *memUnitOfWork) Mentorships() matching.MentorshipRepository {
	return &memMentorshipRepo{store: u.store}
}

func (u *memUnitOfWork) Commit(context.Context) error {
	u.release()
	return nil
}

func (u *memUnitOfWork) Rollback(context.Context) error {
	u.release()
	return nil
}

func (u *memUnitOfWork) release() {
	if !u.released {
		u.released = true
		u.txMu.Unlock()
	}
}

// stubPinger satisfies the readiness probe interface.
type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

var errBackendDown = errors.New("backend down")

// ─────────────────────────────────────────────────────────────────────────────
// fixture
// ─────────────────────────────────────────────────────────────────────────────

// fixture wires a complete server over the in-memory store.
type fixture struct {
	store  *memStore
	tokens *auth.TokenManager
	server *Server
}

func newFixture() *fixture {
	return newFixtureWithPingers(stubPinger{}, stubPinger{})
}

func newFixtureWithPingers(pg, rd Pinger) *fixture {
	store := newMemStore()
	log := testLogger()

	users := &memUserRepo{store: store}
	roles := &memRoleResolver{store: store}
	mentors := &memMentorRepo{store: store}
	mentees := &memMenteeRepo{store: store}
	universities := &memUniversityRepo{store: store}
	requests := &memRequestRepo{store: store}
	mentorships := &memMentorshipRepo{store: store}
	meetings := &memMeetingRepo{store: store}
	certificates := &memCertificateRepo{store: store}
	uowFactory := &memUoWFactory{store: store}

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	gate := auth.NewGate(users, roles, tokens, nil, 0, log)
	registrar := auth.NewRegistrar(users, mentors, mentees, bcrypt.MinCost, log)

	scorer := matching.NewLiteralScorer()
	selector := matching.NewSelector(scorer)
	defaults := matching.SelectionOptions{TopK: 3}
	eligibility := command.NewEligibilityChecker(requests, mentorships)

	createRequest := command.NewCreateMatchRequestHandler(mentors, mentees, users, requests, eligibility, scorer, nil, log)
	pendingQueue := query.NewPendingQueueHandler(requests, mentors, mentees, users, log)

	server := NewServer(DefaultConfig(), Dependencies{
		Gate:      gate,
		Registrar: registrar,

		CreateRequest:    createRequest,
		AcceptRequest:    command.NewAcceptMatchRequestHandler(uowFactory, mentors, mentees, log),
		RejectRequest:    command.NewRejectMatchRequestHandler(requests, log),
		DeleteRequest:    command.NewDeleteMatchRequestHandler(requests, log),
		BulkMatch:        command.NewBulkMatchHandler(mentors, mentees, eligibility, selector, createRequest, defaults, log),
		ApproveAccount:   command.NewApproveAccountHandler(mentors, mentees, gate, log),
		UpdateMentorship: command.NewUpdateMentorshipHandler(mentorships, log),
		Universities:     command.NewUniversityHandler(universities, log),
		Meetings:         command.NewMeetingHandler(meetings, log),
		Certificates:     command.NewCertificateHandler(certificates, mentees, log),

		PendingQueue:    pendingQueue,
		GetRequest:      query.NewGetRequestHandler(pendingQueue, requests),
		Suggestions:     query.NewSuggestionsHandler(mentors, mentees, users, requests, mentorships, selector, defaults),
		Approvals:       query.NewApprovalsHandler(mentors, mentees, users, log),
		Mentorships:     query.NewMentorshipsHandler(mentorships),
		UniversityViews: query.NewUniversitiesHandler(universities),
		Engagement:      query.NewEngagementHandler(meetings, certificates),

		Postgres: pg,
		Redis:    rd,
		Logger:   log,
	})

	return &fixture{store: store, tokens: tokens, server: server}
}

// seedAdmin stores an admin account and returns its user.
func (f *fixture) seedAdmin(name string) *profile.User {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	f.store.users[user.ID] = user
	f.store.admins[user.ID] = true
	return user
}

// seedMentor stores an approved mentor with a backing user.
func (f *fixture) seedMentor(name string, competencies, hobbies []string) *profile.Mentor {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	f.store.users[user.ID] = user
	mentor := &profile.Mentor{
		ID:           uuid.New(),
		UserID:       user.ID,
		Competencies: competencies,
		Hobbies:      hobbies,
		Active:       true,
	}
	f.store.mentors[mentor.ID] = mentor
	return mentor
}

// seedMentee stores an approved mentee with a backing user.
func (f *fixture) seedMentee(name, course string, competencies, hobbies []string) *profile.Mentee {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	f.store.users[user.ID] = user
	mentee := &profile.Mentee{
		ID:           uuid.New(),
		UserID:       user.ID,
		Course:       course,
		Competencies: competencies,
		Hobbies:      hobbies,
		Active:       true,
	}
	f.store.mentees[mentee.ID] = mentee
	return mentee
}

// token mints a valid access token for the user.
func (f *fixture) token(user *profile.User) string {
	signed, err := f.tokens.Issue(user.ID, user.Email, user.FullName)
	if err != nil {
		panic(err)
	}
	return signed
}
