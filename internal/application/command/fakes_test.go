package command

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// In-memory fakes. A shared mutex keeps them safe for the concurrency
// tests, and the request store enforces the at-most-one-pending rule the
// same way the database partial unique indexes do.

type fakeStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*profile.User
	mentors     map[uuid.UUID]*profile.Mentor
	mentees     map[uuid.UUID]*profile.Mentee
	requests    map[uuid.UUID]*matching.MatchRequest
	mentorships map[uuid.UUID]*matching.Mentorship
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[uuid.UUID]*profile.User),
		mentors:     make(map[uuid.UUID]*profile.Mentor),
		mentees:     make(map[uuid.UUID]*profile.Mentee),
		requests:    make(map[uuid.UUID]*matching.MatchRequest),
		mentorships: make(map[uuid.UUID]*matching.Mentorship),
	}
}

// seedMentor stores an approved mentor with a backing user.
func (s *fakeStore) seedMentor(name string, competencies, hobbies []string) *profile.Mentor {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	s.users[user.ID] = user

	mentor := &profile.Mentor{
		ID:           uuid.New(),
		UserID:       user.ID,
		Competencies: competencies,
		Hobbies:      hobbies,
		Active:       true,
	}
	s.mentors[mentor.ID] = mentor
	return mentor
}

// seedMentee stores an approved mentee with a backing user.
func (s *fakeStore) seedMentee(name, course string, competencies, hobbies []string) *profile.Mentee {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	s.users[user.ID] = user

	mentee := &profile.Mentee{
		ID:           uuid.New(),
		UserID:       user.ID,
		Course:       course,
		Competencies: competencies,
		Hobbies:      hobbies,
		Active:       true,
	}
	s.mentees[mentee.ID] = mentee
	return mentee
}

// ─────────────────────────────────────────────────────────────────────────────
// profile repositories
// ─────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, u *profile.User) error {
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

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*profile.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *profile.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

type fakeMentorRepo struct{ store *fakeStore }

func (r *fakeMentorRepo) Create(_ context.Context, m *profile.Mentor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.mentors[m.ID] = m
	return nil
}

func (r *fakeMentorRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Mentor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.mentors[id]
	if !ok {
		return nil, shared.ErrMentorNotFound
	}
	return m, nil
}

func (r *fakeMentorRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Mentor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentors {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, shared.ErrMentorNotFound
}

func (r *fakeMentorRepo) Update(_ context.Context, m *profile.Mentor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.mentors[m.ID]; !ok {
		return shared.ErrMentorNotFound
	}
	r.store.mentors[m.ID] = m
	return nil
}

func (r *fakeMentorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.mentors, id)
	return nil
}

func (r *fakeMentorRepo) GetAll(_ context.Context, filter profile.ListFilter) ([]*profile.Mentor, error) {
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

type fakeMenteeRepo struct{ store *fakeStore }

func (r *fakeMenteeRepo) Create(_ context.Context, m *profile.Mentee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.mentees[m.ID] = m
	return nil
}

func (r *fakeMenteeRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Mentee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.mentees[id]
	if !ok {
		return nil, shared.ErrMenteeNotFound
	}
	return m, nil
}

func (r *fakeMenteeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Mentee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentees {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, shared.ErrMenteeNotFound
}

func (r *fakeMenteeRepo) Update(_ context.Context, m *profile.Mentee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.mentees[m.ID]; !ok {
		return shared.ErrMenteeNotFound
	}
	r.store.mentees[m.ID] = m
	return nil
}

func (r *fakeMenteeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.mentees, id)
	return nil
}

func (r *fakeMenteeRepo) GetAll(_ context.Context, filter profile.ListFilter) ([]*profile.Mentee, error) {
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

// ─────────────────────────────────────────────────────────────────────────────
// matching repositories
// ─────────────────────────────────────────────────────────────────────────────

type fakeRequestRepo struct{ store *fakeStore }

// Create enforces at-most-one pending request per participant, mirroring
// the database constraint. Concurrent creates race on the store mutex and
// only one wins.
func (r *fakeRequestRepo) Create(_ context.Context, req *matching.MatchRequest) error {
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

func (r *fakeRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.MatchRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.requests[id]
	if !ok {
		return nil, shared.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, req *matching.MatchRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[req.ID]; !ok {
		return shared.ErrRequestNotFound
	}
	cp := *req
	r.store.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[id]; !ok {
		return shared.ErrRequestNotFound
	}
	delete(r.store.requests, id)
	return nil
}

func (r *fakeRequestRepo) GetAll(_ context.Context, state *matching.RequestState) ([]*matching.MatchRequest, error) {
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

func (r *fakeRequestRepo) GetPendingByParticipant(_ context.Context, mentorID, menteeID uuid.UUID) ([]*matching.MatchRequest, error) {
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

func (r *fakeRequestRepo) HasPendingForMentor(_ context.Context, mentorID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, req := range r.store.requests {
		if req.IsPending() && req.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) HasPendingForMentee(_ context.Context, menteeID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, req := range r.store.requests {
		if req.IsPending() && req.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) DeletePendingByParticipant(_ context.Context, mentorID, menteeID, keepID uuid.UUID) ([]uuid.UUID, error) {
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

type fakeMentorshipRepo struct{ store *fakeStore }

// Create enforces at-most-one active mentorship per participant.
func (r *fakeMentorshipRepo) Create(_ context.Context, m *matching.Mentorship) error {
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

func (r *fakeMentorshipRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.Mentorship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.mentorships[id]
	if !ok {
		return nil, shared.ErrMentorshipNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMentorshipRepo) Update(_ context.Context, m *matching.Mentorship) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.mentorships[m.ID]; !ok {
		return shared.ErrMentorshipNotFound
	}
	cp := *m
	r.store.mentorships[m.ID] = &cp
	return nil
}

func (r *fakeMentorshipRepo) GetAll(_ context.Context, state *matching.MentorshipState) ([]*matching.Mentorship, error) {
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

func (r *fakeMentorshipRepo) GetByParticipant(_ context.Context, profileID uuid.UUID) ([]*matching.Mentorship, error) {
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

func (r *fakeMentorshipRepo) HasActiveForMentor(_ context.Context, mentorID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentorships {
		if m.IsActive() && m.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMentorshipRepo) HasActiveForMentee(_ context.Context, menteeID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.mentorships {
		if m.IsActive() && m.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// unit of work
// ─────────────────────────────────────────────────────────────────────────────

// fakeUnitOfWork serializes transactions with a dedicated lock, matching
// the isolation the accept path gets from Postgres.
type fakeUnitOfWork struct {
	store    *fakeStore
	txMu     *sync.Mutex
	released bool
}

type fakeUoWFactory struct {
	store *fakeStore
	txMu  sync.Mutex
}

func newFakeUoWFactory(store *fakeStore) *fakeUoWFactory {
	return &fakeUoWFactory{store: store}
}

func (f *fakeUoWFactory) Begin(context.Context) (matching.UnitOfWork, error) {
	f.txMu.Lock()
	return &fakeUnitOfWork{store: f.store, txMu: &f.txMu}, nil
}

func (u *fakeUnitOfWork) Requests() matching.MatchRequestRepository {
	return &fakeRequestRepo{store: u.store}
}

func (u *fakeUnitOfWork) Mentorships() matching.MentorshipRepository {
	return &fakeMentorshipRepo{store: u.store}
}

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.release()
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	u.release()
	return nil
}

func (u *fakeUnitOfWork) release() {
	if !u.released {
		u.released = true
		u.txMu.Unlock()
	}
}

// recordingNotifier captures notification calls for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) MatchProposed(_ context.Context, mentorEmail, _, _ string, _ int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, mentorEmail)
	return nil
}
