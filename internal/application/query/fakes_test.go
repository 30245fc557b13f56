package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// Map-backed fakes. Queries never mutate, so no locking is needed.

type fixture struct {
	users       map[uuid.UUID]*profile.User
	mentors     map[uuid.UUID]*profile.Mentor
	mentees     map[uuid.UUID]*profile.Mentee
	requests    []*matching.MatchRequest
	mentorships []*matching.Mentorship
}

func newFixture() *fixture {
	return &fixture{
		users:   make(map[uuid.UUID]*profile.User),
		mentors: make(map[uuid.UUID]*profile.Mentor),
		mentees: make(map[uuid.UUID]*profile.Mentee),
	}
}

func (f *fixture) addMentor(name string, competencies, hobbies []string) *profile.Mentor {
	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	f.users[user.ID] = user
	mentor := &profile.Mentor{
		ID:           uuid.New(),
		UserID:       user.ID,
		Competencies: competencies,
		Hobbies:      hobbies,
		Active:       true,
	}
	f.mentors[mentor.ID] = mentor
	return mentor
}

func (f *fixture) addMentee(name, course string, competencies, hobbies []string) *profile.Mentee {
	user := &profile.User{ID: uuid.New(), FullName: name, Email: name + "@example.com"}
	f.users[user.ID] = user
	mentee := &profile.Mentee{
		ID:           uuid.New(),
		UserID:       user.ID,
		Course:       course,
		Competencies: competencies,
		Hobbies:      hobbies,
		Active:       true,
	}
	f.mentees[mentee.ID] = mentee
	return mentee
}

func (f *fixture) addRequest(mentorID, menteeID uuid.UUID, score int) *matching.MatchRequest {
	request, err := matching.NewMatchRequest(matching.NewMatchRequestParams{
		MentorID: mentorID,
		MenteeID: menteeID,
		Score:    score,
	})
	if err != nil {
		panic(err)
	}
	f.requests = append(f.requests, request)
	return request
}

type stubUserRepo struct{ f *fixture }

func (r stubUserRepo) Create(context.Context, *profile.User) error { return nil }
func (r stubUserRepo) Update(context.Context, *profile.User) error { return nil }
func (r stubUserRepo) Delete(context.Context, uuid.UUID) error     { return nil }

func (r stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.User, error) {
	u, ok := r.f.users[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return u, nil
}

func (r stubUserRepo) GetByEmail(_ context.Context, email string) (*profile.User, error) {
	for _, u := range r.f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrUserNotFound
}

type stubMentorRepo struct{ f *fixture }

func (r stubMentorRepo) Create(context.Context, *profile.Mentor) error { return nil }
func (r stubMentorRepo) Update(context.Context, *profile.Mentor) error { return nil }
func (r stubMentorRepo) Delete(context.Context, uuid.UUID) error       { return nil }

func (r stubMentorRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Mentor, error) {
	m, ok := r.f.mentors[id]
	if !ok {
		return nil, shared.ErrMentorNotFound
	}
	return m, nil
}

func (r stubMentorRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Mentor, error) {
	for _, m := range r.f.mentors {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, shared.ErrMentorNotFound
}

func (r stubMentorRepo) GetAll(_ context.Context, filter profile.ListFilter) ([]*profile.Mentor, error) {
	out := make([]*profile.Mentor, 0)
	for _, m := range r.f.mentors {
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

type stubMenteeRepo struct{ f *fixture }

func (r stubMenteeRepo) Create(context.Context, *profile.Mentee) error { return nil }
func (r stubMenteeRepo) Update(context.Context, *profile.Mentee) error { return nil }
func (r stubMenteeRepo) Delete(context.Context, uuid.UUID) error       { return nil }

func (r stubMenteeRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Mentee, error) {
	m, ok := r.f.mentees[id]
	if !ok {
		return nil, shared.ErrMenteeNotFound
	}
	return m, nil
}

func (r stubMenteeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Mentee, error) {
	for _, m := range r.f.mentees {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, shared.ErrMenteeNotFound
}

func (r stubMenteeRepo) GetAll(_ context.Context, filter profile.ListFilter) ([]*profile.Mentee, error) {
	out := make([]*profile.Mentee, 0)
	for _, m := range r.f.mentees {
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

type stubRequestRepo struct{ f *fixture }

func (r stubRequestRepo) Create(context.Context, *matching.MatchRequest) error { return nil }
func (r stubRequestRepo) Update(context.Context, *matching.MatchRequest) error { return nil }
func (r stubRequestRepo) Delete(context.Context, uuid.UUID) error              { return nil }

func (r stubRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.MatchRequest, error) {
	for _, req := range r.f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, shared.ErrRequestNotFound
}

func (r stubRequestRepo) GetAll(_ context.Context, state *matching.RequestState) ([]*matching.MatchRequest, error) {
	out := make([]*matching.MatchRequest, 0)
	for _, req := range r.f.requests {
		if state != nil && req.State != *state {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (r stubRequestRepo) GetPendingByParticipant(_ context.Context, mentorID, menteeID uuid.UUID) ([]*matching.MatchRequest, error) {
	out := make([]*matching.MatchRequest, 0)
	for _, req := range r.f.requests {
		if req.IsPending() && req.References(mentorID, menteeID) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r stubRequestRepo) HasPendingForMentor(_ context.Context, mentorID uuid.UUID) (bool, error) {
	for _, req := range r.f.requests {
		if req.IsPending() && req.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (r stubRequestRepo) HasPendingForMentee(_ context.Context, menteeID uuid.UUID) (bool, error) {
	for _, req := range r.f.requests {
		if req.IsPending() && req.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}

func (r stubRequestRepo) DeletePendingByParticipant(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

type stubMentorshipRepo struct{ f *fixture }

func (r stubMentorshipRepo) Create(context.Context, *matching.Mentorship) error { return nil }
func (r stubMentorshipRepo) Update(context.Context, *matching.Mentorship) error { return nil }

func (r stubMentorshipRepo) GetByID(_ context.Context, id uuid.UUID) (*matching.Mentorship, error) {
	for _, m := range r.f.mentorships {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, shared.ErrMentorshipNotFound
}

func (r stubMentorshipRepo) GetAll(_ context.Context, state *matching.MentorshipState) ([]*matching.Mentorship, error) {
	out := make([]*matching.Mentorship, 0)
	for _, m := range r.f.mentorships {
		if state != nil && m.State != *state {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r stubMentorshipRepo) GetByParticipant(_ context.Context, profileID uuid.UUID) ([]*matching.Mentorship, error) {
	out := make([]*matching.Mentorship, 0)
	for _, m := range r.f.mentorships {
		if m.Involves(profileID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r stubMentorshipRepo) HasActiveForMentor(_ context.Context, mentorID uuid.UUID) (bool, error) {
	for _, m := range r.f.mentorships {
		if m.IsActive() && m.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (r stubMentorshipRepo) HasActiveForMentee(_ context.Context, menteeID uuid.UUID) (bool, error) {
	for _, m := range r.f.mentorships {
		if m.IsActive() && m.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}
