// Package profile contains the domain model for platform participants:
// users, mentors ("mentoras"), mentees ("mentoradas"), universities, and
// the role taxonomy that the access gate resolves at authentication time.
package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROLES
// ══════════════════════════════════════════════════════════════════════════════

// Role identifies what kind of participant a user is. Exactly one role
// linkage is expected per user; resolution order mirrors onboarding
// precedence (an admin who is also listed as a mentor counts as admin).
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleMentor      Role = "mentor"
	RoleMentee      Role = "mentee"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleMentor, RoleMentee:
		return true
	default:
		return false
	}
}

// CanManageMatches reports whether the role may mutate the match queue.
func (r Role) CanManageMatches() bool {
	return r == RoleAdmin
}

// ══════════════════════════════════════════════════════════════════════════════
// USER
// ══════════════════════════════════════════════════════════════════════════════

// User is the base account record shared by every role.
type User struct {
	ID           uuid.UUID
	FullName     string
	CPF          string
	Email        string
	PasswordHash string
	BirthDate    *time.Time
	CreatedAt    time.Time
}

// NewUserParams holds the data to create a User.
type NewUserParams struct {
	FullName     string
	CPF          string
	Email        string
	PasswordHash string
	BirthDate    *time.Time
}

// NewUser creates a User with a fresh ID.
func NewUser(params NewUserParams) (*User, error) {
	if strings.TrimSpace(params.FullName) == "" {
		return nil, shared.NewDomainError("profile", "NewUser", shared.ErrEmptyValue, "full name is required")
	}
	if strings.TrimSpace(params.Email) == "" {
		return nil, shared.NewDomainError("profile", "NewUser", shared.ErrEmptyValue, "email is required")
	}
	if params.PasswordHash == "" {
		return nil, shared.NewDomainError("profile", "NewUser", shared.ErrEmptyValue, "password hash is required")
	}
	return &User{
		ID:           uuid.New(),
		FullName:     params.FullName,
		CPF:          params.CPF,
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		PasswordHash: params.PasswordHash,
		BirthDate:    params.BirthDate,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// UNIVERSITY
// ══════════════════════════════════════════════════════════════════════════════

// University is an institution mentors and mentees may affiliate with.
// The affiliation is optional and used for same-university match filtering.
type University struct {
	ID   uuid.UUID
	Name string
}

// NewUniversity creates a University.
func NewUniversity(name string) (*University, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("profile", "NewUniversity", shared.ErrEmptyValue, "institution name is required")
	}
	return &University{ID: uuid.New(), Name: name}, nil
}

// Rename changes the institution name.
func (u *University) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("profile", "Rename", shared.ErrEmptyValue, "institution name is required")
	}
	u.Name = name
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MENTOR
// ══════════════════════════════════════════════════════════════════════════════

// Mentor is a volunteer professional offering mentorship.
// Created inactive at signup; Active flips true on admin approval.
// Never hard-deleted while referenced by a match request or mentorship.
type Mentor struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UniversityID *uuid.UUID

	LinkedIn        string
	Education       string
	CurrentTitle    string
	AreasOfActivity string
	Competencies    []string
	Hobbies         []string
	PhotoURL        string

	Active    bool
	CreatedAt time.Time
}

// NewMentorParams holds the data to create a Mentor profile.
type NewMentorParams struct {
	UserID          uuid.UUID
	UniversityID    *uuid.UUID
	LinkedIn        string
	Education       string
	CurrentTitle    string
	AreasOfActivity string
	Competencies    []string
	Hobbies         []string
	PhotoURL        string
}

// NewMentor creates a Mentor pending admin approval.
func NewMentor(params NewMentorParams) (*Mentor, error) {
	if params.UserID == uuid.Nil {
		return nil, shared.NewDomainError("profile", "NewMentor", shared.ErrInvalidID, "user id is required")
	}
	return &Mentor{
		ID:              uuid.New(),
		UserID:          params.UserID,
		UniversityID:    params.UniversityID,
		LinkedIn:        params.LinkedIn,
		Education:       params.Education,
		CurrentTitle:    params.CurrentTitle,
		AreasOfActivity: params.AreasOfActivity,
		Competencies:    params.Competencies,
		Hobbies:         params.Hobbies,
		PhotoURL:        params.PhotoURL,
		Active:          false,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Approve activates the mentor account.
func (m *Mentor) Approve() { m.Active = true }

// Revoke deactivates the mentor account.
func (m *Mentor) Revoke() { m.Active = false }

// SameUniversity reports whether the mentor shares the given affiliation.
// A mentor with no affiliation never matches.
func (m *Mentor) SameUniversity(universityID *uuid.UUID) bool {
	if m.UniversityID == nil || universityID == nil {
		return false
	}
	return *m.UniversityID == *universityID
}

// ══════════════════════════════════════════════════════════════════════════════
// MENTEE
// ══════════════════════════════════════════════════════════════════════════════

// Mentee is a student seeking mentorship.
type Mentee struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UniversityID *uuid.UUID

	LinkedIn     string
	Course       string
	CourseYear   int
	Semester     int
	Objective    string
	Competencies []string
	Hobbies      []string
	PhotoURL     string

	Active    bool
	CreatedAt time.Time
}

// NewMenteeParams holds the data to create a Mentee profile.
type NewMenteeParams struct {
	UserID       uuid.UUID
	UniversityID *uuid.UUID
	LinkedIn     string
	Course       string
	CourseYear   int
	Semester     int
	Objective    string
	Competencies []string
	Hobbies      []string
	PhotoURL     string
}

// NewMentee creates a Mentee pending admin approval.
func NewMentee(params NewMenteeParams) (*Mentee, error) {
	if params.UserID == uuid.Nil {
		return nil, shared.NewDomainError("profile", "NewMentee", shared.ErrInvalidID, "user id is required")
	}
	if strings.TrimSpace(params.Course) == "" {
		return nil, shared.NewDomainError("profile", "NewMentee", shared.ErrEmptyValue, "course is required")
	}
	return &Mentee{
		ID:           uuid.New(),
		UserID:       params.UserID,
		UniversityID: params.UniversityID,
		LinkedIn:     params.LinkedIn,
		Course:       params.Course,
		CourseYear:   params.CourseYear,
		Semester:     params.Semester,
		Objective:    params.Objective,
		Competencies: params.Competencies,
		Hobbies:      params.Hobbies,
		PhotoURL:     params.PhotoURL,
		Active:       false,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Approve activates the mentee account.
func (m *Mentee) Approve() { m.Active = true }

// Revoke deactivates the mentee account.
func (m *Mentee) Revoke() { m.Active = false }
