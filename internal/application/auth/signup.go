package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SIGNUP
// Registration creates the base account plus a mentor or mentee profile.
// Profiles start inactive and enter the pool only after admin approval.
// ══════════════════════════════════════════════════════════════════════════════

// SignupCommand is the account portion shared by both signup flows.
type SignupCommand struct {
	FullName  string
	CPF       string
	Email     string
	Password  string
	BirthDate *time.Time

	UniversityID *uuid.UUID
	LinkedIn     string
	PhotoURL     string

	Competencies []string
	Hobbies      []string
}

// Validate validates the shared account fields.
func (c SignupCommand) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return shared.NewDomainError("auth", "Signup", shared.ErrEmptyValue, "full name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return shared.NewDomainError("auth", "Signup", shared.ErrEmptyValue, "email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return shared.NewDomainError("auth", "Signup", shared.ErrInvalidInput, "email is malformed")
	}
	if len(c.Password) < 8 {
		return shared.NewDomainError("auth", "Signup", shared.ErrInvalidInput, "password must be at least 8 characters")
	}
	return nil
}

// SignupMentorCommand registers a mentor account.
type SignupMentorCommand struct {
	SignupCommand

	Education       string
	CurrentTitle    string
	AreasOfActivity string
}

// SignupMenteeCommand registers a mentee account.
type SignupMenteeCommand struct {
	SignupCommand

	Course     string
	CourseYear int
	Semester   int
	Objective  string
}

// Validate validates the mentee fields.
func (c SignupMenteeCommand) Validate() error {
	if err := c.SignupCommand.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Course) == "" {
		return shared.NewDomainError("auth", "Signup", shared.ErrEmptyValue, "course is required")
	}
	return nil
}

// SignupResult identifies the created account and profile.
type SignupResult struct {
	UserID    uuid.UUID
	ProfileID uuid.UUID
	Role      profile.Role
	Events    []shared.Event
}

// Registrar handles account registration.
type Registrar struct {
	users      profile.UserRepository
	mentors    profile.MentorRepository
	mentees    profile.MenteeRepository
	bcryptCost int
	log        *logger.Logger
}

// NewRegistrar creates a Registrar.
func NewRegistrar(
	users profile.UserRepository,
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	bcryptCost int,
	log *logger.Logger,
) *Registrar {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Registrar{
		users:      users,
		mentors:    mentors,
		mentees:    mentees,
		bcryptCost: bcryptCost,
		log:        log.With(logger.Component("auth.registrar")),
	}
}

// SignupMentor registers a mentor account pending approval.
func (r *Registrar) SignupMentor(ctx context.Context, cmd SignupMentorCommand) (*SignupResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := r.createUser(ctx, cmd.SignupCommand)
	if err != nil {
		return nil, err
	}

	mentor, err := profile.NewMentor(profile.NewMentorParams{
		UserID:          user.ID,
		UniversityID:    cmd.UniversityID,
		LinkedIn:        cmd.LinkedIn,
		Education:       cmd.Education,
		CurrentTitle:    cmd.CurrentTitle,
		AreasOfActivity: cmd.AreasOfActivity,
		Competencies:    cmd.Competencies,
		Hobbies:         cmd.Hobbies,
		PhotoURL:        cmd.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	if err := r.mentors.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("signup: failed to create mentor profile: %w", err)
	}

	r.log.Info("mentor registered",
		logger.UserID(user.ID.String()),
		logger.MentorID(mentor.ID.String()),
	)

	return &SignupResult{
		UserID:    user.ID,
		ProfileID: mentor.ID,
		Role:      profile.RoleMentor,
		Events:    []shared.Event{shared.NewBaseEvent(shared.EventUserRegistered, user.ID.String())},
	}, nil
}

// SignupMentee registers a mentee account pending approval.
func (r *Registrar) SignupMentee(ctx context.Context, cmd SignupMenteeCommand) (*SignupResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := r.createUser(ctx, cmd.SignupCommand)
	if err != nil {
		return nil, err
	}

	mentee, err := profile.NewMentee(profile.NewMenteeParams{
		UserID:       user.ID,
		UniversityID: cmd.UniversityID,
		LinkedIn:     cmd.LinkedIn,
		Course:       cmd.Course,
		CourseYear:   cmd.CourseYear,
		Semester:     cmd.Semester,
		Objective:    cmd.Objective,
		Competencies: cmd.Competencies,
		Hobbies:      cmd.Hobbies,
		PhotoURL:     cmd.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	if err := r.mentees.Create(ctx, mentee); err != nil {
		return nil, fmt.Errorf("signup: failed to create mentee profile: %w", err)
	}

	r.log.Info("mentee registered",
		logger.UserID(user.ID.String()),
		logger.MenteeID(mentee.ID.String()),
	)

	return &SignupResult{
		UserID:    user.ID,
		ProfileID: mentee.ID,
		Role:      profile.RoleMentee,
		Events:    []shared.Event{shared.NewBaseEvent(shared.EventUserRegistered, user.ID.String())},
	}, nil
}

// createUser hashes the password and stores the base account.
func (r *Registrar) createUser(ctx context.Context, cmd SignupCommand) (*profile.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), r.bcryptCost)
	if err != nil {
		return nil, shared.WrapError("auth", "Signup", shared.ErrExternalService, "failed to hash password", err)
	}

	user, err := profile.NewUser(profile.NewUserParams{
		FullName:     cmd.FullName,
		CPF:          cmd.CPF,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		BirthDate:    cmd.BirthDate,
	})
	if err != nil {
		return nil, err
	}

	if err := r.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
