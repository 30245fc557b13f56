package profile

import (
	"context"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Contracts for profile storage. Implementations live in
// infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// UserRepository defines CRUD operations for base user accounts.
type UserRepository interface {
	// Create stores a new user.
	// Returns ErrEmailTaken if the email is already registered.
	Create(ctx context.Context, user *User) error

	// GetByID returns a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail returns a user by email (case-insensitive).
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates user data.
	Update(ctx context.Context, user *User) error

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleResolver resolves the role of a user from the linkage tables.
// Resolution checks admin, then coordinator, then mentor, then mentee;
// the first linkage found wins. Zero linkages is a data integrity fault
// and yields ErrNoRoleLinkage.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID uuid.UUID) (Role, error)
}

// MentorRepository defines operations for mentor profiles.
type MentorRepository interface {
	// Create stores a new mentor profile.
	Create(ctx context.Context, mentor *Mentor) error

	// GetByID returns a mentor by profile ID.
	// Returns ErrMentorNotFound if the mentor does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Mentor, error)

	// GetByUserID returns the mentor profile linked to a user account.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Mentor, error)

	// Update updates mentor data, including the active flag.
	Update(ctx context.Context, mentor *Mentor) error

	// Delete removes a mentor profile.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAll returns mentor profiles filtered by ListFilter.
	GetAll(ctx context.Context, filter ListFilter) ([]*Mentor, error)
}

// MenteeRepository defines operations for mentee profiles.
type MenteeRepository interface {
	// Create stores a new mentee profile.
	Create(ctx context.Context, mentee *Mentee) error

	// GetByID returns a mentee by profile ID.
	// Returns ErrMenteeNotFound if the mentee does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Mentee, error)

	// GetByUserID returns the mentee profile linked to a user account.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Mentee, error)

	// Update updates mentee data, including the active flag.
	Update(ctx context.Context, mentee *Mentee) error

	// Delete removes a mentee profile.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAll returns mentee profiles filtered by ListFilter.
	GetAll(ctx context.Context, filter ListFilter) ([]*Mentee, error)
}

// UniversityRepository defines CRUD operations for universities.
type UniversityRepository interface {
	Create(ctx context.Context, university *University) error
	GetByID(ctx context.Context, id uuid.UUID) (*University, error)
	GetAll(ctx context.Context) ([]*University, error)
	Update(ctx context.Context, university *University) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListFilter narrows profile listings.
type ListFilter struct {
	// OnlyActive restricts results to approved profiles.
	OnlyActive bool

	// OnlyInactive restricts results to profiles awaiting approval.
	OnlyInactive bool

	// UniversityID restricts results to one institution when set.
	UniversityID *uuid.UUID
}

// ActiveOnly returns a filter for approved profiles.
func ActiveOnly() ListFilter {
	return ListFilter{OnlyActive: true}
}

// PendingApproval returns a filter for profiles awaiting approval.
func PendingApproval() ListFilter {
	return ListFilter{OnlyInactive: true}
}
