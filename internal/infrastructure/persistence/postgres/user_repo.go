// Package postgres implements the PostgreSQL persistence layer for the
// mentoria platform.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// USER REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// UserRepository implements profile.UserRepository for PostgreSQL.
type UserRepository struct {
	conn *Connection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{conn: conn}
}

// Create stores a new user account.
func (r *UserRepository) Create(ctx context.Context, u *profile.User) error {
	query := `
		INSERT INTO users (id, full_name, cpf, email, password_hash, birth_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.conn.Exec(ctx, query,
		u.ID,
		u.FullName,
		u.CPF,
		u.Email,
		u.PasswordHash,
		u.BirthDate,
		u.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID returns a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*profile.User, error) {
	query := `
		SELECT id, full_name, cpf, email, password_hash, birth_date, created_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.conn.QueryRow(ctx, query, id))
}

// GetByEmail returns a user by email, case-insensitive.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*profile.User, error) {
	query := `
		SELECT id, full_name, cpf, email, password_hash, birth_date, created_at
		FROM users
		WHERE email = $1
	`
	return scanUser(r.conn.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
}

// Update updates user data.
func (r *UserRepository) Update(ctx context.Context, u *profile.User) error {
	query := `
		UPDATE users SET
			full_name = $1,
			cpf = $2,
			email = $3,
			password_hash = $4,
			birth_date = $5
		WHERE id = $6
	`

	result, err := r.conn.Exec(ctx, query,
		u.FullName,
		u.CPF,
		u.Email,
		u.PasswordHash,
		u.BirthDate,
		u.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrUserNotFound
	}
	return nil
}

// Delete removes a user. Role linkages and profiles cascade.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrUserNotFound
	}
	return nil
}

func scanUser(row interface{ Scan(dest ...any) error }) (*profile.User, error) {
	var u profile.User
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.CPF,
		&u.Email,
		&u.PasswordHash,
		&u.BirthDate,
		&u.CreatedAt,
	)
	if IsNoRows(err) {
		return nil, shared.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ROLE RESOLVER IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// RoleResolver implements profile.RoleResolver by probing the linkage
// tables in priority order: admin, coordinator, mentor, mentee.
type RoleResolver struct {
	conn *Connection
}

// NewRoleResolver creates a new RoleResolver.
func NewRoleResolver(conn *Connection) *RoleResolver {
	return &RoleResolver{conn: conn}
}

// ResolveRole returns the highest-priority role linked to the user.
// A user with no linkage at all yields ErrNoRoleLinkage.
func (r *RoleResolver) ResolveRole(ctx context.Context, userID uuid.UUID) (profile.Role, error) {
	query := `
		SELECT CASE
			WHEN EXISTS (SELECT 1 FROM admins WHERE user_id = $1) THEN 'admin'
			WHEN EXISTS (SELECT 1 FROM coordinators WHERE user_id = $1) THEN 'coordinator'
			WHEN EXISTS (SELECT 1 FROM mentors WHERE user_id = $1) THEN 'mentor'
			WHEN EXISTS (SELECT 1 FROM mentees WHERE user_id = $1) THEN 'mentee'
			ELSE ''
		END
	`

	var role string
	if err := r.conn.QueryRow(ctx, query, userID).Scan(&role); err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	if role == "" {
		return "", shared.ErrNoRoleLinkage
	}
	return profile.Role(role), nil
}
