package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UNIVERSITY REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// UniversityRepository implements profile.UniversityRepository for PostgreSQL.
type UniversityRepository struct {
	conn *Connection
}

// NewUniversityRepository creates a new UniversityRepository.
func NewUniversityRepository(conn *Connection) *UniversityRepository {
	return &UniversityRepository{conn: conn}
}

// Create stores a new university.
func (r *UniversityRepository) Create(ctx context.Context, u *profile.University) error {
	_, err := r.conn.Exec(ctx, "INSERT INTO universities (id, name) VALUES ($1, $2)", u.ID, u.Name)
	if err != nil {
		return fmt.Errorf("failed to create university: %w", err)
	}
	return nil
}

// GetByID returns a university by ID.
func (r *UniversityRepository) GetByID(ctx context.Context, id uuid.UUID) (*profile.University, error) {
	var u profile.University
	err := r.conn.QueryRow(ctx, "SELECT id, name FROM universities WHERE id = $1", id).Scan(&u.ID, &u.Name)
	if IsNoRows(err) {
		return nil, shared.ErrUniversityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan university: %w", err)
	}
	return &u, nil
}

// GetAll returns all universities ordered by name.
func (r *UniversityRepository) GetAll(ctx context.Context) ([]*profile.University, error) {
	rows, err := r.conn.Query(ctx, "SELECT id, name FROM universities ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query universities: %w", err)
	}
	defer rows.Close()

	universities := make([]*profile.University, 0)
	for rows.Next() {
		var u profile.University
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		universities = append(universities, &u)
	}
	return universities, rows.Err()
}

// Update renames a university.
func (r *UniversityRepository) Update(ctx context.Context, u *profile.University) error {
	result, err := r.conn.Exec(ctx, "UPDATE universities SET name = $1 WHERE id = $2", u.Name, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrUniversityNotFound
	}
	return nil
}

// Delete removes a university. Profiles keep their rows with the
// linkage set to NULL.
func (r *UniversityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM universities WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete university: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrUniversityNotFound
	}
	return nil
}
