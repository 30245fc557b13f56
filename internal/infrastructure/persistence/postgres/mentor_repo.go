package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MENTOR REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

const mentorColumns = `
	id, user_id, university_id, linkedin, education, current_title,
	areas_of_activity, competencies, hobbies, photo_url, active, created_at
`

// MentorRepository implements profile.MentorRepository for PostgreSQL.
type MentorRepository struct {
	conn *Connection
}

// NewMentorRepository creates a new MentorRepository.
func NewMentorRepository(conn *Connection) *MentorRepository {
	return &MentorRepository{conn: conn}
}

// Create stores a new mentor profile.
func (r *MentorRepository) Create(ctx context.Context, m *profile.Mentor) error {
	query := `
		INSERT INTO mentors (
			id, user_id, university_id, linkedin, education, current_title,
			areas_of_activity, competencies, hobbies, photo_url, active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.conn.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.UniversityID,
		m.LinkedIn,
		m.Education,
		m.CurrentTitle,
		m.AreasOfActivity,
		m.Competencies,
		m.Hobbies,
		m.PhotoURL,
		m.Active,
		m.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

// GetByID returns a mentor profile by ID.
func (r *MentorRepository) GetByID(ctx context.Context, id uuid.UUID) (*profile.Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors WHERE id = $1`
	return scanMentor(r.conn.QueryRow(ctx, query, id))
}

// GetByUserID returns the mentor profile linked to a user account.
func (r *MentorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors WHERE user_id = $1`
	return scanMentor(r.conn.QueryRow(ctx, query, userID))
}

// GetAll returns mentor profiles matching the filter.
func (r *MentorRepository) GetAll(ctx context.Context, filter profile.ListFilter) ([]*profile.Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors` + filterClause(filter) + ` ORDER BY created_at`

	rows, err := r.conn.Query(ctx, query, filterArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]*profile.Mentor, 0)
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

// Update updates a mentor profile.
func (r *MentorRepository) Update(ctx context.Context, m *profile.Mentor) error {
	query := `
		UPDATE mentors SET
			university_id = $1,
			linkedin = $2,
			education = $3,
			current_title = $4,
			areas_of_activity = $5,
			competencies = $6,
			hobbies = $7,
			photo_url = $8,
			active = $9
		WHERE id = $10
	`

	result, err := r.conn.Exec(ctx, query,
		m.UniversityID,
		m.LinkedIn,
		m.Education,
		m.CurrentTitle,
		m.AreasOfActivity,
		m.Competencies,
		m.Hobbies,
		m.PhotoURL,
		m.Active,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mentor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMentorNotFound
	}
	return nil
}

// Delete removes a mentor profile.
func (r *MentorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM mentors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete mentor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMentorNotFound
	}
	return nil
}

func scanMentor(row pgx.Row) (*profile.Mentor, error) {
	var m profile.Mentor
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.UniversityID,
		&m.LinkedIn,
		&m.Education,
		&m.CurrentTitle,
		&m.AreasOfActivity,
		&m.Competencies,
		&m.Hobbies,
		&m.PhotoURL,
		&m.Active,
		&m.CreatedAt,
	)
	if IsNoRows(err) {
		return nil, shared.ErrMentorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan mentor: %w", err)
	}
	return &m, nil
}

// filterClause builds the WHERE clause shared by mentor and mentee listings.
func filterClause(filter profile.ListFilter) string {
	switch {
	case filter.UniversityID != nil && filter.OnlyActive:
		return " WHERE active AND university_id = $1"
	case filter.UniversityID != nil && filter.OnlyInactive:
		return " WHERE NOT active AND university_id = $1"
	case filter.UniversityID != nil:
		return " WHERE university_id = $1"
	case filter.OnlyActive:
		return " WHERE active"
	case filter.OnlyInactive:
		return " WHERE NOT active"
	}
	return ""
}

func filterArgs(filter profile.ListFilter) []any {
	if filter.UniversityID != nil {
		return []any{*filter.UniversityID}
	}
	return nil
}
