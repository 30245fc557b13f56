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
// MENTEE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

const menteeColumns = `
	id, user_id, university_id, linkedin, course, course_year, semester,
	objective, competencies, hobbies, photo_url, active, created_at
`

// MenteeRepository implements profile.MenteeRepository for PostgreSQL.
type MenteeRepository struct {
	conn *Connection
}

// NewMenteeRepository creates a new MenteeRepository.
func NewMenteeRepository(conn *Connection) *MenteeRepository {
	return &MenteeRepository{conn: conn}
}

// Create stores a new mentee profile.
func (r *MenteeRepository) Create(ctx context.Context, m *profile.Mentee) error {
	query := `
		INSERT INTO mentees (
			id, user_id, university_id, linkedin, course, course_year, semester,
			objective, competencies, hobbies, photo_url, active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.conn.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.UniversityID,
		m.LinkedIn,
		m.Course,
		m.CourseYear,
		m.Semester,
		m.Objective,
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
		return fmt.Errorf("failed to create mentee: %w", err)
	}
	return nil
}

// GetByID returns a mentee profile by ID.
func (r *MenteeRepository) GetByID(ctx context.Context, id uuid.UUID) (*profile.Mentee, error) {
	query := `SELECT ` + menteeColumns + ` FROM mentees WHERE id = $1`
	return scanMentee(r.conn.QueryRow(ctx, query, id))
}

// GetByUserID returns the mentee profile linked to a user account.
func (r *MenteeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Mentee, error) {
	query := `SELECT ` + menteeColumns + ` FROM mentees WHERE user_id = $1`
	return scanMentee(r.conn.QueryRow(ctx, query, userID))
}

// GetAll returns mentee profiles matching the filter.
func (r *MenteeRepository) GetAll(ctx context.Context, filter profile.ListFilter) ([]*profile.Mentee, error) {
	query := `SELECT ` + menteeColumns + ` FROM mentees` + filterClause(filter) + ` ORDER BY created_at`

	rows, err := r.conn.Query(ctx, query, filterArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mentees: %w", err)
	}
	defer rows.Close()

	mentees := make([]*profile.Mentee, 0)
	for rows.Next() {
		m, err := scanMentee(rows)
		if err != nil {
			return nil, err
		}
		mentees = append(mentees, m)
	}
	return mentees, rows.Err()
}

// Update updates a mentee profile.
func (r *MenteeRepository) Update(ctx context.Context, m *profile.Mentee) error {
	query := `
		UPDATE mentees SET
			university_id = $1,
			linkedin = $2,
			course = $3,
			course_year = $4,
			semester = $5,
			objective = $6,
			competencies = $7,
			hobbies = $8,
			photo_url = $9,
			active = $10
		WHERE id = $11
	`

	result, err := r.conn.Exec(ctx, query,
		m.UniversityID,
		m.LinkedIn,
		m.Course,
		m.CourseYear,
		m.Semester,
		m.Objective,
		m.Competencies,
		m.Hobbies,
		m.PhotoURL,
		m.Active,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mentee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMenteeNotFound
	}
	return nil
}

// Delete removes a mentee profile.
func (r *MenteeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM mentees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete mentee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMenteeNotFound
	}
	return nil
}

func scanMentee(row pgx.Row) (*profile.Mentee, error) {
	var m profile.Mentee
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.UniversityID,
		&m.LinkedIn,
		&m.Course,
		&m.CourseYear,
		&m.Semester,
		&m.Objective,
		&m.Competencies,
		&m.Hobbies,
		&m.PhotoURL,
		&m.Active,
		&m.CreatedAt,
	)
	if IsNoRows(err) {
		return nil, shared.ErrMenteeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan mentee: %w", err)
	}
	return &m, nil
}
