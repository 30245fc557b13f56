package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MEETING REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

const meetingColumns = "id, mentor_id, mentee_id, held_at, duration_min, theme, topics, progress, notes"

// MeetingRepository implements matching.MeetingRepository for PostgreSQL.
type MeetingRepository struct {
	conn *Connection
}

// NewMeetingRepository creates a new MeetingRepository.
func NewMeetingRepository(conn *Connection) *MeetingRepository {
	return &MeetingRepository{conn: conn}
}

// CreateMeeting records a held meeting.
func (r *MeetingRepository) CreateMeeting(ctx context.Context, m *matching.Meeting) error {
	query := `
		INSERT INTO meetings (id, mentor_id, mentee_id, held_at, duration_min, theme, topics, progress, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.conn.Exec(ctx, query,
		m.ID,
		m.MentorID,
		m.MenteeID,
		m.HeldAt,
		m.DurationMin,
		m.Theme,
		m.Topics,
		m.Progress,
		m.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// GetMeeting returns a held meeting by ID.
func (r *MeetingRepository) GetMeeting(ctx context.Context, id uuid.UUID) (*matching.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`
	return scanMeeting(r.conn.QueryRow(ctx, query, id))
}

// UpdateMeeting updates a held meeting's record.
func (r *MeetingRepository) UpdateMeeting(ctx context.Context, m *matching.Meeting) error {
	query := `
		UPDATE meetings SET
			held_at = $1,
			duration_min = $2,
			theme = $3,
			topics = $4,
			progress = $5,
			notes = $6
		WHERE id = $7
	`

	result, err := r.conn.Exec(ctx, query,
		m.HeldAt,
		m.DurationMin,
		m.Theme,
		m.Topics,
		m.Progress,
		m.Notes,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMeetingNotFound
	}
	return nil
}

// DeleteMeeting removes a held meeting.
func (r *MeetingRepository) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM meetings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMeetingNotFound
	}
	return nil
}

// GetMeetingsByParticipant returns held meetings involving the profile,
// newest first.
func (r *MeetingRepository) GetMeetingsByParticipant(ctx context.Context, profileID uuid.UUID) ([]*matching.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY held_at DESC
	`

	rows, err := r.conn.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]*matching.Meeting, 0)
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// CreateUpcoming stores a suggested meeting slot.
func (r *MeetingRepository) CreateUpcoming(ctx context.Context, m *matching.UpcomingMeeting) error {
	query := `
		INSERT INTO upcoming_meetings (id, mentor_id, mentee_id, suggested_at, topic)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.conn.Exec(ctx, query, m.ID, m.MentorID, m.MenteeID, m.SuggestedAt, m.Topic)
	if err != nil {
		return fmt.Errorf("failed to create upcoming meeting: %w", err)
	}
	return nil
}

// GetUpcoming returns a suggested meeting slot by ID.
func (r *MeetingRepository) GetUpcoming(ctx context.Context, id uuid.UUID) (*matching.UpcomingMeeting, error) {
	query := `SELECT id, mentor_id, mentee_id, suggested_at, topic FROM upcoming_meetings WHERE id = $1`

	var m matching.UpcomingMeeting
	err := r.conn.QueryRow(ctx, query, id).Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.SuggestedAt, &m.Topic)
	if IsNoRows(err) {
		return nil, shared.ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan upcoming meeting: %w", err)
	}
	return &m, nil
}

// DeleteUpcoming removes a suggested meeting slot.
func (r *MeetingRepository) DeleteUpcoming(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM upcoming_meetings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete upcoming meeting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMeetingNotFound
	}
	return nil
}

// GetUpcomingByParticipant returns suggested slots involving the
// profile, soonest first.
func (r *MeetingRepository) GetUpcomingByParticipant(ctx context.Context, profileID uuid.UUID) ([]*matching.UpcomingMeeting, error) {
	query := `
		SELECT id, mentor_id, mentee_id, suggested_at, topic
		FROM upcoming_meetings
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY suggested_at
	`

	rows, err := r.conn.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]*matching.UpcomingMeeting, 0)
	for rows.Next() {
		var m matching.UpcomingMeeting
		if err := rows.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.SuggestedAt, &m.Topic); err != nil {
			return nil, fmt.Errorf("failed to scan upcoming meeting: %w", err)
		}
		meetings = append(meetings, &m)
	}
	return meetings, rows.Err()
}

func scanMeeting(row pgx.Row) (*matching.Meeting, error) {
	var m matching.Meeting
	err := row.Scan(
		&m.ID,
		&m.MentorID,
		&m.MenteeID,
		&m.HeldAt,
		&m.DurationMin,
		&m.Theme,
		&m.Topics,
		&m.Progress,
		&m.Notes,
	)
	if IsNoRows(err) {
		return nil, shared.ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan meeting: %w", err)
	}
	return &m, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// CERTIFICATE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// CertificateRepository implements matching.CertificateRepository for
// PostgreSQL.
type CertificateRepository struct {
	conn *Connection
}

// NewCertificateRepository creates a new CertificateRepository.
func NewCertificateRepository(conn *Connection) *CertificateRepository {
	return &CertificateRepository{conn: conn}
}

// Create stores a certificate.
func (r *CertificateRepository) Create(ctx context.Context, c *matching.Certificate) error {
	query := `INSERT INTO certificates (id, mentee_id, year) VALUES ($1, $2, $3)`

	_, err := r.conn.Exec(ctx, query, c.ID, c.MenteeID, c.Year)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

// GetByID returns a certificate by ID.
func (r *CertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*matching.Certificate, error) {
	var c matching.Certificate
	err := r.conn.QueryRow(ctx, "SELECT id, mentee_id, year FROM certificates WHERE id = $1", id).
		Scan(&c.ID, &c.MenteeID, &c.Year)
	if IsNoRows(err) {
		return nil, shared.ErrCertificateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan certificate: %w", err)
	}
	return &c, nil
}

// Delete removes a certificate.
func (r *CertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.conn.Exec(ctx, "DELETE FROM certificates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrCertificateNotFound
	}
	return nil
}

// GetByMentee returns a mentee's certificates, most recent year first.
func (r *CertificateRepository) GetByMentee(ctx context.Context, menteeID uuid.UUID) ([]*matching.Certificate, error) {
	query := `SELECT id, mentee_id, year FROM certificates WHERE mentee_id = $1 ORDER BY year DESC`

	rows, err := r.conn.Query(ctx, query, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()

	certificates := make([]*matching.Certificate, 0)
	for rows.Next() {
		var c matching.Certificate
		if err := rows.Scan(&c.ID, &c.MenteeID, &c.Year); err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, &c)
	}
	return certificates, rows.Err()
}
