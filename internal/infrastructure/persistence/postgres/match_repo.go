package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MATCH REQUEST REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

const matchRequestColumns = "id, mentor_id, mentee_id, state, score, evidence, created_at"

// MatchRequestRepository implements matching.MatchRequestRepository for
// PostgreSQL. It holds a Querier, so the same type runs against the pool
// or inside a transaction.
type MatchRequestRepository struct {
	q Querier
}

// NewMatchRequestRepository creates a pool-backed MatchRequestRepository.
func NewMatchRequestRepository(conn *Connection) *MatchRequestRepository {
	return &MatchRequestRepository{q: conn}
}

// newTxMatchRequestRepository binds the repository to a transaction.
func newTxMatchRequestRepository(tx pgx.Tx) *MatchRequestRepository {
	return &MatchRequestRepository{q: tx}
}

// Create stores a new match request. The partial unique indexes on
// pending rows reject a second pending request for either participant,
// which surfaces as ErrMentorBusy or ErrMenteeBusy.
func (r *MatchRequestRepository) Create(ctx context.Context, req *matching.MatchRequest) error {
	query := `
		INSERT INTO match_requests (id, mentor_id, mentee_id, state, score, evidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.Exec(ctx, query,
		req.ID,
		req.MentorID,
		req.MenteeID,
		string(req.State),
		req.Score,
		req.Evidence,
		req.CreatedAt,
	)
	if err != nil {
		if busy := pendingConflict(err); busy != nil {
			return busy
		}
		return fmt.Errorf("failed to create match request: %w", err)
	}
	return nil
}

// GetByID returns a match request by ID.
func (r *MatchRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*matching.MatchRequest, error) {
	query := `SELECT ` + matchRequestColumns + ` FROM match_requests WHERE id = $1`
	return scanMatchRequest(r.q.QueryRow(ctx, query, id))
}

// GetAll returns match requests, optionally filtered by state.
func (r *MatchRequestRepository) GetAll(ctx context.Context, state *matching.RequestState) ([]*matching.MatchRequest, error) {
	query := `SELECT ` + matchRequestColumns + ` FROM match_requests`
	args := []any{}
	if state != nil {
		query += ` WHERE state = $1`
		args = append(args, string(*state))
	}
	query += ` ORDER BY created_at`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match requests: %w", err)
	}
	defer rows.Close()

	return collectMatchRequests(rows)
}

// GetPendingByParticipant returns pending requests referencing either
// the mentor or the mentee.
func (r *MatchRequestRepository) GetPendingByParticipant(ctx context.Context, mentorID, menteeID uuid.UUID) ([]*matching.MatchRequest, error) {
	query := `
		SELECT ` + matchRequestColumns + `
		FROM match_requests
		WHERE state = 'pending' AND (mentor_id = $1 OR mentee_id = $2)
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, mentorID, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending requests: %w", err)
	}
	defer rows.Close()

	return collectMatchRequests(rows)
}

// HasPendingForMentor reports whether the mentor has a pending request.
func (r *MatchRequestRepository) HasPendingForMentor(ctx context.Context, mentorID uuid.UUID) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM match_requests WHERE state = 'pending' AND mentor_id = $1)", mentorID)
}

// HasPendingForMentee reports whether the mentee has a pending request.
func (r *MatchRequestRepository) HasPendingForMentee(ctx context.Context, menteeID uuid.UUID) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM match_requests WHERE state = 'pending' AND mentee_id = $1)", menteeID)
}

func (r *MatchRequestRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := r.q.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check pending requests: %w", err)
	}
	return found, nil
}

// Update updates a match request's state, score, and evidence.
func (r *MatchRequestRepository) Update(ctx context.Context, req *matching.MatchRequest) error {
	query := `
		UPDATE match_requests SET
			state = $1,
			score = $2,
			evidence = $3
		WHERE id = $4
	`

	result, err := r.q.Exec(ctx, query, string(req.State), req.Score, req.Evidence, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update match request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrRequestNotFound
	}
	return nil
}

// Delete removes a match request.
func (r *MatchRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.q.Exec(ctx, "DELETE FROM match_requests WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete match request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrRequestNotFound
	}
	return nil
}

// DeletePendingByParticipant removes every pending request referencing
// either participant, except keepID, and returns the removed IDs.
func (r *MatchRequestRepository) DeletePendingByParticipant(ctx context.Context, mentorID, menteeID, keepID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		DELETE FROM match_requests
		WHERE state = 'pending'
		  AND (mentor_id = $1 OR mentee_id = $2)
		  AND id <> $3
		RETURNING id
	`

	rows, err := r.q.Query(ctx, query, mentorID, menteeID, keepID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete pending requests: %w", err)
	}
	defer rows.Close()

	deleted := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan deleted request id: %w", err)
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}

func scanMatchRequest(row pgx.Row) (*matching.MatchRequest, error) {
	var (
		req   matching.MatchRequest
		state string
	)
	err := row.Scan(
		&req.ID,
		&req.MentorID,
		&req.MenteeID,
		&state,
		&req.Score,
		&req.Evidence,
		&req.CreatedAt,
	)
	if IsNoRows(err) {
		return nil, shared.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan match request: %w", err)
	}
	req.State = matching.RequestState(state)
	return &req, nil
}

func collectMatchRequests(rows pgx.Rows) ([]*matching.MatchRequest, error) {
	requests := make([]*matching.MatchRequest, 0)
	for rows.Next() {
		req, err := scanMatchRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// pendingConflict maps a unique violation on the pending partial indexes
// to the busy participant. Returns nil for any other error.
func pendingConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "uniq_pending_request_mentor":
		return shared.ErrMentorBusy
	case "uniq_pending_request_mentee":
		return shared.ErrMenteeBusy
	}
	return shared.ErrConflict
}

// ══════════════════════════════════════════════════════════════════════════════
// MENTORSHIP REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

const mentorshipColumns = `
	id, mentor_id, mentee_id, state, started_at, ended_at,
	mentor_rating, mentee_rating, mentor_evaluation, mentee_evaluation
`

// MentorshipRepository implements matching.MentorshipRepository for
// PostgreSQL.
type MentorshipRepository struct {
	q Querier
}

// NewMentorshipRepository creates a pool-backed MentorshipRepository.
func NewMentorshipRepository(conn *Connection) *MentorshipRepository {
	return &MentorshipRepository{q: conn}
}

// newTxMentorshipRepository binds the repository to a transaction.
func newTxMentorshipRepository(tx pgx.Tx) *MentorshipRepository {
	return &MentorshipRepository{q: tx}
}

// Create stores a new mentorship. The partial unique indexes on active
// rows reject a second active mentorship for either participant.
func (r *MentorshipRepository) Create(ctx context.Context, m *matching.Mentorship) error {
	query := `
		INSERT INTO mentorships (
			id, mentor_id, mentee_id, state, started_at, ended_at,
			mentor_rating, mentee_rating, mentor_evaluation, mentee_evaluation
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.Exec(ctx, query,
		m.ID,
		m.MentorID,
		m.MenteeID,
		string(m.State),
		m.StartedAt,
		m.EndedAt,
		m.MentorRating,
		m.MenteeRating,
		m.MentorEvaluation,
		m.MenteeEvaluation,
	)
	if err != nil {
		if busy := activeConflict(err); busy != nil {
			return busy
		}
		return fmt.Errorf("failed to create mentorship: %w", err)
	}
	return nil
}

// GetByID returns a mentorship by ID.
func (r *MentorshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*matching.Mentorship, error) {
	query := `SELECT ` + mentorshipColumns + ` FROM mentorships WHERE id = $1`
	return scanMentorship(r.q.QueryRow(ctx, query, id))
}

// GetAll returns mentorships, optionally filtered by state.
func (r *MentorshipRepository) GetAll(ctx context.Context, state *matching.MentorshipState) ([]*matching.Mentorship, error) {
	query := `SELECT ` + mentorshipColumns + ` FROM mentorships`
	args := []any{}
	if state != nil {
		query += ` WHERE state = $1`
		args = append(args, string(*state))
	}
	query += ` ORDER BY started_at`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mentorships: %w", err)
	}
	defer rows.Close()

	return collectMentorships(rows)
}

// GetByParticipant returns mentorships involving the profile, either as
// mentor or as mentee.
func (r *MentorshipRepository) GetByParticipant(ctx context.Context, profileID uuid.UUID) ([]*matching.Mentorship, error) {
	query := `
		SELECT ` + mentorshipColumns + `
		FROM mentorships
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY started_at
	`

	rows, err := r.q.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mentorships by participant: %w", err)
	}
	defer rows.Close()

	return collectMentorships(rows)
}

// HasActiveForMentor reports whether the mentor has an active mentorship.
func (r *MentorshipRepository) HasActiveForMentor(ctx context.Context, mentorID uuid.UUID) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM mentorships WHERE state = 'active' AND mentor_id = $1)", mentorID)
}

// HasActiveForMentee reports whether the mentee has an active mentorship.
func (r *MentorshipRepository) HasActiveForMentee(ctx context.Context, menteeID uuid.UUID) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM mentorships WHERE state = 'active' AND mentee_id = $1)", menteeID)
}

func (r *MentorshipRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := r.q.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check active mentorships: %w", err)
	}
	return found, nil
}

// Update updates a mentorship's state, ratings, and evaluations.
func (r *MentorshipRepository) Update(ctx context.Context, m *matching.Mentorship) error {
	query := `
		UPDATE mentorships SET
			state = $1,
			ended_at = $2,
			mentor_rating = $3,
			mentee_rating = $4,
			mentor_evaluation = $5,
			mentee_evaluation = $6
		WHERE id = $7
	`

	result, err := r.q.Exec(ctx, query,
		string(m.State),
		m.EndedAt,
		m.MentorRating,
		m.MenteeRating,
		m.MentorEvaluation,
		m.MenteeEvaluation,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mentorship: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shared.ErrMentorshipNotFound
	}
	return nil
}

func scanMentorship(row pgx.Row) (*matching.Mentorship, error) {
	var (
		m     matching.Mentorship
		state string
	)
	err := row.Scan(
		&m.ID,
		&m.MentorID,
		&m.MenteeID,
		&state,
		&m.StartedAt,
		&m.EndedAt,
		&m.MentorRating,
		&m.MenteeRating,
		&m.MentorEvaluation,
		&m.MenteeEvaluation,
	)
	if IsNoRows(err) {
		return nil, shared.ErrMentorshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan mentorship: %w", err)
	}
	m.State = matching.MentorshipState(state)
	return &m, nil
}

func collectMentorships(rows pgx.Rows) ([]*matching.Mentorship, error) {
	mentorships := make([]*matching.Mentorship, 0)
	for rows.Next() {
		m, err := scanMentorship(rows)
		if err != nil {
			return nil, err
		}
		mentorships = append(mentorships, m)
	}
	return mentorships, rows.Err()
}

// activeConflict maps a unique violation on the active partial indexes
// to the busy participant. Returns nil for any other error.
func activeConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "uniq_active_mentorship_mentor":
		return shared.ErrMentorBusy
	case "uniq_active_mentorship_mentee":
		return shared.ErrMenteeBusy
	}
	return shared.ErrConflict
}

// ══════════════════════════════════════════════════════════════════════════════
// UNIT OF WORK IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// UnitOfWork implements matching.UnitOfWork over a single transaction,
// so the accept cascade commits or rolls back as one.
type UnitOfWork struct {
	tx          pgx.Tx
	requests    *MatchRequestRepository
	mentorships *MentorshipRepository
	done        bool
}

// Requests returns the transaction-bound match request repository.
func (u *UnitOfWork) Requests() matching.MatchRequestRepository { return u.requests }

// Mentorships returns the transaction-bound mentorship repository.
func (u *UnitOfWork) Mentorships() matching.MentorshipRepository { return u.mentorships }

// Commit commits the transaction.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
	return nil
}

// Rollback rolls back the transaction. Safe to defer after Commit.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
	return nil
}

// UnitOfWorkFactory implements matching.UnitOfWorkFactory.
type UnitOfWorkFactory struct {
	conn *Connection
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory.
func NewUnitOfWorkFactory(conn *Connection) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{conn: conn}
}

// Begin starts a transaction and returns a unit of work bound to it.
func (f *UnitOfWorkFactory) Begin(ctx context.Context) (matching.UnitOfWork, error) {
	tx, err := f.conn.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{
		tx:          tx,
		requests:    newTxMatchRequestRepository(tx),
		mentorships: newTxMentorshipRepository(tx),
	}, nil
}
