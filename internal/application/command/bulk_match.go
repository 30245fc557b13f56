package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// BULK MATCH COMMAND
// Walks every active unmatched mentee and proposes its single best mentor.
// Each iteration commits independently: a mentor proposed to one mentee is
// busy for the next, and one mentee's failure never rolls back the others.
// ══════════════════════════════════════════════════════════════════════════════

// BulkMatchCommand runs the matching sweep.
type BulkMatchCommand struct {
	// TopK and MinScore tune candidate selection. Zero values fall back
	// to the configured defaults supplied at handler construction.
	TopK     int
	MinScore int

	// SameUniversity restricts pairings to shared affiliations.
	SameUniversity bool
}

// BulkMatchResult summarizes the sweep.
type BulkMatchResult struct {
	// Processed counts mentees examined.
	Processed int

	// Created counts pending requests written.
	Created int

	// Skipped counts mentees left alone (busy, or no eligible mentors).
	Skipped int

	// Failed counts mentees whose iteration errored.
	Failed int

	// CreatedRequestIDs lists the new requests in mentee order.
	CreatedRequestIDs []uuid.UUID

	Events []shared.Event
}

// BulkMatchHandler handles the BulkMatchCommand.
type BulkMatchHandler struct {
	mentors     profile.MentorRepository
	mentees     profile.MenteeRepository
	eligibility *EligibilityChecker
	selector    *matching.Selector
	create      *CreateMatchRequestHandler
	defaults    matching.SelectionOptions
	log         *logger.Logger
}

// NewBulkMatchHandler creates a new handler. defaults supplies the
// selection tuning used when the command leaves TopK or MinScore zero.
func NewBulkMatchHandler(
	mentors profile.MentorRepository,
	mentees profile.MenteeRepository,
	eligibility *EligibilityChecker,
	selector *matching.Selector,
	create *CreateMatchRequestHandler,
	defaults matching.SelectionOptions,
	log *logger.Logger,
) *BulkMatchHandler {
	return &BulkMatchHandler{
		mentors:     mentors,
		mentees:     mentees,
		eligibility: eligibility,
		selector:    selector,
		create:      create,
		defaults:    defaults,
		log:         log.With(logger.Component("command.bulk_match")),
	}
}

// Handle executes the bulk match command.
func (h *BulkMatchHandler) Handle(ctx context.Context, cmd BulkMatchCommand) (*BulkMatchResult, error) {
	opts := h.defaults
	if cmd.TopK > 0 {
		opts.TopK = cmd.TopK
	}
	if cmd.MinScore > 0 {
		opts.MinScore = cmd.MinScore
	}

	mentees, err := h.mentees.GetAll(ctx, profile.ActiveOnly())
	if err != nil {
		return nil, err
	}

	result := &BulkMatchResult{
		CreatedRequestIDs: make([]uuid.UUID, 0),
		Events:            make([]shared.Event, 0),
	}

	for _, mentee := range mentees {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++

		if err := h.eligibility.MenteeFree(ctx, mentee.ID); err != nil {
			if shared.IsConflict(err) {
				result.Skipped++
				continue
			}
			h.logFailure(mentee.ID, err, result)
			continue
		}

		best, err := h.pickMentor(ctx, mentee, cmd.SameUniversity)
		if err != nil {
			if shared.IsConflict(err) {
				result.Skipped++
				continue
			}
			h.logFailure(mentee.ID, err, result)
			continue
		}

		created, err := h.create.Handle(ctx, CreateMatchRequestCommand{
			MentorID: best.MentorID,
			MenteeID: mentee.ID,
		})
		if err != nil {
			// Another iteration may have claimed the mentor in between.
			if shared.IsConflict(err) {
				result.Skipped++
				continue
			}
			h.logFailure(mentee.ID, err, result)
			continue
		}

		result.Created++
		result.CreatedRequestIDs = append(result.CreatedRequestIDs, created.RequestID)
		result.Events = append(result.Events, created.Events...)
	}

	h.log.Info("bulk match finished",
		logger.Int("processed", result.Processed),
		logger.Int("created", result.Created),
		logger.Int("skipped", result.Skipped),
		logger.Int("failed", result.Failed),
	)
	result.Events = append(result.Events, shared.NewBaseEvent(shared.EventBulkMatchRun, ""))

	return result, nil
}

// pickMentor builds the eligible pool for one mentee and selects its best
// mentor.
func (h *BulkMatchHandler) pickMentor(ctx context.Context, mentee *profile.Mentee, sameUniversity bool) (matching.Candidate, error) {
	filter := profile.ActiveOnly()
	if sameUniversity {
		if mentee.UniversityID == nil {
			return matching.Candidate{}, shared.ErrNoEligibleMentors
		}
		filter.UniversityID = mentee.UniversityID
	}

	mentors, err := h.mentors.GetAll(ctx, filter)
	if err != nil {
		return matching.Candidate{}, err
	}

	pool := make([]matching.MentorCandidate, 0, len(mentors))
	for _, mentor := range mentors {
		if err := h.eligibility.MentorFree(ctx, mentor.ID); err != nil {
			if shared.IsConflict(err) {
				continue
			}
			return matching.Candidate{}, err
		}
		pool = append(pool, matching.MentorCandidate{
			MentorID: mentor.ID,
			Traits:   matching.MentorTraits{Competencies: mentor.Competencies, Hobbies: mentor.Hobbies},
		})
	}

	return h.selector.Best(
		matching.MenteeTraits{Competencies: mentee.Competencies, Hobbies: mentee.Hobbies, Course: mentee.Course},
		pool,
	)
}

func (h *BulkMatchHandler) logFailure(menteeID uuid.UUID, err error, result *BulkMatchResult) {
	result.Failed++
	h.log.Warn("bulk match iteration failed", logger.MenteeID(menteeID.String()), logger.Err(err))
}
