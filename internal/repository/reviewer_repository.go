package repository

import (
	"context"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// ReviewerRepository defines persistence operations for reviewers.
// Single-reviewer reads eagerly load the reviewer's reviews.
type ReviewerRepository interface {
	// GetAll returns every reviewer ordered by identifier ascending,
	// without their reviews loaded.
	GetAll(ctx context.Context) ([]domain.Reviewer, error)

	// GetByID retrieves a reviewer by their identifier with all of
	// their reviews attached. Returns a NotFoundError when no such
	// reviewer exists.
	GetByID(ctx context.Context, id int) (*domain.Reviewer, error)

	// GetByLastName retrieves a reviewer by last name, without their
	// reviews loaded. Matching is case-insensitive with surrounding
	// whitespace trimmed. Returns a NotFoundError when no reviewer
	// matches.
	GetByLastName(ctx context.Context, lastName string) (*domain.Reviewer, error)

	// Exists reports whether a reviewer with the given identifier exists.
	Exists(ctx context.Context, id int) (bool, error)

	// GetReviewsByReviewerID returns every review written by the given
	// reviewer. Returns an empty slice when none exist.
	GetReviewsByReviewerID(ctx context.Context, reviewerID int) ([]domain.Review, error)

	// Create inserts a new reviewer and fills in their store-assigned ID.
	Create(ctx context.Context, reviewer *domain.Reviewer) error

	// Update replaces the stored row with the supplied field values.
	// Returns a CommitFailedError when no row was affected.
	Update(ctx context.Context, reviewer *domain.Reviewer) error

	// Delete removes the reviewer row. Returns a CommitFailedError
	// when no row was affected.
	Delete(ctx context.Context, reviewer *domain.Reviewer) error
}
