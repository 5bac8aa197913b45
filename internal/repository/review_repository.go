package repository

import (
	"context"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// ReviewRepository defines persistence operations for reviews,
// including bulk deletion used when a Pokémon is removed.
type ReviewRepository interface {
	// GetAll returns every review ordered by identifier ascending.
	GetAll(ctx context.Context) ([]domain.Review, error)

	// GetByID retrieves a review by its identifier. Returns a
	// NotFoundError when no such review exists.
	GetByID(ctx context.Context, id int) (*domain.Review, error)

	// GetByTitle retrieves a review by title. Matching is
	// case-insensitive with surrounding whitespace trimmed; callers use
	// it to reject duplicate titles before Create. Returns a
	// NotFoundError when no review matches.
	GetByTitle(ctx context.Context, title string) (*domain.Review, error)

	// Exists reports whether a review with the given identifier exists.
	Exists(ctx context.Context, id int) (bool, error)

	// GetReviewsByPokemonID returns every review written about the
	// given Pokémon. Returns an empty slice when none exist.
	GetReviewsByPokemonID(ctx context.Context, pokemonID int) ([]domain.Review, error)

	// Create inserts a new review and fills in its store-assigned ID.
	Create(ctx context.Context, review *domain.Review) error

	// Update replaces the stored row with the supplied field values.
	// Returns a CommitFailedError when no row was affected.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes the review row. Returns a CommitFailedError when
	// no row was affected.
	Delete(ctx context.Context, review *domain.Review) error

	// DeleteReviews removes every review in the slice in one statement.
	// Returns a CommitFailedError when fewer rows were deleted than
	// reviews supplied. Deleting an empty slice is a no-op.
	DeleteReviews(ctx context.Context, reviews []domain.Review) error
}
