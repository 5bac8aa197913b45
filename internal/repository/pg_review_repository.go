package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// Compile-time interface verification.
var _ ReviewRepository = (*PgReviewRepository)(nil)

// PgReviewRepository is a PostgreSQL implementation of ReviewRepository.
type PgReviewRepository struct {
	db DBTX
}

// NewPgReviewRepository creates a new PostgreSQL review repository.
func NewPgReviewRepository(db DBTX) *PgReviewRepository {
	return &PgReviewRepository{db: db}
}

// GetAll returns every review ordered by identifier ascending.
func (r *PgReviewRepository) GetAll(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, title, text, rating, pokemon_id, reviewer_id
		FROM reviews
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// GetByID retrieves a review by its identifier.
func (r *PgReviewRepository) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	query := `
		SELECT id, title, text, rating, pokemon_id, reviewer_id
		FROM reviews
		WHERE id = $1`

	var rv domain.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.Title, &rv.Text, &rv.Rating, &rv.PokemonID, &rv.ReviewerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("review", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to get review by ID: %w", err)
	}

	return &rv, nil
}

// GetByTitle retrieves a review by title, case-insensitively with
// surrounding whitespace trimmed.
func (r *PgReviewRepository) GetByTitle(ctx context.Context, title string) (*domain.Review, error) {
	if title == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}

	query := `
		SELECT id, title, text, rating, pokemon_id, reviewer_id
		FROM reviews
		WHERE lower(btrim(title)) = lower(btrim($1))`

	var rv domain.Review
	err := r.db.QueryRow(ctx, query, title).Scan(
		&rv.ID, &rv.Title, &rv.Text, &rv.Rating, &rv.PokemonID, &rv.ReviewerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("review", title)
		}
		return nil, fmt.Errorf("failed to get review by title: %w", err)
	}

	return &rv, nil
}

// Exists reports whether a review with the given identifier exists.
func (r *PgReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

// GetReviewsByPokemonID returns every review written about the given
// Pokémon.
func (r *PgReviewRepository) GetReviewsByPokemonID(ctx context.Context, pokemonID int) ([]domain.Review, error) {
	query := `
		SELECT id, title, text, rating, pokemon_id, reviewer_id
		FROM reviews
		WHERE pokemon_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by pokemon: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// Create inserts a new review and fills in its store-assigned ID.
func (r *PgReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review == nil {
		return domain.NewValidationError("review", "review cannot be nil")
	}

	query := `
		INSERT INTO reviews (title, text, rating, pokemon_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		review.Title, review.Text, review.Rating, review.PokemonID, review.ReviewerID).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// Update replaces the stored row with the supplied field values.
func (r *PgReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if review == nil {
		return domain.NewValidationError("review", "review cannot be nil")
	}

	query := `
		UPDATE reviews
		SET title = $1, text = $2, rating = $3
		WHERE id = $4`

	tag, err := r.db.Exec(ctx, query, review.Title, review.Text, review.Rating, review.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("review", "update")
	}

	return nil
}

// Delete removes the review row.
func (r *PgReviewRepository) Delete(ctx context.Context, review *domain.Review) error {
	if review == nil {
		return domain.NewValidationError("review", "review cannot be nil")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, review.ID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("review", "delete")
	}

	return nil
}

// DeleteReviews removes every review in the slice in one statement.
func (r *PgReviewRepository) DeleteReviews(ctx context.Context, reviews []domain.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]int, len(reviews))
	for i, rv := range reviews {
		ids[i] = rv.ID
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	if tag.RowsAffected() < int64(len(ids)) {
		return domain.NewCommitFailedError("review", "delete batch")
	}

	return nil
}

// collectReviews drains review rows into a slice.
func collectReviews(rows pgx.Rows) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Title, &rv.Text, &rv.Rating, &rv.PokemonID, &rv.ReviewerID); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
