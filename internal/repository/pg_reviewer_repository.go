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
var _ ReviewerRepository = (*PgReviewerRepository)(nil)

// PgReviewerRepository is a PostgreSQL implementation of ReviewerRepository.
type PgReviewerRepository struct {
	db DBTX
}

// NewPgReviewerRepository creates a new PostgreSQL reviewer repository.
func NewPgReviewerRepository(db DBTX) *PgReviewerRepository {
	return &PgReviewerRepository{db: db}
}

// GetAll returns every reviewer ordered by identifier ascending.
// Reviews are not loaded on the list path.
func (r *PgReviewerRepository) GetAll(ctx context.Context) ([]domain.Reviewer, error) {
	query := `
		SELECT id, first_name, last_name
		FROM reviewers
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviewers: %w", err)
	}
	defer rows.Close()

	reviewers := make([]domain.Reviewer, 0)
	for rows.Next() {
		var rv domain.Reviewer
		if err := rows.Scan(&rv.ID, &rv.FirstName, &rv.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan reviewer: %w", err)
		}
		reviewers = append(reviewers, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviewers: %w", err)
	}

	return reviewers, nil
}

// GetByID retrieves a reviewer with all of their reviews attached.
func (r *PgReviewerRepository) GetByID(ctx context.Context, id int) (*domain.Reviewer, error) {
	query := `
		SELECT id, first_name, last_name
		FROM reviewers
		WHERE id = $1`

	var rv domain.Reviewer
	err := r.db.QueryRow(ctx, query, id).Scan(&rv.ID, &rv.FirstName, &rv.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("reviewer", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to get reviewer by ID: %w", err)
	}

	reviews, err := r.GetReviewsByReviewerID(ctx, id)
	if err != nil {
		return nil, err
	}
	rv.Reviews = reviews

	return &rv, nil
}

// GetByLastName retrieves a reviewer by last name, case-insensitively
// with surrounding whitespace trimmed. Reviews are not loaded.
func (r *PgReviewerRepository) GetByLastName(ctx context.Context, lastName string) (*domain.Reviewer, error) {
	if lastName == "" {
		return nil, domain.NewValidationError("last_name", "last name is required")
	}

	query := `
		SELECT id, first_name, last_name
		FROM reviewers
		WHERE lower(btrim(last_name)) = lower(btrim($1))`

	var rv domain.Reviewer
	err := r.db.QueryRow(ctx, query, lastName).Scan(&rv.ID, &rv.FirstName, &rv.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("reviewer", lastName)
		}
		return nil, fmt.Errorf("failed to get reviewer by last name: %w", err)
	}

	return &rv, nil
}

// Exists reports whether a reviewer with the given identifier exists.
func (r *PgReviewerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviewers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reviewer existence: %w", err)
	}
	return exists, nil
}

// GetReviewsByReviewerID returns every review written by the given
// reviewer.
func (r *PgReviewerRepository) GetReviewsByReviewerID(ctx context.Context, reviewerID int) ([]domain.Review, error) {
	query := `
		SELECT id, title, text, rating, pokemon_id, reviewer_id
		FROM reviews
		WHERE reviewer_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by reviewer: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// Create inserts a new reviewer and fills in their store-assigned ID.
func (r *PgReviewerRepository) Create(ctx context.Context, reviewer *domain.Reviewer) error {
	if reviewer == nil {
		return domain.NewValidationError("reviewer", "reviewer cannot be nil")
	}

	query := `
		INSERT INTO reviewers (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, reviewer.FirstName, reviewer.LastName).Scan(&reviewer.ID)
	if err != nil {
		return fmt.Errorf("failed to create reviewer: %w", err)
	}

	return nil
}

// Update replaces the stored row with the supplied field values.
func (r *PgReviewerRepository) Update(ctx context.Context, reviewer *domain.Reviewer) error {
	if reviewer == nil {
		return domain.NewValidationError("reviewer", "reviewer cannot be nil")
	}

	query := `
		UPDATE reviewers
		SET first_name = $1, last_name = $2
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, reviewer.FirstName, reviewer.LastName, reviewer.ID)
	if err != nil {
		return fmt.Errorf("failed to update reviewer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("reviewer", "update")
	}

	return nil
}

// Delete removes the reviewer row.
func (r *PgReviewerRepository) Delete(ctx context.Context, reviewer *domain.Reviewer) error {
	if reviewer == nil {
		return domain.NewValidationError("reviewer", "reviewer cannot be nil")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM reviewers WHERE id = $1`, reviewer.ID)
	if err != nil {
		return fmt.Errorf("failed to delete reviewer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("reviewer", "delete")
	}

	return nil
}
