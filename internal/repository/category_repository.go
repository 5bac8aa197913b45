package repository

import (
	"context"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// CategoryRepository manages Category persistence and the traversal from a
// category to the Pokémon it classifies.
type CategoryRepository interface {
	// GetAll returns every category ordered by identifier ascending.
	// An empty store yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]domain.Category, error)

	// GetByID retrieves a category by its identifier.
	// Returns domain.ErrNotFound if no matching category exists.
	GetByID(ctx context.Context, id int) (*domain.Category, error)

	// GetByName retrieves a category by name. The comparison is
	// case-insensitive with surrounding whitespace trimmed; it backs the
	// advisory pre-create uniqueness check.
	// Returns domain.ErrNotFound if no matching category exists.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// Exists reports whether a category with the given identifier exists.
	Exists(ctx context.Context, id int) (bool, error)

	// GetPokemonByCategoryID returns all Pokémon joined to the category
	// through pokemon_categories rows, ordered by identifier.
	GetPokemonByCategoryID(ctx context.Context, categoryID int) ([]domain.Pokemon, error)

	// Create inserts a new category and fills in its store-assigned ID.
	// It performs no uniqueness check; that is the caller's responsibility.
	Create(ctx context.Context, category *domain.Category) error

	// Update replaces the stored row with the supplied field values.
	// Returns domain.ErrCommitFailed if no row was affected.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes the category row.
	// Returns domain.ErrCommitFailed if no row was affected.
	Delete(ctx context.Context, category *domain.Category) error
}
