package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// PokemonRepository defines persistence operations for Pokémon,
// including the rating aggregate and transactional creation with
// association links.
type PokemonRepository interface {
	// GetAll returns every Pokémon ordered by identifier ascending.
	GetAll(ctx context.Context) ([]domain.Pokemon, error)

	// GetByID retrieves a Pokémon by its identifier. Returns a
	// NotFoundError when no such Pokémon exists.
	GetByID(ctx context.Context, id int) (*domain.Pokemon, error)

	// GetByName retrieves a Pokémon by name. Matching is
	// case-insensitive and ignores surrounding whitespace. Returns a
	// NotFoundError when no Pokémon matches.
	GetByName(ctx context.Context, name string) (*domain.Pokemon, error)

	// Exists reports whether a Pokémon with the given identifier exists.
	Exists(ctx context.Context, id int) (bool, error)

	// GetAverageRating computes the arithmetic mean of all review
	// ratings for the Pokémon. Returns decimal zero when the Pokémon
	// has no reviews or does not exist.
	GetAverageRating(ctx context.Context, pokemonID int) (decimal.Decimal, error)

	// Create inserts a new Pokémon together with one owner link and
	// one category link in a single transaction, and fills in the
	// Pokémon's store-assigned ID. Owner and category references that
	// do not resolve to existing rows are linked as null references.
	Create(ctx context.Context, pokemon *domain.Pokemon, ownerID, categoryID int) error

	// Update replaces the stored row with the supplied field values.
	// Returns a CommitFailedError when no row was affected.
	Update(ctx context.Context, pokemon *domain.Pokemon) error

	// Delete removes the Pokémon row. The caller must delete the
	// Pokémon's reviews first; association rows are removed by the
	// store. Returns a CommitFailedError when no row was affected.
	Delete(ctx context.Context, pokemon *domain.Pokemon) error
}
