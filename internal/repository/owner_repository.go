package repository

import (
	"context"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// OwnerRepository defines persistence operations for owners, including
// traversals across the pokemon_owners association.
type OwnerRepository interface {
	// GetAll returns every owner ordered by identifier ascending.
	GetAll(ctx context.Context) ([]domain.Owner, error)

	// GetByID retrieves an owner by their identifier. Returns a
	// NotFoundError when no such owner exists.
	GetByID(ctx context.Context, id int) (*domain.Owner, error)

	// GetByLastName retrieves an owner by last name. Matching is
	// case-insensitive with surrounding whitespace trimmed; callers use
	// it to reject duplicate registrations before Create. Returns a
	// NotFoundError when no owner matches.
	GetByLastName(ctx context.Context, lastName string) (*domain.Owner, error)

	// Exists reports whether an owner with the given identifier exists.
	Exists(ctx context.Context, id int) (bool, error)

	// GetPokemonByOwnerID returns every Pokémon linked to the owner
	// through the association table. Returns an empty slice when the
	// owner has no Pokémon.
	GetPokemonByOwnerID(ctx context.Context, ownerID int) ([]domain.Pokemon, error)

	// GetOwnersByPokemonID returns every owner linked to the Pokémon
	// through the association table. Returns an empty slice when the
	// Pokémon has no owners.
	GetOwnersByPokemonID(ctx context.Context, pokemonID int) ([]domain.Owner, error)

	// Create inserts a new owner and fills in their store-assigned ID.
	Create(ctx context.Context, owner *domain.Owner) error

	// Update replaces the stored row with the supplied field values.
	// Returns a CommitFailedError when no row was affected.
	Update(ctx context.Context, owner *domain.Owner) error

	// Delete removes the owner row. Association rows referencing the
	// owner are removed by the store. Returns a CommitFailedError when
	// no row was affected.
	Delete(ctx context.Context, owner *domain.Owner) error
}
