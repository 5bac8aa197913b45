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
var _ OwnerRepository = (*PgOwnerRepository)(nil)

// PgOwnerRepository is a PostgreSQL implementation of OwnerRepository.
type PgOwnerRepository struct {
	db DBTX
}

// NewPgOwnerRepository creates a new PostgreSQL owner repository.
func NewPgOwnerRepository(db DBTX) *PgOwnerRepository {
	return &PgOwnerRepository{db: db}
}

// GetAll returns every owner ordered by identifier ascending.
func (r *PgOwnerRepository) GetAll(ctx context.Context) ([]domain.Owner, error) {
	query := `
		SELECT id, first_name, last_name, country_id
		FROM owners
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	return collectOwners(rows)
}

// GetByID retrieves an owner by their identifier.
func (r *PgOwnerRepository) GetByID(ctx context.Context, id int) (*domain.Owner, error) {
	query := `
		SELECT id, first_name, last_name, country_id
		FROM owners
		WHERE id = $1`

	var o domain.Owner
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("owner", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to get owner by ID: %w", err)
	}

	return &o, nil
}

// GetByLastName retrieves an owner by last name, case-insensitively
// with surrounding whitespace trimmed.
func (r *PgOwnerRepository) GetByLastName(ctx context.Context, lastName string) (*domain.Owner, error) {
	if lastName == "" {
		return nil, domain.NewValidationError("last_name", "last name is required")
	}

	query := `
		SELECT id, first_name, last_name, country_id
		FROM owners
		WHERE lower(btrim(last_name)) = lower(btrim($1))`

	var o domain.Owner
	err := r.db.QueryRow(ctx, query, lastName).Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("owner", lastName)
		}
		return nil, fmt.Errorf("failed to get owner by last name: %w", err)
	}

	return &o, nil
}

// Exists reports whether an owner with the given identifier exists.
func (r *PgOwnerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM owners WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check owner existence: %w", err)
	}
	return exists, nil
}

// GetPokemonByOwnerID returns every Pokémon linked to the owner
// through pokemon_owners rows.
func (r *PgOwnerRepository) GetPokemonByOwnerID(ctx context.Context, ownerID int) ([]domain.Pokemon, error) {
	query := `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		INNER JOIN pokemon_owners po ON po.pokemon_id = p.id
		WHERE po.owner_id = $1
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon by owner: %w", err)
	}
	defer rows.Close()

	return collectPokemon(rows)
}

// GetOwnersByPokemonID returns every owner linked to the Pokémon
// through pokemon_owners rows.
func (r *PgOwnerRepository) GetOwnersByPokemonID(ctx context.Context, pokemonID int) ([]domain.Owner, error) {
	query := `
		SELECT o.id, o.first_name, o.last_name, o.country_id
		FROM owners o
		INNER JOIN pokemon_owners po ON po.owner_id = o.id
		WHERE po.pokemon_id = $1
		ORDER BY o.id`

	rows, err := r.db.Query(ctx, query, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners by pokemon: %w", err)
	}
	defer rows.Close()

	return collectOwners(rows)
}

// Create inserts a new owner and fills in their store-assigned ID.
func (r *PgOwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	if owner == nil {
		return domain.NewValidationError("owner", "owner cannot be nil")
	}

	query := `
		INSERT INTO owners (first_name, last_name, country_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, owner.FirstName, owner.LastName, owner.CountryID).Scan(&owner.ID)
	if err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}

	return nil
}

// Update replaces the stored row with the supplied field values.
func (r *PgOwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	if owner == nil {
		return domain.NewValidationError("owner", "owner cannot be nil")
	}

	query := `
		UPDATE owners
		SET first_name = $1, last_name = $2, country_id = $3
		WHERE id = $4`

	tag, err := r.db.Exec(ctx, query, owner.FirstName, owner.LastName, owner.CountryID, owner.ID)
	if err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("owner", "update")
	}

	return nil
}

// Delete removes the owner row. Association rows are removed by the
// ON DELETE CASCADE constraint on pokemon_owners.
func (r *PgOwnerRepository) Delete(ctx context.Context, owner *domain.Owner) error {
	if owner == nil {
		return domain.NewValidationError("owner", "owner cannot be nil")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM owners WHERE id = $1`, owner.ID)
	if err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("owner", "delete")
	}

	return nil
}
