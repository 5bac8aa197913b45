package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// Compile-time interface verification.
var _ PokemonRepository = (*PgPokemonRepository)(nil)

// PgPokemonRepository is a PostgreSQL implementation of PokemonRepository.
type PgPokemonRepository struct {
	db DBTX
}

// NewPgPokemonRepository creates a new PostgreSQL Pokémon repository.
func NewPgPokemonRepository(db DBTX) *PgPokemonRepository {
	return &PgPokemonRepository{db: db}
}

// GetAll returns every Pokémon ordered by identifier ascending.
func (r *PgPokemonRepository) GetAll(ctx context.Context) ([]domain.Pokemon, error) {
	query := `
		SELECT id, name, birth_date
		FROM pokemon
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}
	defer rows.Close()

	return collectPokemon(rows)
}

// GetByID retrieves a Pokémon by its identifier.
func (r *PgPokemonRepository) GetByID(ctx context.Context, id int) (*domain.Pokemon, error) {
	query := `
		SELECT id, name, birth_date
		FROM pokemon
		WHERE id = $1`

	var p domain.Pokemon
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("pokemon", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to get pokemon by ID: %w", err)
	}

	return &p, nil
}

// GetByName retrieves a Pokémon by name, case-insensitively with
// surrounding whitespace trimmed.
func (r *PgPokemonRepository) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	query := `
		SELECT id, name, birth_date
		FROM pokemon
		WHERE lower(btrim(name)) = lower(btrim($1))`

	var p domain.Pokemon
	err := r.db.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("pokemon", name)
		}
		return nil, fmt.Errorf("failed to get pokemon by name: %w", err)
	}

	return &p, nil
}

// Exists reports whether a Pokémon with the given identifier exists.
func (r *PgPokemonRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pokemon WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pokemon existence: %w", err)
	}
	return exists, nil
}

// GetAverageRating computes the arithmetic mean of all review ratings
// for the Pokémon. AVG is computed in the database and scanned as text
// so no precision is lost on the way out.
func (r *PgPokemonRepository) GetAverageRating(ctx context.Context, pokemonID int) (decimal.Decimal, error) {
	query := `
		SELECT AVG(rating)::text
		FROM reviews
		WHERE pokemon_id = $1`

	var avg *string
	if err := r.db.QueryRow(ctx, query, pokemonID).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if avg == nil {
		return decimal.Zero, nil
	}

	rating, err := decimal.NewFromString(*avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse average rating %q: %w", *avg, err)
	}

	return rating, nil
}

// Create inserts the Pokémon together with its owner and category
// links in a single transaction. References that do not resolve to
// existing rows become null links rather than failing the insert.
func (r *PgPokemonRepository) Create(ctx context.Context, pokemon *domain.Pokemon, ownerID, categoryID int) error {
	if pokemon == nil {
		return domain.NewValidationError("pokemon", "pokemon cannot be nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	ownerRef, err := resolveReference(ctx, tx, `SELECT id FROM owners WHERE id = $1`, ownerID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to resolve owner reference: %w", err)
	}

	categoryRef, err := resolveReference(ctx, tx, `SELECT id FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to resolve category reference: %w", err)
	}

	insertPokemon := `
		INSERT INTO pokemon (name, birth_date)
		VALUES ($1, $2)
		RETURNING id`

	if err := tx.QueryRow(ctx, insertPokemon, pokemon.Name, pokemon.BirthDate).Scan(&pokemon.ID); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to insert pokemon: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`INSERT INTO pokemon_owners (pokemon_id, owner_id) VALUES ($1, $2)`,
		pokemon.ID, ownerRef)
	batch.Queue(`INSERT INTO pokemon_categories (pokemon_id, category_id) VALUES ($1, $2)`,
		pokemon.ID, categoryRef)

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to insert pokemon association: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to close association batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pokemon creation: %w", err)
	}

	return nil
}

// Update replaces the stored row with the supplied field values.
func (r *PgPokemonRepository) Update(ctx context.Context, pokemon *domain.Pokemon) error {
	if pokemon == nil {
		return domain.NewValidationError("pokemon", "pokemon cannot be nil")
	}

	query := `
		UPDATE pokemon
		SET name = $1, birth_date = $2
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, pokemon.Name, pokemon.BirthDate, pokemon.ID)
	if err != nil {
		return fmt.Errorf("failed to update pokemon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("pokemon", "update")
	}

	return nil
}

// Delete removes the Pokémon row. Reviews must already be gone; the
// reviews foreign key rejects the delete otherwise. Association rows
// are removed by ON DELETE CASCADE.
func (r *PgPokemonRepository) Delete(ctx context.Context, pokemon *domain.Pokemon) error {
	if pokemon == nil {
		return domain.NewValidationError("pokemon", "pokemon cannot be nil")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM pokemon WHERE id = $1`, pokemon.ID)
	if err != nil {
		return fmt.Errorf("failed to delete pokemon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("pokemon", "delete")
	}

	return nil
}

// resolveReference looks up an identifier and returns nil when the row
// does not exist, so absent references degrade to null links.
func resolveReference(ctx context.Context, tx pgx.Tx, query string, id int) (*int, error) {
	var resolved int
	err := tx.QueryRow(ctx, query, id).Scan(&resolved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &resolved, nil
}
