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
var _ CategoryRepository = (*PgCategoryRepository)(nil)

// PgCategoryRepository is a PostgreSQL implementation of CategoryRepository.
type PgCategoryRepository struct {
	db DBTX
}

// NewPgCategoryRepository creates a new PostgreSQL category repository.
func NewPgCategoryRepository(db DBTX) *PgCategoryRepository {
	return &PgCategoryRepository{db: db}
}

// GetAll returns every category ordered by identifier ascending.
func (r *PgCategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by its identifier.
func (r *PgCategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1`

	var c domain.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("category", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &c, nil
}

// GetByName retrieves a category by name, case-insensitively with
// surrounding whitespace trimmed.
func (r *PgCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	query := `
		SELECT id, name
		FROM categories
		WHERE lower(btrim(name)) = lower(btrim($1))`

	var c domain.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("category", name)
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return &c, nil
}

// Exists reports whether a category with the given identifier exists.
func (r *PgCategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

// GetPokemonByCategoryID returns all Pokémon joined to the category
// through pokemon_categories rows.
func (r *PgCategoryRepository) GetPokemonByCategoryID(ctx context.Context, categoryID int) ([]domain.Pokemon, error) {
	query := `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		INNER JOIN pokemon_categories pc ON pc.pokemon_id = p.id
		WHERE pc.category_id = $1
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon by category: %w", err)
	}
	defer rows.Close()

	return collectPokemon(rows)
}

// Create inserts a new category and fills in its store-assigned ID.
func (r *PgCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.NewValidationError("category", "category cannot be nil")
	}

	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id`

	if err := r.db.QueryRow(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// Update replaces the stored row with the supplied field values.
func (r *PgCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.NewValidationError("category", "category cannot be nil")
	}

	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("category", "update")
	}

	return nil
}

// Delete removes the category row.
func (r *PgCategoryRepository) Delete(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.NewValidationError("category", "category cannot be nil")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, category.ID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("category", "delete")
	}

	return nil
}

// collectPokemon drains rows of (id, name, birth_date) into a slice.
// Shared by every traversal query that returns Pokémon.
func collectPokemon(rows pgx.Rows) ([]domain.Pokemon, error) {
	pokemon := make([]domain.Pokemon, 0)
	for rows.Next() {
		var p domain.Pokemon
		if err := rows.Scan(&p.ID, &p.Name, &p.BirthDate); err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		pokemon = append(pokemon, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pokemon: %w", err)
	}

	return pokemon, nil
}
