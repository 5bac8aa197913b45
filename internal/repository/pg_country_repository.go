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
var _ CountryRepository = (*PgCountryRepository)(nil)

// PgCountryRepository is a PostgreSQL implementation of CountryRepository.
type PgCountryRepository struct {
	db DBTX
}

// NewPgCountryRepository creates a new PostgreSQL country repository.
func NewPgCountryRepository(db DBTX) *PgCountryRepository {
	return &PgCountryRepository{db: db}
}

// GetAll returns every country ordered by identifier ascending.
func (r *PgCountryRepository) GetAll(ctx context.Context) ([]domain.Country, error) {
	query := `
		SELECT id, name
		FROM countries
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}

	return countries, nil
}

// GetByID retrieves a country by its identifier.
func (r *PgCountryRepository) GetByID(ctx context.Context, id int) (*domain.Country, error) {
	query := `
		SELECT id, name
		FROM countries
		WHERE id = $1`

	var c domain.Country
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("country", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to get country by ID: %w", err)
	}

	return &c, nil
}

// GetByName retrieves a country by name, case-insensitively with
// surrounding whitespace trimmed.
func (r *PgCountryRepository) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	query := `
		SELECT id, name
		FROM countries
		WHERE lower(btrim(name)) = lower(btrim($1))`

	var c domain.Country
	err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("country", name)
		}
		return nil, fmt.Errorf("failed to get country by name: %w", err)
	}

	return &c, nil
}

// Exists reports whether a country with the given identifier exists.
func (r *PgCountryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM countries WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check country existence: %w", err)
	}
	return exists, nil
}

// GetOwnersByCountryID returns every owner whose home country is the
// given country.
func (r *PgCountryRepository) GetOwnersByCountryID(ctx context.Context, countryID int) ([]domain.Owner, error) {
	query := `
		SELECT id, first_name, last_name, country_id
		FROM owners
		WHERE country_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners by country: %w", err)
	}
	defer rows.Close()

	return collectOwners(rows)
}

// GetCountryByOwnerID returns the home country of the given owner.
func (r *PgCountryRepository) GetCountryByOwnerID(ctx context.Context, ownerID int) (*domain.Country, error) {
	query := `
		SELECT c.id, c.name
		FROM countries c
		INNER JOIN owners o ON o.country_id = c.id
		WHERE o.id = $1`

	var c domain.Country
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("country for owner", strconv.Itoa(ownerID))
		}
		return nil, fmt.Errorf("failed to get country by owner: %w", err)
	}

	return &c, nil
}

// Create inserts a new country and fills in its store-assigned ID.
func (r *PgCountryRepository) Create(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return domain.NewValidationError("country", "country cannot be nil")
	}

	query := `
		INSERT INTO countries (name)
		VALUES ($1)
		RETURNING id`

	if err := r.db.QueryRow(ctx, query, country.Name).Scan(&country.ID); err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}

	return nil
}

// Update replaces the stored row with the supplied field values.
func (r *PgCountryRepository) Update(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return domain.NewValidationError("country", "country cannot be nil")
	}

	query := `
		UPDATE countries
		SET name = $1
		WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, country.Name, country.ID)
	if err != nil {
		return fmt.Errorf("failed to update country: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("country", "update")
	}

	return nil
}

// Delete removes the country row.
func (r *PgCountryRepository) Delete(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return domain.NewValidationError("country", "country cannot be nil")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, country.ID)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewCommitFailedError("country", "delete")
	}

	return nil
}

// collectOwners drains rows of (id, first_name, last_name, country_id)
// into a slice.
func collectOwners(rows pgx.Rows) ([]domain.Owner, error) {
	owners := make([]domain.Owner, 0)
	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owners: %w", err)
	}

	return owners, nil
}
