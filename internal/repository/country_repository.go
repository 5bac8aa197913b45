package repository

import (
	"context"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// CountryRepository defines persistence operations for countries,
// including traversals across the owner relationship.
type CountryRepository interface {
	// GetAll returns every country ordered by identifier ascending.
	GetAll(ctx context.Context) ([]domain.Country, error)

	// GetByID retrieves a country by its identifier. Returns a
	// NotFoundError when no such country exists.
	GetByID(ctx context.Context, id int) (*domain.Country, error)

	// GetByName retrieves a country by name. Matching is
	// case-insensitive and ignores surrounding whitespace. Returns a
	// NotFoundError when no country matches.
	GetByName(ctx context.Context, name string) (*domain.Country, error)

	// Exists reports whether a country with the given identifier exists.
	Exists(ctx context.Context, id int) (bool, error)

	// GetOwnersByCountryID returns every owner whose home country is
	// the given country. Returns an empty slice when none exist.
	GetOwnersByCountryID(ctx context.Context, countryID int) ([]domain.Owner, error)

	// GetCountryByOwnerID returns the home country of the given owner.
	// Returns a NotFoundError when the owner does not exist or has no
	// country assigned.
	GetCountryByOwnerID(ctx context.Context, ownerID int) (*domain.Country, error)

	// Create inserts a new country and fills in its store-assigned ID.
	Create(ctx context.Context, country *domain.Country) error

	// Update replaces the stored row with the supplied field values.
	// Returns a CommitFailedError when no row was affected.
	Update(ctx context.Context, country *domain.Country) error

	// Delete removes the country row. Returns a CommitFailedError when
	// no row was affected.
	Delete(ctx context.Context, country *domain.Country) error
}
