// Package domain provides the entity model and error taxonomy for the
// Pokémon catalog and rating service.
package domain

import (
	"strings"
	"time"
)

// Category is a classification a Pokémon can belong to (e.g. "Electric").
// Categories relate to Pokémon many-to-many through PokemonCategory rows.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is the home country of an Owner.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Owner is a Pokémon owner. CountryID is nil until the owner has been
// assigned to a country.
type Owner struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CountryID *int   `json:"country_id,omitempty"`
}

// Pokemon is the central catalog entity. It relates many-to-many to both
// Category and Owner through association rows, and one-to-many to Review.
type Pokemon struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

// Reviewer is a person who writes reviews. Reviews is populated only by
// lookups that eagerly load the reviewer's reviews.
type Reviewer struct {
	ID        int      `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Reviews   []Review `json:"reviews,omitempty"`
}

// Review is a rating of a single Pokémon by a single Reviewer.
// Rating is a small positive integer; the range is validated at the
// transport edge, not here.
type Review struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	PokemonID  int    `json:"pokemon_id"`
	ReviewerID int    `json:"reviewer_id"`
}

// PokemonOwner is the association row joining a Pokémon to an Owner.
// OwnerID is nil when the owner referenced at creation time did not exist;
// creation is deliberately permissive about dangling owner identifiers.
type PokemonOwner struct {
	PokemonID int  `json:"pokemon_id"`
	OwnerID   *int `json:"owner_id,omitempty"`
}

// PokemonCategory is the association row joining a Pokémon to a Category.
// CategoryID is nil under the same permissive rule as PokemonOwner.OwnerID.
type PokemonCategory struct {
	PokemonID  int  `json:"pokemon_id"`
	CategoryID *int `json:"category_id,omitempty"`
}

// NormalizeName canonicalizes a name-like field for advisory uniqueness
// comparison: surrounding whitespace is trimmed and case is folded.
// Repositories apply the same normalization inside SQL; this helper exists
// for callers that compare names outside the store.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
