package httpserver

import (
	"time"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// birthDateLayout is the wire format for Pokémon birth dates.
const birthDateLayout = "2006-01-02"

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	return out
}

func toCountryResponse(c domain.Country) countryResponse {
	return countryResponse{ID: c.ID, Name: c.Name}
}

func toCountryResponses(countries []domain.Country) []countryResponse {
	out := make([]countryResponse, len(countries))
	for i, c := range countries {
		out[i] = toCountryResponse(c)
	}
	return out
}

func toOwnerResponse(o domain.Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		CountryID: o.CountryID,
	}
}

func toOwnerResponses(owners []domain.Owner) []ownerResponse {
	out := make([]ownerResponse, len(owners))
	for i, o := range owners {
		out[i] = toOwnerResponse(o)
	}
	return out
}

func toPokemonResponse(p domain.Pokemon) pokemonResponse {
	return pokemonResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate.Format(birthDateLayout),
	}
}

func toPokemonResponses(pokemon []domain.Pokemon) []pokemonResponse {
	out := make([]pokemonResponse, len(pokemon))
	for i, p := range pokemon {
		out[i] = toPokemonResponse(p)
	}
	return out
}

func toReviewResponse(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID,
		Title:      r.Title,
		Text:       r.Text,
		Rating:     r.Rating,
		PokemonID:  r.PokemonID,
		ReviewerID: r.ReviewerID,
	}
}

func toReviewResponses(reviews []domain.Review) []reviewResponse {
	out := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out
}

func toReviewerResponse(rv domain.Reviewer) reviewerResponse {
	return reviewerResponse{
		ID:        rv.ID,
		FirstName: rv.FirstName,
		LastName:  rv.LastName,
		Reviews:   toReviewResponses(rv.Reviews),
	}
}

func toReviewerResponses(reviewers []domain.Reviewer) []reviewerResponse {
	out := make([]reviewerResponse, len(reviewers))
	for i, rv := range reviewers {
		out[i] = toReviewerResponse(rv)
	}
	return out
}

// parseBirthDate parses the wire-format birth date.
func parseBirthDate(raw string) (time.Time, error) {
	return time.Parse(birthDateLayout, raw)
}
