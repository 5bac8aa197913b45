package httpserver

// Request bodies for the catalog API. Validation tags are enforced by
// the server's validator before any repository call.

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type countryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type ownerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

type pokemonRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	BirthDate string `json:"birth_date" validate:"required"`
}

type reviewRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

type reviewerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

// Response types for JSON serialization.

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type countryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ownerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CountryID *int   `json:"country_id,omitempty"`
}

type pokemonResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type reviewResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	PokemonID  int    `json:"pokemon_id"`
	ReviewerID int    `json:"reviewer_id"`
}

type reviewerResponse struct {
	ID        int              `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Reviews   []reviewResponse `json:"reviews,omitempty"`
}

type ratingResponse struct {
	PokemonID int    `json:"pokemon_id"`
	Rating    string `json:"rating"`
}
