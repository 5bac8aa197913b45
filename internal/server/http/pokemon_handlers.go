package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// listPokemon handles GET /pokemon.
func (s *Server) listPokemon(w http.ResponseWriter, r *http.Request) {
	pokemon, err := s.pokemonRepo.GetAll(r.Context())
	s.recordRepoOp("pokemon", "list", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPokemonResponses(pokemon))
}

// getPokemon handles GET /pokemon/{pokemonID}.
func (s *Server) getPokemon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "pokemonID"), "pokemon_id")
	if !ok {
		return
	}

	pokemon, err := s.pokemonRepo.GetByID(r.Context(), id)
	s.recordRepoOp("pokemon", "get", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPokemonResponse(*pokemon))
}

// getPokemonRating handles GET /pokemon/{pokemonID}/rating. The rating
// is the exact arithmetic mean of all review ratings, rendered as a
// decimal string.
func (s *Server) getPokemonRating(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "pokemonID"), "pokemon_id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := s.pokemonRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	rating, err := s.pokemonRepo.GetAverageRating(ctx, id)
	s.recordRepoOp("pokemon", "rating", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratingResponse{PokemonID: id, Rating: rating.String()})
}

// createPokemon handles POST /pokemon?ownerId=N&categoryId=M. Creation
// is refused when a Pokémon with the same name already exists, ignoring
// case and surrounding whitespace. Owner and category references that
// do not resolve become null links.
func (s *Server) createPokemon(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.Atoi(r.URL.Query().Get("ownerId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ownerId")
		return
	}
	categoryID, err := strconv.Atoi(r.URL.Query().Get("categoryId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid categoryId")
		return
	}

	var req pokemonRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "birth_date must be formatted as YYYY-MM-DD")
		return
	}

	ctx := r.Context()
	_, err = s.pokemonRepo.GetByName(ctx, req.Name)
	if err == nil {
		s.recordDuplicateRejection("pokemon")
		writeError(w, http.StatusUnprocessableEntity, "pokemon already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		writeDomainError(w, err)
		return
	}

	pokemon := &domain.Pokemon{Name: req.Name, BirthDate: birthDate}
	err = s.pokemonRepo.Create(ctx, pokemon, ownerID, categoryID)
	s.recordRepoOp("pokemon", "create", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPokemonResponse(*pokemon))
}

// updatePokemon handles PUT /pokemon/{pokemonID}.
func (s *Server) updatePokemon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "pokemonID"), "pokemon_id")
	if !ok {
		return
	}

	var req pokemonRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "birth_date must be formatted as YYYY-MM-DD")
		return
	}

	ctx := r.Context()
	exists, err := s.pokemonRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	pokemon := &domain.Pokemon{ID: id, Name: req.Name, BirthDate: birthDate}
	err = s.pokemonRepo.Update(ctx, pokemon)
	s.recordRepoOp("pokemon", "update", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPokemonResponse(*pokemon))
}

// deletePokemon handles DELETE /pokemon/{pokemonID}. The Pokémon's
// reviews are removed first so the review foreign keys never dangle.
func (s *Server) deletePokemon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "pokemonID"), "pokemon_id")
	if !ok {
		return
	}

	ctx := r.Context()
	pokemon, err := s.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	reviews, err := s.reviewRepo.GetReviewsByPokemonID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.reviewRepo.DeleteReviews(ctx, reviews); err != nil {
		s.recordRepoOp("review", "delete_batch", err)
		writeDomainError(w, err)
		return
	}
	s.recordRepoOp("review", "delete_batch", nil)

	err = s.pokemonRepo.Delete(ctx, pokemon)
	s.recordRepoOp("pokemon", "delete", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
