package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// listReviews handles GET /reviews.
func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviewRepo.GetAll(r.Context())
	s.recordRepoOp("review", "list", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// getReview handles GET /reviews/{reviewID}.
func (s *Server) getReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewID"), "review_id")
	if !ok {
		return
	}

	review, err := s.reviewRepo.GetByID(r.Context(), id)
	s.recordRepoOp("review", "get", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(*review))
}

// getReviewsByPokemon handles GET /reviews/pokemon/{pokemonID}.
func (s *Server) getReviewsByPokemon(w http.ResponseWriter, r *http.Request) {
	pokemonID, ok := parseID(w, chi.URLParam(r, "pokemonID"), "pokemon_id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := s.pokemonRepo.Exists(ctx, pokemonID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	reviews, err := s.reviewRepo.GetReviewsByPokemonID(ctx, pokemonID)
	s.recordRepoOp("review", "list_by_pokemon", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// createReview handles POST /reviews?reviewerId=N&pokemonId=M. Both
// references must resolve to existing rows, and creation is refused
// when a review with the same title already exists, ignoring case and
// surrounding whitespace.
func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := strconv.Atoi(r.URL.Query().Get("reviewerId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reviewerId")
		return
	}
	pokemonID, err := strconv.Atoi(r.URL.Query().Get("pokemonId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pokemonId")
		return
	}

	var req reviewRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	_, err = s.reviewRepo.GetByTitle(ctx, req.Title)
	if err == nil {
		s.recordDuplicateRejection("review")
		writeError(w, http.StatusUnprocessableEntity, "review already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		writeDomainError(w, err)
		return
	}

	pokemonExists, err := s.pokemonRepo.Exists(ctx, pokemonID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !pokemonExists {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	reviewerExists, err := s.reviewerRepo.Exists(ctx, reviewerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !reviewerExists {
		writeError(w, http.StatusNotFound, "reviewer not found")
		return
	}

	review := &domain.Review{
		Title:      req.Title,
		Text:       req.Text,
		Rating:     req.Rating,
		PokemonID:  pokemonID,
		ReviewerID: reviewerID,
	}
	err = s.reviewRepo.Create(ctx, review)
	s.recordRepoOp("review", "create", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(*review))
}

// updateReview handles PUT /reviews/{reviewID}. The Pokémon and
// reviewer links are immutable; only title, text and rating change.
func (s *Server) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewID"), "review_id")
	if !ok {
		return
	}

	var req reviewRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	existing, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.Title = req.Title
	existing.Text = req.Text
	existing.Rating = req.Rating

	err = s.reviewRepo.Update(ctx, existing)
	s.recordRepoOp("review", "update", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(*existing))
}

// deleteReview handles DELETE /reviews/{reviewID}.
func (s *Server) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewID"), "review_id")
	if !ok {
		return
	}

	ctx := r.Context()
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	err = s.reviewRepo.Delete(ctx, review)
	s.recordRepoOp("review", "delete", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
