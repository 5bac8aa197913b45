package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// listCategories handles GET /categories.
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categoryRepo.GetAll(r.Context())
	s.recordRepoOp("category", "list", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(categories))
}

// getCategory handles GET /categories/{categoryID}.
func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "categoryID"), "category_id")
	if !ok {
		return
	}

	category, err := s.categoryRepo.GetByID(r.Context(), id)
	s.recordRepoOp("category", "get", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*category))
}

// getPokemonByCategory handles GET /categories/{categoryID}/pokemon.
func (s *Server) getPokemonByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "categoryID"), "category_id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := s.categoryRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	pokemon, err := s.categoryRepo.GetPokemonByCategoryID(ctx, id)
	s.recordRepoOp("category", "list_pokemon", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPokemonResponses(pokemon))
}

// createCategory handles POST /categories. Creation is refused when a
// category with the same name already exists, ignoring case and
// surrounding whitespace.
func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	_, err := s.categoryRepo.GetByName(ctx, req.Name)
	if err == nil {
		s.recordDuplicateRejection("category")
		writeError(w, http.StatusUnprocessableEntity, "category already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		writeDomainError(w, err)
		return
	}

	category := &domain.Category{Name: req.Name}
	err = s.categoryRepo.Create(ctx, category)
	s.recordRepoOp("category", "create", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(*category))
}

// updateCategory handles PUT /categories/{categoryID}.
func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "categoryID"), "category_id")
	if !ok {
		return
	}

	var req categoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	exists, err := s.categoryRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	category := &domain.Category{ID: id, Name: req.Name}
	err = s.categoryRepo.Update(ctx, category)
	s.recordRepoOp("category", "update", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*category))
}

// deleteCategory handles DELETE /categories/{categoryID}.
func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "categoryID"), "category_id")
	if !ok {
		return
	}

	ctx := r.Context()
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	err = s.categoryRepo.Delete(ctx, category)
	s.recordRepoOp("category", "delete", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
