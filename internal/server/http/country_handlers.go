package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// listCountries handles GET /countries.
func (s *Server) listCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.countryRepo.GetAll(r.Context())
	s.recordRepoOp("country", "list", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryResponses(countries))
}

// getCountry handles GET /countries/{countryID}.
func (s *Server) getCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "countryID"), "country_id")
	if !ok {
		return
	}

	country, err := s.countryRepo.GetByID(r.Context(), id)
	s.recordRepoOp("country", "get", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryResponse(*country))
}

// getOwnersByCountry handles GET /countries/{countryID}/owners.
func (s *Server) getOwnersByCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "countryID"), "country_id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := s.countryRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "country not found")
		return
	}

	owners, err := s.countryRepo.GetOwnersByCountryID(ctx, id)
	s.recordRepoOp("country", "list_owners", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponses(owners))
}

// getCountryByOwner handles GET /countries/owners/{ownerID}.
func (s *Server) getCountryByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := parseID(w, chi.URLParam(r, "ownerID"), "owner_id")
	if !ok {
		return
	}

	country, err := s.countryRepo.GetCountryByOwnerID(r.Context(), ownerID)
	s.recordRepoOp("country", "get_by_owner", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryResponse(*country))
}

// createCountry handles POST /countries. Creation is refused when a
// country with the same name already exists, ignoring case and
// surrounding whitespace.
func (s *Server) createCountry(w http.ResponseWriter, r *http.Request) {
	var req countryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	_, err := s.countryRepo.GetByName(ctx, req.Name)
	if err == nil {
		s.recordDuplicateRejection("country")
		writeError(w, http.StatusUnprocessableEntity, "country already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		writeDomainError(w, err)
		return
	}

	country := &domain.Country{Name: req.Name}
	err = s.countryRepo.Create(ctx, country)
	s.recordRepoOp("country", "create", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCountryResponse(*country))
}

// updateCountry handles PUT /countries/{countryID}.
func (s *Server) updateCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "countryID"), "country_id")
	if !ok {
		return
	}

	var req countryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	exists, err := s.countryRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "country not found")
		return
	}

	country := &domain.Country{ID: id, Name: req.Name}
	err = s.countryRepo.Update(ctx, country)
	s.recordRepoOp("country", "update", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryResponse(*country))
}

// deleteCountry handles DELETE /countries/{countryID}.
func (s *Server) deleteCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "countryID"), "country_id")
	if !ok {
		return
	}

	ctx := r.Context()
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	err = s.countryRepo.Delete(ctx, country)
	s.recordRepoOp("country", "delete", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
