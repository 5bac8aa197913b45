package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// listOwners handles GET /owners.
func (s *Server) listOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := s.ownerRepo.GetAll(r.Context())
	s.recordRepoOp("owner", "list", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponses(owners))
}

// getOwner handles GET /owners/{ownerID}.
func (s *Server) getOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "ownerID"), "owner_id")
	if !ok {
		return
	}

	owner, err := s.ownerRepo.GetByID(r.Context(), id)
	s.recordRepoOp("owner", "get", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponse(*owner))
}

// getPokemonByOwner handles GET /owners/{ownerID}/pokemon.
func (s *Server) getPokemonByOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "ownerID"), "owner_id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := s.ownerRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "owner not found")
		return
	}

	pokemon, err := s.ownerRepo.GetPokemonByOwnerID(ctx, id)
	s.recordRepoOp("owner", "list_pokemon", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPokemonResponses(pokemon))
}

// getOwnersByPokemon handles GET /owners/pokemon/{pokemonID}.
func (s *Server) getOwnersByPokemon(w http.ResponseWriter, r *http.Request) {
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

	owners, err := s.ownerRepo.GetOwnersByPokemonID(ctx, pokemonID)
	s.recordRepoOp("owner", "list_by_pokemon", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponses(owners))
}

// createOwner handles POST /owners?countryId=N. Creation is refused
// when an owner with the same last name already exists, ignoring case
// and surrounding whitespace. A countryId that does not resolve to an
// existing country leaves the owner stateless.
func (s *Server) createOwner(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	_, err := s.ownerRepo.GetByLastName(ctx, req.LastName)
	if err == nil {
		s.recordDuplicateRejection("owner")
		writeError(w, http.StatusUnprocessableEntity, "owner already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		writeDomainError(w, err)
		return
	}

	owner := &domain.Owner{FirstName: req.FirstName, LastName: req.LastName}

	if raw := r.URL.Query().Get("countryId"); raw != "" {
		countryID, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid countryId")
			return
		}
		exists, err := s.countryRepo.Exists(ctx, countryID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if exists {
			owner.CountryID = &countryID
		}
	}

	err = s.ownerRepo.Create(ctx, owner)
	s.recordRepoOp("owner", "create", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOwnerResponse(*owner))
}

// updateOwner handles PUT /owners/{ownerID}.
func (s *Server) updateOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "ownerID"), "owner_id")
	if !ok {
		return
	}

	var req ownerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	existing, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName

	err = s.ownerRepo.Update(ctx, existing)
	s.recordRepoOp("owner", "update", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOwnerResponse(*existing))
}

// deleteOwner handles DELETE /owners/{ownerID}.
func (s *Server) deleteOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "ownerID"), "owner_id")
	if !ok {
		return
	}

	ctx := r.Context()
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	err = s.ownerRepo.Delete(ctx, owner)
	s.recordRepoOp("owner", "delete", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
