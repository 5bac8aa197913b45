package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// listReviewers handles GET /reviewers.
func (s *Server) listReviewers(w http.ResponseWriter, r *http.Request) {
	reviewers, err := s.reviewerRepo.GetAll(r.Context())
	s.recordRepoOp("reviewer", "list", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewerResponses(reviewers))
}

// getReviewer handles GET /reviewers/{reviewerID}. The response
// includes the reviewer's reviews.
func (s *Server) getReviewer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewerID"), "reviewer_id")
	if !ok {
		return
	}

	reviewer, err := s.reviewerRepo.GetByID(r.Context(), id)
	s.recordRepoOp("reviewer", "get", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewerResponse(*reviewer))
}

// getReviewsByReviewer handles GET /reviewers/{reviewerID}/reviews.
func (s *Server) getReviewsByReviewer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewerID"), "reviewer_id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := s.reviewerRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "reviewer not found")
		return
	}

	reviews, err := s.reviewerRepo.GetReviewsByReviewerID(ctx, id)
	s.recordRepoOp("reviewer", "list_reviews", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// createReviewer handles POST /reviewers. Creation is refused when a
// reviewer with the same last name already exists, ignoring case and
// surrounding whitespace.
func (s *Server) createReviewer(w http.ResponseWriter, r *http.Request) {
	var req reviewerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	_, err := s.reviewerRepo.GetByLastName(ctx, req.LastName)
	if err == nil {
		s.recordDuplicateRejection("reviewer")
		writeError(w, http.StatusUnprocessableEntity, "reviewer already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		writeDomainError(w, err)
		return
	}

	reviewer := &domain.Reviewer{FirstName: req.FirstName, LastName: req.LastName}
	err = s.reviewerRepo.Create(ctx, reviewer)
	s.recordRepoOp("reviewer", "create", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewerResponse(*reviewer))
}

// updateReviewer handles PUT /reviewers/{reviewerID}.
func (s *Server) updateReviewer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewerID"), "reviewer_id")
	if !ok {
		return
	}

	var req reviewerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	exists, err := s.reviewerRepo.Exists(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "reviewer not found")
		return
	}

	reviewer := &domain.Reviewer{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	err = s.reviewerRepo.Update(ctx, reviewer)
	s.recordRepoOp("reviewer", "update", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewerResponse(*reviewer))
}

// deleteReviewer handles DELETE /reviewers/{reviewerID}.
func (s *Server) deleteReviewer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "reviewerID"), "reviewer_id")
	if !ok {
		return
	}

	ctx := r.Context()
	reviewer, err := s.reviewerRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	err = s.reviewerRepo.Delete(ctx, reviewer)
	s.recordRepoOp("reviewer", "delete", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
