// Package httpserver provides the HTTP REST API server for the Pokémon
// review service.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pokehub/pokemon-review-service/internal/database"
	"github.com/pokehub/pokemon-review-service/internal/domain"
	"github.com/pokehub/pokemon-review-service/internal/observability"
	"github.com/pokehub/pokemon-review-service/internal/repository"
)

// maxRequestBodySize caps JSON request bodies at 1 MB.
const maxRequestBodySize = 1 << 20

// Server is the HTTP REST API server.
type Server struct {
	router       chi.Router
	httpServer   *http.Server
	categoryRepo repository.CategoryRepository
	countryRepo  repository.CountryRepository
	ownerRepo    repository.OwnerRepository
	pokemonRepo  repository.PokemonRepository
	reviewRepo   repository.ReviewRepository
	reviewerRepo repository.ReviewerRepository
	db           *database.DB
	logger       zerolog.Logger
	validate     *validator.Validate
	metrics      *observability.Metrics
}

// Config holds HTTP server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Repositories bundles the six repositories the server serves.
type Repositories struct {
	Categories repository.CategoryRepository
	Countries  repository.CountryRepository
	Owners     repository.OwnerRepository
	Pokemon    repository.PokemonRepository
	Reviews    repository.ReviewRepository
	Reviewers  repository.ReviewerRepository
}

// NewServer creates a new HTTP server with all dependencies.
func NewServer(
	cfg Config,
	repos Repositories,
	db *database.DB,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Server {
	s := &Server{
		categoryRepo: repos.Categories,
		countryRepo:  repos.Countries,
		ownerRepo:    repos.Owners,
		pokemonRepo:  repos.Pokemon,
		reviewRepo:   repos.Reviews,
		reviewerRepo: repos.Reviewers,
		db:           db,
		logger:       logger.With().Str("component", "http-server").Logger(),
		validate:     validator.New(),
		metrics:      metrics,
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware)
	r.Use(s.requestLoggingMiddleware)

	// Health and metrics endpoints
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jsonContentTypeMiddleware)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.listCategories)
			r.Post("/", s.createCategory)
			r.Get("/{categoryID}", s.getCategory)
			r.Put("/{categoryID}", s.updateCategory)
			r.Delete("/{categoryID}", s.deleteCategory)
			r.Get("/{categoryID}/pokemon", s.getPokemonByCategory)
		})

		r.Route("/countries", func(r chi.Router) {
			r.Get("/", s.listCountries)
			r.Post("/", s.createCountry)
			r.Get("/{countryID}", s.getCountry)
			r.Put("/{countryID}", s.updateCountry)
			r.Delete("/{countryID}", s.deleteCountry)
			r.Get("/{countryID}/owners", s.getOwnersByCountry)
			r.Get("/owners/{ownerID}", s.getCountryByOwner)
		})

		r.Route("/owners", func(r chi.Router) {
			r.Get("/", s.listOwners)
			r.Post("/", s.createOwner)
			r.Get("/{ownerID}", s.getOwner)
			r.Put("/{ownerID}", s.updateOwner)
			r.Delete("/{ownerID}", s.deleteOwner)
			r.Get("/{ownerID}/pokemon", s.getPokemonByOwner)
			r.Get("/pokemon/{pokemonID}", s.getOwnersByPokemon)
		})

		r.Route("/pokemon", func(r chi.Router) {
			r.Get("/", s.listPokemon)
			r.Post("/", s.createPokemon)
			r.Get("/{pokemonID}", s.getPokemon)
			r.Put("/{pokemonID}", s.updatePokemon)
			r.Delete("/{pokemonID}", s.deletePokemon)
			r.Get("/{pokemonID}/rating", s.getPokemonRating)
			r.Get("/{pokemonID}/reviews", s.getReviewsByPokemon)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", s.listReviews)
			r.Post("/", s.createReview)
			r.Get("/{reviewID}", s.getReview)
			r.Put("/{reviewID}", s.updateReview)
			r.Delete("/{reviewID}", s.deleteReview)
			r.Get("/pokemon/{pokemonID}", s.getReviewsByPokemon)
		})

		r.Route("/reviewers", func(r chi.Router) {
			r.Get("/", s.listReviewers)
			r.Post("/", s.createReviewer)
			r.Get("/{reviewerID}", s.getReviewer)
			r.Put("/{reviewerID}", s.updateReviewer)
			r.Delete("/{reviewerID}", s.deleteReviewer)
			r.Get("/{reviewerID}/reviews", s.getReviewsByReviewer)
		})
	})

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the top-level router, mainly for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status == "healthy" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
		"error":    health.Error,
	})
}

// readinessHandler reports whether the service can take traffic.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
			"error":    health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}

// parseID parses a positive integer path parameter, writing a 400
// response when it is malformed.
func parseID(w http.ResponseWriter, raw, field string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", field))
		return 0, false
	}
	return id, true
}

// decodeJSON reads and unmarshals a bounded request body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// validationMessage renders the first field violation as a short message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		switch ve.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", ve.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s", ve.Field(), ve.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s", ve.Field(), ve.Param())
		default:
			return fmt.Sprintf("%s is invalid", ve.Field())
		}
	}
	return "invalid request body"
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// writeDomainError maps domain error categories onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCommitFailed):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// recordRepoOp feeds the repository operation counters. Safe to call
// with nil metrics, which handler tests rely on.
func (s *Server) recordRepoOp(entity, op string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RepositoryOperationsTotal.WithLabelValues(entity, op).Inc()
	if err != nil {
		s.metrics.RepositoryOperationErrors.WithLabelValues(entity, op).Inc()
	}
}

// recordDuplicateRejection feeds the duplicate-name counter.
func (s *Server) recordDuplicateRejection(entity string) {
	if s.metrics == nil {
		return
	}
	s.metrics.DuplicateNameRejections.WithLabelValues(entity).Inc()
}
