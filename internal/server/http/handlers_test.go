package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock implementations
// ---------------------------------------------------------------------------

type mockCategoryRepo struct {
	getAllFn       func(ctx context.Context) ([]domain.Category, error)
	getByIDFn      func(ctx context.Context, id int) (*domain.Category, error)
	getByNameFn    func(ctx context.Context, name string) (*domain.Category, error)
	existsFn       func(ctx context.Context, id int) (bool, error)
	getPokemonFn   func(ctx context.Context, categoryID int) ([]domain.Pokemon, error)
	createFn       func(ctx context.Context, category *domain.Category) error
	updateFn       func(ctx context.Context, category *domain.Category) error
	deleteFn       func(ctx context.Context, category *domain.Category) error
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Category{}, nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepo) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockCategoryRepo) GetPokemonByCategoryID(ctx context.Context, categoryID int) ([]domain.Pokemon, error) {
	if m.getPokemonFn != nil {
		return m.getPokemonFn(ctx, categoryID)
	}
	return []domain.Pokemon{}, nil
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	category.ID = 1
	return nil
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, category *domain.Category) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, category)
	}
	return nil
}

type mockCountryRepo struct {
	getAllFn      func(ctx context.Context) ([]domain.Country, error)
	getByIDFn     func(ctx context.Context, id int) (*domain.Country, error)
	getByNameFn   func(ctx context.Context, name string) (*domain.Country, error)
	existsFn      func(ctx context.Context, id int) (bool, error)
	getOwnersFn   func(ctx context.Context, countryID int) ([]domain.Owner, error)
	getByOwnerFn  func(ctx context.Context, ownerID int) (*domain.Country, error)
	createFn      func(ctx context.Context, country *domain.Country) error
	updateFn      func(ctx context.Context, country *domain.Country) error
	deleteFn      func(ctx context.Context, country *domain.Country) error
}

func (m *mockCountryRepo) GetAll(ctx context.Context) ([]domain.Country, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Country{}, nil
}

func (m *mockCountryRepo) GetByID(ctx context.Context, id int) (*domain.Country, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCountryRepo) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCountryRepo) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockCountryRepo) GetOwnersByCountryID(ctx context.Context, countryID int) ([]domain.Owner, error) {
	if m.getOwnersFn != nil {
		return m.getOwnersFn(ctx, countryID)
	}
	return []domain.Owner{}, nil
}

func (m *mockCountryRepo) GetCountryByOwnerID(ctx context.Context, ownerID int) (*domain.Country, error) {
	if m.getByOwnerFn != nil {
		return m.getByOwnerFn(ctx, ownerID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCountryRepo) Create(ctx context.Context, country *domain.Country) error {
	if m.createFn != nil {
		return m.createFn(ctx, country)
	}
	country.ID = 1
	return nil
}

func (m *mockCountryRepo) Update(ctx context.Context, country *domain.Country) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, country)
	}
	return nil
}

func (m *mockCountryRepo) Delete(ctx context.Context, country *domain.Country) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, country)
	}
	return nil
}

type mockOwnerRepo struct {
	getAllFn        func(ctx context.Context) ([]domain.Owner, error)
	getByIDFn       func(ctx context.Context, id int) (*domain.Owner, error)
	getByLastNameFn func(ctx context.Context, lastName string) (*domain.Owner, error)
	existsFn        func(ctx context.Context, id int) (bool, error)
	getPokemonFn    func(ctx context.Context, ownerID int) ([]domain.Pokemon, error)
	getByPokemonFn  func(ctx context.Context, pokemonID int) ([]domain.Owner, error)
	createFn        func(ctx context.Context, owner *domain.Owner) error
	updateFn        func(ctx context.Context, owner *domain.Owner) error
	deleteFn        func(ctx context.Context, owner *domain.Owner) error
}

func (m *mockOwnerRepo) GetAll(ctx context.Context) ([]domain.Owner, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Owner{}, nil
}

func (m *mockOwnerRepo) GetByID(ctx context.Context, id int) (*domain.Owner, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockOwnerRepo) GetByLastName(ctx context.Context, lastName string) (*domain.Owner, error) {
	if m.getByLastNameFn != nil {
		return m.getByLastNameFn(ctx, lastName)
	}
	return nil, domain.ErrNotFound
}

func (m *mockOwnerRepo) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockOwnerRepo) GetPokemonByOwnerID(ctx context.Context, ownerID int) ([]domain.Pokemon, error) {
	if m.getPokemonFn != nil {
		return m.getPokemonFn(ctx, ownerID)
	}
	return []domain.Pokemon{}, nil
}

func (m *mockOwnerRepo) GetOwnersByPokemonID(ctx context.Context, pokemonID int) ([]domain.Owner, error) {
	if m.getByPokemonFn != nil {
		return m.getByPokemonFn(ctx, pokemonID)
	}
	return []domain.Owner{}, nil
}

func (m *mockOwnerRepo) Create(ctx context.Context, owner *domain.Owner) error {
	if m.createFn != nil {
		return m.createFn(ctx, owner)
	}
	owner.ID = 1
	return nil
}

func (m *mockOwnerRepo) Update(ctx context.Context, owner *domain.Owner) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, owner)
	}
	return nil
}

func (m *mockOwnerRepo) Delete(ctx context.Context, owner *domain.Owner) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, owner)
	}
	return nil
}

type mockPokemonRepo struct {
	getAllFn    func(ctx context.Context) ([]domain.Pokemon, error)
	getByIDFn   func(ctx context.Context, id int) (*domain.Pokemon, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Pokemon, error)
	existsFn    func(ctx context.Context, id int) (bool, error)
	ratingFn    func(ctx context.Context, pokemonID int) (decimal.Decimal, error)
	createFn    func(ctx context.Context, pokemon *domain.Pokemon, ownerID, categoryID int) error
	updateFn    func(ctx context.Context, pokemon *domain.Pokemon) error
	deleteFn    func(ctx context.Context, pokemon *domain.Pokemon) error
}

func (m *mockPokemonRepo) GetAll(ctx context.Context) ([]domain.Pokemon, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Pokemon{}, nil
}

func (m *mockPokemonRepo) GetByID(ctx context.Context, id int) (*domain.Pokemon, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPokemonRepo) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPokemonRepo) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockPokemonRepo) GetAverageRating(ctx context.Context, pokemonID int) (decimal.Decimal, error) {
	if m.ratingFn != nil {
		return m.ratingFn(ctx, pokemonID)
	}
	return decimal.Zero, nil
}

func (m *mockPokemonRepo) Create(ctx context.Context, pokemon *domain.Pokemon, ownerID, categoryID int) error {
	if m.createFn != nil {
		return m.createFn(ctx, pokemon, ownerID, categoryID)
	}
	pokemon.ID = 1
	return nil
}

func (m *mockPokemonRepo) Update(ctx context.Context, pokemon *domain.Pokemon) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, pokemon)
	}
	return nil
}

func (m *mockPokemonRepo) Delete(ctx context.Context, pokemon *domain.Pokemon) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, pokemon)
	}
	return nil
}

type mockReviewRepo struct {
	getAllFn       func(ctx context.Context) ([]domain.Review, error)
	getByIDFn      func(ctx context.Context, id int) (*domain.Review, error)
	getByTitleFn   func(ctx context.Context, title string) (*domain.Review, error)
	existsFn       func(ctx context.Context, id int) (bool, error)
	getByPokemonFn func(ctx context.Context, pokemonID int) ([]domain.Review, error)
	createFn       func(ctx context.Context, review *domain.Review) error
	updateFn       func(ctx context.Context, review *domain.Review) error
	deleteFn       func(ctx context.Context, review *domain.Review) error
	deleteManyFn   func(ctx context.Context, reviews []domain.Review) error
}

func (m *mockReviewRepo) GetAll(ctx context.Context) ([]domain.Review, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Review{}, nil
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReviewRepo) GetByTitle(ctx context.Context, title string) (*domain.Review, error) {
	if m.getByTitleFn != nil {
		return m.getByTitleFn(ctx, title)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReviewRepo) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockReviewRepo) GetReviewsByPokemonID(ctx context.Context, pokemonID int) ([]domain.Review, error) {
	if m.getByPokemonFn != nil {
		return m.getByPokemonFn(ctx, pokemonID)
	}
	return []domain.Review{}, nil
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	review.ID = 1
	return nil
}

func (m *mockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, review *domain.Review) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) DeleteReviews(ctx context.Context, reviews []domain.Review) error {
	if m.deleteManyFn != nil {
		return m.deleteManyFn(ctx, reviews)
	}
	return nil
}

type mockReviewerRepo struct {
	getAllFn        func(ctx context.Context) ([]domain.Reviewer, error)
	getByIDFn       func(ctx context.Context, id int) (*domain.Reviewer, error)
	getByLastNameFn func(ctx context.Context, lastName string) (*domain.Reviewer, error)
	existsFn        func(ctx context.Context, id int) (bool, error)
	getReviewsFn    func(ctx context.Context, reviewerID int) ([]domain.Review, error)
	createFn        func(ctx context.Context, reviewer *domain.Reviewer) error
	updateFn        func(ctx context.Context, reviewer *domain.Reviewer) error
	deleteFn        func(ctx context.Context, reviewer *domain.Reviewer) error
}

func (m *mockReviewerRepo) GetAll(ctx context.Context) ([]domain.Reviewer, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Reviewer{}, nil
}

func (m *mockReviewerRepo) GetByID(ctx context.Context, id int) (*domain.Reviewer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReviewerRepo) GetByLastName(ctx context.Context, lastName string) (*domain.Reviewer, error) {
	if m.getByLastNameFn != nil {
		return m.getByLastNameFn(ctx, lastName)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReviewerRepo) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockReviewerRepo) GetReviewsByReviewerID(ctx context.Context, reviewerID int) ([]domain.Review, error) {
	if m.getReviewsFn != nil {
		return m.getReviewsFn(ctx, reviewerID)
	}
	return []domain.Review{}, nil
}

func (m *mockReviewerRepo) Create(ctx context.Context, reviewer *domain.Reviewer) error {
	if m.createFn != nil {
		return m.createFn(ctx, reviewer)
	}
	reviewer.ID = 1
	return nil
}

func (m *mockReviewerRepo) Update(ctx context.Context, reviewer *domain.Reviewer) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, reviewer)
	}
	return nil
}

func (m *mockReviewerRepo) Delete(ctx context.Context, reviewer *domain.Reviewer) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, reviewer)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// newTestServer builds a Server over the given mocks with logging and
// metrics disabled. Repositories not under test may be nil-valued mocks.
func newTestServer(repos Repositories) *Server {
	if repos.Categories == nil {
		repos.Categories = &mockCategoryRepo{}
	}
	if repos.Countries == nil {
		repos.Countries = &mockCountryRepo{}
	}
	if repos.Owners == nil {
		repos.Owners = &mockOwnerRepo{}
	}
	if repos.Pokemon == nil {
		repos.Pokemon = &mockPokemonRepo{}
	}
	if repos.Reviews == nil {
		repos.Reviews = &mockReviewRepo{}
	}
	if repos.Reviewers == nil {
		repos.Reviewers = &mockReviewerRepo{}
	}

	cfg := Config{
		Address:      "127.0.0.1:0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	return NewServer(cfg, repos, nil, nil, zerolog.Nop())
}

// serveHTTP runs a request through the full router.
func serveHTTP(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}
