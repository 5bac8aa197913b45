package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokehub/pokemon-review-service/internal/domain"
)

func TestCreateReview_Success(t *testing.T) {
	var created *domain.Review
	srv := newTestServer(Repositories{
		Pokemon: &mockPokemonRepo{
			existsFn: func(_ context.Context, id int) (bool, error) { return true, nil },
		},
		Reviewers: &mockReviewerRepo{
			existsFn: func(_ context.Context, id int) (bool, error) { return true, nil },
		},
		Reviews: &mockReviewRepo{
			createFn: func(_ context.Context, r *domain.Review) error {
				r.ID = 12
				created = r
				return nil
			},
		},
	})

	body, _ := json.Marshal(reviewRequest{Title: "Shockingly good", Text: "Great.", Rating: 5})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews?reviewerId=2&pokemonId=3", bytes.NewReader(body))
	rr := serveHTTP(srv, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, created)
	assert.Equal(t, 3, created.PokemonID)
	assert.Equal(t, 2, created.ReviewerID)
	assert.Equal(t, 5, created.Rating)
}

func TestCreateReview_PokemonMissing(t *testing.T) {
	srv := newTestServer(Repositories{
		Reviewers: &mockReviewerRepo{
			existsFn: func(_ context.Context, id int) (bool, error) { return true, nil },
		},
	})

	body, _ := json.Marshal(reviewRequest{Title: "Shockingly good", Text: "Great.", Rating: 5})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews?reviewerId=2&pokemonId=404", bytes.NewReader(body))
	rr := serveHTTP(srv, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		body, _ := json.Marshal(reviewRequest{Title: "Bad rating", Text: "Nope.", Rating: rating})
		srv := newTestServer(Repositories{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews?reviewerId=1&pokemonId=1", bytes.NewReader(body))
		rr := serveHTTP(srv, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "rating %d must be rejected", rating)
	}
}

func TestCreateReview_MissingQueryParams(t *testing.T) {
	srv := newTestServer(Repositories{})

	body, _ := json.Marshal(reviewRequest{Title: "No refs", Text: "Missing.", Rating: 3})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
	rr := serveHTTP(srv, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetReviewsByPokemon(t *testing.T) {
	srv := newTestServer(Repositories{
		Pokemon: &mockPokemonRepo{
			existsFn: func(_ context.Context, id int) (bool, error) { return true, nil },
		},
		Reviews: &mockReviewRepo{
			getByPokemonFn: func(_ context.Context, pokemonID int) ([]domain.Review, error) {
				return []domain.Review{
					{ID: 1, Title: "Shockingly good", Rating: 5, PokemonID: pokemonID, ReviewerID: 1},
				}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews/pokemon/1", nil)
	rr := serveHTTP(srv, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []reviewResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PokemonID)
}

func TestUpdateReview_KeepsLinks(t *testing.T) {
	var updated *domain.Review
	srv := newTestServer(Repositories{
		Reviews: &mockReviewRepo{
			getByIDFn: func(_ context.Context, id int) (*domain.Review, error) {
				return &domain.Review{ID: id, Title: "Old", Text: "Old.", Rating: 2, PokemonID: 7, ReviewerID: 8}, nil
			},
			updateFn: func(_ context.Context, r *domain.Review) error {
				updated = r
				return nil
			},
		},
	})

	body, _ := json.Marshal(reviewRequest{Title: "New", Text: "New.", Rating: 4})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/5", bytes.NewReader(body))
	rr := serveHTTP(srv, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, updated)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, 7, updated.PokemonID)
	assert.Equal(t, 8, updated.ReviewerID)
}

func TestDeleteReview_NotFound(t *testing.T) {
	srv := newTestServer(Repositories{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/404", nil)
	rr := serveHTTP(srv, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateReview_DuplicateTitle(t *testing.T) {
	srv := newTestServer(Repositories{
		Reviews: &mockReviewRepo{
			getByTitleFn: func(_ context.Context, title string) (*domain.Review, error) {
				return &domain.Review{ID: 9, Title: "Shockingly good"}, nil
			},
		},
	})

	body, _ := json.Marshal(reviewRequest{Title: " shockingly GOOD ", Text: "me too", Rating: 4})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews?reviewerId=1&pokemonId=1", bytes.NewReader(body))
	rr := serveHTTP(srv, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
