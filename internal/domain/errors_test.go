package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("pokemon", "42")

	assert.EqualError(t, err, "pokemon not found: 42")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrCommitFailed))

	var nfe *NotFoundError
	assert.True(t, errors.As(err, &nfe))
	assert.Equal(t, "pokemon", nfe.Entity)
}

func TestCommitFailedError(t *testing.T) {
	err := NewCommitFailedError("owner", "update")

	assert.EqualError(t, err, "owner update: commit affected no rows")
	assert.True(t, errors.Is(err, ErrCommitFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "name is required")

	assert.EqualError(t, err, "validation error: name: name is required")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get category: %w", NewNotFoundError("category", "7"))
	assert.True(t, errors.Is(wrapped, ErrNotFound))

	var nfe *NotFoundError
	assert.True(t, errors.As(wrapped, &nfe))
	assert.Equal(t, "7", nfe.ID)
}
