package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError("Soda 300ml", 3, 1)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "Insufficient stock for Soda 300ml. Required: 3, Available: 1", err.Message)
}

func TestNewNegativeStockError(t *testing.T) {
	err := NewNegativeStockError("Sugar 1kg")
	assert.Equal(t, 400, err.Code)
	assert.Contains(t, err.Message, "Sugar 1kg")
}

func TestGetAppErrorWrapsUnknownErrors(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))
	assert.Equal(t, 500, appErr.Code)

	known := NewNotFoundError("Product")
	assert.Equal(t, known, GetAppError(known))
	assert.Equal(t, 404, GetAppError(known).Code)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NewConflictError("exists")))
	assert.False(t, IsAppError(errors.New("plain")))
}
