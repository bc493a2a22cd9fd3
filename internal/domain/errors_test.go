package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_WrapsValidationError(t *testing.T) {
	cause := NewValidationError("symptoms", "at least one symptom is required", []string{})

	err := NewServiceError(ErrValidation, "diagnosis query rejected", "", cause)

	assert.Equal(t, "VALIDATION_ERROR: diagnosis query rejected: validation error for field 'symptoms': at least one symptom is required", err.Error())
	assert.WithinDuration(t, time.Now().UTC(), err.Timestamp, time.Minute)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "symptoms", verr.Field)
}

func TestServiceError_WithoutCause(t *testing.T) {
	err := NewServiceError(ErrInvalidInput, "query is required", "q-1", nil)

	assert.Equal(t, "INVALID_INPUT: query is required", err.Error())
	assert.Equal(t, "q-1", err.QueryID)
	assert.Nil(t, errors.Unwrap(err))
}
