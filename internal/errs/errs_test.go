package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, 400, NewBadRequestError("Invalid input").Status)
	assert.Equal(t, 404, NewNotFoundError("gone").Status)

	internal := NewInternalServerError()
	assert.Equal(t, 500, internal.Status)
	assert.Equal(t, "Internal Server Error", internal.Message)
}

func TestErrorBodyShape(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("No article found for article_id 9"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"No article found for article_id 9"}`, string(body))
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update votes: %w", NewBadRequestError("Invalid input, must be a number"))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Invalid input, must be a number", httpErr.Message)
}
