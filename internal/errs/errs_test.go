package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)))
}

func TestConstructors(t *testing.T) {
	custom := "PERSON_NOT_FOUND"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("bad", false, &custom, nil), http.StatusBadRequest, custom},
		{"unprocessable", NewUnprocessableEntityError("Validation failed", nil), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"not found", NewNotFoundError("missing", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"not found custom code", NewNotFoundError("missing", true, &custom), http.StatusNotFound, custom},
		{"too large", NewRequestEntityTooLargeError("too big"), http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("This person doesn't exist!", true, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "This person doesn't exist!", httpErr.Error())
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}
