package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "SERVICE_UNAVAILABLE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusServiceUnavailable)))
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "PRODUCT_INVALID"
	err := NewBadRequestError("bad price", true, &code, []FieldError{{Field: "price", Error: "must be greater than or equal to 0"}}, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "PRODUCT_INVALID", err.Code)
	assert.Len(t, err.Errors, 1)
	assert.Equal(t, "bad price", err.Error())
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("insert artwork: %w", NewServiceUnavailableError("Database not available", nil))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("Poem not found")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "Poem not found", custom.Message)
	assert.Equal(t, base.Code, custom.Code)
}

func TestInternalServerErrorHidesDetail(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
}

func TestStatusConstructors(t *testing.T) {
	code := "DATABASE_UNAVAILABLE"
	unavailable := NewServiceUnavailableError("Database not available", &code)
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.Status)
	assert.Equal(t, code, unavailable.Code)

	throttled := NewTooManyRequestsError("slow down")
	assert.Equal(t, http.StatusTooManyRequests, throttled.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", throttled.Code)
}
