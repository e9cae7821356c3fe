package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lazy-virtuoso/internal/errs"
	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func bindError(t *testing.T, c echo.Context, payload validation.Validatable) *errs.HTTPError {
	t.Helper()

	err := validation.BindAndValidate(c, payload)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidateProductPrice(t *testing.T) {
	c := newContext(http.MethodPost, "/api/products",
		`{"name":"Print","price":-5,"category":"Art","image_url":"https://cdn.example/print.png"}`)

	httpErr := bindError(t, c, &model.CreateProductRequest{})

	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "price", Error: "must be greater than or equal to 0"}}, httpErr.Errors)
}

func TestBindAndValidateOrderQuantity(t *testing.T) {
	c := newContext(http.MethodPost, "/api/orders",
		`{"items":[{"product_id":"p1","quantity":0}],"email":"a@b.c","total":10}`)

	httpErr := bindError(t, c, &model.CreateOrderRequest{})

	assert.Equal(t, []errs.FieldError{{Field: "items[0].quantity", Error: "must be at least 1"}}, httpErr.Errors)
}

func TestBindAndValidateOrderStatus(t *testing.T) {
	c := newContext(http.MethodPost, "/api/orders",
		`{"items":[],"email":"a@b.c","total":10,"status":"lost"}`)

	httpErr := bindError(t, c, &model.CreateOrderRequest{})

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "status", httpErr.Errors[0].Field)
	assert.Equal(t, "must be one of: pending paid shipped cancelled", httpErr.Errors[0].Error)
}

func TestBindAndValidateMissingContactFields(t *testing.T) {
	c := newContext(http.MethodPost, "/api/contact", `{"name":"Ada"}`)

	httpErr := bindError(t, c, &model.CreateContactMessageRequest{})

	fields := make([]string, 0, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		assert.Equal(t, "is required", fe.Error)
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"email", "inquiry_type", "message"}, fields)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/api/poems", `{"title":`)

	httpErr := bindError(t, c, &model.CreatePoemRequest{})
	assert.Nil(t, httpErr.Errors)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidateAppliesDefaults(t *testing.T) {
	c := newContext(http.MethodGet, "/api/artworks?tag=ink", "")

	req := &model.ListArtworksRequest{}
	require.NoError(t, validation.BindAndValidate(c, req))

	assert.Equal(t, model.DefaultLimit, req.Limit)
	assert.Equal(t, "ink", req.Tag)
}

func TestBindAndValidateQueryLimit(t *testing.T) {
	c := newContext(http.MethodGet, "/api/products?category=Art&limit=3", "")

	req := &model.ListProductsRequest{}
	require.NoError(t, validation.BindAndValidate(c, req))

	assert.Equal(t, int64(3), req.Limit)
	assert.Equal(t, "Art", req.Category)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/x", `{}`)

	httpErr := bindError(t, c, &customPayload{})
	assert.Equal(t, []errs.FieldError{{Field: "items", Error: "duplicate product"}}, httpErr.Errors)
}

type customPayload struct{}

func (*customPayload) Validate() error {
	return validation.CustomValidationErrors{{Field: "items", Message: "duplicate product"}}
}
