package storeerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/lazy-virtuoso/internal/database"
	"github.com/deppfellow/lazy-virtuoso/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr(index string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: fmt.Sprintf(`E11000 duplicate key error collection: virtuoso.product index: %s dup key: { name: "Print" }`, index),
		}},
	}
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorUnavailable(t *testing.T) {
	err := HandleError(fmt.Errorf("list poems: %w", database.ErrStoreUnavailable), "poem")

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Equal(t, CodeDatabaseUnavailable, httpErr.Code)
}

func TestHandleErrorDuplicateKey(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(duplicateKeyErr("name_1"), "product"))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Product with this Name already exists", httpErr.Message)
}

func TestHandleErrorTimeout(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("find in artwork: %w", context.DeadlineExceeded), "artwork"))

	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Equal(t, "ARTWORK_UNREACHABLE", httpErr.Code)
}

func TestHandleErrorNoDocuments(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(mongo.ErrNoDocuments, "contactmessage"))

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Contact Message not found", httpErr.Message)
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("boom"), "order"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	original := errs.NewNotFoundError("gone", true, nil)
	assert.Same(t, original, HandleError(original, "poem"))
}

func TestDuplicateKeyField(t *testing.T) {
	cases := map[string]string{
		"name_1":         "name",
		"image_url_1":    "image_url",
		"email_1_name_1": "email",
		"_id_":           "",
	}
	for index, want := range cases {
		t.Run(index, func(t *testing.T) {
			assert.Equal(t, want, duplicateKeyField(duplicateKeyErr(index)))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Other, Classify(nil))
	assert.Equal(t, Unavailable, Classify(database.ErrStoreUnavailable))
	assert.Equal(t, DuplicateKey, Classify(duplicateKeyErr("name_1")))
	assert.Equal(t, Timeout, Classify(context.DeadlineExceeded))
}
