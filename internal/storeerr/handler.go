package storeerr

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/lazy-virtuoso/internal/database"
	"github.com/deppfellow/lazy-virtuoso/internal/errs"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CodeDatabaseUnavailable is returned while the process runs without a store.
const CodeDatabaseUnavailable = "DATABASE_UNAVAILABLE"

// Kind is the category a store error falls into.
type Kind int

const (
	Other Kind = iota
	Unavailable
	DuplicateKey
	Timeout
	Network
	NotFound
)

// Classify reports the Kind of err.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, database.ErrStoreUnavailable):
		return Unavailable
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case mongo.IsNetworkError(err), errors.Is(err, mongo.ErrClientDisconnected):
		return Network
	default:
		return Other
	}
}

// HandleError converts a store error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - store not configured, timeouts, network failures: 503
//   - duplicate key: 400 naming the field when the index name allows it
//   - no documents: 404
//   - anything else: 500
func HandleError(err error, collection string) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch Classify(err) {
	case Unavailable:
		code := CodeDatabaseUnavailable
		return errs.NewServiceUnavailableError("Database not available", &code)

	case Timeout, Network:
		code := generateErrorCode(collection, "UNREACHABLE")
		return errs.NewServiceUnavailableError("The database could not be reached, try again later", &code)

	case DuplicateKey:
		code := generateErrorCode(collection, "ALREADY_EXISTS")
		message := fmt.Sprintf("A %s with this identifier already exists", entityName(collection))
		if field := duplicateKeyField(err); field != "" {
			message = strings.ReplaceAll(message, "identifier", humanizeText(field))
		}
		return errs.NewBadRequestError(message, true, &code, nil, nil)

	case NotFound:
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName(collection)), true, nil)
	}

	return errs.NewInternalServerError()
}

// generateErrorCode builds <DOMAIN>_<ACTION>, e.g. PRODUCT_ALREADY_EXISTS.
func generateErrorCode(collection, action string) string {
	if collection == "" {
		collection = "RECORD"
	}
	return fmt.Sprintf("%s_%s", strings.ToUpper(collection), action)
}

// entityName turns a collection name into the noun used in messages.
// "contactmessage" has no separator to work with, so it is special-cased.
func entityName(collection string) string {
	switch collection {
	case "":
		return "record"
	case "contactmessage":
		return "Contact Message"
	}
	return humanizeText(collection)
}

// humanizeText converts snake_case into Title Case: "image_url" -> "Image Url".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// Mongo reports duplicates as
//
//	E11000 duplicate key error collection: db.product index: name_1 dup key: { name: "Print" }
var dupKeyIndex = regexp.MustCompile(`index: ([A-Za-z0-9_.]+?)_-?1\b`)

// duplicateKeyField extracts the first indexed field from the error text.
func duplicateKeyField(err error) string {
	matches := dupKeyIndex.FindStringSubmatch(err.Error())
	if len(matches) < 2 {
		return ""
	}
	field := matches[1]
	// compound index "a_1_b_1": keep the first key only
	if i := strings.Index(field, "_1_"); i >= 0 {
		field = field[:i]
	}
	return field
}
