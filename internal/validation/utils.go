package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/lazy-virtuoso/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,gte=0"`)
//   - Implement Validate() error that calls validation.Struct(req)
//   - Return CustomValidationErrors for rules tags cannot express
type Validatable interface {
	Validate() error
}

// Defaulter is implemented by request types that need values filled in
// before binding, such as a default page size.
type Defaulter interface {
	SetDefaults()
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
//
// Field names are taken from the json tag so that error payloads use the
// same names the client sent (image_url, not ImageURL).
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "query", "param"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// Struct validates v against its validate tags.
func Struct(v any) error {
	return Validator().Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. SetDefaults() when the payload implements Defaulter.
//  2. c.Bind(payload) populates the struct from path, query and body.
//  3. payload.Validate() applies validation rules.
//
// Failures come back as *errs.HTTPError (400), with field-level errors
// when validation rules were violated.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if d, ok := payload.(Defaulter); ok {
		d.SetDefaults()
	}

	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindErrorMessage extracts a readable message from Echo's bind error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error at all; report it against no particular field.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldPath(err),
			Error: fieldMessage(err),
		})
	}

	return "Validation failed", fieldErrors
}

// fieldPath turns "CreateOrderRequest.items[0].quantity" into "items[0].quantity".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		if err.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "dive":
		return "some items are invalid"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}
