// Package validation contains the logic for validating request data.
//
// Constraints live in `validate` struct tags on the model types and are
// enforced by go-playground/validator. Failures are translated into
// errs.FieldError entries keyed by the field's wire name.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,email"`)
//   - Implement Validate() error that runs validation.Struct(req)
//   - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// Binder is implemented by request types that read something other than
// path params, GET query params and a body: headers, cookies, multipart
// files, or query params that must tell "absent" from "empty".
type Binder interface {
	Bind(c echo.Context) error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// wireTags are the struct tags consulted, in order, for a field's wire name.
var wireTags = []string{"json", "form", "query", "param", "header", "cookie"}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
//
// Field names reported by the validator are wire names: the first of the
// json/form/query/param/header/cookie tags, falling back to snake_case.
// Embedded structs keep their Go name and are dropped by FieldPath.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(wireName)
		_ = validate.RegisterValidation(PublicURLTag, publicURL)
	})

	return validate
}

// Struct validates s against its `validate` tags using the shared validator.
func Struct(s any) error {
	return Validator().Struct(s)
}

// PublicURLTag accepts http(s) URLs whose host is an IP address or a
// dotted domain name with a top-level domain: "http://localhost" fails.
const PublicURLTag = "public_url"

func publicURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	return validate.Var(host, "fqdn") == nil
}

func wireName(fld reflect.StructField) string {
	for _, tag := range wireTags {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	if fld.Anonymous {
		return ""
	}
	return strcase.ToSnake(fld.Name)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. payload.Bind(c) when payload implements Binder, c.Bind(payload) otherwise.
//     A failure here is a 400: the input could not be decoded at all.
//  2. payload.Validate() applies the declared constraints.
//     A failure here is a 422 with one field error per violation.
//
// NOTE: payload must be a pointer to a struct so binding can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var err error
	if binder, ok := payload.(Binder); ok {
		err = binder.Bind(c)
	} else {
		err = c.Bind(payload)
	}
	if err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, fieldErrors)
	}

	return nil
}

// bindError converts an echo binding failure into a 400 HTTPError.
//
// Failures tied to one field (a query or path value that does not parse,
// a JSON value of the wrong type) carry a field error under the wire name.
func bindError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return fieldBindError(bindingErr.Field, messageOf(bindingErr.HTTPError))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := wirePath(strings.Split(typeErr.Field, "."))
		if field == "" {
			field = "body"
		}
		return fieldBindError(field, "must be of type "+typeName(typeErr))
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewBadRequestError(fmt.Sprintf("Invalid value %q", numErr.Num), true, nil, nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusRequestEntityTooLarge {
			return errs.NewRequestEntityTooLargeError(messageOf(echoErr))
		}
		return errs.NewBadRequestError(messageOf(echoErr), true, nil, nil)
	}

	return errs.NewBadRequestError(err.Error(), false, nil, nil)
}

func fieldBindError(field, message string) error {
	return errs.NewBadRequestError("Invalid "+Label(field), true, nil, []errs.FieldError{{
		Field: field,
		Error: message,
	}})
}

// typeName names the JSON kind the decoder expected.
func typeName(err *json.UnmarshalTypeError) string {
	if err.Type == nil {
		return "value"
	}

	t := err.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// messageOf extracts echo's public message, which may be any type.
func messageOf(e *echo.HTTPError) string {
	if e == nil {
		return http.StatusText(http.StatusBadRequest)
	}
	if msg, ok := e.Message.(string); ok {
		return msg
	}
	return fmt.Sprint(e.Message)
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
		// Not a constraint failure: report it against the whole payload.
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: FieldPath(err),
			Error: Message(err),
		})
	}

	return "Validation failed", fieldErrors
}

// FieldPath returns the dotted wire path of a failing field, e.g.
// "person.first_name". The root struct and embedded structs (Go-named,
// capitalized segments) are left out.
func FieldPath(err validator.FieldError) string {
	path := wirePath(strings.Split(err.Namespace(), ".")[1:])
	if path == "" {
		return err.Field()
	}
	return path
}

// wirePath joins the wire-named segments of a field path, skipping
// Go-named (capitalized) embedded struct segments.
func wirePath(segments []string) string {
	path := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" || unicode.IsUpper(rune(segment[0])) {
			continue
		}
		path = append(path, segment)
	}
	return strings.Join(path, ".")
}

// Label turns a wire name into Title Case text.
//
//	"person_id" -> "Person Id"
func Label(field string) string {
	if field == "" {
		return "request"
	}
	field = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(field)
	return cases.Title(language.English).String(field)
}

// Message converts a validator error into a user-friendly message.
func Message(err validator.FieldError) string {
	isString := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		// min means length for strings and value for numbers
		if isString {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", err.Param())

	case "lte":
		return fmt.Sprintf("must be at most %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(err.Param(), " ", ", "))

	case "email":
		return "must be a valid email address"

	case "url", "http_url", PublicURLTag:
		return "must be a valid URL"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}
