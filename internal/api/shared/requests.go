package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps the size of request bodies.
const MaxBodyBytes = 1 << 20

// ErrNotObject is returned when a request body is not a JSON object.
var ErrNotObject = errors.New("request body was not a JSON object")

// Problems reported for request arguments.
const (
	ProblemMissing       = "missing"
	ProblemNotString     = "not a string"
	ProblemNotNumber     = "not a number"
	ProblemEmpty         = "empty"
	ProblemNotCardList   = "not a list of front/back pairs"
	ProblemNotPercentage = "not an integer between 0 and 100"
)

// ArgumentError describes a required request argument that was absent or
// had the wrong shape.
type ArgumentError struct {
	Name    string
	Problem string
}

// Error returns the client-facing message, e.g.
// `required argument "name" was missing`.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("required argument %q was %s", e.Name, e.Problem)
}

// NewArgumentError creates an ArgumentError.
func NewArgumentError(name, problem string) *ArgumentError {
	return &ArgumentError{Name: name, Problem: problem}
}

// Fields holds the top-level members of a JSON object body.
type Fields map[string]json.RawMessage

// DecodeObject reads the request body as a JSON object.
func DecodeObject(w http.ResponseWriter, r *http.Request) (Fields, error) {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, ErrNotObject
	}

	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, ErrNotObject
	}
	return fields, nil
}

// raw returns the member called name, treating JSON null as absent.
func (f Fields) raw(name string) (json.RawMessage, bool) {
	value, ok := f[name]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, false
	}
	return value, true
}

// String returns the string member called name.
func (f Fields) String(name string) (string, error) {
	value, ok := f.raw(name)
	if !ok {
		return "", NewArgumentError(name, ProblemMissing)
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", NewArgumentError(name, ProblemNotString)
	}
	return s, nil
}

// IntInRange returns the numeric member called name. A number with a
// fractional part, or one outside [lo, hi], is reported with outOfRange,
// so the range check runs alongside the type check.
func (f Fields) IntInRange(name string, lo, hi int, outOfRange string) (int, error) {
	value, ok := f.raw(name)
	if !ok {
		return 0, NewArgumentError(name, ProblemMissing)
	}
	var n float64
	if err := json.Unmarshal(value, &n); err != nil {
		// A numeric token that overflows float64 is still a number.
		if isNumberToken(value) {
			return 0, NewArgumentError(name, outOfRange)
		}
		return 0, NewArgumentError(name, ProblemNotNumber)
	}
	if n != math.Trunc(n) || n < float64(lo) || n > float64(hi) {
		return 0, NewArgumentError(name, outOfRange)
	}
	return int(n), nil
}

func isNumberToken(value json.RawMessage) bool {
	value = bytes.TrimSpace(value)
	return len(value) > 0 && (value[0] == '-' || (value[0] >= '0' && value[0] <= '9'))
}

// Decode unmarshals the member called name into v. A value that does not
// fit v is reported with mismatch.
func (f Fields) Decode(name string, v any, mismatch string) error {
	value, ok := f.raw(name)
	if !ok {
		return NewArgumentError(name, ProblemMissing)
	}
	if err := json.Unmarshal(value, v); err != nil {
		return NewArgumentError(name, mismatch)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank rejects strings that are empty after trimming whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateRequest validates v's struct tags and converts the first failure
// into an ArgumentError named after the field's JSON name. Only content
// checks belong in tags; every failure is reported as empty.
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	return NewArgumentError(verrs[0].Field(), ProblemEmpty)
}
