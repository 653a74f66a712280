package crudgen

import (
	"errors"
	"fmt"

	"github.com/hlop3z/crudgen/internal/alerr"
)

// Sentinel errors for common error conditions.
// Use errors.Is() to check for these errors.
var (
	// ErrModelNotFound is returned when no definition exists for a model.
	ErrModelNotFound = errors.New("crudgen: model not found")

	// ErrNoWritableFields is returned when a model declares no fillable fields.
	ErrNoWritableFields = errors.New("crudgen: no fillable fields")

	// ErrConnectionFailed is returned when the database connection fails.
	ErrConnectionFailed = errors.New("crudgen: connection failed")

	// ErrUnknownVariant is returned for a variant other than HTML or API.
	ErrUnknownVariant = errors.New("crudgen: unknown variant")
)

// ModelNotFoundError reports a model name with no definition file.
type ModelNotFoundError struct {
	// Model is the requested model name.
	Model string

	// Suggestion is a close existing model name, if any.
	Suggestion string

	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted error message.
func (e *ModelNotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("crudgen: model %s does not exist (did you mean %s?)", e.Model, e.Suggestion)
	}
	return fmt.Sprintf("crudgen: model %s does not exist", e.Model)
}

// Unwrap returns the underlying cause error.
func (e *ModelNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *ModelNotFoundError) Is(target error) bool {
	return target == ErrModelNotFound
}

// NoWritableFieldsError reports a model whose fillable list is empty.
type NoWritableFieldsError struct {
	Model string
	Cause error
}

// Error returns a formatted error message.
func (e *NoWritableFieldsError) Error() string {
	return fmt.Sprintf("crudgen: no fillable fields found in %s model", e.Model)
}

// Unwrap returns the underlying cause error.
func (e *NoWritableFieldsError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *NoWritableFieldsError) Is(target error) bool {
	return target == ErrNoWritableFields
}

// ConnectionError provides detailed information about a database connection error.
type ConnectionError struct {
	// URL is the database URL (with password redacted).
	URL string

	// Dialect is the database dialect (postgres, mysql, sqlite).
	Dialect string

	// Cause is the underlying error from the database driver.
	Cause error
}

// Error returns a formatted error message.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("crudgen: failed to connect to %s database: %v", e.Dialect, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailed
}

// convertError maps coded internal errors onto the public error types.
// Errors without a public counterpart are returned unchanged.
func convertError(name string, err error) error {
	if err == nil {
		return nil
	}

	var coded *alerr.Error
	if !errors.As(err, &coded) {
		return err
	}

	switch coded.GetCode() {
	case alerr.ErrModelNotFound:
		e := &ModelNotFoundError{Model: name, Cause: err}
		if s, ok := coded.GetContext()["suggestion"].(string); ok {
			e.Suggestion = s
		}
		return e
	case alerr.ErrNoWritableFields:
		return &NoWritableFieldsError{Model: name, Cause: err}
	}
	return err
}
