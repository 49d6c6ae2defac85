package params

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid param")
	// ErrRequired matches every *RequiredError.
	ErrRequired = errors.New("required param(s) not found")
)

// ValidationError is returned when a value assigned to a field is rejected.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid param: '%s'", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RequiredError is returned when fields needed for a request are absent.
// Fields lists every missing name.
type RequiredError struct {
	Fields []string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("required param(s) not found: '%s'", strings.Join(e.Fields, ", "))
}

func (e *RequiredError) Unwrap() error {
	return ErrRequired
}
