package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned before any assembly when the rod length, the cell
	// count or a per-cell property breaks its bounds.
	ErrInvalidConfiguration = errors.New("fvm: invalid configuration")

	// ErrSingularSystem is returned by a solver when the coefficient matrix has no unique solution.
	ErrSingularSystem = errors.New("fvm: singular system")
)

// ConfigError names the input field that failed validation.
// Index is -1 for scalar fields.
type ConfigError struct {
	Field  string
	Index  int
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("fvm: invalid configuration: %s[%d] = %g: %s", e.Field, e.Index, e.Value, e.Reason)
	}
	return fmt.Sprintf("fvm: invalid configuration: %s = %g: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewFieldError builds a ConfigError for a scalar field.
func NewFieldError(field string, value float64, reason string) *ConfigError {
	return &ConfigError{Field: field, Index: -1, Value: value, Reason: reason}
}
