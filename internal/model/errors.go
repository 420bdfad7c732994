package model

import (
	"errors"
	"fmt"
)

// Error kinds shared by the model and every calc package. Handlers map all of
// them to HTTP 400; callers are expected to fix the input and retry.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOrdering     = errors.New("depth sequence not strictly increasing")
	ErrMissingData  = errors.New("missing data")
)

func Invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

func Missingf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrMissingData)...)
}

// RequireMin fails when value is below min. Zero-valued fields with a positive
// lower bound therefore also read as "not provided".
func RequireMin(name string, value, min float64) error {
	if value < min {
		return Invalidf("%s must be >= %g, got %g", name, min, value)
	}
	return nil
}

func RequireRange(name string, value, min, max float64) error {
	if err := RequireMin(name, value, min); err != nil {
		return err
	}
	if value > max {
		return Invalidf("%s must be <= %g, got %g", name, max, value)
	}
	return nil
}
