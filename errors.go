package knn

import (
	"errors"
	"fmt"

	"github.com/hupe1980/knn/distance"
	"github.com/hupe1980/knn/neighbors"
)

var (
	// ErrConfiguration is wrapped by every error caused by invalid parameters.
	// It is only returned from constructors, never from Fit or Predict.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrPrecondition is wrapped by errors caused by inputs that cannot be
	// served, e.g. k larger than the reference set or an invalid fold count.
	ErrPrecondition = errors.New("precondition violated")

	// ErrNotFitted is returned when a classifier is queried before Fit.
	ErrNotFitted = errors.New("classifier is not fitted")
)

// ConfigError describes a single invalid parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// ErrDimensionMismatch indicates that two inputs which must be parallel are not.
// It matches ErrPrecondition with errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrPrecondition }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, distance.ErrUnsupportedMetric) || errors.Is(err, ErrUnsupportedStrategy) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	var ke *neighbors.KExceedsError
	if errors.As(err, &ke) {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	if errors.Is(err, neighbors.ErrInvalidK) || errors.Is(err, neighbors.ErrInvalidBlockSize) {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	// Shape errors from the linear algebra layer stay matchable as mat.ErrShape.
	return fmt.Errorf("%w: %w", ErrPrecondition, err)
}
