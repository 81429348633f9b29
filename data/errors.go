package data

import (
	"go-ml.dev/pkg/mldata/internal/errs"
	"go-ml.dev/pkg/zorros"
)

// Error kinds. Every error returned by the mldata packages wraps exactly one
// of them, test with xerrors.Is (or errors.Is).
var (
	// ErrCapability means an axis is required but undefined,
	// or the container lacks a required protocol method.
	ErrCapability = errs.Capability
	// ErrBounds means an index is outside [0, n).
	ErrBounds = errs.Bounds
	// ErrDimensionMismatch means linked containers or fold index sets disagree on size.
	ErrDimensionMismatch = errs.DimensionMismatch
	// ErrArgument means invalid fractions, sizes, counts or k.
	ErrArgument = errs.Argument
)

// CheckIndex fails with a bounds error when i is outside [0, n).
func CheckIndex(i, n int) error {
	return errs.Index(i, n)
}

// CheckIndices fails with a bounds error when any index is outside [0, n).
func CheckIndices(idx []int, n int) error {
	for _, i := range idx {
		if err := errs.Index(i, n); err != nil {
			return err
		}
	}
	return nil
}

// Capability wraps ErrCapability, for container implementations.
func Capability(format string, a ...interface{}) error {
	return errs.Capabilityf(format, a...)
}

// Mismatch wraps ErrDimensionMismatch, for container implementations.
func Mismatch(format string, a ...interface{}) error {
	return errs.Mismatchf(format, a...)
}

// Argument wraps ErrArgument, for container implementations.
func Argument(format string, a ...interface{}) error {
	return errs.Argumentf(format, a...)
}

func lucky[T any](v T, err error) T {
	if err != nil {
		panic(zorros.Panic(err))
	}
	return v
}
