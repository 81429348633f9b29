// Package errs holds the error kinds shared by the mldata packages.
package errs

import (
	"golang.org/x/xerrors"
)

var (
	Capability        = xerrors.New("capability error")
	Bounds            = xerrors.New("bounds error")
	DimensionMismatch = xerrors.New("dimension mismatch")
	Argument          = xerrors.New("argument error")
)

func wrap(kind error, format string, a []interface{}) error {
	return xerrors.Errorf(format+": %w", append(a, kind)...)
}

func Capabilityf(format string, a ...interface{}) error {
	return wrap(Capability, format, a)
}

func Boundsf(format string, a ...interface{}) error {
	return wrap(Bounds, format, a)
}

func Mismatchf(format string, a ...interface{}) error {
	return wrap(DimensionMismatch, format, a)
}

func Argumentf(format string, a ...interface{}) error {
	return wrap(Argument, format, a)
}

// Index fails with a bounds error when i is outside [0, n).
func Index(i, n int) error {
	if i < 0 || i >= n {
		return Boundsf("index %d is out of range [0,%d)", i, n)
	}
	return nil
}
