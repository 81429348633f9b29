package data

import (
	"fmt"
	"go-ml.dev/pkg/mldata/internal/errs"
)

type axisKind int8

const (
	autoAxis axisKind = iota
	firstAxis
	lastAxis
	constantAxis
	undefinedAxis
)

/*
Axis tells which dimension of a multi-axis container enumerates observations.

The zero value is Auto, it means "use the container default".
Containers that have no meaningful dimensions resolve Auto to Undefined.
*/
type Axis struct {
	kind axisKind
	k    int
}

var (
	Auto      = Axis{}
	First     = Axis{kind: firstAxis}
	Last      = Axis{kind: lastAxis}
	Undefined = Axis{kind: undefinedAxis}
)

// Constant selects dimension k (zero based).
func Constant(k int) Axis {
	return Axis{kind: constantAxis, k: k}
}

func (a Axis) IsAuto() bool {
	return a.kind == autoAxis
}

func (a Axis) IsUndefined() bool {
	return a.kind == undefinedAxis
}

/*
Dim returns the concrete dimension index for a container with ndims dimensions
*/
func (a Axis) Dim(ndims int) (int, error) {
	switch a.kind {
	case firstAxis:
		return 0, nil
	case lastAxis:
		return ndims - 1, nil
	case constantAxis:
		if a.k < 0 || a.k >= ndims {
			return 0, errs.Argumentf("axis %v is out of range for %d dimensions", a, ndims)
		}
		return a.k, nil
	default:
		return 0, errs.Capabilityf("axis %v does not select a dimension", a)
	}
}

func (a Axis) String() string {
	switch a.kind {
	case firstAxis:
		return "First"
	case lastAxis:
		return "Last"
	case constantAxis:
		return fmt.Sprintf("Constant(%d)", a.k)
	case undefinedAxis:
		return "Undefined"
	default:
		return "Auto"
	}
}

// AxisDefaulter is implemented by containers having a default observation axis.
type AxisDefaulter interface {
	DefaultAxis() Axis
}

/*
Resolve replaces Auto with the default axis of c, or Undefined when c has no default.
Any other axis is returned as is. Wrappers resolving axes per member, like
linked groups, report Auto as their default and keep it.
*/
func Resolve(c interface{}, a Axis) Axis {
	if !a.IsAuto() {
		return a
	}
	if d, ok := c.(AxisDefaulter); ok {
		return d.DefaultAxis()
	}
	return Undefined
}

// sameAxis checks that a call axis agrees with the axis a subset was built with.
func sameAxis(fixed, call Axis) error {
	if call.IsAuto() || call == fixed {
		return nil
	}
	return errs.Argumentf("axis %v differs from axis %v chosen for this container", call, fixed)
}
