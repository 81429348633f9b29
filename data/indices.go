package data

import (
	"fmt"
	"go-ml.dev/pkg/mldata/internal/errs"
)

/*
Indices is an immutable ordered sequence of observation indices.

It is either a lazy range [lo,hi) or an explicit list; lists may contain
duplicates and any order. The list passed to Of is not copied and must not
be modified afterwards.
*/
type Indices struct {
	lo, n  int
	list   []int
	isList bool
}

// Range returns the lazy range [lo,hi).
func Range(lo, hi int) Indices {
	if hi < lo {
		hi = lo
	}
	return Indices{lo: lo, n: hi - lo}
}

// Of wraps an explicit index list.
func Of(idx []int) Indices {
	return Indices{list: idx, n: len(idx), isList: true}
}

func (x Indices) Len() int {
	return x.n
}

func (x Indices) IsRange() bool {
	return !x.isList
}

// At returns the i-th index; i must be in [0,Len()).
func (x Indices) At(i int) int {
	if x.isList {
		return x.list[i]
	}
	return x.lo + i
}

// Slice returns the indices as a slice. For lists it is the underlying storage, do not modify it.
func (x Indices) Slice() []int {
	if x.isList {
		return x.list
	}
	r := make([]int, x.n)
	for i := range r {
		r[i] = x.lo + i
	}
	return r
}

// Copy returns a fresh slice the caller owns.
func (x Indices) Copy() []int {
	r := make([]int, x.n)
	for i := range r {
		r[i] = x.At(i)
	}
	return r
}

// Bounds returns the smallest and the largest index, ok is false for empty indices.
func (x Indices) Bounds() (lo, hi int, ok bool) {
	if x.n == 0 {
		return
	}
	if !x.isList {
		return x.lo, x.lo + x.n - 1, true
	}
	lo, hi = x.list[0], x.list[0]
	for _, i := range x.list[1:] {
		lo = min(lo, i)
		hi = max(hi, i)
	}
	return lo, hi, true
}

// Check fails with a bounds error when any index is outside [0,n).
func (x Indices) Check(n int) error {
	lo, hi, ok := x.Bounds()
	if !ok {
		return nil
	}
	if lo < 0 {
		return errs.Index(lo, n)
	}
	return errs.Index(hi, n)
}

/*
Compose returns x[y], the indices of x selected by positions y.
Composing two ranges gives a range; nothing is copied when y is a range.
*/
func (x Indices) Compose(y Indices) Indices {
	switch {
	case !x.isList && !y.isList:
		return Indices{lo: x.lo + y.lo, n: y.n}
	case x.isList && !y.isList:
		return Of(x.list[y.lo : y.lo+y.n])
	default:
		r := make([]int, y.n)
		for i, j := range y.list {
			r[i] = x.At(j)
		}
		return Of(r)
	}
}

func (x Indices) String() string {
	if !x.isList {
		return fmt.Sprintf("%d:%d", x.lo, x.lo+x.n)
	}
	return fmt.Sprint(x.list)
}
