package partition

import (
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/errs"
	"gonum.org/v1/gonum/floats"
)

/*
Span is the half-open index range [Lo,Hi)
*/
type Span struct {
	Lo, Hi int
}

func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Indices returns the span as an index list.
func (s Span) Indices() []int {
	return fu.Iota(s.Lo, s.Hi)
}

/*
CheckFractions fails when a fraction is outside (0,1) or when they sum to 1 or more
*/
func CheckFractions(fractions []float64) error {
	if len(fractions) == 0 {
		return errs.Argumentf("at least one fraction is required")
	}
	for _, p := range fractions {
		if !(p > 0 && p < 1) {
			return errs.Argumentf("fraction %v is not in (0,1)", p)
		}
	}
	if s := floats.Sum(fractions); s >= 1 {
		return errs.Argumentf("fractions sum to %v, must be less than 1", s)
	}
	return nil
}

/*
Split divides [0,n) into len(fractions)+1 contiguous spans in order.

Span i has round(fractions[i]*n) elements clamped to [1, remaining]; the lower
bound applies only while observations remain. The last span takes the rest.
*/
func Split(n int, fractions ...float64) ([]Span, error) {
	if n < 0 {
		return nil, errs.Argumentf("negative number of observations %d", n)
	}
	if err := CheckFractions(fractions); err != nil {
		return nil, err
	}
	r := make([]Span, 0, len(fractions)+1)
	lo := 0
	for _, p := range fractions {
		cnt := 0
		if left := n - lo; left > 0 {
			cnt = fu.Clamp(fu.Round(p*float64(n)), 1, left)
		}
		r = append(r, Span{lo, lo + cnt})
		lo += cnt
	}
	return append(r, Span{lo, n}), nil
}
