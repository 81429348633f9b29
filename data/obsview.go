package data

import (
	"iter"
)

/*
ObsView presents a container as a sequence of one-observation subsets.
It has no mutable state and can be iterated any number of times.
*/
type ObsView[O, B any] struct {
	c  Container[O, B]
	ax Axis
	n  int
}

// NewObsView builds the view; the axis is resolved once here.
func NewObsView[O, B any](c Container[O, B], ax Axis) (*ObsView[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	return &ObsView[O, B]{c: c, ax: ax, n: n}, nil
}

// LuckyObsView is NewObsView panicking on error.
func LuckyObsView[O, B any](c Container[O, B], ax Axis) *ObsView[O, B] {
	return lucky(NewObsView(c, ax))
}

func (v *ObsView[O, B]) Len() int {
	return v.n
}

func (v *ObsView[O, B]) Axis() Axis {
	return v.ax
}

// At returns the subset holding observation i only.
func (v *ObsView[O, B]) At(i int) (Container[O, B], error) {
	if err := CheckIndex(i, v.n); err != nil {
		return nil, err
	}
	return Subset(v.c, Range(i, i+1), v.ax)
}

// Obs materializes observation i.
func (v *ObsView[O, B]) Obs(i int) (o O, err error) {
	if err = CheckIndex(i, v.n); err != nil {
		return
	}
	return v.c.Obs(i, v.ax)
}

// All iterates over the one-observation subsets, stopping at the first error.
func (v *ObsView[O, B]) All() iter.Seq2[int, Container[O, B]] {
	return func(yield func(int, Container[O, B]) bool) {
		for i := 0; i < v.n; i++ {
			s, err := v.At(i)
			if err != nil || !yield(i, s) {
				return
			}
		}
	}
}

// Subsets iterates over the one-observation subsets.
func (v *ObsView[O, B]) Subsets() iter.Seq[Container[O, B]] {
	return func(yield func(Container[O, B]) bool) {
		for _, s := range v.All() {
			if !yield(s) {
				return
			}
		}
	}
}
