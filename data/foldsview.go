package data

import (
	"iter"
)

/*
FoldsView binds a fold assignment to a container.

Fold i is the pair of lazy subsets selecting train[i] and val[i].
The assignment is checked against the container when the view is built:
validation sets are disjoint and cover all observations, and every train set
is exactly the complement of its validation set.
*/
type FoldsView[O, B any] struct {
	c     Container[O, B]
	ax    Axis
	train []Indices
	val   []Indices
}

// NewFoldsView validates the assignment and builds the view.
func NewFoldsView[O, B any](c Container[O, B], train, val []Indices, ax Axis) (*FoldsView[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	if err = CheckFolds(n, train, val); err != nil {
		return nil, err
	}
	return &FoldsView[O, B]{c: c, ax: ax, train: train, val: val}, nil
}

// LuckyFoldsView is NewFoldsView panicking on error.
func LuckyFoldsView[O, B any](c Container[O, B], train, val []Indices, ax Axis) *FoldsView[O, B] {
	return lucky(NewFoldsView(c, train, val, ax))
}

/*
CheckFolds verifies a fold assignment over n observations
*/
func CheckFolds(n int, train, val []Indices) error {
	if len(train) != len(val) {
		return Mismatch("%d train index sets but %d validation index sets", len(train), len(val))
	}
	if len(val) == 0 {
		return Argument("fold assignment is empty")
	}
	seen := make([]int, n)
	for f := range val {
		if err := train[f].Check(n); err != nil {
			return err
		}
		if err := val[f].Check(n); err != nil {
			return err
		}
		if train[f].Len()+val[f].Len() != n {
			return Mismatch("fold %d has %d train and %d validation indices for %d observations", f, train[f].Len(), val[f].Len(), n)
		}
		inval := make([]bool, n)
		for k := 0; k < val[f].Len(); k++ {
			i := val[f].At(k)
			if seen[i] > 0 {
				return Argument("observation %d is in more than one validation set", i)
			}
			seen[i]++
			inval[i] = true
		}
		intrain := make([]bool, n)
		for k := 0; k < train[f].Len(); k++ {
			i := train[f].At(k)
			if inval[i] {
				return Argument("observation %d is both in train and validation set of fold %d", i, f)
			}
			if intrain[i] {
				return Argument("observation %d is repeated in train set of fold %d", i, f)
			}
			intrain[i] = true
		}
	}
	for i, k := range seen {
		if k == 0 {
			return Argument("observation %d is not in any validation set", i)
		}
	}
	return nil
}

func (v *FoldsView[O, B]) Len() int {
	return len(v.val)
}

func (v *FoldsView[O, B]) Axis() Axis {
	return v.ax
}

// Indices returns the train and validation indices of fold i.
func (v *FoldsView[O, B]) Indices(i int) (train, val Indices) {
	return v.train[i], v.val[i]
}

// At returns the train and validation subsets of fold i.
func (v *FoldsView[O, B]) At(i int) (train, val Container[O, B], err error) {
	if err = CheckIndex(i, len(v.val)); err != nil {
		return
	}
	if train, err = Subset(v.c, v.train[i], v.ax); err != nil {
		return
	}
	val, err = Subset(v.c, v.val[i], v.ax)
	return
}

// All iterates over (train, validation) pairs, stopping at the first error.
func (v *FoldsView[O, B]) All() iter.Seq2[Container[O, B], Container[O, B]] {
	return func(yield func(Container[O, B], Container[O, B]) bool) {
		for i := range v.val {
			tr, va, err := v.At(i)
			if err != nil || !yield(tr, va) {
				return
			}
		}
	}
}
