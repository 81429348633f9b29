package data

import (
	"fmt"
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/opts"
	"iter"
)

const (
	minDefaultBatch = 2
	maxDefaultBatch = 100
)

/*
BatchView presents a container as a sequence of equally sized batch subsets.

Its length is floor(n/size); observations left over at the end are not part
of any batch. That is reported once, when the view is built.
*/
type BatchView[O, B any] struct {
	c     Container[O, B]
	ax    Axis
	size  int
	count int
}

/*
BatchSettings resolves batch size and count for n observations.

With neither given the size defaults to n/5 clamped to [2,100].
With one given the other one is derived. Both given must fit into n.
unused is the number of observations not covered by any batch.
*/
func BatchSettings(n, size, count int) (bsize, bcount, unused int, err error) {
	if size < 0 || count < 0 {
		return 0, 0, 0, Argument("batch size %d and count %d must be positive", size, count)
	}
	switch {
	case size == 0 && count == 0:
		size = fu.Clamp(n/5, minDefaultBatch, maxDefaultBatch)
		if size > n {
			return 0, 0, 0, Argument("can't make default batches of %d observations out of %d", size, n)
		}
		count = n / size
	case count == 0:
		if size > n {
			return 0, 0, 0, Argument("batch size %d is greater than the number of observations %d", size, n)
		}
		count = n / size
	case size == 0:
		if count > n {
			return 0, 0, 0, Argument("batch count %d is greater than the number of observations %d", count, n)
		}
		size = n / count
	default:
		if size*count > n {
			return 0, 0, 0, Argument("%d batches of size %d need more than %d observations", count, size, n)
		}
	}
	return size, count, n - size*count, nil
}

// NewBatchView builds the view, configured with BatchSize, BatchCount and Verbose options.
func NewBatchView[O, B any](c Container[O, B], ax Axis, opt ...Option) (*BatchView[O, B], error) {
	o := opts.Of(opt...)
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	size, count, unused, err := BatchSettings(n, o.Size, o.Count)
	if err != nil {
		return nil, err
	}
	if unused > 0 {
		notice(o, fmt.Sprintf("the specified batch size %d and count %d will result in %d unused observations", size, count, unused))
	}
	return &BatchView[O, B]{c: c, ax: ax, size: size, count: count}, nil
}

// LuckyBatchView is NewBatchView panicking on error.
func LuckyBatchView[O, B any](c Container[O, B], ax Axis, opt ...Option) *BatchView[O, B] {
	return lucky(NewBatchView(c, ax, opt...))
}

func (v *BatchView[O, B]) Len() int {
	return v.count
}

func (v *BatchView[O, B]) BatchSize() int {
	return v.size
}

func (v *BatchView[O, B]) Axis() Axis {
	return v.ax
}

// Range returns the observation range covered by batch i.
func (v *BatchView[O, B]) Range(i int) Indices {
	return Range(i*v.size, (i+1)*v.size)
}

// At returns batch i as a lazy subset.
func (v *BatchView[O, B]) At(i int) (Container[O, B], error) {
	if err := CheckIndex(i, v.count); err != nil {
		return nil, err
	}
	return Subset(v.c, v.Range(i), v.ax)
}

// Batch materializes batch i.
func (v *BatchView[O, B]) Batch(i int) (b B, err error) {
	if err = CheckIndex(i, v.count); err != nil {
		return
	}
	return v.c.Batch(v.Range(i).Slice(), v.ax)
}

// All iterates over the batch subsets, stopping at the first error.
func (v *BatchView[O, B]) All() iter.Seq2[int, Container[O, B]] {
	return func(yield func(int, Container[O, B]) bool) {
		for i := 0; i < v.count; i++ {
			s, err := v.At(i)
			if err != nil || !yield(i, s) {
				return
			}
		}
	}
}

// Subsets iterates over the batch subsets.
func (v *BatchView[O, B]) Subsets() iter.Seq[Container[O, B]] {
	return func(yield func(Container[O, B]) bool) {
		for _, s := range v.All() {
			if !yield(s) {
				return
			}
		}
	}
}
