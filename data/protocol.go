package data

import (
	"go-ml.dev/pkg/mldata/internal/errs"
)

/*
Sized reports how many observations a container holds along the axis
*/
type Sized interface {
	NObs(ax Axis) (int, error)
}

/*
Indexable returns a single observation by index.

For multi-axis containers the observation has the container shape
with the observation axis removed.
*/
type Indexable[O any] interface {
	Sized
	Obs(i int, ax Axis) (O, error)
}

/*
Container is the minimal capability set every data container provides.

Batch returns the selected observations in one value; for multi-axis
containers the observation axis is kept and has length len(idx).
*/
type Container[O, B any] interface {
	Indexable[O]
	Batch(idx []int, ax Axis) (B, error)
}

// BufferIndexable fills a caller-supplied batch in place.
type BufferIndexable[B any] interface {
	BatchInto(dst B, idx []int, ax Axis) error
}

// ObsBufferIndexable fills a caller-supplied observation in place.
type ObsBufferIndexable[O any] interface {
	ObsInto(dst O, i int, ax Axis) error
}

/*
TargetExtractable returns the targets of all observations without materializing them.
Results must be equal to applying the target function to every observation.
*/
type TargetExtractable[L comparable] interface {
	Targets(ax Axis) ([]L, error)
}

/*
Subsetter is implemented by containers that build their own subsets,
like subsets themselves (composing indices) and linked groups (element-wise).
*/
type Subsetter[O, B any] interface {
	Subset(idx Indices, ax Axis) (Container[O, B], error)
}

// bufferSupport is implemented by wrappers whose buffer methods depend on the wrapped containers.
type bufferSupport interface {
	buffersBatch() bool
	buffersObs() bool
}

func batchFiller[B any](c interface{}) (BufferIndexable[B], bool) {
	f, ok := c.(BufferIndexable[B])
	if !ok {
		return nil, false
	}
	if s, ok := c.(bufferSupport); ok && !s.buffersBatch() {
		return nil, false
	}
	return f, true
}

func obsFiller[O any](c interface{}) (ObsBufferIndexable[O], bool) {
	f, ok := c.(ObsBufferIndexable[O])
	if !ok {
		return nil, false
	}
	if s, ok := c.(bufferSupport); ok && !s.buffersObs() {
		return nil, false
	}
	return f, true
}

// NObs returns the observation count of c along the resolved axis.
func NObs(c Sized, ax Axis) (int, error) {
	return c.NObs(Resolve(c, ax))
}

// GetObs materializes observation i of c.
func GetObs[O any](c Indexable[O], i int, ax Axis) (o O, err error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return
	}
	if err = errs.Index(i, n); err != nil {
		return
	}
	return c.Obs(i, ax)
}

// GetBatch materializes the observations idx of c.
func GetBatch[O, B any](c Container[O, B], idx []int, ax Axis) (b B, err error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return
	}
	if err = CheckIndices(idx, n); err != nil {
		return
	}
	return c.Batch(idx, ax)
}

// GetAll materializes every observation of c as one batch.
func GetAll[O, B any](c Container[O, B], ax Axis) (b B, err error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return
	}
	return c.Batch(Range(0, n).Slice(), ax)
}

/*
Slice is a one-dimensional container over a Go slice.

It has no dimensions to choose from, so it accepts Auto, First, Last,
Undefined and Constant(0).
*/
type Slice[T any] []T

func (s Slice[T]) check(ax Axis) error {
	if ax.kind == constantAxis && ax.k != 0 {
		return errs.Argumentf("axis %v is out of range for a slice", ax)
	}
	return nil
}

func (s Slice[T]) NObs(ax Axis) (int, error) {
	if err := s.check(ax); err != nil {
		return 0, err
	}
	return len(s), nil
}

func (s Slice[T]) Obs(i int, ax Axis) (o T, err error) {
	if err = s.check(ax); err != nil {
		return
	}
	if err = errs.Index(i, len(s)); err != nil {
		return
	}
	return s[i], nil
}

func (s Slice[T]) Batch(idx []int, ax Axis) ([]T, error) {
	r := make([]T, len(idx))
	if err := s.BatchInto(r, idx, ax); err != nil {
		return nil, err
	}
	return r, nil
}

func (s Slice[T]) BatchInto(dst []T, idx []int, ax Axis) error {
	if err := s.check(ax); err != nil {
		return err
	}
	if len(dst) != len(idx) {
		return errs.Mismatchf("buffer holds %d observations, %d requested", len(dst), len(idx))
	}
	for j, i := range idx {
		if err := errs.Index(i, len(s)); err != nil {
			return err
		}
		dst[j] = s[i]
	}
	return nil
}
