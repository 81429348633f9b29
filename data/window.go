package data

import (
	"go-ml.dev/pkg/mldata/internal/opts"
	"iter"
)

/*
SlidingWindow presents a container as a sequence of windows of size adjacent
observations. Window i starts at i*stride, so windows overlap when stride < size.
*/
type SlidingWindow[O, B any] struct {
	c      Container[O, B]
	ax     Axis
	size   int
	stride int
	count  int
}

// NewSlidingWindow builds the view; the Stride option defaults to size.
func NewSlidingWindow[O, B any](c Container[O, B], ax Axis, size int, opt ...Option) (*SlidingWindow[O, B], error) {
	o := opts.Of(opt...)
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	stride := o.Stride
	if stride == 0 {
		stride = size
	}
	if size < 1 || size > n {
		return nil, Argument("window size %d is not in [1,%d]", size, n)
	}
	if stride < 1 {
		return nil, Argument("window stride %d must be positive", stride)
	}
	return &SlidingWindow[O, B]{c: c, ax: ax, size: size, stride: stride, count: (n-size)/stride + 1}, nil
}

func (w *SlidingWindow[O, B]) Len() int {
	return w.count
}

// Start returns the offset of the first observation of window i.
func (w *SlidingWindow[O, B]) Start(i int) int {
	return i * w.stride
}

// At returns window i as a lazy subset.
func (w *SlidingWindow[O, B]) At(i int) (Container[O, B], error) {
	if err := CheckIndex(i, w.count); err != nil {
		return nil, err
	}
	s := w.Start(i)
	return Subset(w.c, Range(s, s+w.size), w.ax)
}

// All iterates over the windows, stopping at the first error.
func (w *SlidingWindow[O, B]) All() iter.Seq2[int, Container[O, B]] {
	return func(yield func(int, Container[O, B]) bool) {
		for i := 0; i < w.count; i++ {
			s, err := w.At(i)
			if err != nil || !yield(i, s) {
				return
			}
		}
	}
}

// Subsets iterates over the windows.
func (w *SlidingWindow[O, B]) Subsets() iter.Seq[Container[O, B]] {
	return func(yield func(Container[O, B]) bool) {
		for _, s := range w.All() {
			if !yield(s) {
				return
			}
		}
	}
}

/*
TargetedWindows pairs every sliding window with a target subset.

The target indices of a window are computed by a function of the window
start offset, e.g. the observation right after the window. Windows whose
targets fall outside the container are trimmed from the front and the back
of the sequence; a window in the middle with out of range targets is an error.
*/
type TargetedWindows[O, B any] struct {
	w      *SlidingWindow[O, B]
	target func(start int) Indices
	first  int
	count  int
}

// NewTargetedWindows builds the view; target maps a window start offset to the target indices.
func NewTargetedWindows[O, B any](c Container[O, B], ax Axis, size int, target func(start int) Indices, opt ...Option) (*TargetedWindows[O, B], error) {
	w, err := NewSlidingWindow(c, ax, size, opt...)
	if err != nil {
		return nil, err
	}
	n, err := c.NObs(w.ax)
	if err != nil {
		return nil, err
	}
	valid := func(i int) bool {
		return target(w.Start(i)).Check(n) == nil
	}
	first, last := 0, w.count-1
	for first <= last && !valid(first) {
		first++
	}
	for last >= first && !valid(last) {
		last--
	}
	for i := first + 1; i < last; i++ {
		if err := target(w.Start(i)).Check(n); err != nil {
			return nil, err
		}
	}
	return &TargetedWindows[O, B]{w: w, target: target, first: first, count: last - first + 1}, nil
}

func (t *TargetedWindows[O, B]) Len() int {
	return t.count
}

// At returns window i and its targets.
func (t *TargetedWindows[O, B]) At(i int) (window, target Container[O, B], err error) {
	if err = CheckIndex(i, t.count); err != nil {
		return
	}
	if window, err = t.w.At(t.first + i); err != nil {
		return
	}
	target, err = Subset(t.w.c, t.target(t.w.Start(t.first+i)), t.w.ax)
	return
}

// All iterates over (window, target) pairs, stopping at the first error.
func (t *TargetedWindows[O, B]) All() iter.Seq2[Container[O, B], Container[O, B]] {
	return func(yield func(Container[O, B], Container[O, B]) bool) {
		for i := 0; i < t.count; i++ {
			w, x, err := t.At(i)
			if err != nil || !yield(w, x) {
				return
			}
		}
	}
}
