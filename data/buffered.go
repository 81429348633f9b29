package data

import (
	"iter"
)

/*
Buffered turns a sequence of subsets into a sequence of materialized values
reusing one buffer.

The first element is materialized and kept as the buffer. When that element
supports in-place extraction, every later element is extracted into the same
buffer and the buffer is yielded again, so the value returned by Value is
overwritten by the next call to Next. Callers must copy a value they want to
keep. When in-place extraction is not supported every element is freshly
materialized and the buffer is unused.

A Buffered is owned by one consumer and is not safe for concurrent use.
*/
type Buffered[T any] struct {
	pull    func() (T, bool, error)
	stop    func()
	value   T
	err     error
	started bool
	reused  bool
	done    bool
}

func newBuffered[C, T any](seq iter.Seq[C], size func(C) (int, error), fetch func(C) (T, error), can func(C) bool, fill func(C, T) error) *Buffered[T] {
	b := &Buffered[T]{}
	next, stop := iter.Pull(seq)
	b.stop = stop
	var buf T
	bufn := 0
	b.pull = func() (v T, ok bool, err error) {
		c, ok := next()
		if !ok {
			return
		}
		if b.reused {
			n, err := size(c)
			if err != nil {
				return v, true, err
			}
			if n == bufn {
				if err = fill(c, buf); err != nil {
					return v, true, err
				}
				return buf, true, nil
			}
		}
		if v, err = fetch(c); err != nil {
			return v, true, err
		}
		if !b.started {
			b.started = true
			if bufn, err = size(c); err != nil {
				return v, true, err
			}
			buf = v
			b.reused = can(c)
		}
		return v, true, nil
	}
	return b
}

/*
NewBuffered materializes every subset of seq as a batch, reusing the batch
of the first subset whenever the next subset has the same length.
Callers leaving a Next loop early must call Close to release seq.
*/
func NewBuffered[O, B any](seq iter.Seq[Container[O, B]]) *Buffered[B] {
	return newBuffered(seq,
		func(c Container[O, B]) (int, error) {
			return c.NObs(Auto)
		},
		func(c Container[O, B]) (B, error) {
			return GetAll(c, Auto)
		},
		func(c Container[O, B]) bool {
			_, ok := batchFiller[B](c)
			return ok
		},
		func(c Container[O, B], buf B) error {
			n, err := c.NObs(Auto)
			if err != nil {
				return err
			}
			f, _ := batchFiller[B](c)
			if f == nil {
				return Capability("%T does not support in-place batch extraction", c)
			}
			return f.BatchInto(buf, Range(0, n).Slice(), Auto)
		})
}

/*
EachBatch iterates over the batches of c (see NewBatchView) with a reused buffer.
Callers leaving a Next loop early must call Close; All closes by itself.
*/
func EachBatch[O, B any](c Container[O, B], ax Axis, opt ...Option) (*Buffered[B], error) {
	v, err := NewBatchView(c, ax, opt...)
	if err != nil {
		return nil, err
	}
	return NewBuffered(v.Subsets()), nil
}

/*
EachObs iterates over the observations of c with a reused buffer.
Callers leaving a Next loop early must call Close; All closes by itself.
*/
func EachObs[O, B any](c Container[O, B], ax Axis) (*Buffered[O], error) {
	v, err := NewObsView(c, ax)
	if err != nil {
		return nil, err
	}
	return newBuffered(v.Subsets(),
		func(Container[O, B]) (int, error) {
			return 1, nil
		},
		func(c Container[O, B]) (O, error) {
			return c.Obs(0, Auto)
		},
		func(c Container[O, B]) bool {
			_, ok := obsFiller[O](c)
			return ok
		},
		func(c Container[O, B], buf O) error {
			f, _ := obsFiller[O](c)
			if f == nil {
				return Capability("%T does not support in-place observation extraction", c)
			}
			return f.ObsInto(buf, 0, Auto)
		}), nil
}

// Next advances to the next value, it returns false at the end or on error.
func (b *Buffered[T]) Next() bool {
	if b.done {
		return false
	}
	v, ok, err := b.pull()
	if !ok || err != nil {
		b.err = err
		b.Close()
		return false
	}
	b.value = v
	return true
}

// Value returns the current value; it may be overwritten by the next call to Next.
func (b *Buffered[T]) Value() T {
	return b.value
}

func (b *Buffered[T]) Err() error {
	return b.err
}

// Reused reports whether values are extracted in place into one buffer.
func (b *Buffered[T]) Reused() bool {
	return b.reused
}

// Close releases the underlying sequence; it is safe to call more than once.
func (b *Buffered[T]) Close() {
	if !b.done {
		b.done = true
		b.stop()
	}
}

// All yields the remaining values; check Err afterwards.
func (b *Buffered[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer b.Close()
		for b.Next() {
			if !yield(b.value) {
				return
			}
		}
	}
}
