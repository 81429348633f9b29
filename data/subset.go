package data

/*
DataSubset is a lazy view of some observations of a base container.

It only keeps the base, the selected indices and the axis; no observation
is touched until Obs or Batch is called. A subset of a DataSubset is again
a DataSubset over the same base with composed indices, so there is never
more than one level of indirection.
*/
type DataSubset[O, B any] struct {
	base Container[O, B]
	idx  Indices
	ax   Axis
}

/*
Subset returns a lazy subset of c selecting idx along the axis.

Containers implementing Subsetter build the subset themselves: a subset of a
subset composes indices, a subset of a linked group is a group of subsets.
Indices are checked eagerly.
*/
func Subset[O, B any](c Container[O, B], idx Indices, ax Axis) (Container[O, B], error) {
	if s, ok := c.(Subsetter[O, B]); ok {
		return s.Subset(idx, ax)
	}
	return newSubset(c, idx, ax)
}

// LuckySubset is Subset panicking on error.
func LuckySubset[O, B any](c Container[O, B], idx Indices, ax Axis) Container[O, B] {
	return lucky(Subset(c, idx, ax))
}

func newSubset[O, B any](c Container[O, B], idx Indices, ax Axis) (*DataSubset[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	if err = idx.Check(n); err != nil {
		return nil, err
	}
	return &DataSubset[O, B]{base: c, idx: idx, ax: ax}, nil
}

// Base returns the container the subset selects from; it is never a DataSubset.
func (s *DataSubset[O, B]) Base() Container[O, B] {
	return s.base
}

func (s *DataSubset[O, B]) Indices() Indices {
	return s.idx
}

func (s *DataSubset[O, B]) Axis() Axis {
	return s.ax
}

func (s *DataSubset[O, B]) DefaultAxis() Axis {
	return s.ax
}

func (s *DataSubset[O, B]) Subset(idx Indices, ax Axis) (Container[O, B], error) {
	if err := sameAxis(s.ax, ax); err != nil {
		return nil, err
	}
	if err := idx.Check(s.idx.Len()); err != nil {
		return nil, err
	}
	return &DataSubset[O, B]{base: s.base, idx: s.idx.Compose(idx), ax: s.ax}, nil
}

func (s *DataSubset[O, B]) NObs(ax Axis) (int, error) {
	if err := sameAxis(s.ax, ax); err != nil {
		return 0, err
	}
	return s.idx.Len(), nil
}

func (s *DataSubset[O, B]) Obs(i int, ax Axis) (o O, err error) {
	if err = s.check(i, ax); err != nil {
		return
	}
	return s.base.Obs(s.idx.At(i), s.ax)
}

func (s *DataSubset[O, B]) Batch(idx []int, ax Axis) (b B, err error) {
	j, err := s.translate(idx, ax)
	if err != nil {
		return
	}
	return s.base.Batch(j, s.ax)
}

func (s *DataSubset[O, B]) BatchInto(dst B, idx []int, ax Axis) error {
	f, ok := batchFiller[B](s.base)
	if !ok {
		return Capability("%T does not support in-place batch extraction", s.base)
	}
	j, err := s.translate(idx, ax)
	if err != nil {
		return err
	}
	return f.BatchInto(dst, j, s.ax)
}

func (s *DataSubset[O, B]) ObsInto(dst O, i int, ax Axis) error {
	f, ok := obsFiller[O](s.base)
	if !ok {
		return Capability("%T does not support in-place observation extraction", s.base)
	}
	if err := s.check(i, ax); err != nil {
		return err
	}
	return f.ObsInto(dst, s.idx.At(i), s.ax)
}

func (s *DataSubset[O, B]) buffersBatch() bool {
	_, ok := batchFiller[B](s.base)
	return ok
}

func (s *DataSubset[O, B]) buffersObs() bool {
	_, ok := obsFiller[O](s.base)
	return ok
}

func (s *DataSubset[O, B]) check(i int, ax Axis) error {
	if err := sameAxis(s.ax, ax); err != nil {
		return err
	}
	return CheckIndex(i, s.idx.Len())
}

func (s *DataSubset[O, B]) translate(idx []int, ax Axis) ([]int, error) {
	if err := sameAxis(s.ax, ax); err != nil {
		return nil, err
	}
	if err := CheckIndices(idx, s.idx.Len()); err != nil {
		return nil, err
	}
	j := make([]int, len(idx))
	for k, i := range idx {
		j[k] = s.idx.At(i)
	}
	return j, nil
}
