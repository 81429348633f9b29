package data

import (
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/opts"
	"go-ml.dev/pkg/mldata/partition"
)

func spanIndices(s partition.Span) Indices {
	return Range(s.Lo, s.Hi)
}

/*
SplitObs splits c into len(fractions)+1 contiguous, order preserving subsets.
SplitObs(c, ax, 0.7) gives the first 70% and the remaining 30%.
*/
func SplitObs[O, B any](c Container[O, B], ax Axis, fractions ...float64) ([]Container[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	spans, err := partition.Split(n, fractions...)
	if err != nil {
		return nil, err
	}
	r := make([]Container[O, B], len(spans))
	for i, s := range spans {
		if r[i], err = Subset(c, spanIndices(s), ax); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func foldsOf(train [][]int, val []partition.Span) ([]Indices, []Indices) {
	tr := make([]Indices, len(train))
	va := make([]Indices, len(val))
	for i := range val {
		tr[i] = Of(train[i])
		va[i] = spanIndices(val[i])
	}
	return tr, va
}

// KFolds repartitions c into k folds of contiguous validation sets.
func KFolds[O, B any](c Container[O, B], k int, ax Axis) (*FoldsView[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	train, val, err := partition.KFolds(n, k)
	if err != nil {
		return nil, err
	}
	tr, va := foldsOf(train, val)
	return &FoldsView[O, B]{c: c, ax: ax, train: tr, val: va}, nil
}

// LeaveOut repartitions c into folds whose validation sets hold about size observations.
func LeaveOut[O, B any](c Container[O, B], size int, ax Axis) (*FoldsView[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	train, val, err := partition.LeaveOut(n, size)
	if err != nil {
		return nil, err
	}
	tr, va := foldsOf(train, val)
	return &FoldsView[O, B]{c: c, ax: ax, train: tr, val: va}, nil
}

// ShuffleObs returns a subset of c holding all observations in random order.
func ShuffleObs[O, B any](c Container[O, B], ax Axis, opt ...Option) (Container[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	return Subset(c, Of(opts.Of(opt...).Rand().Perm(n)), ax)
}

/*
StratifiedObs splits c like SplitObs while keeping the label proportions of
the whole in every subset. Labels come from lb. Observations are always
sampled in random order (see the Seed and Source options); every subset is
shuffled unless Shuffled(false) is given, in which case it is grouped by label.
*/
func StratifiedObs[O, B any, L comparable](c Container[O, B], lb Labeler[L], ax Axis, fractions []float64, opt ...Option) ([]Container[O, B], error) {
	o := opts.Of(opt...)
	labels, err := lb.Labels(c, ax)
	if err != nil {
		return nil, err
	}
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	if len(labels) != n {
		return nil, Mismatch("%d labels for %d observations", len(labels), n)
	}
	buckets, err := partition.Stratified(labels, fractions, o.Rand(), o.ShuffleOr(true))
	if err != nil {
		return nil, err
	}
	r := make([]Container[O, B], len(buckets))
	for i, b := range buckets {
		if r[i], err = Subset(c, Of(b), ax); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Tail returns the last k observations of c.
func Tail[O, B any](c Container[O, B], k int, ax Axis) (Container[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	return Subset(c, Range(n-fu.Clamp(k, 0, n), n), ax)
}

// Head returns the first k observations of c.
func Head[O, B any](c Container[O, B], k int, ax Axis) (Container[O, B], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	return Subset(c, Range(0, fu.Clamp(k, 0, n)), ax)
}

// LuckySplitObs is SplitObs into two parts panicking on error.
func LuckySplitObs[O, B any](c Container[O, B], ax Axis, fraction float64) (Container[O, B], Container[O, B]) {
	r := lucky(SplitObs(c, ax, fraction))
	return r[0], r[1]
}
