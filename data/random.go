package data

import (
	"go-ml.dev/pkg/mldata/internal/opts"
	"iter"
)

/*
RandomObs yields count one-observation subsets of c picked uniformly with
replacement; count <= 0 yields forever. Randomness comes from the Seed or
Source option.
*/
func RandomObs[O, B any](c Container[O, B], ax Axis, count int, opt ...Option) (iter.Seq[Container[O, B]], error) {
	return RandomBatches(c, ax, 1, count, opt...)
}

/*
RandomBatches yields count subsets of size observations each, every
observation picked uniformly with replacement; count <= 0 yields forever.
*/
func RandomBatches[O, B any](c Container[O, B], ax Axis, size, count int, opt ...Option) (iter.Seq[Container[O, B]], error) {
	ax = Resolve(c, ax)
	n, err := c.NObs(ax)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, Argument("can't sample from an empty container")
	}
	if size < 1 {
		return nil, Argument("batch size %d must be positive", size)
	}
	o := opts.Of(opt...)
	return func(yield func(Container[O, B]) bool) {
		rnd := o.Rand()
		for k := 0; count <= 0 || k < count; k++ {
			var idx Indices
			if size == 1 {
				i := rnd.Intn(n)
				idx = Range(i, i+1)
			} else {
				l := make([]int, size)
				for j := range l {
					l[j] = rnd.Intn(n)
				}
				idx = Of(l)
			}
			s, err := Subset(c, idx, ax)
			if err != nil || !yield(s) {
				return
			}
		}
	}, nil
}
