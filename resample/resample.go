/*
Package resample balances labeled containers by over- or undersampling
their classes. Only indices are computed; the result is a lazy subset.
*/
package resample

import (
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/errs"
	"go-ml.dev/pkg/mldata/internal/opts"
	"go-ml.dev/pkg/mldata/partition"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
	"slices"
)

// sample picks k of idx without replacement.
func sample(idx []int, k int, rnd *rand.Rand) []int {
	if k <= 0 {
		return nil
	}
	if k >= len(idx) {
		return append([]int(nil), idx...)
	}
	pos := make([]int, k)
	sampleuv.WithoutReplacement(pos, len(idx), rnd)
	r := make([]int, k)
	for i, p := range pos {
		r[i] = idx[p]
	}
	return r
}

func order(idx []int, rnd *rand.Rand, shuffle bool) []int {
	if shuffle {
		rnd.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	} else {
		slices.Sort(idx)
	}
	return idx
}

/*
UndersampleIndices picks, for every label, as many positions as the rarest
label has, uniformly without replacement. The result is ascending unless
shuffle is set.
*/
func UndersampleIndices[L comparable](labels []L, rnd *rand.Rand, shuffle bool) []int {
	lm := partition.NewLabelMap(labels)
	m, _ := lm.MinMax()
	r := make([]int, 0, m*len(lm.Labels))
	for _, l := range lm.Labels {
		r = append(r, sample(lm.Index[l], m, rnd)...)
	}
	return order(r, rnd, shuffle)
}

/*
OversampleIndices repeats the positions of every label until it has
round(fraction*M) of them, M being the count of the most frequent label.
Whole copies are used first, the remainder is sampled without replacement.
Labels already at or above that count keep their positions once, so every
position appears at least once. The result is ascending unless shuffle is set.
*/
func OversampleIndices[L comparable](labels []L, fraction float64, rnd *rand.Rand, shuffle bool) ([]int, error) {
	if !(fraction > 0) {
		return nil, errs.Argumentf("oversampling fraction %v must be positive", fraction)
	}
	lm := partition.NewLabelMap(labels)
	_, hi := lm.MinMax()
	target := fu.Round(fraction * float64(hi))
	r := make([]int, 0, fu.Maxi(target, 1)*len(lm.Labels))
	for _, l := range lm.Labels {
		idx := lm.Index[l]
		c := len(idx)
		if c >= target {
			r = append(r, idx...)
			continue
		}
		for k := 0; k < target/c; k++ {
			r = append(r, idx...)
		}
		r = append(r, sample(idx, target%c, rnd)...)
	}
	return order(r, rnd, shuffle), nil
}

func labelsOf[O, B any, L comparable](c data.Container[O, B], lb data.Labeler[L], ax data.Axis) ([]L, error) {
	labels, err := data.Targets(c, lb, ax)
	if err != nil {
		return nil, err
	}
	n, err := data.NObs(c, ax)
	if err != nil {
		return nil, err
	}
	if len(labels) != n {
		return nil, data.Mismatch("%d labels for %d observations", len(labels), n)
	}
	return labels, nil
}

/*
Undersample returns a subset of c in which every label occurs as often as the
rarest one. Options: Seed or Source, Shuffled (on unless Shuffled(false)).
*/
func Undersample[O, B any, L comparable](c data.Container[O, B], lb data.Labeler[L], ax data.Axis, opt ...data.Option) (data.Container[O, B], error) {
	labels, err := labelsOf(c, lb, ax)
	if err != nil {
		return nil, err
	}
	o := opts.Of(opt...)
	return data.Subset(c, data.Of(UndersampleIndices(labels, o.Rand(), o.ShuffleOr(true))), ax)
}

/*
Oversample returns a subset of c in which every label occurs
round(fraction*M) times, M being the count of the most frequent label.
Options: Seed or Source, Shuffled (on unless Shuffled(false)).
*/
func Oversample[O, B any, L comparable](c data.Container[O, B], lb data.Labeler[L], ax data.Axis, fraction float64, opt ...data.Option) (data.Container[O, B], error) {
	labels, err := labelsOf(c, lb, ax)
	if err != nil {
		return nil, err
	}
	o := opts.Of(opt...)
	idx, err := OversampleIndices(labels, fraction, o.Rand(), o.ShuffleOr(true))
	if err != nil {
		return nil, err
	}
	return data.Subset(c, data.Of(idx), ax)
}
