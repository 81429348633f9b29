package partition

import (
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/errs"
	"golang.org/x/exp/rand"
	"slices"
)

/*
Stratified splits positions of labels into len(fractions)+1 buckets keeping
the label proportions of the whole in every bucket.

Positions are permuted with rnd first, so every bucket is a sample without
replacement. Then every label is split on its own with Split, so each bucket
holds the same share of each label up to rounding; a label with fewer
observations than buckets fills buckets front to back.

With shuffle every bucket is shuffled afterwards. Without it buckets are
grouped by label in order of first appearance, ascending within a label.
*/
func Stratified[L comparable](labels []L, fractions []float64, rnd *rand.Rand, shuffle bool) ([][]int, error) {
	if err := CheckFractions(fractions); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, errs.Argumentf("stratified sampling needs a source of randomness")
	}
	order := fu.Iota(0, len(labels))
	rnd.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	lm := NewLabelMapOrder(labels, order)
	buckets := make([][]int, len(fractions)+1)
	for i := range buckets {
		buckets[i] = []int{}
	}
	for _, l := range NewLabelMap(labels).Labels {
		idx := lm.Index[l]
		spans, err := Split(len(idx), fractions...)
		if err != nil {
			return nil, err
		}
		for b, sp := range spans {
			part := slices.Clone(idx[sp.Lo:sp.Hi])
			if !shuffle {
				slices.Sort(part)
			}
			buckets[b] = append(buckets[b], part...)
		}
	}
	if shuffle {
		for _, b := range buckets {
			rnd.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		}
	}
	return buckets, nil
}
