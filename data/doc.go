/*
Package data indexes, subsets and partitions arbitrary data containers
without copying their observations.

Any type is a data container once it implements Container: it reports the
number of observations along an Axis and returns a single observation or a
batch of them by index. Optional interfaces add in-place extraction
(BufferIndexable, ObsBufferIndexable) and bulk target access
(TargetExtractable).

Everything built on top of a container is lazy and index only: DataSubset
accumulates indices (a subset of a subset is a subset of the original
container), ObsView and BatchView present a container as a sequence of
subsets, FoldsView binds a fold assignment. Data is materialized only by Obs,
Batch, or by the Buffered iterator that reuses one buffer between steps.

	x := dense.NewMatrix(features) // observations are columns
	y := data.Slice[string](labels)
	d := data.LuckyLink(x, y)
	train, test := data.LuckySplitObs(d, data.Auto, 0.7)
	folds, _ := data.KFolds(train, 5, data.Auto)
	for tr, va := range folds.All() {
		...
	}

Indices are zero based. Errors wrap one of ErrCapability, ErrBounds,
ErrDimensionMismatch and ErrArgument.
*/
package data
