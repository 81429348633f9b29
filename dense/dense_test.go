package dense_test

import (
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/dense"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"gotest.tools/assert"
	"testing"
)

func matrix23() *dense.Matrix {
	return dense.NewMatrix(mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	}))
}

func Test_MatrixShapes(t *testing.T) {
	x := matrix23()

	n, err := data.NObs(x, data.Auto)
	assert.NilError(t, err)
	assert.Equal(t, n, 3)
	col, err := data.GetObs(x, 1, data.Auto)
	assert.NilError(t, err)
	assert.DeepEqual(t, col, []float64{2, 5})
	b, err := data.GetBatch(x, []int{2, 0}, data.Auto)
	assert.NilError(t, err)
	r, c := b.Dims()
	assert.Equal(t, r, 2)
	assert.Equal(t, c, 2)
	assert.Equal(t, b.At(1, 0), 6.0)

	n, err = data.NObs(x, data.First)
	assert.NilError(t, err)
	assert.Equal(t, n, 2)
	row, err := data.GetObs(x, 1, data.Constant(0))
	assert.NilError(t, err)
	assert.DeepEqual(t, row, []float64{4, 5, 6})
	b, err = data.GetBatch(x, []int{1}, data.First)
	assert.NilError(t, err)
	r, c = b.Dims()
	assert.Equal(t, r, 1)
	assert.Equal(t, c, 3)

	_, err = data.GetObs(x, 3, data.Last)
	assert.Assert(t, xerrors.Is(err, data.ErrBounds))
	_, err = data.NObs(x, data.Constant(2))
	assert.Assert(t, xerrors.Is(err, data.ErrArgument))
	_, err = data.NObs(x, data.Undefined)
	assert.Assert(t, xerrors.Is(err, data.ErrCapability))
}

func Test_MatrixBatchInto(t *testing.T) {
	x := matrix23()
	dst := mat.NewDense(2, 2, nil)
	assert.NilError(t, x.BatchInto(dst, []int{2, 1}, data.Auto))
	assert.DeepEqual(t, dst.RawMatrix().Data, []float64{3, 2, 6, 5})
	err := x.BatchInto(dst, []int{0}, data.Auto)
	assert.Assert(t, xerrors.Is(err, data.ErrDimensionMismatch))
	err = x.ObsInto(make([]float64, 2), 0, data.First)
	assert.Assert(t, xerrors.Is(err, data.ErrDimensionMismatch))
}

func Test_MatrixSubset(t *testing.T) {
	s := data.LuckySubset(matrix23(), data.Range(1, 2), data.First)
	n, err := s.NObs(data.Auto)
	assert.NilError(t, err)
	assert.Equal(t, n, 1)
	_, err = s.NObs(data.Last)
	assert.Assert(t, xerrors.Is(err, data.ErrArgument))
}

func Test_VectorTargets(t *testing.T) {
	v := dense.VectorOf(0, 1, 1, 0)
	s := data.LuckySubset(v, data.Of([]int{3, 2, 2}), data.Auto)
	y, err := data.Targets(s, data.Identity[float64](), data.Auto)
	assert.NilError(t, err)
	assert.DeepEqual(t, y, []float64{0, 1, 1})
	b, err := data.GetAll(s, data.Auto)
	assert.NilError(t, err)
	assert.Equal(t, b.Len(), 3)
	_, err = v.NObs(data.Constant(1))
	assert.Assert(t, xerrors.Is(err, data.ErrArgument))
}

func Test_ArrayShapes(t *testing.T) {
	values := make([]float64, 24)
	for i := range values {
		values[i] = float64(i)
	}
	x, err := dense.NewArray(values, 2, 3, 4)
	assert.NilError(t, err)

	for d, want := range []int{2, 3, 4} {
		n, err := data.NObs(x, data.Constant(d))
		assert.NilError(t, err)
		assert.Equal(t, n, want)
	}

	o, err := data.GetObs(x, 1, data.Constant(1))
	assert.NilError(t, err)
	assert.DeepEqual(t, o.Shape(), []int{2, 4})
	assert.Equal(t, o.At(1, 2), x.At(1, 1, 2))

	b, err := data.GetBatch(x, []int{3, 0}, data.Auto)
	assert.NilError(t, err)
	assert.DeepEqual(t, b.Shape(), []int{2, 3, 2})
	assert.Equal(t, b.At(1, 2, 0), x.At(1, 2, 3))
	assert.Equal(t, b.At(1, 2, 1), x.At(1, 2, 0))

	b, err = data.GetBatch(x, []int{1}, data.First)
	assert.NilError(t, err)
	assert.DeepEqual(t, b.Shape(), []int{1, 3, 4})
	assert.DeepEqual(t, b.Data(), values[12:])

	err = x.BatchInto(dense.Zeros(2, 3, 3), []int{0, 1}, data.Last)
	assert.Assert(t, xerrors.Is(err, data.ErrDimensionMismatch))
	_, err = dense.NewArray(values, 5, 5)
	assert.Assert(t, xerrors.Is(err, data.ErrDimensionMismatch))
}

func Test_ArrayEachObs(t *testing.T) {
	x, err := dense.NewArray([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	assert.NilError(t, err)
	it, err := data.EachObs(x, data.First)
	assert.NilError(t, err)
	sums := []float64{}
	for o := range it.All() {
		sums = append(sums, o.At(0)+o.At(1))
	}
	assert.NilError(t, it.Err())
	assert.Assert(t, it.Reused())
	assert.DeepEqual(t, sums, []float64{3, 7, 11})
}
