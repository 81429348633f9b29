package data_test

import (
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/dense"
	"gonum.org/v1/gonum/mat"
	"gotest.tools/assert"
	"testing"
)

func rows6() *dense.Matrix {
	return dense.NewMatrix(mat.NewDense(6, 2, []float64{
		0, 0,
		1, 1,
		2, 2,
		3, 3,
		4, 4,
		5, 5,
	}))
}

func Test_EachBatchReusesBuffer(t *testing.T) {
	it, err := data.EachBatch(rows6(), data.First, data.BatchSize(2))
	assert.NilError(t, err)
	var first *mat.Dense
	kept := []*mat.Dense{}
	copies := []*mat.Dense{}
	for it.Next() {
		b := it.Value()
		if first == nil {
			first = b
		}
		assert.Assert(t, b == first)
		r, c := b.Dims()
		assert.Equal(t, r, 2)
		assert.Equal(t, c, 2)
		kept = append(kept, b)
		copies = append(copies, mat.DenseCopyOf(b))
	}
	assert.NilError(t, it.Err())
	assert.Assert(t, it.Reused())
	assert.Equal(t, len(kept), 3)
	for k := range kept {
		// every kept value is the last batch, the copies are distinct
		assert.Equal(t, kept[k].At(0, 0), 4.0)
		assert.Equal(t, copies[k].At(0, 0), float64(2*k))
	}
}

func Test_EachObsReusesBuffer(t *testing.T) {
	it, err := data.EachObs(rows6(), data.First)
	assert.NilError(t, err)
	var p *float64
	values := []float64{}
	for o := range it.All() {
		if p == nil {
			p = &o[0]
		}
		assert.Assert(t, p == &o[0])
		values = append(values, o[1])
	}
	assert.NilError(t, it.Err())
	assert.DeepEqual(t, values, []float64{0, 1, 2, 3, 4, 5})
}

func Test_BufferedWithoutInPlace(t *testing.T) {
	x := newImages()
	it, err := data.EachBatch(x, data.Auto, data.BatchSize(2), data.Verbose(func(string) {}))
	assert.NilError(t, err)
	got := [][]image{}
	for b := range it.All() {
		got = append(got, b)
	}
	assert.Assert(t, !it.Reused())
	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[0][0].label, "cat")
	assert.Equal(t, got[1][0].label, "dog")
	assert.Equal(t, *x.loads, 4)
}

func Test_BufferedSlices(t *testing.T) {
	seq, err := data.RandomBatches(numbers(10), data.Auto, 3, 4, data.Seed(3))
	assert.NilError(t, err)
	it := data.NewBuffered(seq)
	n := 0
	var buf []int
	for it.Next() {
		b := it.Value()
		assert.Equal(t, len(b), 3)
		if buf == nil {
			buf = b
		}
		assert.Assert(t, &buf[0] == &b[0])
		for _, v := range b {
			assert.Assert(t, v >= 10 && v < 20)
		}
		n++
	}
	assert.NilError(t, it.Err())
	assert.Equal(t, n, 4)
	assert.Assert(t, !it.Next())
}

func Test_BufferedEarlyStop(t *testing.T) {
	seq, err := data.RandomObs(numbers(10), data.Auto, 0, data.Seed(5))
	assert.NilError(t, err)
	it := data.NewBuffered(seq)
	n := 0
	for range it.All() {
		if n++; n == 7 {
			break
		}
	}
	assert.Equal(t, n, 7)
	assert.Assert(t, !it.Next())
}

func Test_BufferedGroup(t *testing.T) {
	x, y := irisLike()
	it, err := data.EachBatch(data.LuckyLink(x, y), data.Auto, data.BatchSize(3))
	assert.NilError(t, err)
	labels := [][]string{}
	for b := range it.All() {
		labels = append(labels, append([]string(nil), b.Second...))
	}
	assert.Assert(t, it.Reused())
	assert.DeepEqual(t, labels, [][]string{{"a", "b", "b"}, {"b", "b", "a"}})
}

func Test_BufferedCloseEarly(t *testing.T) {
	it, err := data.EachBatch(numbers(10), data.Auto, data.BatchSize(5))
	assert.NilError(t, err)
	assert.Assert(t, it.Next())
	assert.DeepEqual(t, it.Value(), []int{10, 11, 12, 13, 14})
	it.Close()
	it.Close()
	assert.Assert(t, !it.Next())
	assert.NilError(t, it.Err())
}
