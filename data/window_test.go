package data_test

import (
	"go-ml.dev/pkg/mldata/data"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
	"testing"
)

func Test_SlidingWindow(t *testing.T) {
	w, err := data.NewSlidingWindow(numbers(10), data.Auto, 3, data.Stride(2))
	assert.NilError(t, err)
	assert.Equal(t, w.Len(), 4)
	got := [][]int{}
	for _, s := range w.All() {
		b, err := data.GetAll(s, data.Auto)
		assert.NilError(t, err)
		got = append(got, b)
	}
	assert.DeepEqual(t, got, [][]int{{10, 11, 12}, {12, 13, 14}, {14, 15, 16}, {16, 17, 18}})

	w, err = data.NewSlidingWindow(numbers(10), data.Auto, 5)
	assert.NilError(t, err)
	assert.Equal(t, w.Len(), 2)

	_, err = data.NewSlidingWindow(numbers(10), data.Auto, 11)
	assert.Assert(t, xerrors.Is(err, data.ErrArgument))
}

func Test_TargetedWindowsTrimBack(t *testing.T) {
	next := func(start int) data.Indices { return data.Range(start+3, start+4) }
	w, err := data.NewTargetedWindows(numbers(10), data.Auto, 3, next, data.Stride(1))
	assert.NilError(t, err)
	assert.Equal(t, w.Len(), 7)
	last := 0
	for win, target := range w.All() {
		b, _ := data.GetAll(win, data.Auto)
		y, _ := data.GetAll(target, data.Auto)
		assert.Equal(t, y[0], b[2]+1)
		last = y[0]
	}
	assert.Equal(t, last, 19)
}

func Test_TargetedWindowsTrimFront(t *testing.T) {
	prev := func(start int) data.Indices { return data.Range(start-2, start) }
	w, err := data.NewTargetedWindows(numbers(10), data.Auto, 2, prev)
	assert.NilError(t, err)
	assert.Equal(t, w.Len(), 4)
	win, target, err := w.At(0)
	assert.NilError(t, err)
	b, _ := data.GetAll(win, data.Auto)
	y, _ := data.GetAll(target, data.Auto)
	assert.DeepEqual(t, b, []int{12, 13})
	assert.DeepEqual(t, y, []int{10, 11})
}

func Test_TargetedWindowsHole(t *testing.T) {
	hole := func(start int) data.Indices {
		if start == 4 {
			return data.Range(20, 21)
		}
		return data.Range(start, start+1)
	}
	_, err := data.NewTargetedWindows(numbers(10), data.Auto, 2, hole)
	assert.Assert(t, xerrors.Is(err, data.ErrBounds))
}
