package dense

import (
	"go-ml.dev/pkg/mldata/data"
)

/*
Array is an N-d row-major float64 array.
Any dimension can enumerate observations, the last one by default.
*/
type Array struct {
	shape []int
	data  []float64
}

// NewArray wraps values (not copied) as an array of the given shape.
func NewArray(values []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return nil, data.Argument("array needs at least one dimension")
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, data.Argument("negative dimension in shape %v", shape)
		}
		n *= d
	}
	if n != len(values) {
		return nil, data.Mismatch("shape %v needs %d values, got %d", shape, n, len(values))
	}
	return &Array{shape: append([]int(nil), shape...), data: values}, nil
}

// Zeros returns a new zero filled array.
func Zeros(shape ...int) *Array {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return &Array{shape: append([]int(nil), shape...), data: make([]float64, n)}
}

func (x *Array) Shape() []int {
	return append([]int(nil), x.shape...)
}

// Data returns the underlying row-major storage.
func (x *Array) Data() []float64 {
	return x.data
}

// At returns the element at the position pos.
func (x *Array) At(pos ...int) float64 {
	k := 0
	for d, p := range pos {
		k = k*x.shape[d] + p
	}
	return x.data[k]
}

func (x *Array) DefaultAxis() data.Axis {
	return data.Last
}

func (x *Array) dim(ax data.Axis) (int, error) {
	return data.Resolve(x, ax).Dim(len(x.shape))
}

// split returns the element counts before and after dimension d.
func (x *Array) split(d int) (outer, inner int) {
	outer, inner = 1, 1
	for _, v := range x.shape[:d] {
		outer *= v
	}
	for _, v := range x.shape[d+1:] {
		inner *= v
	}
	return
}

func (x *Array) NObs(ax data.Axis) (int, error) {
	d, err := x.dim(ax)
	if err != nil {
		return 0, err
	}
	return x.shape[d], nil
}

func (x *Array) gather(dst []float64, d int, idx []int) {
	outer, inner := x.split(d)
	nd, nb := x.shape[d], len(idx)
	for o := 0; o < outer; o++ {
		for b, j := range idx {
			to := (o*nb + b) * inner
			from := (o*nd + j) * inner
			copy(dst[to:to+inner], x.data[from:from+inner])
		}
	}
}

func (x *Array) obsShape(d int) []int {
	s := make([]int, 0, len(x.shape)-1)
	s = append(s, x.shape[:d]...)
	return append(s, x.shape[d+1:]...)
}

func (x *Array) batchShape(d, n int) []int {
	s := x.Shape()
	s[d] = n
	return s
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Obs returns observation i with the observation dimension removed.
func (x *Array) Obs(i int, ax data.Axis) (*Array, error) {
	d, err := x.dim(ax)
	if err != nil {
		return nil, err
	}
	if err = data.CheckIndex(i, x.shape[d]); err != nil {
		return nil, err
	}
	r := Zeros(x.obsShape(d)...)
	x.gather(r.data, d, []int{i})
	return r, nil
}

func (x *Array) ObsInto(dst *Array, i int, ax data.Axis) error {
	d, err := x.dim(ax)
	if err != nil {
		return err
	}
	if err = data.CheckIndex(i, x.shape[d]); err != nil {
		return err
	}
	if s := x.obsShape(d); !sameShape(dst.shape, s) {
		return data.Mismatch("buffer shape %v, observation shape %v", dst.shape, s)
	}
	x.gather(dst.data, d, []int{i})
	return nil
}

// Batch returns the selected observations, the observation dimension has length len(idx).
func (x *Array) Batch(idx []int, ax data.Axis) (*Array, error) {
	d, err := x.dim(ax)
	if err != nil {
		return nil, err
	}
	r := Zeros(x.batchShape(d, len(idx))...)
	if err = x.BatchInto(r, idx, ax); err != nil {
		return nil, err
	}
	return r, nil
}

func (x *Array) BatchInto(dst *Array, idx []int, ax data.Axis) error {
	d, err := x.dim(ax)
	if err != nil {
		return err
	}
	if err = data.CheckIndices(idx, x.shape[d]); err != nil {
		return err
	}
	if s := x.batchShape(d, len(idx)); !sameShape(dst.shape, s) {
		return data.Mismatch("buffer shape %v, batch shape %v", dst.shape, s)
	}
	x.gather(dst.data, d, idx)
	return nil
}
