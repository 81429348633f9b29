package dense

import (
	"go-ml.dev/pkg/mldata/data"
	"gonum.org/v1/gonum/mat"
)

/*
Matrix is a 2-d container over *mat.Dense.
With data.Last (the default) every column is an observation, with data.First every row.
*/
type Matrix struct {
	m *mat.Dense
}

// NewMatrix wraps m without copying it.
func NewMatrix(m *mat.Dense) *Matrix {
	return &Matrix{m}
}

// Raw returns the wrapped matrix.
func (x *Matrix) Raw() *mat.Dense {
	return x.m
}

func (x *Matrix) DefaultAxis() data.Axis {
	return data.Last
}

func (x *Matrix) dim(ax data.Axis) (int, error) {
	return data.Resolve(x, ax).Dim(2)
}

func (x *Matrix) NObs(ax data.Axis) (int, error) {
	d, err := x.dim(ax)
	if err != nil {
		return 0, err
	}
	r, c := x.m.Dims()
	if d == 0 {
		return r, nil
	}
	return c, nil
}

func (x *Matrix) Obs(i int, ax data.Axis) ([]float64, error) {
	d, err := x.dim(ax)
	if err != nil {
		return nil, err
	}
	r, c := x.m.Dims()
	if d == 0 {
		if err = data.CheckIndex(i, r); err != nil {
			return nil, err
		}
		return mat.Row(nil, i, x.m), nil
	}
	if err = data.CheckIndex(i, c); err != nil {
		return nil, err
	}
	return mat.Col(nil, i, x.m), nil
}

func (x *Matrix) ObsInto(dst []float64, i int, ax data.Axis) error {
	d, err := x.dim(ax)
	if err != nil {
		return err
	}
	r, c := x.m.Dims()
	if d == 0 {
		if err = data.CheckIndex(i, r); err != nil {
			return err
		}
		if len(dst) != c {
			return data.Mismatch("buffer has %d elements, observation has %d", len(dst), c)
		}
		copy(dst, x.m.RawRowView(i))
		return nil
	}
	if err = data.CheckIndex(i, c); err != nil {
		return err
	}
	if len(dst) != r {
		return data.Mismatch("buffer has %d elements, observation has %d", len(dst), r)
	}
	mat.Col(dst, i, x.m)
	return nil
}

// Batch returns the selected observations as a new matrix; an empty selection gives an empty matrix.
func (x *Matrix) Batch(idx []int, ax data.Axis) (*mat.Dense, error) {
	d, err := x.dim(ax)
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return &mat.Dense{}, nil
	}
	r, c := x.m.Dims()
	var b *mat.Dense
	if d == 0 {
		b = mat.NewDense(len(idx), c, nil)
	} else {
		b = mat.NewDense(r, len(idx), nil)
	}
	if err = x.BatchInto(b, idx, ax); err != nil {
		return nil, err
	}
	return b, nil
}

func (x *Matrix) BatchInto(dst *mat.Dense, idx []int, ax data.Axis) error {
	d, err := x.dim(ax)
	if err != nil {
		return err
	}
	r, c := x.m.Dims()
	n := c
	if d == 0 {
		n = r
	}
	if err = data.CheckIndices(idx, n); err != nil {
		return err
	}
	br, bc := dst.Dims()
	if d == 0 {
		if br != len(idx) || bc != c {
			return data.Mismatch("buffer is %dx%d, batch is %dx%d", br, bc, len(idx), c)
		}
		for k, i := range idx {
			dst.SetRow(k, x.m.RawRowView(i))
		}
		return nil
	}
	if br != r || bc != len(idx) {
		return data.Mismatch("buffer is %dx%d, batch is %dx%d", br, bc, r, len(idx))
	}
	for k, j := range idx {
		for i := 0; i < r; i++ {
			dst.Set(i, k, x.m.At(i, j))
		}
	}
	return nil
}
