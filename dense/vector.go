package dense

import (
	"go-ml.dev/pkg/mldata/data"
	"gonum.org/v1/gonum/mat"
)

/*
Vector is a 1-d container over *mat.VecDense, every element is an observation.
Its elements are also its targets, so label extraction never goes through Obs.
*/
type Vector struct {
	v *mat.VecDense
}

func NewVector(v *mat.VecDense) *Vector {
	return &Vector{v}
}

// VectorOf copies values into a new Vector.
func VectorOf(values ...float64) *Vector {
	if len(values) == 0 {
		return &Vector{&mat.VecDense{}}
	}
	return &Vector{mat.NewVecDense(len(values), append([]float64(nil), values...))}
}

func (x *Vector) Raw() *mat.VecDense {
	return x.v
}

func (x *Vector) DefaultAxis() data.Axis {
	return data.Last
}

func (x *Vector) check(ax data.Axis) error {
	_, err := data.Resolve(x, ax).Dim(1)
	return err
}

func (x *Vector) NObs(ax data.Axis) (int, error) {
	if err := x.check(ax); err != nil {
		return 0, err
	}
	return x.v.Len(), nil
}

func (x *Vector) Obs(i int, ax data.Axis) (float64, error) {
	if err := x.check(ax); err != nil {
		return 0, err
	}
	if err := data.CheckIndex(i, x.v.Len()); err != nil {
		return 0, err
	}
	return x.v.AtVec(i), nil
}

func (x *Vector) Batch(idx []int, ax data.Axis) (*mat.VecDense, error) {
	if len(idx) == 0 {
		return &mat.VecDense{}, x.check(ax)
	}
	b := mat.NewVecDense(len(idx), nil)
	if err := x.BatchInto(b, idx, ax); err != nil {
		return nil, err
	}
	return b, nil
}

func (x *Vector) BatchInto(dst *mat.VecDense, idx []int, ax data.Axis) error {
	if err := x.check(ax); err != nil {
		return err
	}
	if err := data.CheckIndices(idx, x.v.Len()); err != nil {
		return err
	}
	if dst.Len() != len(idx) {
		return data.Mismatch("buffer has %d elements, batch has %d", dst.Len(), len(idx))
	}
	for k, i := range idx {
		dst.SetVec(k, x.v.AtVec(i))
	}
	return nil
}

func (x *Vector) Targets(ax data.Axis) ([]float64, error) {
	if err := x.check(ax); err != nil {
		return nil, err
	}
	if x.v.Len() == 0 {
		return []float64{}, nil
	}
	return mat.Col(nil, 0, x.v), nil
}
