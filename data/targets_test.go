package data_test

import (
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/dense"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
	"testing"
)

type image struct {
	pixels []byte
	label  string
}

// images pretends to load pixels on every access, labels are cheap metadata.
type images struct {
	labels []string
	loads  *int
}

func (x images) NObs(data.Axis) (int, error) {
	return len(x.labels), nil
}

func (x images) Obs(i int, _ data.Axis) (image, error) {
	if err := data.CheckIndex(i, len(x.labels)); err != nil {
		return image{}, err
	}
	*x.loads++
	return image{pixels: make([]byte, 16), label: x.labels[i]}, nil
}

func (x images) Batch(idx []int, ax data.Axis) ([]image, error) {
	r := make([]image, len(idx))
	for k, i := range idx {
		o, err := x.Obs(i, ax)
		if err != nil {
			return nil, err
		}
		r[k] = o
	}
	return r, nil
}

func (x images) Targets(data.Axis) ([]string, error) {
	return x.labels, nil
}

func newImages() images {
	return images{labels: []string{"cat", "dog", "dog", "cat", "bird"}, loads: new(int)}
}

func Test_TargetsBulkPreferred(t *testing.T) {
	x := newImages()
	lb := data.By(func(o image) string { return o.label })
	bulk, err := data.Targets(x, lb, data.Auto)
	assert.NilError(t, err)
	assert.Equal(t, *x.loads, 0)

	var plain data.Container[image, []image] = struct {
		data.Container[image, []image]
	}{x}
	each, err := data.Targets(plain, lb, data.Auto)
	assert.NilError(t, err)
	assert.Equal(t, *x.loads, 5)
	assert.DeepEqual(t, bulk, each)
}

func Test_TargetsThroughSubset(t *testing.T) {
	x := newImages()
	s := data.LuckySubset(x, data.Of([]int{4, 0, 0}), data.Auto)
	labels, err := data.Targets(s, data.By(func(o image) string { return o.label }), data.Auto)
	assert.NilError(t, err)
	assert.DeepEqual(t, labels, []string{"bird", "cat", "cat"})
	assert.Equal(t, *x.loads, 0)
}

func Test_TargetsOfGroup(t *testing.T) {
	x, y := irisLike()
	g := data.LuckyLink(x, y)
	labels, err := data.Targets(g, data.Identity[string](), data.Auto)
	assert.NilError(t, err)
	assert.DeepEqual(t, labels, []string{"a", "b", "b", "b", "b", "a"})

	v := dense.VectorOf(1, 0, 1, 1, 0, 0)
	g2 := data.LuckyLink(x, v)
	sub := data.LuckySubset(g2, data.Range(1, 4), data.Auto)
	cls, err := data.Targets(sub, data.By(func(f float64) float64 { return f }), data.Auto)
	assert.NilError(t, err)
	assert.DeepEqual(t, cls, []float64{0, 1, 1})
}

func Test_TargetsWrongType(t *testing.T) {
	_, err := data.Targets(numbers(3), data.Identity[string](), data.Auto)
	assert.Assert(t, xerrors.Is(err, data.ErrCapability))
}
