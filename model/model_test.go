package model_test

import (
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/model"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
	"slices"
	"strings"
	"testing"
)

func series(n int) data.Slice[float64] {
	s := make(data.Slice[float64], n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func validated(t *testing.T, f *data.FoldsView[float64, []float64]) [][]float64 {
	r := [][]float64{}
	for _, val := range f.All() {
		v, err := data.GetAll(val, data.Auto)
		assert.NilError(t, err)
		r = append(r, v)
	}
	return r
}

func Test_DatasetFolds(t *testing.T) {
	ds := model.Dataset[float64, []float64]{Source: series(23)}
	f, err := ds.Folds()
	assert.NilError(t, err)
	assert.Equal(t, f.Len(), model.DefaultKfold)
	v := validated(t, f)
	assert.DeepEqual(t, v[0], []float64{0, 1, 2, 3, 4})

	ds.Kfold = 4
	ds.Seed = 42
	f, err = ds.Folds()
	assert.NilError(t, err)
	v = validated(t, f)
	assert.Equal(t, len(v), 4)
	f, err = ds.Folds()
	assert.NilError(t, err)
	assert.DeepEqual(t, validated(t, f), v)

	all := slices.Concat(v...)
	assert.Assert(t, !slices.IsSorted(all))
	slices.Sort(all)
	assert.DeepEqual(t, all, []float64(series(23)))

	ds.Kfold = 30
	_, err = ds.Folds()
	assert.Assert(t, xerrors.Is(err, data.ErrArgument))
}

func Test_CrossValidate(t *testing.T) {
	f, err := model.Dataset[float64, []float64]{Source: series(10)}.Folds()
	assert.NilError(t, err)
	lines := []string{}
	r, err := model.CrossValidate(f,
		func(fold int, train, val data.Container[float64, []float64]) (float64, error) {
			n, _ := train.NObs(data.Auto)
			assert.Equal(t, n, 8)
			v, err := data.GetAll(val, data.Auto)
			return fu.Mean(v), err
		},
		data.Verbose(func(s string) { lines = append(lines, s) }))
	assert.NilError(t, err)
	assert.DeepEqual(t, r.History, []float64{0.5, 2.5, 4.5, 6.5, 8.5})
	assert.Equal(t, r.TheBest, 4)
	assert.Equal(t, r.Score, 4.5)
	assert.Equal(t, len(lines), 5)
	assert.Equal(t, lines[1], "[  1] score: 2.50000")
}

func Test_CrossValidateFails(t *testing.T) {
	f, err := model.Dataset[float64, []float64]{Source: series(10), Kfold: 2}.Folds()
	assert.NilError(t, err)
	fit := func(fold int, _, _ data.Container[float64, []float64]) (float64, error) {
		if fold == 1 {
			return 0, data.Argument("diverged")
		}
		return 1, nil
	}
	_, err = model.CrossValidate(f, fit)
	assert.Assert(t, err != nil)
	assert.Assert(t, strings.Contains(err.Error(), "fold 1"))

	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	model.LuckyCrossValidate(f, fit)
	t.Fatal("unreachable")
}

func Test_Search(t *testing.T) {
	ds := model.Dataset[float64, []float64]{Source: series(12), Kfold: 3, Seed: 7}
	fit := func(p model.Params) model.FitFunc[float64, []float64] {
		return func(int, data.Container[float64, []float64], data.Container[float64, []float64]) (float64, error) {
			return -(p.Get("k", 0) - 3) * (p.Get("k", 0) - 3), nil
		}
	}
	best, r, err := model.Search(ds, []model.Params{{"k": 1}, {"k": 3}, {"k": 6}}, fit)
	assert.NilError(t, err)
	assert.Equal(t, best.Get("k", 0), 3.0)
	assert.Equal(t, r.Score, 0.0)
	assert.Equal(t, len(r.History), 3)

	_, _, err = model.Search(ds, nil, fit)
	assert.Assert(t, err != nil)
}
