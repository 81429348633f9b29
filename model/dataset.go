package model

import (
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/fu"
)

const DefaultKfold = 5

/*
Dataset is an abstraction of some source of a data to cross-validate models on
*/
type Dataset[O, B any] struct {
	Source data.Container[O, B] // container or linked group of features and labels
	Axis   data.Axis            // observation axis, container default if Auto
	Kfold  int                  // count of folds, DefaultKfold if zero
	Seed   uint64               // shuffles observations before folding if non-zero
}

/*
Folds repartitions the dataset source into Kfold folds
*/
func (ds Dataset[O, B]) Folds() (*data.FoldsView[O, B], error) {
	src := ds.Source
	if ds.Seed != 0 {
		s, err := data.ShuffleObs(src, ds.Axis, data.Seed(ds.Seed))
		if err != nil {
			return nil, err
		}
		src = s
	}
	return data.KFolds(src, fu.Fnzi(ds.Kfold, DefaultKfold), ds.Axis)
}
