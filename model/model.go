package model

import (
	"fmt"
	"go-ml.dev/pkg/mldata/data"
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/opts"
	"go-ml.dev/pkg/zorros"
)

/*
Report is a cross-validation report
*/
type Report struct {
	History []float64 // score of every fold
	TheBest int       // the best fold
	Score   float64   // mean score over folds
}

/*
FitFunc trains a model on the train subset and returns its score on the validation subset.
Greater score is better.
*/
type FitFunc[O, B any] func(fold int, train, val data.Container[O, B]) (float64, error)

/*
CrossValidate fits a model on every fold of the view.
The Verbose option receives one line per fold.
*/
func CrossValidate[O, B any](folds *data.FoldsView[O, B], fit FitFunc[O, B], opt ...data.Option) (*Report, error) {
	o := opts.Of(opt...)
	report := &Report{History: make([]float64, 0, folds.Len())}
	for i := 0; i < folds.Len(); i++ {
		train, val, err := folds.At(i)
		if err != nil {
			return nil, zorros.Trace(err)
		}
		score, err := fit(i, train, val)
		if err != nil {
			return nil, zorros.Wrapf(err, "fold %d failed: %v", i, err.Error())
		}
		report.History = append(report.History, score)
		o.Notify(fmt.Sprintf("[%3d] score: %.5f", i, score), nil)
	}
	report.TheBest = fu.Indmaxd(report.History)
	report.Score = fu.Mean(report.History)
	return report, nil
}

/*
LuckyCrossValidate cross-validates a model and trows any occurred errors as a panic
*/
func LuckyCrossValidate[O, B any](folds *data.FoldsView[O, B], fit FitFunc[O, B], opt ...data.Option) *Report {
	r, err := CrossValidate(folds, fit, opt...)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

/*
Params is a set of hyper-parameters used to generate a model
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

/*
Search cross-validates a model built from every parameter set and returns the
best parameters with their report
*/
func Search[O, B any](ds Dataset[O, B], variants []Params, fit func(Params) FitFunc[O, B], opt ...data.Option) (Params, *Report, error) {
	folds, err := ds.Folds()
	if err != nil {
		return nil, nil, err
	}
	var best Params
	var bestReport *Report
	for _, p := range variants {
		r, err := CrossValidate(folds, fit(p), opt...)
		if err != nil {
			return nil, nil, err
		}
		if bestReport == nil || r.Score > bestReport.Score {
			best, bestReport = p, r
		}
	}
	if bestReport == nil {
		return nil, nil, zorros.Errorf("no parameters to search")
	}
	return best, bestReport, nil
}
