package fu

import (
	"gonum.org/v1/gonum/floats"
	"math"
)

func Mean(a []float64) float64 {
	if len(a) == 0 {
		return math.NaN()
	}
	return floats.Sum(a) / float64(len(a))
}

func Indmaxd(a []float64) int {
	if len(a) == 0 {
		return -1
	}
	return floats.MaxIdx(a)
}
