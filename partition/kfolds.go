package partition

import (
	"go-ml.dev/pkg/mldata/fu"
	"go-ml.dev/pkg/mldata/internal/errs"
)

/*
KFolds assigns n observations to k contiguous validation spans.

Spans have n/k or n/k+1 elements, the first n%k spans are the larger ones.
train[i] is the complement of val[i] in ascending order.
*/
func KFolds(n, k int) (train [][]int, val []Span, err error) {
	if k < 2 || k > n {
		return nil, nil, errs.Argumentf("number of folds %d is not in [2,%d]", k, n)
	}
	size, extra := n/k, n%k
	val = make([]Span, k)
	train = make([][]int, k)
	lo := 0
	for i := range val {
		cnt := size
		if i < extra {
			cnt++
		}
		val[i] = Span{lo, lo + cnt}
		train[i] = append(fu.Iota(0, lo), fu.Iota(lo+cnt, n)...)
		lo += cnt
	}
	return
}

/*
LeaveOut is KFolds with round(n/size) folds, so that every validation set
has about size observations. size must be in [1,n/2].
*/
func LeaveOut(n, size int) (train [][]int, val []Span, err error) {
	if size < 1 || size > n/2 {
		return nil, nil, errs.Argumentf("validation size %d is not in [1,%d]", size, n/2)
	}
	return KFolds(n, fu.Round(float64(n)/float64(size)))
}
