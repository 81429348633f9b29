package fu

import (
	"golang.org/x/exp/constraints"
	"math"
)

/*
Fnzi returns the first non-zero value or 0
*/
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

func Mini(a int, b ...int) int {
	for _, x := range b {
		if x < a {
			a = x
		}
	}
	return a
}

func Maxi(a int, b ...int) int {
	for _, x := range b {
		if x > a {
			a = x
		}
	}
	return a
}

/*
Clamp limits v to the closed interval [lo,hi], hi wins when lo > hi
*/
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

/*
Round rounds half away from zero and converts to int
*/
func Round(f float64) int {
	return int(math.Round(f))
}

/*
Iota returns [lo, lo+1, ..., hi-1]
*/
func Iota(lo, hi int) []int {
	if hi <= lo {
		return []int{}
	}
	r := make([]int, hi-lo)
	for i := range r {
		r[i] = lo + i
	}
	return r
}

/*
Counts returns how many times every value in [0,n) occurs in the lists
*/
func Counts(n int, lists ...[]int) []int {
	c := make([]int, n)
	for _, l := range lists {
		for _, x := range l {
			c[x]++
		}
	}
	return c
}
