package sort

import "cmp"

type IntArray []int

type Float64Array []float64

type StringArray []string

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p Float64Array) Len() int { return len(p) }

func (p Float64Array) Less(i, j int) bool { return p[i] < p[j] }

func (p Float64Array) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p StringArray) Len() int { return len(p) }

func (p StringArray) Less(i, j int) bool { return p[i] < p[j] }

func (p StringArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Stats counts the work done by one sort.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Options tunes Run. The zero value is the plain n-pass bubble sort.
type Options struct {
	// EarlyExit stops after the first pass that performs no swaps.
	EarlyExit bool
}

// Sort orders data in place with a bubble sort. Equal elements keep their
// relative order.
func Sort(data Sorter) {
	Run(data, Options{})
}

// Run is Sort with options, returning how many passes, comparisons and swaps
// it took.
func Run(data Sorter, opt Options) Stats {
	st, _ := bubble(data.Len(), func(i, j int) (bool, error) {
		return data.Less(i, j), nil
	}, data.Swap, opt)
	return st
}

// bubble runs n passes over a shrinking prefix; after pass i the last i
// elements are final. It stops at the first comparison error.
func bubble(n int, less func(i, j int) (bool, error), swap func(i, j int), opt Options) (Stats, error) {
	var st Stats
	for i := 0; i < n; i++ {
		st.Passes++
		swapped := false
		for j := 0; j < n-i-1; j++ {
			st.Comparisons++
			ok, err := less(j+1, j)
			if err != nil {
				return st, err
			}
			if ok {
				swap(j, j+1)
				st.Swaps++
				swapped = true
			}
		}
		if opt.EarlyExit && !swapped {
			break
		}
	}
	return st, nil
}

type ordered[E cmp.Ordered] []E

func (p ordered[E]) Len() int { return len(p) }

func (p ordered[E]) Less(i, j int) bool { return cmp.Less(p[i], p[j]) }

func (p ordered[E]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type byFunc[E any] struct {
	s    []E
	less func(a, b E) bool
}

func (p byFunc[E]) Len() int { return len(p.s) }

func (p byFunc[E]) Less(i, j int) bool { return p.less(p.s[i], p.s[j]) }

func (p byFunc[E]) Swap(i, j int) { p.s[i], p.s[j] = p.s[j], p.s[i] }

// Slice sorts s in place and returns it.
func Slice[S ~[]E, E cmp.Ordered](s S) S {
	Sort(ordered[E](s))
	return s
}

// SliceFunc sorts s in place by less and returns it.
func SliceFunc[S ~[]E, E any](s S, less func(a, b E) bool) S {
	Sort(byFunc[E]{s: []E(s), less: less})
	return s
}
