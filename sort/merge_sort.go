// Package sort implements an iterative, allocation-free merge sort over
// slices of arbitrary element types and over raw fixed-size records.
package sort

import "golang.org/x/exp/constraints"

// MergeSort sorts s in ascending order as defined by less, using scratch as
// working memory. The caller must provide len(scratch) >= len(s); the scratch
// slice is only borrowed for the duration of the call and no other memory is
// allocated.
//
// The sort is bottom-up: it runs a sequence of passes, each pass splitting
// the slice into blocks of m elements and merging every pair of adjacent
// blocks, with m doubling between passes. There is no recursion, so stack
// depth is constant regardless of len(s).
//
// The sort is NOT stable: when two elements compare equal, the merge takes
// the element from the right block first. Callers that need a deterministic
// order for equal keys must make less a strict total order.
func MergeSort[T any](s []T, scratch []T, less func(a, b T) bool) {
	n := len(s)
	for m := 1; m <= n; m *= 2 {
		// A trailing block with no right-hand partner is left alone,
		// a later pass with a larger m absorbs it.
		for i := 0; i < n-m; i += 2 * m {
			lo := i
			loMax := i + m
			hi := i + m
			hiMax := i + 2*m
			if hiMax > n {
				hiMax = n
			}
			d := 0

			// Standard merge of [lo, loMax) and [hi, hiMax).
			// Equal elements are taken from the right block.
			for {
				if less(s[lo], s[hi]) {
					scratch[d] = s[lo]
					d++
					lo++
					if lo >= loMax {
						break
					}
				} else {
					scratch[d] = s[hi]
					d++
					hi++
					if hi >= hiMax {
						break
					}
				}
			}

			// Drain leftovers, only one of these two loops can run.
			for lo < loMax {
				scratch[d] = s[lo]
				d++
				lo++
			}
			for hi < hiMax {
				scratch[d] = s[hi]
				d++
				hi++
			}

			copy(s[i:i+d], scratch[:d])
		}
	}
}

// MergeSortBytes sorts n records of size bytes each, stored contiguously in
// data, in ascending order as defined by less. Records carry no type
// information and are moved only by byte copy; less receives views of the two
// records being compared. The caller must provide len(scratch) >= n*size.
//
// Tie-breaking follows MergeSort: equal records are taken from the right
// block first, so the sort is not stable.
func MergeSortBytes(data []byte, n int, scratch []byte, size int, less func(a, b []byte) bool) {
	el := func(k int) []byte {
		return data[k*size : (k+1)*size]
	}
	for m := 1; m <= n; m *= 2 {
		for i := 0; i < n-m; i += 2 * m {
			lo := i
			loMax := i + m
			hi := i + m
			hiMax := i + 2*m
			if hiMax > n {
				hiMax = n
			}
			d := 0

			for {
				if less(el(lo), el(hi)) {
					copy(scratch[d:d+size], el(lo))
					d += size
					lo++
					if lo >= loMax {
						break
					}
				} else {
					copy(scratch[d:d+size], el(hi))
					d += size
					hi++
					if hi >= hiMax {
						break
					}
				}
			}

			for lo < loMax {
				copy(scratch[d:d+size], el(lo))
				d += size
				lo++
			}
			for hi < hiMax {
				copy(scratch[d:d+size], el(hi))
				d += size
				hi++
			}

			copy(data[i*size:i*size+d], scratch[:d])
		}
	}
}

// Sort sorts s in ascending order as defined by less, allocating the scratch
// buffer internally. Callers that sort repeatedly and care about allocations
// should use MergeSort with a reused scratch slice instead.
func Sort[T any](s []T, less func(a, b T) bool) []T {
	MergeSort(s, make([]T, len(s)), less)
	return s
}

// SortOrdered sorts a slice of any ordered type in ascending order.
func SortOrdered[T constraints.Ordered](s []T) []T {
	return Sort(s, func(a, b T) bool { return a < b })
}
