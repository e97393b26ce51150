package bpd

import (
	"errors"
	"fmt"
)

// ErrInvalidPerm reports a sequence that is not a permutation of a
// contiguous integer range.
var ErrInvalidPerm = errors.New("invalid permutation")

// Perm is a permutation in one-line notation: Perm[i] is the image of
// position i+1. Entries may live on any contiguous range [m, m+n-1], not
// just [1, n]; the Rothe construction shifts columns accordingly.
type Perm []int

// Identity returns the identity permutation on {1, …, n}.
func Identity(n int) Perm {
	w := make(Perm, n)
	for i := range w {
		w[i] = i + 1
	}
	return w
}

// Validate checks that w is a permutation of some contiguous integer range.
// Duplicate entries and gaps in the range are both rejected.
func (w Perm) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPerm)
	}
	lo, hi := w[0], w[0]
	seen := make(map[int]bool, len(w))
	for _, v := range w {
		if seen[v] {
			return fmt.Errorf("%w: duplicate entry %d", ErrInvalidPerm, v)
		}
		seen[v] = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi-lo+1 != len(w) {
		return fmt.Errorf("%w: entries do not cover a contiguous range", ErrInvalidPerm)
	}
	return nil
}

// Min returns the smallest entry, the offset of the range w acts on.
func (w Perm) Min() int {
	lo := w[0]
	for _, v := range w[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo
}

// Normalized returns w shifted onto the range {1, …, n}.
func (w Perm) Normalized() Perm {
	m := w.Min()
	out := make(Perm, len(w))
	for i, v := range w {
		out[i] = v - m + 1
	}
	return out
}

// Length returns the Coxeter length of w: the number of inversions, pairs
// i < j with w[i] > w[j].
func (w Perm) Length() int {
	count := 0
	for i := 0; i < len(w); i++ {
		for j := i + 1; j < len(w); j++ {
			if w[i] > w[j] {
				count++
			}
		}
	}
	return count
}

// Equal reports whether two permutations agree entry for entry.
func (w Perm) Equal(v Perm) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}

func (w Perm) String() string {
	return fmt.Sprint([]int(w))
}

// DemazureProduct folds a word of simple transposition indices into a
// permutation under the 0-Hecke monoid product: scanning left to right,
// letter k swaps positions k and k+1 only when that increases the number
// of inversions, and is absorbed otherwise. The result acts on
// {1, …, size}; size is raised to fit the largest letter if needed.
func DemazureProduct(word []int, size int) Perm {
	for _, k := range word {
		if k+1 > size {
			size = k + 1
		}
	}
	w := Identity(size)
	for _, k := range word {
		if w[k-1] < w[k] {
			w[k-1], w[k] = w[k], w[k-1]
		}
	}
	return w
}
