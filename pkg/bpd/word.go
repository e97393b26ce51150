package bpd

// CountPipes returns the 1-based strand index at cell (i, j): one for the
// pipe through the cell itself plus one for every strand crossing the
// diagonal line of sight toward the northwest corner. A cross contributes
// two strands, any other non-blank tile one. For a cross tile the result
// is the index of the simple transposition it represents; an r-elbow with
// count 1 belongs to the top pipe.
func (b Grid) CountPipes(i, j int) int {
	count := 1
	for i, j = i-1, j-1; i >= 1 && j >= 1; i, j = i-1, j-1 {
		switch b.At(i, j) {
		case Blank:
		case Cross:
			count += 2
		default:
			count++
		}
	}
	return count
}

// Word reads off the pipe word of b: the simple transposition index of
// every cross, visited diagonal by diagonal from the southwest corner of
// the grid to the northeast, each diagonal traversed south to north.
func (b Grid) Word() []int {
	var word []int
	for d := -(b.n - 1); d <= b.n-1; d++ {
		for i := b.n; i >= 1; i-- {
			j := i + d
			if j < 1 || j > b.n {
				continue
			}
			if b.At(i, j) == Cross {
				word = append(word, b.CountPipes(i, j))
			}
		}
	}
	return word
}

// Perm returns the permutation traced by the pipes of b, the Demazure
// product of its word. For any grid produced by this package's moves this
// recovers the normalized form of the seed permutation, whether or not the
// grid is reduced.
func (b Grid) Perm() Perm {
	return DemazureProduct(b.Word(), b.n)
}

// IsReduced reports whether b is reduced: its blank count equals the
// Coxeter length of its permutation, so no two pipes cross twice.
func (b Grid) IsReduced() bool {
	return b.Blanks() == b.Perm().Length()
}
