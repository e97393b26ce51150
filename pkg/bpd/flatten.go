package bpd

// IsFlat reports whether b contains no droopable unit corner: no blank cell
// whose north and west neighbors both carry pipe while an r-elbow sits on
// its northwest diagonal neighbor. Flat grids are the canonical
// representatives enumerated by [EnumerateFlat].
func IsFlat(b Grid) bool {
	i, j := findCorner(b, false)
	return i == 0 && j == 0
}

// MakeFlat repeatedly droops every violating unit corner until the grid is
// flat. The scan restarts after each rewrite, so the first violation in
// row-major order is always resolved first; the process terminates because
// each rewrite moves a pipe corner strictly toward the southeast.
func MakeFlat(b Grid) Grid { return makeFlat(b, false) }

// MakeFlatSkew is [MakeFlat] except that corners belonging to the top pipe,
// the pipe with nothing northwest of it, are left in place. Used by
// [EnumerateTop], where the top pipe is pinned.
func MakeFlatSkew(b Grid) Grid { return makeFlat(b, true) }

func makeFlat(b Grid, skew bool) Grid {
	for {
		i, j := findCorner(b, skew)
		if i == 0 {
			return b
		}
		b = applyDroop(b, Rect{I1: i - 1, J1: j - 1, I2: i, J2: j})
	}
}

// findCorner returns the first violating blank in row-major order, or
// (0, 0) when the grid is flat. In skew mode violations whose r-elbow is
// the top pipe's are skipped.
func findCorner(b Grid, skew bool) (int, int) {
	for i := 2; i <= b.n; i++ {
		for j := 2; j <= b.n; j++ {
			if b.At(i, j) != Blank || b.At(i-1, j) == Blank || b.At(i, j-1) == Blank {
				continue
			}
			if b.At(i-1, j-1) != RElbow {
				continue
			}
			if skew && b.CountPipes(i-1, j-1) == 1 {
				continue
			}
			return i, j
		}
	}
	return 0, 0
}
