package bpd

// Rothe constructs the canonical seed grid of w, the pipe-tiling analogue
// of the Rothe diagram. Every enumeration in this package starts from it.
//
// Row 1 depends only on w[0]: blanks west of the pipe's elbow, the elbow at
// its column, horizontals east of it. Each later row is derived from the
// row above: a cell west of the row's elbow is vertical exactly when the
// tile above feeds a strand south, and a cell east of it is a cross under
// the same condition, a horizontal otherwise.
func Rothe(w Perm) (Grid, error) {
	if err := w.Validate(); err != nil {
		return Grid{}, err
	}
	n := len(w)
	m := w.Min()
	b := Grid{n: n, cells: make([]Tile, n*n)}
	for j := 1; j <= n; j++ {
		switch col := j + m - 1; {
		case col == w[0]:
			b.set(1, j, RElbow)
		case col < w[0]:
			b.set(1, j, Blank)
		default:
			b.set(1, j, Horizontal)
		}
	}
	for i := 2; i <= n; i++ {
		for j := 1; j <= n; j++ {
			above := b.At(i-1, j)
			feeds := above == RElbow || above == Vertical || above == Cross
			switch col := j + m - 1; {
			case col == w[i-1]:
				b.set(i, j, RElbow)
			case col < w[i-1]:
				if feeds {
					b.set(i, j, Vertical)
				} else {
					b.set(i, j, Blank)
				}
			default:
				if feeds {
					b.set(i, j, Cross)
				} else {
					b.set(i, j, Horizontal)
				}
			}
		}
	}
	return b, nil
}
