package bpd

import (
	"errors"
	"fmt"
)

// ErrInvalidASM reports a matrix that is not an alternating sign matrix.
var ErrInvalidASM = errors.New("invalid alternating sign matrix")

// ASM is an alternating sign matrix: a square matrix over {-1, 0, 1} whose
// nonzero entries alternate in sign along every row and column, each
// starting and ending with 1. Equivalently, every prefix sum of a row or
// column is 0 or 1 and every full row and column sums to 1.
type ASM [][]int

// Validate checks full ASM validity: entries in {-1, 0, 1}, every row
// and column prefix sum in {0, 1}, and every complete row and column
// summing to 1. The last condition is stronger than the prefix check
// alone, which also admits partial matrices extendable to an ASM;
// [FromASM] needs the full condition to reconstruct a grid.
func (m ASM) Validate() error {
	n := len(m)
	if n == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidASM)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidASM, i+1, len(row), n)
		}
		for j, v := range row {
			if v < -1 || v > 1 {
				return fmt.Errorf("%w: entry (%d,%d) is %d", ErrInvalidASM, i+1, j+1, v)
			}
		}
	}
	for i := 0; i < n; i++ {
		rowSum, colSum := 0, 0
		for j := 0; j < n; j++ {
			rowSum += m[i][j]
			colSum += m[j][i]
			if rowSum < 0 || rowSum > 1 {
				return fmt.Errorf("%w: row %d prefix sum %d at column %d", ErrInvalidASM, i+1, rowSum, j+1)
			}
			if colSum < 0 || colSum > 1 {
				return fmt.Errorf("%w: column %d prefix sum %d at row %d", ErrInvalidASM, i+1, colSum, j+1)
			}
		}
		if rowSum != 1 {
			return fmt.Errorf("%w: row %d sums to %d", ErrInvalidASM, i+1, rowSum)
		}
		if colSum != 1 {
			return fmt.Errorf("%w: column %d sums to %d", ErrInvalidASM, i+1, colSum)
		}
	}
	return nil
}

// ToASM projects the grid onto its alternating sign matrix: r-elbows map
// to 1, j-elbows to -1, everything else to 0. The projection is a
// bijection between grids and ASMs; [FromASM] inverts it.
func (b Grid) ToASM() ASM {
	m := make(ASM, b.n)
	for i := 1; i <= b.n; i++ {
		m[i-1] = make([]int, b.n)
		for j := 1; j <= b.n; j++ {
			switch b.At(i, j) {
			case RElbow:
				m[i-1][j-1] = 1
			case JElbow:
				m[i-1][j-1] = -1
			}
		}
	}
	return m
}

// FromASM reconstructs the unique grid projecting onto m. Rows are filled
// bottom-up, each left to right: zero entries pick their tile from whether
// the west neighbor feeds a strand east and the south neighbor feeds one
// north. Pipes enter on the south edge, so the virtual south neighbor of
// the bottom row always feeds.
func FromASM(m ASM) (Grid, error) {
	if err := m.Validate(); err != nil {
		return Grid{}, err
	}
	n := len(m)
	b := Grid{n: n, cells: make([]Tile, n*n)}
	for i := n; i >= 1; i-- {
		for j := 1; j <= n; j++ {
			switch m[i-1][j-1] {
			case 1:
				b.set(i, j, RElbow)
			case -1:
				b.set(i, j, JElbow)
			default:
				west := j > 1 && b.At(i, j-1).hasEast()
				south := i == n || b.At(i+1, j).hasNorth()
				switch {
				case west && south:
					b.set(i, j, Cross)
				case west:
					b.set(i, j, Horizontal)
				case south:
					b.set(i, j, Vertical)
				default:
					b.set(i, j, Blank)
				}
			}
		}
	}
	return b, nil
}
