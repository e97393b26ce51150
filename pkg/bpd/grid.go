package bpd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grid is an immutable n×n tiling. Cells are addressed with 1-based (row,
// column) coordinates, row 1 at the top and column 1 at the left. The zero
// value is an empty 0×0 grid.
//
// Grids compare by value: two grids with the same size and tiles are the
// same grid for every purpose in this package, including enumeration
// deduplication.
type Grid struct {
	n     int
	cells []Tile // row-major, len n*n
}

// FromRows builds a grid from one string per row, each character a tile
// rune. All rows must have length equal to the number of rows.
func FromRows(rows []string) (Grid, error) {
	n := len(rows)
	cells := make([]Tile, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("grid row %d has %d cells, want %d", i+1, len(row), n)
		}
		for j := 0; j < n; j++ {
			t := Tile(row[j])
			if !t.Valid() {
				return Grid{}, fmt.Errorf("grid cell (%d,%d): unknown tile %q", i+1, j+1, row[j])
			}
			cells = append(cells, t)
		}
	}
	return Grid{n: n, cells: cells}, nil
}

// Size returns the side length n.
func (b Grid) Size() int { return b.n }

// At returns the tile at row i, column j (1-based). It panics if either
// index lies outside [1, n], mirroring slice indexing.
func (b Grid) At(i, j int) Tile {
	if i < 1 || i > b.n || j < 1 || j > b.n {
		panic(fmt.Sprintf("bpd: cell (%d,%d) out of range for %d×%d grid", i, j, b.n, b.n))
	}
	return b.cells[(i-1)*b.n+(j-1)]
}

// Key returns a canonical string encoding of the grid, suitable as a map
// key. Grids are equal exactly when their keys are equal.
func (b Grid) Key() string { return string(b.cells) }

// Equal reports whether two grids have identical size and tiles.
func (b Grid) Equal(other Grid) bool {
	return b.n == other.n && string(b.cells) == string(other.cells)
}

// Rows returns the grid as one string per row, the inverse of [FromRows].
func (b Grid) Rows() []string {
	rows := make([]string, b.n)
	for i := 0; i < b.n; i++ {
		rows[i] = string(b.cells[i*b.n : (i+1)*b.n])
	}
	return rows
}

// String renders the grid as n newline-separated rows of tile runes.
func (b Grid) String() string { return strings.Join(b.Rows(), "\n") }

// Blanks returns the number of blank cells.
func (b Grid) Blanks() int {
	count := 0
	for _, t := range b.cells {
		if t == Blank {
			count++
		}
	}
	return count
}

// clone returns a mutable copy used internally by move appliers. The copy
// must not escape before the applier is done with it.
func (b Grid) clone() Grid {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return Grid{n: b.n, cells: cells}
}

// set writes a tile in place. Only ever called on clones.
func (b *Grid) set(i, j int, t Tile) {
	b.cells[(i-1)*b.n+(j-1)] = t
}

// rewrite maps the tile at (i,j) through the given substitution pairs.
// Tiles not mentioned are left alone.
func (b *Grid) rewrite(i, j int, pairs ...[2]Tile) {
	cur := b.cells[(i-1)*b.n+(j-1)]
	for _, p := range pairs {
		if cur == p[0] {
			b.set(i, j, p[1])
			return
		}
	}
}

type gridJSON struct {
	Rows []string `json:"rows"`
}

// MarshalJSON encodes the grid as {"rows": [...]}.
func (b Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Rows: b.Rows()})
}

// UnmarshalJSON decodes a grid from the [Grid.MarshalJSON] form, validating
// every tile.
func (b *Grid) UnmarshalJSON(data []byte) error {
	var g gridJSON
	if err := json.Unmarshal(data, &g); err != nil {
		return err
	}
	decoded, err := FromRows(g.Rows)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
