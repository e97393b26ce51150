package bpd

import (
	"errors"
	"fmt"
)

// ErrRectOutOfBounds reports a rectangle whose corners do not describe a
// proper sub-rectangle of the grid.
var ErrRectOutOfBounds = errors.New("rectangle out of bounds")

// Rect is an axis-aligned rectangle given by its northwest corner (I1,J1)
// and southeast corner (I2,J2), both inclusive and 1-based. A rectangle is
// proper when I1 < I2 and J1 < J2; the smallest proper rectangle spans a
// 2×2 block of cells.
type Rect struct {
	I1, J1, I2, J2 int
}

// Validate checks that r is a proper rectangle inside an n×n grid.
func (r Rect) Validate(n int) error {
	if r.I1 < 1 || r.J1 < 1 || r.I2 > n || r.J2 > n || r.I1 >= r.I2 || r.J1 >= r.J2 {
		return fmt.Errorf("%w: %v in %d×%d grid", ErrRectOutOfBounds, r, n, n)
	}
	return nil
}

// unit reports whether r spans exactly a 2×2 block, the footprint of a
// drip move.
func (r Rect) unit() bool {
	return r.I2 == r.I1+1 && r.J2 == r.J1+1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.I1, r.J1, r.I2, r.J2)
}
