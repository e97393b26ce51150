package bpd

import (
	"errors"
	"fmt"
)

// ErrIllegalMove reports a move whose legality predicate does not hold for
// the given grid and rectangle.
var ErrIllegalMove = errors.New("illegal move")

// ===== Droop =====

// CanDroop reports whether the droop move is legal on r: an r-elbow at the
// northwest corner, a blank at the southeast corner, and no other elbow
// anywhere in the rectangle. Improper rectangles are never legal.
func CanDroop(b Grid, r Rect) bool {
	if r.Validate(b.n) != nil {
		return false
	}
	if b.At(r.I1, r.J1) != RElbow || b.At(r.I2, r.J2) != Blank {
		return false
	}
	for i := r.I1; i <= r.I2; i++ {
		for j := r.J1; j <= r.J2; j++ {
			if i == r.I1 && j == r.J1 {
				continue
			}
			if b.At(i, j).IsElbow() {
				return false
			}
		}
	}
	return true
}

// Droop slides the pipe turning at the northwest corner of r so that it
// turns at the southeast corner instead. The input grid is unchanged.
func Droop(b Grid, r Rect) (Grid, error) {
	if err := r.Validate(b.n); err != nil {
		return Grid{}, err
	}
	if !CanDroop(b, r) {
		return Grid{}, fmt.Errorf("%w: droop %v", ErrIllegalMove, r)
	}
	return applyDroop(b, r), nil
}

// applyDroop performs the droop rewrite without checking legality. Drip and
// the flatness normalizer reuse it on rectangles where full droop legality
// does not hold, so the corner rules cover the elbow cases too.
func applyDroop(b Grid, r Rect) Grid {
	c := b.clone()
	c.set(r.I1, r.J1, Blank)
	c.set(r.I2, r.J2, JElbow)
	c.rewrite(r.I1, r.J2, [2]Tile{Horizontal, RElbow}, [2]Tile{JElbow, Vertical})
	c.rewrite(r.I2, r.J1, [2]Tile{Vertical, RElbow}, [2]Tile{JElbow, Horizontal})
	for j := r.J1 + 1; j < r.J2; j++ {
		c.rewrite(r.I1, j, [2]Tile{Horizontal, Blank}, [2]Tile{Cross, Vertical})
		c.rewrite(r.I2, j, [2]Tile{Blank, Horizontal}, [2]Tile{Vertical, Cross})
	}
	for i := r.I1 + 1; i < r.I2; i++ {
		c.rewrite(i, r.J1, [2]Tile{Vertical, Blank}, [2]Tile{Cross, Horizontal})
		c.rewrite(i, r.J2, [2]Tile{Blank, Vertical}, [2]Tile{Horizontal, Cross})
	}
	return c
}

// CanUndroop reports whether r holds the exact image of a droop, so that
// [Undroop] restores the pre-move grid.
func CanUndroop(b Grid, r Rect) bool {
	if r.Validate(b.n) != nil {
		return false
	}
	if b.At(r.I1, r.J1) != Blank || b.At(r.I2, r.J2) != JElbow {
		return false
	}
	if b.At(r.I1, r.J2) == JElbow || b.At(r.I2, r.J1) == JElbow {
		return false
	}
	for j := r.J1 + 1; j < r.J2; j++ {
		if t := b.At(r.I1, j); t != Blank && t != Vertical {
			return false
		}
		if t := b.At(r.I2, j); t != Horizontal && t != Cross {
			return false
		}
	}
	for i := r.I1 + 1; i < r.I2; i++ {
		if t := b.At(i, r.J1); t != Blank && t != Horizontal {
			return false
		}
		if t := b.At(i, r.J2); t != Vertical && t != Cross {
			return false
		}
		for j := r.J1 + 1; j < r.J2; j++ {
			if b.At(i, j).IsElbow() {
				return false
			}
		}
	}
	return true
}

// Undroop inverts [Droop] on the same rectangle:
// Undroop(Droop(b, r), r) == b whenever the droop was legal.
func Undroop(b Grid, r Rect) (Grid, error) {
	if err := r.Validate(b.n); err != nil {
		return Grid{}, err
	}
	if !CanUndroop(b, r) {
		return Grid{}, fmt.Errorf("%w: undroop %v", ErrIllegalMove, r)
	}
	c := b.clone()
	c.set(r.I1, r.J1, RElbow)
	c.set(r.I2, r.J2, Blank)
	c.rewrite(r.I1, r.J2, [2]Tile{RElbow, Horizontal}, [2]Tile{Vertical, JElbow})
	c.rewrite(r.I2, r.J1, [2]Tile{RElbow, Vertical}, [2]Tile{Horizontal, JElbow})
	for j := r.J1 + 1; j < r.J2; j++ {
		c.rewrite(r.I1, j, [2]Tile{Blank, Horizontal}, [2]Tile{Vertical, Cross})
		c.rewrite(r.I2, j, [2]Tile{Horizontal, Blank}, [2]Tile{Cross, Vertical})
	}
	for i := r.I1 + 1; i < r.I2; i++ {
		c.rewrite(i, r.J1, [2]Tile{Blank, Vertical}, [2]Tile{Horizontal, Cross})
		c.rewrite(i, r.J2, [2]Tile{Vertical, Blank}, [2]Tile{Cross, Horizontal})
	}
	return c, nil
}

// ===== K-droop =====

// CanKDroop reports whether the K-theoretic droop is legal on r. Unlike a
// plain droop the southeast corner already holds a j-elbow: the drooping
// pipe trades tails with the pipe turning there and picks up one extra
// crossing. Legality pins the remaining corners to one of two patterns,
// keeps the north and west borders solid pipe, and allows a single r-elbow
// on the south row or east column (the cell that gets straightened).
func CanKDroop(b Grid, r Rect) bool {
	if r.Validate(b.n) != nil {
		return false
	}
	if b.At(r.I1, r.J1) != RElbow || b.At(r.I2, r.J2) != JElbow {
		return false
	}
	ne, sw := b.At(r.I1, r.J2), b.At(r.I2, r.J1)
	if !(ne == Cross && sw == Vertical) && !(ne == Horizontal && sw == Cross) {
		return false
	}
	elbows := 0
	for j := r.J1 + 1; j < r.J2; j++ {
		if t := b.At(r.I1, j); t != Cross && t != Horizontal {
			return false
		}
		switch b.At(r.I2, j) {
		case JElbow:
			return false
		case RElbow:
			elbows++
		}
	}
	for i := r.I1 + 1; i < r.I2; i++ {
		if t := b.At(i, r.J1); t != Cross && t != Vertical {
			return false
		}
		switch b.At(i, r.J2) {
		case JElbow:
			return false
		case RElbow:
			elbows++
		}
		for j := r.J1 + 1; j < r.J2; j++ {
			if b.At(i, j).IsElbow() {
				return false
			}
		}
	}
	return elbows <= 1
}

// kPivots locates the virtual corner of a K-droop: the first r-elbow on the
// east column (row ii) or on the south row (column jj). When a border holds
// no r-elbow the pivot degenerates to the true corner.
func kPivots(b Grid, r Rect) (ii, jj int) {
	ii, jj = r.I2, r.J2
	for i := r.I1 + 1; i < r.I2; i++ {
		if b.At(i, r.J2) == RElbow {
			ii = i
			break
		}
	}
	for j := r.J1 + 1; j < r.J2; j++ {
		if b.At(r.I2, j) == RElbow {
			jj = j
			break
		}
	}
	return ii, jj
}

// KDroop applies the K-theoretic droop on r. The drooping pipe is rerouted
// through the virtual corner, whose r-elbow straightens into a cross; the
// j-elbow at the southeast corner is untouched and now turns the drooping
// pipe, while the displaced pipe exits along the old path of the drooper.
func KDroop(b Grid, r Rect) (Grid, error) {
	if err := r.Validate(b.n); err != nil {
		return Grid{}, err
	}
	if !CanKDroop(b, r) {
		return Grid{}, fmt.Errorf("%w: K-droop %v", ErrIllegalMove, r)
	}
	ii, jj := kPivots(b, r)
	c := b.clone()
	c.set(r.I1, r.J1, Blank)
	for j := r.J1 + 1; j < jj; j++ {
		c.rewrite(r.I1, j, [2]Tile{Horizontal, Blank}, [2]Tile{Cross, Vertical})
		c.rewrite(r.I2, j, [2]Tile{Blank, Horizontal}, [2]Tile{Vertical, Cross})
	}
	c.rewrite(r.I1, jj, [2]Tile{Horizontal, RElbow}, [2]Tile{JElbow, Vertical})
	for i := r.I1 + 1; i < ii; i++ {
		c.rewrite(i, r.J1, [2]Tile{Vertical, Blank}, [2]Tile{Cross, Horizontal})
		c.rewrite(i, r.J2, [2]Tile{Blank, Vertical}, [2]Tile{Horizontal, Cross})
	}
	c.rewrite(ii, r.J1, [2]Tile{Vertical, RElbow}, [2]Tile{JElbow, Horizontal})
	if ii < r.I2 {
		// Straighten the east-column pivot and run the drooping pipe
		// out through its row.
		c.set(ii, r.J2, Cross)
		for j := r.J1 + 1; j < r.J2; j++ {
			c.rewrite(ii, j, [2]Tile{Blank, Horizontal}, [2]Tile{Vertical, Cross})
		}
	}
	if jj < r.J2 {
		// Straighten the south-row pivot and run the displaced pipe
		// north through its column.
		c.set(r.I2, jj, Cross)
		for i := r.I1 + 1; i < r.I2; i++ {
			c.rewrite(i, jj, [2]Tile{Blank, Vertical}, [2]Tile{Horizontal, Cross})
		}
	}
	return c, nil
}

// CanUnKDroop reports whether r holds the image of a K-droop. The virtual
// corner is recovered by scanning the west column and north row for the
// single relocated r-elbow.
func CanUnKDroop(b Grid, r Rect) bool {
	if r.Validate(b.n) != nil {
		return false
	}
	if b.At(r.I1, r.J1) != Blank || b.At(r.I2, r.J2) != JElbow {
		return false
	}
	west, north := 0, 0
	for i := r.I1 + 1; i < r.I2; i++ {
		switch b.At(i, r.J1) {
		case JElbow:
			return false
		case RElbow:
			west++
		}
		for j := r.J1 + 1; j < r.J2; j++ {
			if b.At(i, j).IsElbow() {
				return false
			}
		}
	}
	for j := r.J1 + 1; j < r.J2; j++ {
		switch b.At(r.I1, j) {
		case JElbow:
			return false
		case RElbow:
			north++
		}
	}
	if west > 1 || north > 1 || (west == 1 && north == 1) {
		return false
	}
	return true
}

// unKPivots mirrors kPivots on a post-move grid: the relocated r-elbow sits
// on the west column (row ii) or the north row (column jj).
func unKPivots(b Grid, r Rect) (ii, jj int) {
	ii, jj = r.I2, r.J2
	for i := r.I1 + 1; i < r.I2; i++ {
		if b.At(i, r.J1) == RElbow {
			ii = i
			break
		}
	}
	for j := r.J1 + 1; j < r.J2; j++ {
		if b.At(r.I1, j) == RElbow {
			jj = j
			break
		}
	}
	return ii, jj
}

// UnKDroop inverts [KDroop] on the same rectangle:
// UnKDroop(KDroop(b, r), r) == b whenever the K-droop was legal.
func UnKDroop(b Grid, r Rect) (Grid, error) {
	if err := r.Validate(b.n); err != nil {
		return Grid{}, err
	}
	if !CanUnKDroop(b, r) {
		return Grid{}, fmt.Errorf("%w: unK-droop %v", ErrIllegalMove, r)
	}
	ii, jj := unKPivots(b, r)
	c := b.clone()
	c.set(r.I1, r.J1, RElbow)
	for j := r.J1 + 1; j < jj; j++ {
		c.rewrite(r.I1, j, [2]Tile{Blank, Horizontal}, [2]Tile{Vertical, Cross})
	}
	c.rewrite(r.I1, jj, [2]Tile{RElbow, Horizontal}, [2]Tile{Vertical, JElbow})
	for i := r.I1 + 1; i < ii; i++ {
		c.rewrite(i, r.J1, [2]Tile{Blank, Vertical}, [2]Tile{Horizontal, Cross})
	}
	c.rewrite(ii, r.J1, [2]Tile{RElbow, Vertical}, [2]Tile{Horizontal, JElbow})
	switch {
	case ii < r.I2:
		for i := r.I1 + 1; i < ii; i++ {
			c.rewrite(i, r.J2, [2]Tile{Vertical, Blank}, [2]Tile{Cross, Horizontal})
		}
		c.set(ii, r.J2, RElbow)
		for j := r.J1 + 1; j < r.J2; j++ {
			c.rewrite(ii, j, [2]Tile{Horizontal, Blank}, [2]Tile{Cross, Vertical})
		}
	case jj < r.J2:
		for j := r.J1 + 1; j < jj; j++ {
			c.rewrite(r.I2, j, [2]Tile{Horizontal, Blank}, [2]Tile{Cross, Vertical})
		}
		c.set(r.I2, jj, RElbow)
		for i := r.I1 + 1; i < r.I2; i++ {
			c.rewrite(i, jj, [2]Tile{Vertical, Blank}, [2]Tile{Cross, Horizontal})
		}
	default:
		for i := r.I1 + 1; i < r.I2; i++ {
			c.rewrite(i, r.J2, [2]Tile{Vertical, Blank}, [2]Tile{Cross, Horizontal})
		}
		for j := r.J1 + 1; j < r.J2; j++ {
			c.rewrite(r.I2, j, [2]Tile{Horizontal, Blank}, [2]Tile{Cross, Vertical})
		}
	}
	return c, nil
}

// ===== Drip =====

// CanDrip reports whether the unit droop is legal with its northwest corner
// at (i, j): the 2×2 block must match
//
//	r  j|-
//	j|| .
//
// with the blank in the southeast cell.
func CanDrip(b Grid, i, j int) bool {
	if i < 1 || j < 1 || i+1 > b.n || j+1 > b.n {
		return false
	}
	if b.At(i, j) != RElbow || b.At(i+1, j+1) != Blank {
		return false
	}
	ne, sw := b.At(i, j+1), b.At(i+1, j)
	return (ne == JElbow || ne == Horizontal) && (sw == JElbow || sw == Vertical)
}

// Drip applies the unit droop at (i, j), pushing the local pipe corner one
// step toward the southeast.
func Drip(b Grid, i, j int) (Grid, error) {
	r := Rect{I1: i, J1: j, I2: i + 1, J2: j + 1}
	if err := r.Validate(b.n); err != nil {
		return Grid{}, err
	}
	if !CanDrip(b, i, j) {
		return Grid{}, fmt.Errorf("%w: drip at (%d,%d)", ErrIllegalMove, i, j)
	}
	return applyDroop(b, r), nil
}

// ===== Flat drop =====

// CanFlatDrop reports whether the flat drop is legal on r. The corner
// pattern matches droop, but the rectangle must be larger than the drip
// footprint and the border cells strictly between corners must carry pipe:
// neither elbows nor blanks.
func CanFlatDrop(b Grid, r Rect) bool {
	if r.Validate(b.n) != nil || r.unit() {
		return false
	}
	if b.At(r.I1, r.J1) != RElbow || b.At(r.I2, r.J2) != Blank {
		return false
	}
	for j := r.J1 + 1; j < r.J2; j++ {
		if t := b.At(r.I1, j); t.IsElbow() || t == Blank {
			return false
		}
		if t := b.At(r.I2, j); t.IsElbow() || t == Blank {
			return false
		}
	}
	for i := r.I1 + 1; i < r.I2; i++ {
		if t := b.At(i, r.J1); t.IsElbow() || t == Blank {
			return false
		}
		if t := b.At(i, r.J2); t.IsElbow() || t == Blank {
			return false
		}
		for j := r.J1 + 1; j < r.J2; j++ {
			if b.At(i, j).IsElbow() {
				return false
			}
		}
	}
	return true
}

// FlatDrop droops on r and renormalizes the result with [MakeFlat], so a
// flat input yields a flat output.
func FlatDrop(b Grid, r Rect) (Grid, error) {
	if err := r.Validate(b.n); err != nil {
		return Grid{}, err
	}
	if !CanFlatDrop(b, r) {
		return Grid{}, fmt.Errorf("%w: flat drop %v", ErrIllegalMove, r)
	}
	return makeFlat(applyDroop(b, r), false), nil
}
