package bpd

import (
	"errors"
	"testing"
)

// The move tests share a family of grids for w = [3,2,5,1,4]: the Rothe
// seed, its two droop images, and the one extra grid reachable only
// through a K-droop.
func seedGrid(t *testing.T) Grid {
	return mustGrid(t,
		"..r--",
		".r+--",
		".||.r",
		"r++-+",
		"|||r+",
	)
}

func droopedHigh(t *testing.T) Grid {
	return mustGrid(t,
		"...r-",
		".r-+-",
		".|rjr",
		"r++-+",
		"|||r+",
	)
}

func droopedLow(t *testing.T) Grid {
	return mustGrid(t,
		"..r--",
		"..|r-",
		".r+jr",
		"r++-+",
		"|||r+",
	)
}

func kDrooped(t *testing.T) Grid {
	return mustGrid(t,
		"...r-",
		"..r+-",
		".r+jr",
		"r++-+",
		"|||r+",
	)
}

func TestCanDroop(t *testing.T) {
	b := seedGrid(t)
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"high corner", Rect{1, 3, 3, 4}, true},
		{"low corner", Rect{2, 2, 3, 4}, true},
		{"no elbow at northwest", Rect{1, 1, 3, 4}, false},
		{"no blank at southeast", Rect{1, 3, 2, 4}, false},
		{"stray elbow inside", Rect{1, 3, 3, 5}, false},
		{"improper rectangle", Rect{3, 3, 3, 4}, false},
		{"out of bounds", Rect{1, 3, 6, 4}, false},
	}
	for _, tc := range tests {
		if got := CanDroop(b, tc.r); got != tc.want {
			t.Errorf("%s: CanDroop(%v) = %v, want %v", tc.name, tc.r, got, tc.want)
		}
	}
}

func TestDroopRewritesRectangle(t *testing.T) {
	b := seedGrid(t)
	high, err := Droop(b, Rect{1, 3, 3, 4})
	if err != nil {
		t.Fatalf("droop high: %v", err)
	}
	if !high.Equal(droopedHigh(t)) {
		t.Errorf("droop high:\n%v\nwant\n%v", high, droopedHigh(t))
	}
	low, err := Droop(b, Rect{2, 2, 3, 4})
	if err != nil {
		t.Fatalf("droop low: %v", err)
	}
	if !low.Equal(droopedLow(t)) {
		t.Errorf("droop low:\n%v\nwant\n%v", low, droopedLow(t))
	}
}

func TestDroopErrors(t *testing.T) {
	b := seedGrid(t)
	if _, err := Droop(b, Rect{1, 3, 6, 4}); !errors.Is(err, ErrRectOutOfBounds) {
		t.Errorf("out-of-bounds rect: got %v, want ErrRectOutOfBounds", err)
	}
	if _, err := Droop(b, Rect{1, 1, 3, 4}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("illegal droop: got %v, want ErrIllegalMove", err)
	}
}

func TestUndroopInvertsDroop(t *testing.T) {
	b := seedGrid(t)
	for _, r := range []Rect{{1, 3, 3, 4}, {2, 2, 3, 4}} {
		moved, err := Droop(b, r)
		if err != nil {
			t.Fatalf("droop %v: %v", r, err)
		}
		if !CanUndroop(moved, r) {
			t.Fatalf("CanUndroop(%v) = false on a droop image", r)
		}
		back, err := Undroop(moved, r)
		if err != nil {
			t.Fatalf("undroop %v: %v", r, err)
		}
		if !back.Equal(b) {
			t.Errorf("undroop %v did not restore the grid:\n%v", r, back)
		}
	}
}

func TestUndroopRoundTripAcrossOrbit(t *testing.T) {
	// Every legal droop on every grid of a few orbits must invert exactly.
	for _, w := range []Perm{{3, 2, 5, 1, 4}, {3, 1, 5, 2, 4}, {2, 1, 4, 3}} {
		e, err := Enumerate(w)
		if err != nil {
			t.Fatalf("Enumerate(%v): %v", w, err)
		}
		for _, b := range e.Collect() {
			forEachRect(b.Size(), func(r Rect) {
				if !CanDroop(b, r) {
					return
				}
				moved, err := Droop(b, r)
				if err != nil {
					t.Fatalf("droop %v: %v", r, err)
				}
				back, err := Undroop(moved, r)
				if err != nil {
					t.Fatalf("undroop %v: %v", r, err)
				}
				if !back.Equal(b) {
					t.Errorf("round trip failed for %v on\n%v", r, b)
				}
			})
		}
	}
}

func TestKDroopReachesSameGridFromBothSides(t *testing.T) {
	// The two droop images of the seed admit K-droops on different
	// rectangles that land on the same grid.
	fromHigh, err := KDroop(droopedHigh(t), Rect{2, 2, 3, 4})
	if err != nil {
		t.Fatalf("K-droop from high: %v", err)
	}
	fromLow, err := KDroop(droopedLow(t), Rect{1, 3, 3, 4})
	if err != nil {
		t.Fatalf("K-droop from low: %v", err)
	}
	want := kDrooped(t)
	if !fromHigh.Equal(want) {
		t.Errorf("K-droop from high:\n%v\nwant\n%v", fromHigh, want)
	}
	if !fromLow.Equal(want) {
		t.Errorf("K-droop from low:\n%v\nwant\n%v", fromLow, want)
	}
}

func TestCanKDroop(t *testing.T) {
	if CanKDroop(seedGrid(t), Rect{2, 2, 3, 4}) {
		t.Error("K-droop needs a j-elbow at the southeast corner")
	}
	if !CanKDroop(droopedHigh(t), Rect{2, 2, 3, 4}) {
		t.Error("expected legal K-droop on the high droop image")
	}
	if CanKDroop(kDrooped(t), Rect{2, 3, 3, 4}) {
		t.Error("corner pair (+,+) must not admit a K-droop")
	}
}

func TestUnKDroopInvertsKDroop(t *testing.T) {
	cases := []struct {
		start Grid
		r     Rect
	}{
		{droopedHigh(t), Rect{2, 2, 3, 4}},
		{droopedLow(t), Rect{1, 3, 3, 4}},
	}
	for _, tc := range cases {
		moved, err := KDroop(tc.start, tc.r)
		if err != nil {
			t.Fatalf("K-droop %v: %v", tc.r, err)
		}
		if !CanUnKDroop(moved, tc.r) {
			t.Fatalf("CanUnKDroop(%v) = false on a K-droop image", tc.r)
		}
		back, err := UnKDroop(moved, tc.r)
		if err != nil {
			t.Fatalf("unK-droop %v: %v", tc.r, err)
		}
		if !back.Equal(tc.start) {
			t.Errorf("unK-droop %v did not restore the grid:\n%v", tc.r, back)
		}
	}
}

func TestUnKDroopRoundTripAcrossOrbit(t *testing.T) {
	for _, w := range []Perm{{3, 2, 5, 1, 4}, {3, 1, 5, 2, 4}} {
		e, err := EnumerateK(w)
		if err != nil {
			t.Fatalf("EnumerateK(%v): %v", w, err)
		}
		for _, b := range e.Collect() {
			forEachRect(b.Size(), func(r Rect) {
				if !CanKDroop(b, r) {
					return
				}
				moved, err := KDroop(b, r)
				if err != nil {
					t.Fatalf("K-droop %v: %v", r, err)
				}
				back, err := UnKDroop(moved, r)
				if err != nil {
					t.Fatalf("unK-droop %v: %v", r, err)
				}
				if !back.Equal(b) {
					t.Errorf("K round trip failed for %v on\n%v", r, b)
				}
			})
		}
	}
}

func TestDrip(t *testing.T) {
	b := mustGrid(t,
		"..r--",
		"r-+--",
		"|.|.r",
		"|r+-+",
		"|||r+",
	)
	if !CanDrip(b, 2, 1) {
		t.Fatal("expected legal drip at (2,1)")
	}
	if CanDrip(b, 1, 3) {
		t.Error("drip needs a blank on the southeast diagonal")
	}
	got, err := Drip(b, 2, 1)
	if err != nil {
		t.Fatalf("Drip: %v", err)
	}
	want := mustGrid(t,
		"..r--",
		".r+--",
		"rj|.r",
		"|r+-+",
		"|||r+",
	)
	if !got.Equal(want) {
		t.Errorf("drip result:\n%v\nwant\n%v", got, want)
	}
	if _, err := Drip(b, 5, 5); !errors.Is(err, ErrRectOutOfBounds) {
		t.Errorf("drip at the corner: got %v, want ErrRectOutOfBounds", err)
	}
}

func TestCanFlatDrop(t *testing.T) {
	b := seedGrid(t)
	if !CanFlatDrop(b, Rect{1, 3, 3, 4}) {
		t.Error("expected legal flat drop on the seed")
	}
	if CanFlatDrop(b, Rect{2, 3, 3, 4}) {
		t.Error("flat drop must reject the drip-sized rectangle")
	}
	// A blank on the south border between corners blocks the move.
	top := mustGrid(t,
		"...r-",
		"r--+-",
		"|.rjr",
		"|r+-+",
		"|||r+",
	)
	if CanFlatDrop(top, Rect{2, 1, 3, 4}) {
		t.Error("flat drop must reject a blank on the border")
	}
}

func TestFlatDropStaysFlat(t *testing.T) {
	b := seedGrid(t)
	if !IsFlat(b) {
		t.Fatal("seed grid should be flat")
	}
	got, err := FlatDrop(b, Rect{1, 3, 3, 4})
	if err != nil {
		t.Fatalf("FlatDrop: %v", err)
	}
	if !IsFlat(got) {
		t.Errorf("flat drop produced a non-flat grid:\n%v", got)
	}
	if !got.Equal(droopedHigh(t)) {
		t.Errorf("flat drop result:\n%v\nwant\n%v", got, droopedHigh(t))
	}
}
