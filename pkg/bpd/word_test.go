package bpd

import "testing"

func TestCountPipes(t *testing.T) {
	b := kDrooped(t)
	tests := []struct {
		i, j, want int
	}{
		{2, 4, 1}, // only blanks on the diagonal
		{4, 3, 2}, // one elbow northwest
		{4, 5, 3},
		{5, 5, 4}, // a cross counts double
		{4, 1, 1}, // edge cell, nothing northwest
	}
	for _, tc := range tests {
		if got := b.CountPipes(tc.i, tc.j); got != tc.want {
			t.Errorf("CountPipes(%d,%d) = %d, want %d", tc.i, tc.j, got, tc.want)
		}
	}
}

func TestWordOfDroopImage(t *testing.T) {
	got := droopedHigh(t).Word()
	want := []int{1, 2, 4, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("Word() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Word() = %v, want %v", got, want)
		}
	}
}

func TestPermRecoversSeedPermutation(t *testing.T) {
	w := Perm{3, 2, 5, 1, 4}
	e, err := EnumerateK(w)
	if err != nil {
		t.Fatalf("EnumerateK: %v", err)
	}
	for _, b := range e.Collect() {
		if got := b.Perm(); !got.Equal(w) {
			t.Errorf("Perm() = %v, want %v for\n%v", got, w, b)
		}
	}
}

func TestPermNormalizesOffsetRange(t *testing.T) {
	// A permutation of {2,3,4} recovers as its normalized form.
	w := Perm{4, 2, 3}
	b, err := Rothe(w)
	if err != nil {
		t.Fatalf("Rothe: %v", err)
	}
	if got := b.Perm(); !got.Equal(w.Normalized()) {
		t.Errorf("Perm() = %v, want %v", got, w.Normalized())
	}
}

func TestIsReduced(t *testing.T) {
	if !seedGrid(t).IsReduced() {
		t.Error("Rothe seed must be reduced")
	}
	if !droopedHigh(t).IsReduced() {
		t.Error("droop image must be reduced")
	}
	if kDrooped(t).IsReduced() {
		t.Error("K-droop image gains a crossing and must not be reduced")
	}
}
