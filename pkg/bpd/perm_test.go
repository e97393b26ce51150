package bpd

import (
	"errors"
	"testing"
)

func TestPermValidate(t *testing.T) {
	tests := []struct {
		w  Perm
		ok bool
	}{
		{Perm{1}, true},
		{Perm{3, 1, 2}, true},
		{Perm{5, 4, 7, 3, 6}, true}, // offset contiguous range
		{Perm{}, false},
		{Perm{1, 1}, false},  // duplicate
		{Perm{1, 3}, false},  // gap in range
		{Perm{0, 2}, false},  // gap in range
		{Perm{2, 2, 3}, false},
	}
	for _, tc := range tests {
		err := tc.w.Validate()
		if tc.ok && err != nil {
			t.Errorf("Validate(%v) = %v, want nil", tc.w, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidPerm) {
			t.Errorf("Validate(%v) = %v, want ErrInvalidPerm", tc.w, err)
		}
	}
}

func TestPermLength(t *testing.T) {
	tests := []struct {
		w    Perm
		want int
	}{
		{Identity(4), 0},
		{Perm{2, 1}, 1},
		{Perm{3, 2, 1}, 3},
		{Perm{3, 2, 5, 1, 4}, 5},
	}
	for _, tc := range tests {
		if got := tc.w.Length(); got != tc.want {
			t.Errorf("Length(%v) = %d, want %d", tc.w, got, tc.want)
		}
	}
}

func TestPermNormalized(t *testing.T) {
	w := Perm{5, 4, 7, 3, 6}
	want := Perm{3, 2, 5, 1, 4}
	if got := w.Normalized(); !got.Equal(want) {
		t.Errorf("Normalized(%v) = %v, want %v", w, got, want)
	}
}

func TestDemazureProduct(t *testing.T) {
	tests := []struct {
		word []int
		size int
		want Perm
	}{
		{nil, 3, Identity(3)},
		{[]int{1}, 2, Perm{2, 1}},
		{[]int{1, 2, 1}, 3, Perm{3, 2, 1}},
		{[]int{1, 2, 1, 1}, 3, Perm{3, 2, 1}},     // absorbed letter
		{[]int{1, 1, 1}, 2, Perm{2, 1}},           // idempotent letter
		{[]int{1, 2, 4, 3, 1}, 5, Perm{3, 2, 5, 1, 4}},
		{[]int{3}, 1, Perm{1, 2, 4, 3}},           // size raised to fit
	}
	for _, tc := range tests {
		if got := DemazureProduct(tc.word, tc.size); !got.Equal(tc.want) {
			t.Errorf("DemazureProduct(%v, %d) = %v, want %v", tc.word, tc.size, got, tc.want)
		}
	}
}
