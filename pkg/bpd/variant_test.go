package bpd

import (
	"errors"
	"testing"
)

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"droop", "k", "flat", "top"} {
		v, err := ParseVariant(name)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", name, err)
		}
		if v.String() != name {
			t.Errorf("ParseVariant(%q) = %q", name, v)
		}
	}

	if _, err := ParseVariant("bogus"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseVariant(bogus) err = %v, want ErrUnknownVariant", err)
	}
}

func TestVariantEnumerateMatchesConstructors(t *testing.T) {
	w := Perm{3, 2, 5, 1, 4}
	counts := map[Variant]int{
		VariantDroop: 3,
		VariantK:     4,
		VariantFlat:  3,
	}
	for v, want := range counts {
		e, err := v.Enumerate(w)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if got := len(e.Collect()); got != want {
			t.Errorf("%s orbit size = %d, want %d", v, got, want)
		}
	}

	e, err := VariantTop.Enumerate(Perm{3, 1, 5, 2, 4})
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if got := len(e.Collect()); got != 5 {
		t.Errorf("top orbit size = %d, want 5", got)
	}
}

func TestVariantSuccessors(t *testing.T) {
	seed, err := Rothe(Perm{3, 2, 5, 1, 4})
	if err != nil {
		t.Fatal(err)
	}

	if got := len(VariantDroop.Successors(seed)); got != 2 {
		t.Errorf("droop successors of seed = %d, want 2", got)
	}
	if got := len(VariantK.Successors(seed)); got < 2 {
		t.Errorf("k successors of seed = %d, want at least the droops", got)
	}

	if _, err := VariantDroop.Enumerate(Perm{1, 1}); err == nil {
		t.Error("Enumerate accepted invalid perm")
	}
}
