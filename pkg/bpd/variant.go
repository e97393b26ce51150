package bpd

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by [ParseVariant] for unrecognized names.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant selects a move set for enumeration.
type Variant string

const (
	// VariantDroop enumerates under droop moves only.
	VariantDroop Variant = "droop"

	// VariantK enumerates under droops and K-droops.
	VariantK Variant = "k"

	// VariantFlat enumerates flat grids under flat drops.
	VariantFlat Variant = "flat"

	// VariantTop enumerates top-flat grids under drips and anchored
	// flat drops.
	VariantTop Variant = "top"
)

// ParseVariant maps a name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantDroop, VariantK, VariantFlat, VariantTop:
		return Variant(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) String() string { return string(v) }

// Enumerate starts the orbit enumeration of w under v's move set.
func (v Variant) Enumerate(w Perm) (*Enumerator, error) {
	switch v {
	case VariantDroop:
		return Enumerate(w)
	case VariantK:
		return EnumerateK(w)
	case VariantFlat:
		return EnumerateFlat(w)
	case VariantTop:
		return EnumerateTop(w)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
}

// Successors returns every grid reachable from b by one move of v's
// move set, deduplicated.
func (v Variant) Successors(b Grid) []Grid {
	switch v {
	case VariantK:
		return kSuccessors(b)
	case VariantFlat:
		return flatSuccessors(b)
	case VariantTop:
		return topSuccessors(b)
	default:
		return droopSuccessors(b)
	}
}
