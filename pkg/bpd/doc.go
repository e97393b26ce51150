// Package bpd implements bumpless pipe dreams: square tilings of a grid by
// six pipe tiles whose strands trace out a permutation. It provides the Rothe
// seed construction, the droop family of local moves, flatness normalization,
// pipe-word extraction, the alternating sign matrix correspondence, and
// exhaustive enumeration of the grids reachable from a seed.
//
// # Model
//
// A [Grid] is an n×n array of [Tile] values indexed from 1 in both
// coordinates, row 1 at the top. Pipes enter the grid on the south edge, one
// per column, and exit on the east edge, one per row. Grids are immutable
// values: every move constructor returns a fresh grid and never mutates its
// input, so grids can be shared freely across goroutines and used as map
// keys via [Grid.Key].
//
// # Moves
//
// The move family consists of [Droop], its K-theoretic variant [KDroop], the
// unit-rectangle [Drip], and [FlatDrop] (a droop followed by [MakeFlat]).
// Each has a legality predicate (CanDroop and friends) and each of droop and
// K-droop has an exact inverse ([Undroop], [UnKDroop]). Appliers reject
// illegal moves with an error instead of producing a corrupt grid.
//
// # Enumeration
//
// [Enumerate], [EnumerateK], [EnumerateFlat] and [EnumerateTop] walk the
// reachability graph of a seed under the respective move set, yielding every
// distinct grid exactly once. Enumeration is lazy: grids are produced one at
// a time from [Enumerator.Next], so callers can stop early without paying
// for the full orbit.
package bpd
