package bpd

// Tile is one of the six square tiles a grid cell can hold. Each tile is a
// fragment of pipe (or the absence of one); the strands of adjacent tiles
// join across shared cell edges.
type Tile byte

const (
	// Blank holds no pipe.
	Blank Tile = '.'
	// Cross carries two strands, one north-south and one east-west.
	Cross Tile = '+'
	// RElbow turns a pipe between the south and east edges.
	RElbow Tile = 'r'
	// JElbow turns a pipe between the north and west edges.
	JElbow Tile = 'j'
	// Vertical carries a single north-south strand.
	Vertical Tile = '|'
	// Horizontal carries a single east-west strand.
	Horizontal Tile = '-'
)

// Valid reports whether t is one of the six recognized tiles.
func (t Tile) Valid() bool {
	switch t {
	case Blank, Cross, RElbow, JElbow, Vertical, Horizontal:
		return true
	}
	return false
}

// IsElbow reports whether t is one of the two elbow tiles.
func (t Tile) IsElbow() bool { return t == RElbow || t == JElbow }

// String returns the single-character display form of the tile.
func (t Tile) String() string { return string(rune(t)) }

// hasEast reports whether t carries a strand through its east edge.
func (t Tile) hasEast() bool {
	return t == Cross || t == RElbow || t == Horizontal
}

// hasNorth reports whether t carries a strand through its north edge.
func (t Tile) hasNorth() bool {
	return t == Cross || t == JElbow || t == Vertical
}
