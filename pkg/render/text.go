package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bumpless/pkg/bpd"
)

// Tile charsets for terminal display. The ASCII set matches the grid's
// own string form; the Unicode set uses box-drawing runs so pipes read
// as connected strokes.
var (
	asciiTiles = map[bpd.Tile]rune{
		bpd.Blank:      '.',
		bpd.Cross:      '+',
		bpd.RElbow:     'r',
		bpd.JElbow:     'j',
		bpd.Vertical:   '|',
		bpd.Horizontal: '-',
	}

	unicodeTiles = map[bpd.Tile]rune{
		bpd.Blank:      '·',
		bpd.Cross:      '┼',
		bpd.RElbow:     '╭',
		bpd.JElbow:     '╯',
		bpd.Vertical:   '│',
		bpd.Horizontal: '─',
	}
)

var highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

// TextOptions configures terminal rendering of a grid.
type TextOptions struct {
	// Unicode selects box-drawing tiles instead of ASCII.
	Unicode bool

	// Highlight marks the corners of a rectangle, typically the one a
	// move is about to act on. Nil disables highlighting.
	Highlight *bpd.Rect
}

// Text renders a grid for terminal display, one row per line.
func Text(b bpd.Grid, opts TextOptions) string {
	tiles := asciiTiles
	if opts.Unicode {
		tiles = unicodeTiles
	}

	n := b.Size()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cell := string(tiles[b.At(i, j)])
			if opts.Highlight != nil && isCorner(*opts.Highlight, i, j) {
				cell = highlightStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
		if i < n {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func isCorner(r bpd.Rect, i, j int) bool {
	return (i == r.I1 || i == r.I2) && (j == r.J1 || j == r.J2)
}
