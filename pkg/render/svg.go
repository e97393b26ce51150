package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/bumpless/pkg/bpd"
)

// SVGOption configures grid SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cell      float64
	stroke    string
	width     float64
	gridLines bool
}

// WithCellSize sets the side length of a tile in pixels.
func WithCellSize(px float64) SVGOption { return func(r *svgRenderer) { r.cell = px } }

// WithStroke sets the pipe stroke color.
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// WithGridLines draws a light lattice behind the pipes.
func WithGridLines() SVGOption { return func(r *svgRenderer) { r.gridLines = true } }

// GridSVG renders a grid as an SVG tile diagram. Pipes are drawn as
// strokes through cell centers, with elbows as quarter turns.
func GridSVG(b bpd.Grid, opts ...SVGOption) []byte {
	r := svgRenderer{cell: 40, stroke: "#1a1a2e", width: 3}
	for _, opt := range opts {
		opt(&r)
	}

	n := b.Size()
	side := r.cell * float64(n)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		side, side, side, side)

	if r.gridLines {
		r.renderLattice(&buf, n, side)
	}

	fmt.Fprintf(&buf, `  <g fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round">`+"\n", r.stroke, r.width)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			r.renderTile(&buf, b.At(i, j), i, j)
		}
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderLattice(buf *bytes.Buffer, n int, side float64) {
	fmt.Fprintf(buf, `  <g stroke="#d0d0d8" stroke-width="1">`+"\n")
	for k := 0; k <= n; k++ {
		p := r.cell * float64(k)
		fmt.Fprintf(buf, `    <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", p, side, p)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f"/>`+"\n", p, p, side)
	}
	buf.WriteString("  </g>\n")
}

// renderTile draws the strokes for one cell. Cell (i, j) spans from
// (left, top); pipe segments run through the cell center.
func (r *svgRenderer) renderTile(buf *bytes.Buffer, t bpd.Tile, i, j int) {
	left := r.cell * float64(j-1)
	top := r.cell * float64(i-1)
	cx := left + r.cell/2
	cy := top + r.cell/2
	right := left + r.cell
	bottom := top + r.cell

	switch t {
	case bpd.Vertical:
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", cx, top, cx, bottom)
	case bpd.Horizontal:
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", left, cy, right, cy)
	case bpd.Cross:
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", cx, top, cx, bottom)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", left, cy, right, cy)
	case bpd.RElbow:
		// south edge to east edge
		fmt.Fprintf(buf, `    <path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f"/>`+"\n", cx, bottom, cx, cy, right, cy)
	case bpd.JElbow:
		// north edge to west edge
		fmt.Fprintf(buf, `    <path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f"/>`+"\n", cx, top, cx, cy, left, cy)
	}
}
