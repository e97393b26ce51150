// Package render turns bumpless pipe dream grids into visual outputs.
//
// # Overview
//
// Three renderers are provided:
//
//   - [Text] draws a single grid with ASCII or box-drawing tiles,
//     optionally highlighting a rectangle for terminal display.
//   - [GridSVG] draws a single grid as an SVG tile diagram where pipes
//     appear as connected strokes.
//   - [OrbitDOT] draws a whole orbit as a Graphviz move graph, with one
//     node per grid and one edge per legal move between orbit members.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). They apply to
// both grid diagrams and rendered orbit graphs.
//
//	svg := render.GridSVG(b)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Orbit Graphs
//
// Orbit graphs are emitted as DOT text and rasterized with Graphviz:
//
//	dot := render.OrbitDOT(grids, bpd.VariantDroop, render.DOTOptions{})
//	svg, err := render.DOTSVG(dot)
package render
