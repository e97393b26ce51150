package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/bumpless/pkg/bpd"
)

// DOTOptions configures orbit graph emission.
type DOTOptions struct {
	// Unicode uses box-drawing tiles in node labels.
	Unicode bool
}

// OrbitDOT converts an orbit to Graphviz DOT format. Each grid becomes
// a node labelled with its rows; each legal move of v between two orbit
// members becomes a directed edge. The resulting DOT string can be
// rendered with [DOTSVG], [DOTPDF], or [DOTPNG].
func OrbitDOT(grids []bpd.Grid, v bpd.Variant, opts DOTOptions) string {
	names := make(map[string]string, len(grids))
	for idx, g := range grids {
		names[g.Key()] = fmt.Sprintf("g%d", idx)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph orbit {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Courier\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for idx, g := range grids {
		fmt.Fprintf(&buf, "  g%d [label=\"%s\"];\n", idx, fmtNodeLabel(g, opts.Unicode))
	}

	buf.WriteString("\n")
	for idx, g := range grids {
		for _, s := range v.Successors(g) {
			if to, ok := names[s.Key()]; ok {
				fmt.Fprintf(&buf, "  g%d -> %s;\n", idx, to)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// fmtNodeLabel joins the grid's rows with left-justified line breaks so
// Graphviz keeps the tiles column-aligned.
func fmtNodeLabel(g bpd.Grid, unicode bool) string {
	tiles := asciiTiles
	if unicode {
		tiles = unicodeTiles
	}

	n := g.Size()
	rows := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		var sb strings.Builder
		for j := 1; j <= n; j++ {
			sb.WriteRune(tiles[g.At(i, j)])
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, `\l`) + `\l`
}

// DOTSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [ToPDF] or [ToPNG].
func DOTSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// DOTPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [DOTSVG] and [ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func DOTPDF(dot string) ([]byte, error) {
	svg, err := DOTSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// DOTPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [DOTSVG] and [ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func DOTPNG(dot string, scale float64) ([]byte, error) {
	svg, err := DOTSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
