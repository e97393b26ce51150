package pipeline

import (
	"fmt"
	"strings"

	"github.com/matzehuels/bumpless/pkg/bpd"
	"github.com/matzehuels/bumpless/pkg/render"
)

// Render generates output artifacts in the requested formats.
func Render(grids []bpd.Grid, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	variant := bpd.Variant(opts.Variant)

	// The graph formats share one DOT emission.
	var dot string
	needsDOT := false
	for _, f := range opts.Formats {
		switch f {
		case FormatDOT, FormatSVG, FormatPNG, FormatPDF:
			needsDOT = true
		}
	}
	if needsDOT {
		dot = render.OrbitDOT(grids, variant, render.DOTOptions{Unicode: opts.Unicode})
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatText:
			data = []byte(renderText(grids, opts))
		case FormatJSON:
			data, err = MarshalOrbit(grids)
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = render.DOTSVG(dot)
		case FormatPNG:
			data, err = render.DOTPNG(dot, 2.0)
		case FormatPDF:
			data, err = render.DOTPDF(dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderText(grids []bpd.Grid, opts Options) string {
	blocks := make([]string, 0, len(grids))
	for _, g := range grids {
		blocks = append(blocks, render.Text(g, render.TextOptions{Unicode: opts.Unicode}))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
