package render

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoConverter is returned when the rsvg-convert binary is not on PATH.
var ErrNoConverter = errors.New("rsvg-convert not found (install librsvg: brew install librsvg / apt install librsvg2-bin)")

// converter is the external tool used for SVG rasterization.
const converter = "rsvg-convert"

// ToPDF rasterizes an SVG document to PDF via librsvg.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG rasterizes an SVG document to PNG via librsvg. The scale factor
// multiplies the document's nominal size, so 2.0 doubles the pixel
// dimensions.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func convert(svg []byte, format string, extra ...string) ([]byte, error) {
	path, err := exec.LookPath(converter)
	if err != nil {
		return nil, fmt.Errorf("%s output: %w", format, ErrNoConverter)
	}

	cmd := exec.Command(path, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %v: %s", converter, format, err, stderr.String())
	}
	return out.Bytes(), nil
}
