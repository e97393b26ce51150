package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/bumpless/pkg/pipeline"
)

// formatExts maps output formats to file extensions.
var formatExts = map[string]string{
	pipeline.FormatText: "txt",
	pipeline.FormatJSON: "json",
	pipeline.FormatDOT:  "dot",
	pipeline.FormatSVG:  "svg",
	pipeline.FormatPNG:  "png",
	pipeline.FormatPDF:  "pdf",
}

// textual formats go to stdout when no output path is given.
var stdoutFormats = map[string]bool{
	pipeline.FormatText: true,
	pipeline.FormatJSON: true,
	pipeline.FormatDOT:  true,
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	output    string // file (single format), base path (multiple), or empty
	base      string // fallback base name when output is empty
}

// writeArtifacts writes rendered artifacts to disk or stdout.
//
// With a single textual format and no output path, the artifact goes to
// stdout. Otherwise each format is written to <output>.<ext>, or exactly
// to output when it already carries the format's extension.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "" && len(p.formats) == 1 && stdoutFormats[p.formats[0]] {
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	base := p.output
	if base == "" {
		base = p.base
	}

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("missing artifact for format %s", format)
		}
		path := artifactPath(base, format, len(p.formats) == 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Wrote %d artifact(s)", len(written))
	for _, path := range written {
		printFile(path)
	}
	return nil
}

// artifactPath derives the output path for one format. A single-format
// output path that already ends in the right extension is used verbatim.
func artifactPath(base, format string, single bool) string {
	ext := "." + formatExts[format]
	if single && filepath.Ext(base) == ext {
		return base
	}
	return base + ext
}
