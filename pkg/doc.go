// Package pkg provides the core libraries for bumpless pipe dream enumeration.
//
// # Overview
//
// Bumpless enumerates bumpless pipe dreams (BPDs): fillings of an n×n grid
// with pipe tiles whose pipes read off a permutation along the boundary. The
// pkg directory is organized into five main areas:
//
//  1. [bpd] - Domain logic (grids, moves, enumeration, ASM conversion)
//  2. [render] - Visualization (text, SVG, Graphviz orbit graphs)
//  3. [pipeline] - Orchestration (enumerate → render, with caching)
//  4. [cache] - Cache backends and content-addressed keys
//  5. [manifest] - Batch job manifests (TOML)
//
// # Architecture
//
// The typical data flow through bumpless:
//
//	Permutation (one-line notation)
//	         ↓
//	    [bpd] package (Rothe seed + move closure)
//	         ↓
//	    [pipeline] package (orbit enumeration + cache)
//	         ↓
//	    [render] package (text, DOT, SVG)
//	         ↓
//	    Text/JSON/SVG/PDF/PNG output
//
// # Quick Start
//
// Enumerate the droop orbit of a permutation and render it:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/bumpless/pkg/bpd"
//	    "github.com/matzehuels/bumpless/pkg/pipeline"
//	)
//
//	// 1. Enumerate the orbit
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Perm:    []int{3, 2, 5, 1, 4},
//	    Variant: string(bpd.VariantDroop),
//	    Formats: []string{pipeline.FormatText, pipeline.FormatSVG},
//	})
//
//	// 2. Inspect the grids
//	for _, g := range res.Grids {
//	    _ = g.String()
//	}
//
// # Main Packages
//
// [bpd] - Grids, tiles, permutations, Rothe seeds, the droop/K-droop/flat/top
// move families, lazy orbit enumeration, and conversion to alternating sign
// matrices.
//
// [render] - Text rendering (ASCII and Unicode box drawing), per-grid SVG,
// and Graphviz orbit graphs (DOT, and rasterized SVG/PDF/PNG).
//
// [pipeline] - The enumerate-then-render pipeline shared by all CLI commands.
// Handles validation, caching, and observability hooks.
//
// [cache] - Cache interface with file, Redis, and null backends, plus
// content-addressed keys derived from enumeration inputs.
//
// [manifest] - TOML manifests describing batches of enumeration jobs with
// shared defaults.
//
// [observability] - Process-wide hook registry for enumeration, rendering,
// and cache events.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/bpd/...      # Specific package
//	go test -run Example       # Examples only
//
// [bpd]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/bpd
// [render]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/cache
// [manifest]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/manifest
// [observability]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bumpless/pkg/buildinfo
package pkg
