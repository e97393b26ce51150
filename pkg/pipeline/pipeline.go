// Package pipeline provides the core enumeration pipeline.
//
// This package implements the complete enumerate → render pipeline that
// can be used by the CLI and batch runner. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Enumerate: Walk the orbit of a permutation under a move variant
//  2. Render: Generate output in various formats (text, JSON, DOT, SVG, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Perm:    []int{3, 2, 5, 1, 4},
//	    Variant: "droop",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Enumerate only
//	grids, err := runner.Enumerate(ctx, opts)
//
//	// Render an existing orbit
//	artifacts, err := runner.Render(ctx, grids, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bumpless/pkg/bpd"
	"github.com/matzehuels/bumpless/pkg/cache"
)

// DefaultVariant is the move set used when none is requested.
const DefaultVariant = bpd.VariantDroop

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// Options contains all configuration for the enumeration pipeline.
type Options struct {
	// Enumerate options
	Perm    []int  `json:"perm"`
	Variant string `json:"variant,omitempty"`
	Limit   int    `json:"limit,omitempty"` // cap on orbit size, 0 = unbounded
	Refresh bool   `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Unicode bool     `json:"unicode,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution.
	RunID string

	// Grids is the enumerated orbit, seed first.
	Grids []bpd.Grid

	// OrbitHash is the content hash of the serialized orbit.
	OrbitHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GridCount  int
	EnumTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	OrbitHit  bool // Whether the orbit came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: text, json, dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForEnumerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForEnumerate checks required fields for enumeration.
func (o *Options) ValidateForEnumerate() error {
	if err := bpd.Perm(o.Perm).Validate(); err != nil {
		return err
	}
	if o.Variant == "" {
		o.Variant = string(DefaultVariant)
	}
	if _, err := bpd.ParseVariant(o.Variant); err != nil {
		return err
	}
	if o.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", o.Limit)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Variant == "" {
		o.Variant = string(DefaultVariant)
	}
	if _, err := bpd.ParseVariant(o.Variant); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// OrbitKeyOpts returns cache key options for enumeration.
func (o *Options) OrbitKeyOpts() cache.OrbitKeyOpts {
	return cache.OrbitKeyOpts{
		Limit: o.Limit,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Variant: o.Variant,
		Unicode: o.Unicode,
	}
}
