package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bumpless/pkg/pipeline"
)

// renderCommand creates the render command for rendering a saved orbit.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		cacheFlags cacheOpts
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [orbit.json]",
		Short: "Render artifacts from a saved orbit file",
		Long: `Render artifacts from a saved orbit file.

The render command takes an orbit.json file (produced by 'enumerate -f json')
and renders it to text, DOT, SVG, PNG, or PDF. The move variant decides which
edges the orbit graph formats draw between grids.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts, output, cacheFlags)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	registerCacheFlags(cmd, &cacheFlags)

	// Render flags
	cmd.Flags().StringVar(&opts.Variant, "variant", string(pipeline.DefaultVariant), "move variant for orbit graph edges: droop (default), k, flat, top")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), json, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.Unicode, "unicode", false, "draw tiles with box-drawing characters")

	return cmd
}

// runRender loads the orbit and renders it.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string, cacheFlags cacheOpts) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load orbit %s: %w", input, err)
	}
	grids, err := pipeline.UnmarshalOrbit(data)
	if err != nil {
		return fmt.Errorf("load orbit %s: %w", input, err)
	}

	runner, err := c.newRunner(cmd, cacheFlags)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering orbit...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, grids, "", opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	base := strings.TrimSuffix(input, filepath.Ext(input))
	if err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		output:    output,
		base:      base,
	}); err != nil {
		return err
	}

	printStats(len(grids), opts.Variant, cacheHit)
	return nil
}
