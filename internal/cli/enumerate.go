package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bumpless/pkg/pipeline"
)

// enumerateCommand creates the enumerate command, the main entry point.
func (c *CLI) enumerateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		cacheFlags cacheOpts
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "enumerate <perm>",
		Short: "Enumerate the bumpless pipe dream orbit of a permutation",
		Long: `Enumerate the bumpless pipe dream orbit of a permutation.

The permutation is given in one-line notation, comma-separated. The orbit
starts at the Rothe grid and closes under the moves of the chosen variant:

  droop   plain droop moves (the default)
  k       droops plus K-droops (K-theoretic, non-reduced grids included)
  flat    flat drops on the flattened seed
  top     drips and anchored flat drops, keeping the top pipe in place

Results are cached locally for faster subsequent runs.

Examples:
  bumpless enumerate 3,2,5,1,4
  bumpless enumerate 3,2,5,1,4 --variant k -f json -o orbit.json
  bumpless enumerate 3,1,5,2,4 --variant top -f svg,dot -o out/orbit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := parsePerm(args[0])
			if err != nil {
				return err
			}
			opts.Perm = perm
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runEnumerate(cmd, opts, output, cacheFlags)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	registerCacheFlags(cmd, &cacheFlags)

	// Enumerate flags
	cmd.Flags().StringVar(&opts.Variant, "variant", string(pipeline.DefaultVariant), "move variant: droop (default), k, flat, top")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "stop after this many grids (0 = no limit)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the orbit cache")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), json, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.Unicode, "unicode", false, "draw tiles with box-drawing characters")

	return cmd
}

// runEnumerate executes the pipeline and writes the artifacts.
func (c *CLI) runEnumerate(cmd *cobra.Command, opts pipeline.Options, output string, cacheFlags cacheOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(cmd, cacheFlags)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Enumerating %s orbit...", opts.Variant))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Enumeration failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		output:    output,
		base:      "orbit",
	}); err != nil {
		return err
	}

	printStats(result.Stats.GridCount, opts.Variant, result.CacheInfo.OrbitHit)
	if output != "" {
		printNewline()
		printNextStep("Browse", fmt.Sprintf("bumpless view %s --variant %s", cmd.Flags().Arg(0), opts.Variant))
	}
	return nil
}
