package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bumpless/pkg/bpd"
	"github.com/matzehuels/bumpless/pkg/pipeline"
)

// asmCommand creates the asm command for matrix conversion.
func (c *CLI) asmCommand() *cobra.Command {
	var (
		variant    string
		output     string
		cacheFlags cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "asm <perm>",
		Short: "Convert an orbit to alternating sign matrices",
		Long: `Convert an orbit to alternating sign matrices.

Each grid maps to a matrix with 1 at its r-elbows and -1 at its j-elbows.
For the K variant the matrices are genuine alternating sign matrices; for
the plain droop variant they are the subset reachable from the Rothe grid.

The matrices are printed as a JSON array, one matrix per grid in
enumeration order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := parsePerm(args[0])
			if err != nil {
				return err
			}
			return c.runASM(cmd, perm, variant, output, cacheFlags)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", string(pipeline.DefaultVariant), "move variant: droop (default), k, flat, top")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	registerCacheFlags(cmd, &cacheFlags)

	return cmd
}

func (c *CLI) runASM(cmd *cobra.Command, perm []int, variant, output string, cacheFlags cacheOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(cmd, cacheFlags)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	grids, err := runner.Enumerate(ctx, pipeline.Options{
		Perm:    perm,
		Variant: variant,
		Logger:  c.Logger,
	})
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}

	matrices := make([]bpd.ASM, 0, len(grids))
	for _, g := range grids {
		matrices = append(matrices, g.ToASM())
	}

	data, err := json.MarshalIndent(matrices, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal matrices: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Converted %d grid(s)", len(matrices))
	printFile(output)
	return nil
}
