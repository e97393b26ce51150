package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bumpless/pkg/cache"
	"github.com/matzehuels/bumpless/pkg/manifest"
	"github.com/matzehuels/bumpless/pkg/pipeline"
)

// batchCommand creates the batch command for manifest-driven runs.
func (c *CLI) batchCommand() *cobra.Command {
	var cacheFlags cacheOpts

	cmd := &cobra.Command{
		Use:   "batch <manifest.toml>",
		Short: "Run every enumeration job in a TOML manifest",
		Long: `Run every enumeration job in a TOML manifest.

The manifest lists jobs with a permutation each, plus optional per-job
variant, formats, and output directory. Fields left empty inherit from
the [defaults] table. Artifacts land in <output>/<job-name>.<ext>.

Example manifest:

  [defaults]
  variant = "droop"
  formats = ["text", "svg"]
  output = "out"

  [[jobs]]
  name = "dominant"
  perm = [3, 2, 5, 1, 4]

  [[jobs]]
  name = "k-orbit"
  perm = [3, 1, 5, 2, 4]
  variant = "k"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args[0], cacheFlags)
		},
	}

	registerCacheFlags(cmd, &cacheFlags)

	return cmd
}

func (c *CLI) runBatch(cmd *cobra.Command, path string, cacheFlags cacheOpts) error {
	ctx := cmd.Context()

	m, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", path, err)
	}

	backend, err := c.newCache(cmd, cacheFlags)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer backend.Close()

	failed := 0
	for _, job := range m.Jobs {
		prog := newProgress(c.Logger)

		// Per-job namespace so identical perms under different jobs stay
		// distinguishable in shared backends.
		keyer := cache.NewScopedKeyer(nil, "job:"+job.Name+":")
		runner := pipeline.NewRunner(backend, keyer, c.Logger)

		result, err := runner.Execute(ctx, pipeline.Options{
			Perm:    job.Perm,
			Variant: job.Variant,
			Formats: job.Formats,
			Unicode: job.Unicode,
			Logger:  c.Logger,
		})
		if err != nil {
			printError("Job %s failed: %v", job.Name, err)
			failed++
			continue
		}

		base := job.Name
		if job.Output != "" {
			base = filepath.Join(job.Output, job.Name)
		}
		if err := writeArtifacts(artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   job.Formats,
			output:    base,
		}); err != nil {
			printError("Job %s failed: %v", job.Name, err)
			failed++
			continue
		}

		printStats(result.Stats.GridCount, job.Variant, result.CacheInfo.OrbitHit)
		prog.done(fmt.Sprintf("Job %s finished", job.Name))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d job(s) failed", failed, len(m.Jobs))
	}
	printSuccess("All %d job(s) finished", len(m.Jobs))
	return nil
}
