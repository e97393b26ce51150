// Package cli implements the bumpless command-line interface.
//
// This package provides commands for enumerating bumpless pipe dream
// orbits, rendering them as text, DOT, or image artifacts, converting
// grids to alternating sign matrices, and managing the local result
// cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - enumerate: Walk the orbit of a permutation under a move variant
//   - render: Generate artifacts from a saved orbit file
//   - asm: Convert an orbit to alternating sign matrices
//   - batch: Run every job in a TOML manifest
//   - view: Browse an orbit interactively in the terminal
//   - cache: Manage the enumeration cache
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bumpless/pkg/buildinfo"
	"github.com/matzehuels/bumpless/pkg/cache"
	"github.com/matzehuels/bumpless/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "bumpless"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bumpless",
		Short:        "Bumpless enumerates and draws bumpless pipe dreams",
		Long:         `Bumpless is a CLI tool for enumerating bumpless pipe dream orbits of a permutation under droop, K-droop, and flat moves, and for rendering the results as text, DOT graphs, or images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.asmCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheOpts selects the cache backend for a command run.
type cacheOpts struct {
	noCache   bool
	redisAddr string
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cmd *cobra.Command, opts cacheOpts) (*pipeline.Runner, error) {
	backend, err := c.newCache(cmd, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

func (c *CLI) newCache(cmd *cobra.Command, opts cacheOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(cmd.Context(), opts.redisAddr)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// registerCacheFlags adds the shared cache backend flags.
func registerCacheFlags(cmd *cobra.Command, opts *cacheOpts) {
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "use a shared Redis cache at host:port instead of local files")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/bumpless/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Argument Helpers
// =============================================================================

// parsePerm parses a comma-separated permutation argument such as
// "3,2,5,1,4". Window notation with an offset, like "5,4,7,3,6", is
// accepted too; validation happens in the pipeline.
func parsePerm(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	perm := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid permutation entry %q", p)
		}
		perm = append(perm, v)
	}
	return perm, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatText}
	}
	return strings.Split(s, ",")
}
