// Package cli implements the swapplan command-line interface.
//
// This package provides commands for planning swap sequences, applying and
// replaying saved plans, rendering diagrams, and managing the plan cache and
// history. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - plan: Compute the minimal swap sequence for a target arrangement
//   - apply: Replay a saved plan against an arrangement
//   - render: Generate text, DOT, SVG, PNG, or PDF diagrams from a saved plan
//   - play: Step through a plan interactively in the terminal
//   - history: Browse and manage archived plans
//   - cache: Manage the plan cache
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/pkg/buildinfo"
	"github.com/swaplab/swapplan/pkg/cache"
	"github.com/swaplab/swapplan/pkg/plan"
)

const (
	// appName is the application name used for directories and display.
	appName = "swapplan"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and loaded config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: loadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Swapplan computes minimal swap sequences for rearranging labeled slots",
		Long:         `Swapplan takes a working arrangement of labeled slots and a target arrangement and computes the shortest sequence of pairwise swaps that realizes it, with diagrams, history and an HTTP API on top.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.planCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a plan runner for CLI use. The cache backend is chosen
// from config: Redis when a URL is configured, otherwise the file cache.
func (c *CLI) newRunner(noCache bool) (*plan.Runner, error) {
	cc, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return plan.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.Config.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisOptions{URL: c.Config.RedisURL})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, falling back to file cache", "err", err)
		} else {
			return rc, nil
		}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/swapplan/).
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

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{plan.FormatText}
	}
	return strings.Split(s, ",")
}
