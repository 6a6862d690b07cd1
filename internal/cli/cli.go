// Package cli implements the quadtree-demo command-line interface.
package cli

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "quadtree-demo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.00",
	})
	return &CLI{Logger: logger}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Collision demos on top of the circle quadtree",
		Long:         `quadtree-demo runs collision simulations and visualizations backed by the circle quadtree library: a headless bouncing-ball simulation, a mouse-trail animation in the terminal, and a Graphviz diagram of the tree structure.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.collideCommand())
	root.AddCommand(c.animateCommand())
	root.AddCommand(c.vizCommand())

	return root
}

// loadConfig reads the TOML config at path, or returns the defaults when
// path is empty.
func (c *CLI) loadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
