// Package cli implements the schemagen command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/star-e/generator-sub002/internal/config"
	"github.com/star-e/generator-sub002/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for config files and display.
const appName = "schemagen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	verbose    bool
	noCache    bool
	cfg        *config.Config
}

// New creates a new CLI instance whose logger writes to w.
// Command output goes to stdout; see [CLI.SetOutput].
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Schemagen compiles schema manifests into an addressable declaration graph",
		Long:              `Schemagen loads TOML or YAML schema manifests into an ownership graph of declarations, checks that every declaration has a unique path, and emits traversal orders, snapshots and diagrams.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./schemagen.{yaml,toml})")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "always recompile manifests")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.modulesCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command
// context. --verbose wins over log.level.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".", c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// settings returns the loaded configuration, or the defaults when setup has
// not run.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		return &config.Config{
			Output: config.OutputConfig{Dir: ".", Formats: []string{"svg"}},
			Render: config.RenderConfig{References: true},
			Log:    config.LogConfig{Level: "info"},
		}
	}
	return c.cfg
}
